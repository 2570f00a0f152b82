package entitlement

import (
	"sort"

	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
)

// Resolver es el núcleo de decisión de entitlements: dado el snapshot de un
// tenant, decide qué módulos están activos, qué rutas existen, qué puede hacer
// cada rol y si un enable/disable es legal según dependencias y cuotas.
// Es computación pura sobre datos ya leídos; no hace llamadas salientes.
type Resolver struct {
	catalog *catalog.Catalog
	policy  *plan.Policy
	allow   AllowList
}

// NewResolver construye el resolver con el catálogo y la política de planes
// inyectados (ambos inmutables tras el arranque).
func NewResolver(cat *catalog.Catalog, pol *plan.Policy, allow AllowList) *Resolver {
	return &Resolver{catalog: cat, policy: pol, allow: allow}
}

// Catalog expone el catálogo inyectado (para el builder de navegación y handlers).
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// IsModuleActive informa si el módulo está operativo para el tenant.
// Un tenant suspendido no tiene NINGÚN módulo activo, sin importar los grants
// persistidos: la suspensión es una compuerta multiplicativa, no un reemplazo
// del set habilitado, de modo que la reactivación restaura la configuración
// exacta previa sin re-derivar nada.
func (r *Resolver) IsModuleActive(t *entity.Tenant, moduleID string) bool {
	if t == nil || !t.IsActive {
		return false
	}
	return t.HasModule(moduleID)
}

// IsRouteAvailable informa si algún módulo activo del tenant declara la ruta.
// El match es exacto sobre el path declarado: no hay prefijos ni comodines,
// cada ruta se registra individualmente.
func (r *Resolver) IsRouteAvailable(t *entity.Tenant, path string) bool {
	_, ok := r.routePermission(t, path)
	return ok
}

// routePermission resuelve el permiso requerido por la ruta, si la ruta
// pertenece a un módulo activo del tenant.
func (r *Resolver) routePermission(t *entity.Tenant, path string) (string, bool) {
	if t == nil || !t.IsActive {
		return "", false
	}
	for _, moduleID := range t.EnabledModules {
		m, ok := r.catalog.Get(moduleID)
		if !ok {
			continue
		}
		for _, route := range m.Routes {
			if route.Path == path {
				return route.Permission, true
			}
		}
	}
	return "", false
}

// HasPermission decide si el usuario puede acceder a la ruta. Fail-closed:
// si la ruta no existe para el tenant, el resultado es false. Los roles
// elevados (ADMIN y SUPER_ADMIN) pasan todo chequeo; MANAGER y USER se
// verifican contra la allow-list explícita por permiso, y un permiso
// desconocido para un rol no elevado se deniega.
func (r *Resolver) HasPermission(t *entity.Tenant, u *entity.User, path string) bool {
	if u == nil || !u.IsActive {
		return false
	}
	permission, ok := r.routePermission(t, path)
	if !ok {
		return false
	}
	if entity.RoleAtLeast(u.Role, entity.RoleAdmin) {
		return true
	}
	return r.allow.allows(permission, u.Role)
}

// CanEnableModule verifica cuota y estado, SIN verificar dependencias: cuota
// y dependencias se reportan con motivos distintos para que el llamador actúe
// en consecuencia (ver CheckEnable).
func (r *Resolver) CanEnableModule(t *entity.Tenant, moduleID string) Decision {
	if !r.catalog.Has(moduleID) {
		return Rejected(ReasonUnknownModule)
	}
	if t.HasModule(moduleID) {
		return Rejected(ReasonAlreadyEnabled)
	}
	if !r.policy.CanAcquireOne(t.SubscriptionPlan, entity.ResourceModules, len(t.EnabledModules)) {
		return Rejected(ReasonQuotaExceeded)
	}
	return Allowed()
}

// CheckEnable es la verificación completa de un enable: primero CanEnableModule
// y luego que TODA dependencia transitiva ya esté habilitada. No se habilitan
// dependencias automáticamente: el llamador debe habilitarlas primero, para que
// cada activación quede explícita en la traza de auditoría.
func (r *Resolver) CheckEnable(t *entity.Tenant, moduleID string) Decision {
	if d := r.CanEnableModule(t, moduleID); !d.OK {
		return d
	}
	var missing []string
	for _, dep := range r.catalog.DependenciesOf(moduleID) {
		if !t.HasModule(dep) {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Decision{OK: false, Reason: ReasonMissingDependencies, MissingDependencies: missing}
	}
	return Allowed()
}

// CheckDisable verifica que ningún OTRO módulo actualmente habilitado dependa
// (transitivamente) del módulo a deshabilitar. Es la imagen espejo de
// CheckEnable y usa la misma clausura transitiva del catálogo para evitar
// divergencias. El rechazo enumera todos los dependientes para que el llamador
// los deshabilite primero o desista.
func (r *Resolver) CheckDisable(t *entity.Tenant, moduleID string) Decision {
	if !r.catalog.Has(moduleID) {
		return Rejected(ReasonUnknownModule)
	}
	if !t.HasModule(moduleID) {
		return Rejected(ReasonNotEnabled)
	}
	var dependents []string
	for _, enabled := range t.EnabledModules {
		if enabled == moduleID {
			continue
		}
		if r.catalog.DependsOn(enabled, moduleID) {
			dependents = append(dependents, enabled)
		}
	}
	if len(dependents) > 0 {
		sort.Strings(dependents)
		return Decision{OK: false, Reason: ReasonDependentModules, Dependents: dependents}
	}
	return Allowed()
}
