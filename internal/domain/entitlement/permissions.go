package entitlement

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// AllowList mapea permiso -> roles no elevados que lo tienen. SUPER_ADMIN y
// ADMIN nunca se consultan aquí: pasan todo chequeo por jerarquía. Un permiso
// que no aparece en la lista está denegado para MANAGER y USER (default-deny).
type AllowList map[string][]string

// DefaultAllowList permisos de la plataforma para roles no elevados.
// Regla general: lectura para MANAGER y USER, creación solo para MANAGER;
// nómina y RRHH quedan fuera del alcance de USER.
func DefaultAllowList() AllowList {
	return AllowList{
		"dashboard.view":           {entity.RoleManager, entity.RoleUser},
		"crm.view":                 {entity.RoleManager, entity.RoleUser},
		"crm.leads.view":           {entity.RoleManager, entity.RoleUser},
		"customers.view":           {entity.RoleManager, entity.RoleUser},
		"products.view":            {entity.RoleManager, entity.RoleUser},
		"orders.view":              {entity.RoleManager, entity.RoleUser},
		"orders.create":            {entity.RoleManager},
		"inventory.view":           {entity.RoleManager, entity.RoleUser},
		"inventory.movements.view": {entity.RoleManager},
		"invoices.view":            {entity.RoleManager, entity.RoleUser},
		"invoices.create":          {entity.RoleManager},
		"hr.view":                  {entity.RoleManager},
		"payroll.view":             {entity.RoleManager},
		"elevators.view":           {entity.RoleManager, entity.RoleUser},
		"servers.view":             {entity.RoleManager, entity.RoleUser},
		"schools.view":             {entity.RoleManager, entity.RoleUser},
		"reports.view":             {entity.RoleManager},
	}
}

// allows informa si el rol figura en la lista del permiso.
func (a AllowList) allows(permission, role string) bool {
	for _, r := range a[permission] {
		if r == role {
			return true
		}
	}
	return false
}
