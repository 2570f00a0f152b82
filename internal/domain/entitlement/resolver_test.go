package entitlement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
)

// testResolver arma un resolver con un catálogo reducido y la política por
// defecto (BASIC: max_modules=3). orders depende de customers y products.
func testResolver(t *testing.T) *entitlement.Resolver {
	t.Helper()
	cat, err := catalog.New([]entity.Module{
		{ID: "dashboard", Name: "Dashboard", Category: entity.CategoryBusiness, Routes: []entity.Route{
			{Path: "/dashboard", Label: "Inicio", Permission: "dashboard.view"},
		}},
		{ID: "customers", Name: "Clientes", Category: entity.CategoryBusiness, Routes: []entity.Route{
			{Path: "/customers", Label: "Clientes", Permission: "customers.view"},
		}},
		{ID: "products", Name: "Productos", Category: entity.CategoryBusiness, Routes: []entity.Route{
			{Path: "/products", Label: "Productos", Permission: "products.view"},
		}},
		{ID: "orders", Name: "Pedidos", Category: entity.CategoryBusiness, Dependencies: []string{"customers", "products"}, Routes: []entity.Route{
			{Path: "/orders", Label: "Pedidos", Permission: "orders.view"},
			{Path: "/orders/new", Label: "Nuevo pedido", Permission: "orders.create"},
		}},
		{ID: "payroll", Name: "Nómina", Category: entity.CategoryAdministrative, Routes: []entity.Route{
			{Path: "/payroll", Label: "Nómina", Permission: "payroll.view"},
			{Path: "/payroll/secret", Label: "Auditoría", Permission: "payroll.audit"},
		}},
	})
	require.NoError(t, err)
	return entitlement.NewResolver(cat, plan.DefaultPolicy(), entitlement.DefaultAllowList())
}

func activeTenant(planID string, modules ...string) *entity.Tenant {
	return &entity.Tenant{
		ID:               "t1",
		SubscriptionPlan: planID,
		IsActive:         true,
		EnabledModules:   modules,
	}
}

func activeUser(role string) *entity.User {
	return &entity.User{ID: "u1", TenantID: "t1", Role: role, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Módulos activos y suspensión
// ──────────────────────────────────────────────────────────────────────────────

func TestIsModuleActive_SuspensionDominaTodo(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "dashboard", "customers")

	assert.True(t, r.IsModuleActive(tn, "dashboard"))
	assert.False(t, r.IsModuleActive(tn, "products"), "módulo no habilitado")

	tn.IsActive = false
	assert.False(t, r.IsModuleActive(tn, "dashboard"),
		"un tenant suspendido no tiene ningún módulo activo aunque el grant persista")
	assert.Equal(t, []string{"dashboard", "customers"}, tn.EnabledModules,
		"la suspensión no toca el set habilitado")
}

func TestIsRouteAvailable_MatchExacto(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "orders", "customers", "products")

	assert.True(t, r.IsRouteAvailable(tn, "/orders"))
	assert.False(t, r.IsRouteAvailable(tn, "/orders/"), "sin normalización: el match es literal")
	assert.False(t, r.IsRouteAvailable(tn, "/payroll"), "ruta de módulo no habilitado")
	assert.False(t, r.IsRouteAvailable(tn, "/no-existe"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestHasPermission_JerarquiaDeRoles(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "orders", "customers", "products")

	// orders.create está permitido a MANAGER pero no a USER.
	assert.True(t, r.HasPermission(tn, activeUser(entity.RoleManager), "/orders/new"))
	assert.False(t, r.HasPermission(tn, activeUser(entity.RoleUser), "/orders/new"))

	// Los roles elevados pasan sin consultar la allow-list.
	assert.True(t, r.HasPermission(tn, activeUser(entity.RoleAdmin), "/orders/new"))
	assert.True(t, r.HasPermission(tn, activeUser(entity.RoleSuperAdmin), "/orders/new"))
}

func TestHasPermission_PermisoDesconocidoDefaultDeny(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "payroll")

	// payroll.audit no figura en la allow-list: denegado para roles no elevados,
	// permitido para ADMIN por jerarquía.
	assert.False(t, r.HasPermission(tn, activeUser(entity.RoleManager), "/payroll/secret"))
	assert.False(t, r.HasPermission(tn, activeUser(entity.RoleUser), "/payroll/secret"))
	assert.True(t, r.HasPermission(tn, activeUser(entity.RoleAdmin), "/payroll/secret"))
}

func TestHasPermission_FailClosed(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "dashboard")

	// Ruta inexistente para el tenant: ni siquiera ADMIN pasa.
	assert.False(t, r.HasPermission(tn, activeUser(entity.RoleAdmin), "/orders"))

	// Usuario inactivo o nulo: denegado siempre.
	inactive := activeUser(entity.RoleAdmin)
	inactive.IsActive = false
	assert.False(t, r.HasPermission(tn, inactive, "/dashboard"))
	assert.False(t, r.HasPermission(tn, nil, "/dashboard"))

	// Tenant suspendido: denegado aunque el usuario sea SUPER_ADMIN.
	tn.IsActive = false
	assert.False(t, r.HasPermission(tn, activeUser(entity.RoleSuperAdmin), "/dashboard"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Enable: cuota y dependencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCanEnableModule_Motivos(t *testing.T) {
	r := testResolver(t)

	// Módulo desconocido.
	d := r.CanEnableModule(activeTenant(entity.PlanBasic), "warp-drive")
	assert.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonUnknownModule, d.Reason)

	// Ya habilitado: motivo propio, NO cuota, aunque el tenant esté en el tope.
	full := activeTenant(entity.PlanBasic, "dashboard", "customers", "products")
	d = r.CanEnableModule(full, "dashboard")
	assert.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonAlreadyEnabled, d.Reason)

	// Cuota: BASIC permite 3 módulos y ya hay 3.
	d = r.CanEnableModule(full, "orders")
	assert.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonQuotaExceeded, d.Reason)

	// Bajo el tope: permitido (CanEnableModule no mira dependencias).
	d = r.CanEnableModule(activeTenant(entity.PlanBasic, "customers", "products"), "orders")
	assert.True(t, d.OK)
}

func TestCheckEnable_DependenciasFaltantes(t *testing.T) {
	r := testResolver(t)

	// orders requiere customers y products; solo customers está habilitado.
	d := r.CheckEnable(activeTenant(entity.PlanPremium, "customers"), "orders")
	require.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonMissingDependencies, d.Reason)
	assert.Equal(t, []string{"products"}, d.MissingDependencies)

	// Sin ninguna dependencia habilitada: se listan todas, ordenadas.
	d = r.CheckEnable(activeTenant(entity.PlanPremium), "orders")
	require.False(t, d.OK)
	assert.Equal(t, []string{"customers", "products"}, d.MissingDependencies)

	// Con todas las dependencias: permitido.
	d = r.CheckEnable(activeTenant(entity.PlanPremium, "customers", "products"), "orders")
	assert.True(t, d.OK)
}

func TestCheckEnable_CuotaAntesQueDependencias(t *testing.T) {
	r := testResolver(t)

	// En el tope de BASIC y además con dependencias faltantes: gana la cuota.
	full := activeTenant(entity.PlanBasic, "dashboard", "customers", "payroll")
	d := r.CheckEnable(full, "orders")
	require.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonQuotaExceeded, d.Reason)
	assert.Empty(t, d.MissingDependencies)
}

// ──────────────────────────────────────────────────────────────────────────────
// Disable: dependientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckDisable_ConDependientes(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "customers", "products", "orders")

	// orders (habilitado) depende de products: no se puede deshabilitar products.
	d := r.CheckDisable(tn, "products")
	require.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonDependentModules, d.Reason)
	assert.Equal(t, []string{"orders"}, d.Dependents)

	// orders no tiene dependientes: se puede deshabilitar.
	assert.True(t, r.CheckDisable(tn, "orders").OK)
}

func TestCheckDisable_NoHabilitadoYDesconocido(t *testing.T) {
	r := testResolver(t)
	tn := activeTenant(entity.PlanPremium, "customers")

	d := r.CheckDisable(tn, "orders")
	assert.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonNotEnabled, d.Reason)

	d = r.CheckDisable(tn, "warp-drive")
	assert.False(t, d.OK)
	assert.Equal(t, entitlement.ReasonUnknownModule, d.Reason)
}

func TestCheckDisable_DependienteDeshabilitadoNoBloquea(t *testing.T) {
	r := testResolver(t)
	// orders existe en el catálogo pero NO está habilitado: products queda libre.
	tn := activeTenant(entity.PlanPremium, "customers", "products")
	assert.True(t, r.CheckDisable(tn, "products").OK)
}

// Sanidad de la política inyectada: el precio no participa en decisiones de
// entitlement, solo los límites.
func TestResolver_DecisionesIgnoranPrecio(t *testing.T) {
	cat, err := catalog.New([]entity.Module{{ID: "m", Category: entity.CategoryBusiness}})
	require.NoError(t, err)
	pol, err := plan.NewPolicy(map[string]entity.PlanConfig{
		entity.PlanBasic:      {ID: entity.PlanBasic, Limits: entity.PlanLimits{MaxUsers: 1, MaxServers: 1, MaxStorageGB: 1, MaxModules: 1}, PriceMonthly: decimal.Zero},
		entity.PlanStandard:   {ID: entity.PlanStandard, Limits: entity.PlanLimits{MaxUsers: 2, MaxServers: 2, MaxStorageGB: 2, MaxModules: 2}, PriceMonthly: decimal.Zero},
		entity.PlanPremium:    {ID: entity.PlanPremium, Limits: entity.PlanLimits{MaxUsers: 3, MaxServers: 3, MaxStorageGB: 3, MaxModules: 3}, PriceMonthly: decimal.Zero},
		entity.PlanEnterprise: {ID: entity.PlanEnterprise, Limits: entity.PlanLimits{}, PriceMonthly: decimal.Zero},
	})
	require.NoError(t, err)

	r := entitlement.NewResolver(cat, pol, entitlement.AllowList{})
	assert.True(t, r.CheckEnable(activeTenant(entity.PlanBasic), "m").OK)
}
