package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
)

// menuResolver catálogo con dos categorías para probar la agrupación del menú.
func menuResolver(t *testing.T) *entitlement.Resolver {
	t.Helper()
	cat, err := catalog.New([]entity.Module{
		{ID: "dashboard", Name: "Dashboard", Category: entity.CategoryBusiness, Icon: "home", Routes: []entity.Route{
			{Path: "/dashboard", Label: "Inicio", Permission: "dashboard.view"},
		}},
		{ID: "crm", Name: "CRM", Category: entity.CategoryBusiness, Routes: []entity.Route{
			{Path: "/crm", Label: "CRM", Permission: "crm.view"},
		}},
		{ID: "hr", Name: "RRHH", Category: entity.CategoryAdministrative, Routes: []entity.Route{
			{Path: "/hr", Label: "Personal", Permission: "hr.view"},
		}},
		{ID: "payroll", Name: "Nómina", Category: entity.CategoryAdministrative, Dependencies: []string{"hr"}, Routes: []entity.Route{
			{Path: "/payroll", Label: "Nómina", Permission: "payroll.view"},
		}},
	})
	require.NoError(t, err)
	return entitlement.NewResolver(cat, plan.DefaultPolicy(), entitlement.DefaultAllowList())
}

func TestBuildMenu_AgrupaPorCategoriaSinGruposVacios(t *testing.T) {
	r := menuResolver(t)
	tn := activeTenant(entity.PlanPremium, "dashboard", "crm")

	menu := r.BuildMenu(tn, activeUser(entity.RoleAdmin))
	require.Len(t, menu, 1, "ADMINISTRATIVE no tiene módulos habilitados: no debe aparecer")
	assert.Equal(t, entity.CategoryBusiness, menu[0].Category)

	var ids []string
	for _, m := range menu[0].Modules {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"dashboard", "crm"}, ids, "orden de declaración del catálogo")
}

func TestBuildMenu_FiltraPorPermisosDelRol(t *testing.T) {
	r := menuResolver(t)
	tn := activeTenant(entity.PlanPremium, "dashboard", "hr", "payroll")

	// USER no tiene hr.view ni payroll.view: toda la sección ADMINISTRATIVE
	// desaparece, no queda como grupo vacío.
	menu := r.BuildMenu(tn, activeUser(entity.RoleUser))
	require.Len(t, menu, 1)
	assert.Equal(t, entity.CategoryBusiness, menu[0].Category)

	// MANAGER sí: aparecen ambas secciones, en el orden fijo de categorías.
	menu = r.BuildMenu(tn, activeUser(entity.RoleManager))
	require.Len(t, menu, 2)
	assert.Equal(t, entity.CategoryBusiness, menu[0].Category)
	assert.Equal(t, entity.CategoryAdministrative, menu[1].Category)
}

func TestBuildMenu_SoloRutasPermitidasDentroDelModulo(t *testing.T) {
	cat, err := catalog.New([]entity.Module{
		{ID: "orders", Name: "Pedidos", Category: entity.CategoryBusiness, Routes: []entity.Route{
			{Path: "/orders", Label: "Pedidos", Permission: "orders.view"},
			{Path: "/orders/new", Label: "Nuevo pedido", Permission: "orders.create"},
		}},
	})
	require.NoError(t, err)
	r := entitlement.NewResolver(cat, plan.DefaultPolicy(), entitlement.DefaultAllowList())
	tn := activeTenant(entity.PlanPremium, "orders")

	menu := r.BuildMenu(tn, activeUser(entity.RoleUser))
	require.Len(t, menu, 1)
	require.Len(t, menu[0].Modules, 1)
	require.Len(t, menu[0].Modules[0].Routes, 1, "USER solo ve orders.view")
	assert.Equal(t, "/orders", menu[0].Modules[0].Routes[0].Path)

	menu = r.BuildMenu(tn, activeUser(entity.RoleManager))
	require.Len(t, menu[0].Modules[0].Routes, 2)
}

func TestBuildMenu_TenantSuspendido_MenuVacio(t *testing.T) {
	r := menuResolver(t)
	tn := activeTenant(entity.PlanPremium, "dashboard", "crm")
	tn.IsActive = false

	assert.Empty(t, r.BuildMenu(tn, activeUser(entity.RoleSuperAdmin)))
}
