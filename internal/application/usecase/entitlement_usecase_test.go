package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
)

func newEntitlementFixture(t *testing.T, tenant *entity.Tenant, enabled ...string) (*usecase.EntitlementUseCase, *fakeGrantRepo) {
	t.Helper()
	tenants := newFakeTenantRepo(tenant)
	grants := newFakeGrantRepo()
	for _, m := range enabled {
		require.NoError(t, grants.UpsertGrant(context.Background(), tenant.ID, m, true, "seed"))
	}
	resolver := entitlement.NewResolver(catalog.Default(), plan.DefaultPolicy(), entitlement.DefaultAllowList())
	tx := &fakeTxRunner{tenants: tenants, grants: grants}
	return usecase.NewEntitlementUseCase(tenants, grants, resolver, tx), grants
}

func premiumTenant() *entity.Tenant {
	return &entity.Tenant{ID: "t1", Name: "Acme", SubscriptionPlan: entity.PlanPremium, IsActive: true}
}

func TestEnable_HappyPath(t *testing.T) {
	uc, grants := newEntitlementFixture(t, premiumTenant(), "dashboard", "customers", "products")

	out, err := uc.Enable(context.Background(), "t1", "orders", "pedido del cliente")
	require.NoError(t, err)
	require.True(t, out.Decision.OK)
	assert.Equal(t, []string{"dashboard", "customers", "products", "orders"}, out.EnabledModules)

	g, err := grants.GetGrant(context.Background(), "t1", "orders")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.True(t, g.IsEnabled)
	assert.Equal(t, "pedido del cliente", g.Reason)

	// Habilitar e inmediatamente deshabilitar restaura el set anterior exacto.
	out, err = uc.Disable(context.Background(), "t1", "orders", "rollback")
	require.NoError(t, err)
	require.True(t, out.Decision.OK)
	assert.Equal(t, []string{"dashboard", "customers", "products"}, out.EnabledModules)
}

func TestEnable_DependenciaFaltante_NoPersisteNada(t *testing.T) {
	uc, grants := newEntitlementFixture(t, premiumTenant(), "customers")

	out, err := uc.Enable(context.Background(), "t1", "orders", "")
	require.NoError(t, err, "un rechazo de política NO es un error")
	require.False(t, out.Decision.OK)
	assert.Equal(t, entitlement.ReasonMissingDependencies, out.Decision.Reason)
	assert.Equal(t, []string{"products"}, out.Decision.MissingDependencies)

	g, err := grants.GetGrant(context.Background(), "t1", "orders")
	require.NoError(t, err)
	assert.Nil(t, g, "el rechazo no deja grant")
}

func TestEnable_CuotaDelPlan(t *testing.T) {
	basic := premiumTenant()
	basic.SubscriptionPlan = entity.PlanBasic // max_modules = 3
	uc, _ := newEntitlementFixture(t, basic, "dashboard", "crm", "customers")

	out, err := uc.Enable(context.Background(), "t1", "products", "")
	require.NoError(t, err)
	require.False(t, out.Decision.OK)
	assert.Equal(t, entitlement.ReasonQuotaExceeded, out.Decision.Reason)
}

func TestDisable_ConservaAuditoriaYSeRestauraAlReactivar(t *testing.T) {
	uc, grants := newEntitlementFixture(t, premiumTenant(), "dashboard", "customers", "products", "orders")

	out, err := uc.Disable(context.Background(), "t1", "orders", "baja temporal")
	require.NoError(t, err)
	require.True(t, out.Decision.OK)
	assert.Equal(t, []string{"dashboard", "customers", "products"}, out.EnabledModules)

	// El grant no se borra: queda marcado deshabilitado (auditoría).
	g, err := grants.GetGrant(context.Background(), "t1", "orders")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.False(t, g.IsEnabled)
	assert.Equal(t, "baja temporal", g.Reason)

	// Round-trip: habilitar de nuevo restaura el set completo.
	out, err = uc.Enable(context.Background(), "t1", "orders", "reactivación")
	require.NoError(t, err)
	require.True(t, out.Decision.OK)
	assert.ElementsMatch(t, []string{"dashboard", "customers", "products", "orders"}, out.EnabledModules)
}

func TestDisable_ConDependienteHabilitado_Rechaza(t *testing.T) {
	uc, _ := newEntitlementFixture(t, premiumTenant(), "customers", "products", "orders")

	out, err := uc.Disable(context.Background(), "t1", "products", "")
	require.NoError(t, err)
	require.False(t, out.Decision.OK)
	assert.Equal(t, entitlement.ReasonDependentModules, out.Decision.Reason)
	assert.Equal(t, []string{"orders"}, out.Decision.Dependents)
}

func TestEnable_TenantInexistente_Error(t *testing.T) {
	uc, _ := newEntitlementFixture(t, premiumTenant())

	_, err := uc.Enable(context.Background(), "no-existe", "crm", "")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestEntitlements_ReflejaSuspension(t *testing.T) {
	suspended := premiumTenant()
	suspended.IsActive = false
	uc, _ := newEntitlementFixture(t, suspended, "dashboard", "crm")

	out, err := uc.Entitlements(context.Background(), "t1")
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	// El set habilitado se reporta intacto: la suspensión es una compuerta,
	// no una mutación del set.
	assert.Equal(t, []string{"dashboard", "crm"}, out.EnabledModules)
}

func TestCanEnable_NoMiraDependencias(t *testing.T) {
	uc, _ := newEntitlementFixture(t, premiumTenant(), "dashboard")

	// orders tiene dependencias faltantes, pero CanEnable solo chequea
	// existencia, estado y cuota.
	out, err := uc.CanEnable(context.Background(), "t1", "orders")
	require.NoError(t, err)
	assert.True(t, out.Decision.OK)
}

func TestGrants_HistorialCompleto(t *testing.T) {
	uc, _ := newEntitlementFixture(t, premiumTenant(), "dashboard", "crm")

	_, err := uc.Disable(context.Background(), "t1", "crm", "no se usa")
	require.NoError(t, err)

	list, err := uc.Grants(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 2, "el historial incluye habilitados y deshabilitados")
	assert.True(t, list[0].IsEnabled)
	assert.False(t, list[1].IsEnabled)
}
