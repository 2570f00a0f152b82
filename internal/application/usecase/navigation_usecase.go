package usecase

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// NavigationUseCase arma el menú y resuelve chequeos de acceso a rutas para
// la capa de presentación. Solo lecturas: carga el snapshot y delega en el
// resolver puro.
type NavigationUseCase struct {
	tenantRepo repository.TenantRepository
	grantRepo  repository.ModuleGrantRepository
	userRepo   repository.UserRepository
	resolver   *entitlement.Resolver
}

// NewNavigationUseCase construye el caso de uso de navegación.
func NewNavigationUseCase(
	tenantRepo repository.TenantRepository,
	grantRepo repository.ModuleGrantRepository,
	userRepo repository.UserRepository,
	resolver *entitlement.Resolver,
) *NavigationUseCase {
	return &NavigationUseCase{tenantRepo: tenantRepo, grantRepo: grantRepo, userRepo: userRepo, resolver: resolver}
}

func (uc *NavigationUseCase) snapshot(ctx context.Context, tenantID, userID string) (*entity.Tenant, *entity.User, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return nil, nil, err
	}
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil || u.TenantID != tenantID {
		return nil, nil, domain.ErrUserNotFound
	}
	return t, u, nil
}

// Menu devuelve el árbol de navegación filtrado por rol y agrupado por categoría.
func (uc *NavigationUseCase) Menu(ctx context.Context, tenantID, userID string) ([]entitlement.MenuCategory, error) {
	t, u, err := uc.snapshot(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	return uc.resolver.BuildMenu(t, u), nil
}

// Authorize informa si el usuario puede acceder a la ruta. Fail-closed: la
// respuesta no distingue ruta inexistente de permiso insuficiente.
func (uc *NavigationUseCase) Authorize(ctx context.Context, tenantID, userID, path string) (bool, error) {
	t, u, err := uc.snapshot(ctx, tenantID, userID)
	if err != nil {
		return false, err
	}
	return uc.resolver.HasPermission(t, u, path), nil
}

// ModuleActive informa si el módulo está operativo para el tenant
// (habilitado y tenant no suspendido).
func (uc *NavigationUseCase) ModuleActive(ctx context.Context, tenantID, moduleID string) (bool, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return false, err
	}
	return uc.resolver.IsModuleActive(t, moduleID), nil
}

// RouteAvailable informa si la ruta existe para el tenant (algún módulo activo
// la declara), sin considerar el rol del usuario.
func (uc *NavigationUseCase) RouteAvailable(ctx context.Context, tenantID, path string) (bool, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return false, err
	}
	return uc.resolver.IsRouteAvailable(t, path), nil
}
