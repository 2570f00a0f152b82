package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ModuleGrantRepository define el puerto de persistencia para los grants de
// módulos por tenant. Deshabilitar nunca borra la fila: los toggles actualizan
// is_enabled/enabled_at y el historial queda para auditoría.
type ModuleGrantRepository interface {
	// GetEnabledModules devuelve los ids de módulo habilitados del tenant,
	// en orden de primera activación (estable).
	GetEnabledModules(ctx context.Context, tenantID string) ([]string, error)
	GetGrant(ctx context.Context, tenantID, moduleID string) (*entity.TenantModuleGrant, error)
	// UpsertGrant crea el grant en la primera activación; en toggles
	// posteriores actualiza is_enabled, enabled_at y reason.
	UpsertGrant(ctx context.Context, tenantID, moduleID string, isEnabled bool, reason string) error
	// ListGrants devuelve el historial completo (habilitados y no) del tenant.
	ListGrants(ctx context.Context, tenantID string) ([]*entity.TenantModuleGrant, error)
}
