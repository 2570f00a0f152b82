package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Asegura que ModuleGrantRepo implementa repository.ModuleGrantRepository.
var _ repository.ModuleGrantRepository = (*ModuleGrantRepo)(nil)

// ModuleGrantRepo implementación del puerto ModuleGrantRepository sobre
// PostgreSQL. Tabla tenant_module_grants con unique (tenant_id, module_id);
// los toggles hacen upsert, nunca DELETE, para conservar el historial.
type ModuleGrantRepo struct {
	db Querier
}

// NewModuleGrantRepository construye el adaptador de persistencia para grants.
func NewModuleGrantRepository(db Querier) *ModuleGrantRepo {
	return &ModuleGrantRepo{db: db}
}

// GetEnabledModules devuelve los ids de módulo habilitados, en orden de
// primera activación (created_at) para un set estable entre toggles.
func (r *ModuleGrantRepo) GetEnabledModules(ctx context.Context, tenantID string) ([]string, error) {
	query := `
		SELECT module_id FROM tenant_module_grants
		 WHERE tenant_id = $1 AND is_enabled = true
		 ORDER BY created_at, module_id`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get enabled modules: %w", err)
	}
	defer rows.Close()

	var modules []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan module id: %w", err)
		}
		modules = append(modules, id)
	}
	return modules, rows.Err()
}

// GetGrant obtiene el grant del par tenant+módulo (nil si nunca se habilitó).
func (r *ModuleGrantRepo) GetGrant(ctx context.Context, tenantID, moduleID string) (*entity.TenantModuleGrant, error) {
	query := `
		SELECT id, tenant_id, module_id, is_enabled, enabled_at, reason, created_at, updated_at
		FROM tenant_module_grants WHERE tenant_id = $1 AND module_id = $2`
	var g entity.TenantModuleGrant
	err := r.db.QueryRow(ctx, query, tenantID, moduleID).Scan(
		&g.ID, &g.TenantID, &g.ModuleID, &g.IsEnabled, &g.EnabledAt, &g.Reason,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grant: %w", err)
	}
	return &g, nil
}

// UpsertGrant crea el grant en la primera activación; en toggles posteriores
// actualiza is_enabled, enabled_at y reason (last writer wins dentro de la
// transacción serializada por tenant).
func (r *ModuleGrantRepo) UpsertGrant(ctx context.Context, tenantID, moduleID string, isEnabled bool, reason string) error {
	query := `
		INSERT INTO tenant_module_grants (id, tenant_id, module_id, is_enabled, enabled_at, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), $5, now(), now())
		ON CONFLICT (tenant_id, module_id) DO UPDATE
		   SET is_enabled = EXCLUDED.is_enabled,
		       enabled_at = EXCLUDED.enabled_at,
		       reason     = EXCLUDED.reason,
		       updated_at = now()`
	_, err := r.db.Exec(ctx, query, uuid.New().String(), tenantID, moduleID, isEnabled, reason)
	if err != nil {
		return fmt.Errorf("upsert grant %s/%s: %w", tenantID, moduleID, err)
	}
	return nil
}

// ListGrants devuelve el historial completo de grants del tenant.
func (r *ModuleGrantRepo) ListGrants(ctx context.Context, tenantID string) ([]*entity.TenantModuleGrant, error) {
	query := `
		SELECT id, tenant_id, module_id, is_enabled, enabled_at, reason, created_at, updated_at
		FROM tenant_module_grants WHERE tenant_id = $1 ORDER BY created_at, module_id`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()

	var list []*entity.TenantModuleGrant
	for rows.Next() {
		var g entity.TenantModuleGrant
		if err := rows.Scan(&g.ID, &g.TenantID, &g.ModuleID, &g.IsEnabled, &g.EnabledAt, &g.Reason, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
