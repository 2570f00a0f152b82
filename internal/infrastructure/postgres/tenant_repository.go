package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Asegura que TenantRepo implementa repository.TenantRepository.
var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
type TenantRepo struct {
	db Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
// Acepta el pool o una transacción (ver TxRunner).
func NewTenantRepository(db Querier) *TenantRepo {
	return &TenantRepo{db: db}
}

const tenantColumns = `id, name, email, subscription_plan, is_active, external_ref, created_at, updated_at`

// Create persiste un nuevo tenant. Devuelve domain.ErrDuplicate si el
// external_ref ya está registrado.
func (r *TenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Email, t.SubscriptionPlan, t.IsActive, t.ExternalRef,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID (nil si no existe).
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	return r.getOne(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene el tenant bloqueando su fila (FOR UPDATE). Solo
// tiene sentido dentro de una transacción: es la exclusión mutua por tenant
// que serializa los toggles concurrentes de módulos.
func (r *TenantRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Tenant, error) {
	return r.getOne(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1 FOR UPDATE`, id)
}

// GetByExternalRef obtiene un tenant por su id de cliente en el proveedor de pagos.
func (r *TenantRepo) GetByExternalRef(ctx context.Context, ref string) (*entity.Tenant, error) {
	return r.getOne(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE external_ref = $1`, ref)
}

func (r *TenantRepo) getOne(ctx context.Context, query string, arg any) (*entity.Tenant, error) {
	var t entity.Tenant
	var externalRef *string
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.Name, &t.Email, &t.SubscriptionPlan, &t.IsActive, &externalRef,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if externalRef != nil {
		t.ExternalRef = *externalRef
	}
	return &t, nil
}

// SetActive actualiza el flag de activación derivado de billing.
func (r *TenantRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE tenants SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set tenant active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// UpdatePlan actualiza el plan de suscripción.
func (r *TenantRepo) UpdatePlan(ctx context.Context, id, planID string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE tenants SET subscription_plan = $2, updated_at = $3 WHERE id = $1`,
		id, planID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update tenant plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// List devuelve tenants con paginación.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		var externalRef *string
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.SubscriptionPlan, &t.IsActive, &externalRef, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		if externalRef != nil {
			t.ExternalRef = *externalRef
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
