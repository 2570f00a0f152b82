package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure. Los getters devuelven (nil, nil)
// si el tenant no existe.
type TenantRepository interface {
	Create(ctx context.Context, t *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	// GetByIDForUpdate bloquea la fila del tenant dentro de la transacción en
	// curso: es la frontera de exclusión mutua por tenant que serializa los
	// enable/disable concurrentes (ver TxRunner).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Tenant, error)
	GetByExternalRef(ctx context.Context, ref string) (*entity.Tenant, error)
	SetActive(ctx context.Context, id string, active bool) error
	UpdatePlan(ctx context.Context, id, planID string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
}
