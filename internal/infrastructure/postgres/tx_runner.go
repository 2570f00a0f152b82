package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Asegura que TxRunner implementa usecase.EntitlementTxRunner.
var _ usecase.EntitlementTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repos atados a la tx. Combinado con GetByIDForUpdate, da la frontera de
// exclusión mutua por tenant que exigen los toggles de módulos: dos enables
// concurrentes sobre el mismo tenant se serializan en la fila bloqueada;
// tenants distintos avanzan en paralelo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	tenants repository.TenantRepository,
	grants repository.ModuleGrantRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tenantRepo := NewTenantRepository(tx)
	grantRepo := NewModuleGrantRepository(tx)

	if err := fn(tenantRepo, grantRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
