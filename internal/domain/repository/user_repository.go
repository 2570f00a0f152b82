package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndTenant(ctx context.Context, email, tenantID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.User, error)
	// CountByTenant alimenta el chequeo de cuota max_users del plan.
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	Delete(ctx context.Context, id string) error
}
