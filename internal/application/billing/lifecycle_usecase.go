package billing

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	domainbilling "github.com/tu-usuario/gestion-pro/internal/domain/billing"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// LifecycleUseCase aplica eventos del proveedor de pagos a la activación del
// tenant. Es el ÚNICO mutador de Tenant.IsActive.
type LifecycleUseCase struct {
	tenantRepo repository.TenantRepository
	log        *logger.Logger
}

// NewLifecycleUseCase construye el caso de uso del ciclo de vida de billing.
func NewLifecycleUseCase(tenantRepo repository.TenantRepository, log *logger.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{tenantRepo: tenantRepo, log: log}
}

// ApplyEvent procesa un evento de billing. Idempotente bajo entrega
// al-menos-una-vez: el estado destino se deriva solo del tipo de evento, así
// que reprocesar el mismo evento no cambia nada. Tipos desconocidos se
// registran en log y se ignoran (el proveedor puede agregar tipos nuevos).
func (uc *LifecycleUseCase) ApplyEvent(ctx context.Context, ev entity.BillingEvent) error {
	target, known := domainbilling.TargetState(ev.Type)
	if !known {
		uc.log.Warn().
			Str("type", ev.Type).
			Str("external_ref", ev.ExternalRef).
			Msg("evento de billing de tipo desconocido, ignorado")
		return nil
	}

	tenant, err := uc.tenantRepo.GetByExternalRef(ctx, ev.ExternalRef)
	if err != nil {
		return err
	}
	if tenant == nil {
		uc.log.Warn().
			Str("external_ref", ev.ExternalRef).
			Msg("evento de billing para un tenant desconocido")
		return domain.ErrTenantNotFound
	}

	if tenant.IsActive == target {
		// Reentrega o replay: ya estamos en el estado destino.
		uc.log.Debug().
			Str("tenant_id", tenant.ID).
			Str("type", ev.Type).
			Msg("evento de billing sin efecto (estado ya aplicado)")
		return nil
	}

	if err := uc.tenantRepo.SetActive(ctx, tenant.ID, target); err != nil {
		return err
	}
	uc.log.Info().
		Str("tenant_id", tenant.ID).
		Str("type", ev.Type).
		Bool("is_active", target).
		Time("observed_at", ev.ObservedAt).
		Msg("activación del tenant actualizada por billing")
	return nil
}
