package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// EntitlementTxRunner ejecuta fn dentro de una transacción con repos atados a
// ella. Los chequeos de dependencia y cuota leen-y-escriben el set de módulos,
// así que dos toggles concurrentes sobre el MISMO tenant deben serializarse
// (FOR UPDATE sobre la fila del tenant); tenants distintos no se coordinan.
type EntitlementTxRunner interface {
	Run(ctx context.Context, fn func(
		tenants repository.TenantRepository,
		grants repository.ModuleGrantRepository,
	) error) error
}

// EntitlementUseCase orquesta los toggles de módulos: decide con el resolver
// (puro) y persiste vía los grants. Es el único camino de mutación de
// EnabledModules; nada escribe los grants directamente.
type EntitlementUseCase struct {
	tenantRepo repository.TenantRepository
	grantRepo  repository.ModuleGrantRepository
	resolver   *entitlement.Resolver
	tx         EntitlementTxRunner
}

// NewEntitlementUseCase construye el caso de uso de entitlements.
func NewEntitlementUseCase(
	tenantRepo repository.TenantRepository,
	grantRepo repository.ModuleGrantRepository,
	resolver *entitlement.Resolver,
	tx EntitlementTxRunner,
) *EntitlementUseCase {
	return &EntitlementUseCase{tenantRepo: tenantRepo, grantRepo: grantRepo, resolver: resolver, tx: tx}
}

// loadTenant arma el snapshot del tenant con su set de módulos habilitados.
func loadTenant(ctx context.Context, tenants repository.TenantRepository, grants repository.ModuleGrantRepository, tenantID string, forUpdate bool) (*entity.Tenant, error) {
	var t *entity.Tenant
	var err error
	if forUpdate {
		t, err = tenants.GetByIDForUpdate(ctx, tenantID)
	} else {
		t, err = tenants.GetByID(ctx, tenantID)
	}
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTenantNotFound
	}
	modules, err := grants.GetEnabledModules(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("cargar módulos del tenant: %w", err)
	}
	t.EnabledModules = modules
	return t, nil
}

// Entitlements devuelve el estado actual de entitlements del tenant.
func (uc *EntitlementUseCase) Entitlements(ctx context.Context, tenantID string) (*dto.EntitlementsResponse, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return nil, err
	}
	return &dto.EntitlementsResponse{
		TenantID:       t.ID,
		IsActive:       t.IsActive,
		EnabledModules: t.EnabledModules,
	}, nil
}

// CanEnable verifica cuota y estado sin aplicar nada (lectura de snapshot).
func (uc *EntitlementUseCase) CanEnable(ctx context.Context, tenantID, moduleID string) (*dto.DecisionResponse, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return nil, err
	}
	d := uc.resolver.CanEnableModule(t, moduleID)
	return &dto.DecisionResponse{Decision: d}, nil
}

// Enable habilita el módulo si cuota y dependencias lo permiten, dentro de una
// transacción con la fila del tenant bloqueada. Un rechazo de política se
// devuelve como Decision, no como error.
func (uc *EntitlementUseCase) Enable(ctx context.Context, tenantID, moduleID, reason string) (*dto.DecisionResponse, error) {
	out := &dto.DecisionResponse{}
	err := uc.tx.Run(ctx, func(tenants repository.TenantRepository, grants repository.ModuleGrantRepository) error {
		t, err := loadTenant(ctx, tenants, grants, tenantID, true)
		if err != nil {
			return err
		}
		d := uc.resolver.CheckEnable(t, moduleID)
		out.Decision = d
		if !d.OK {
			return nil
		}
		if err := grants.UpsertGrant(ctx, tenantID, moduleID, true, reason); err != nil {
			return fmt.Errorf("persistir grant: %w", err)
		}
		out.EnabledModules = append(t.EnabledModules, moduleID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Disable deshabilita el módulo si ningún otro módulo habilitado depende de él.
// El grant no se borra: se marca is_enabled=false conservando la auditoría.
func (uc *EntitlementUseCase) Disable(ctx context.Context, tenantID, moduleID, reason string) (*dto.DecisionResponse, error) {
	out := &dto.DecisionResponse{}
	err := uc.tx.Run(ctx, func(tenants repository.TenantRepository, grants repository.ModuleGrantRepository) error {
		t, err := loadTenant(ctx, tenants, grants, tenantID, true)
		if err != nil {
			return err
		}
		d := uc.resolver.CheckDisable(t, moduleID)
		out.Decision = d
		if !d.OK {
			return nil
		}
		if err := grants.UpsertGrant(ctx, tenantID, moduleID, false, reason); err != nil {
			return fmt.Errorf("persistir grant: %w", err)
		}
		remaining := make([]string, 0, len(t.EnabledModules))
		for _, id := range t.EnabledModules {
			if id != moduleID {
				remaining = append(remaining, id)
			}
		}
		out.EnabledModules = remaining
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Grants devuelve el historial de auditoría de grants del tenant.
func (uc *EntitlementUseCase) Grants(ctx context.Context, tenantID string) ([]dto.GrantResponse, error) {
	list, err := uc.grantRepo.ListGrants(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GrantResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.GrantResponse{
			ModuleID:  g.ModuleID,
			IsEnabled: g.IsEnabled,
			EnabledAt: g.EnabledAt,
			Reason:    g.Reason,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		})
	}
	return out, nil
}
