package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// StarterModules set inicial de módulos con el que nace todo tenant.
// Ninguno declara dependencias, así que el seed no puede violar el invariante.
var StarterModules = []string{"dashboard", "crm"}

// TenantUseCase aplica reglas de negocio para tenants: alta con módulos
// iniciales, consulta de uso contra cuotas y cambio de plan.
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
	grantRepo  repository.ModuleGrantRepository
	userRepo   repository.UserRepository
	policy     *plan.Policy
	tx         EntitlementTxRunner
}

// NewTenantUseCase construye el caso de uso de tenants.
func NewTenantUseCase(
	tenantRepo repository.TenantRepository,
	grantRepo repository.ModuleGrantRepository,
	userRepo repository.UserRepository,
	policy *plan.Policy,
	tx EntitlementTxRunner,
) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo, grantRepo: grantRepo, userRepo: userRepo, policy: policy, tx: tx}
}

// Create crea un tenant activo con el plan indicado (BASIC por defecto) y
// siembra el set inicial de módulos con grants auditables.
func (uc *TenantUseCase) Create(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	planID := in.Plan
	if planID == "" {
		planID = entity.PlanBasic
	}
	if !uc.policy.Known(planID) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Tenant{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Email:            in.Email,
		SubscriptionPlan: planID,
		IsActive:         true,
		ExternalRef:      in.ExternalRef,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err := uc.tx.Run(ctx, func(tenants repository.TenantRepository, grants repository.ModuleGrantRepository) error {
		if err := tenants.Create(ctx, t); err != nil {
			return err
		}
		for _, moduleID := range StarterModules {
			if err := grants.UpsertGrant(ctx, t.ID, moduleID, true, "activación inicial"); err != nil {
				return fmt.Errorf("sembrar módulo %s: %w", moduleID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	t.EnabledModules = append([]string(nil), StarterModules...)
	return toTenantResponse(t), nil
}

// GetByID obtiene el tenant con su set de módulos habilitados.
func (uc *TenantUseCase) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, id, false)
	if err != nil {
		if err == domain.ErrTenantNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toTenantResponse(t), nil
}

// List lista tenants con paginación.
func (uc *TenantUseCase) List(ctx context.Context, limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.tenantRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Usage devuelve el consumo del tenant contra las cuotas de su plan.
func (uc *TenantUseCase) Usage(ctx context.Context, tenantID string) (*dto.UsageResponse, error) {
	t, err := loadTenant(ctx, uc.tenantRepo, uc.grantRepo, tenantID, false)
	if err != nil {
		return nil, err
	}
	userCount, err := uc.userRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	cfg := uc.policy.ConfigFor(t.SubscriptionPlan)
	moduleCount := len(t.EnabledModules)
	return &dto.UsageResponse{
		TenantID:     t.ID,
		Plan:         cfg.ID,
		SupportTier:  cfg.SupportTier,
		PriceMonthly: cfg.PriceMonthly,
		Users: dto.ResourceUsage{
			Current:    userCount,
			Limit:      cfg.Limits.MaxUsers,
			Percentage: plan.UsagePercentage(userCount, cfg.Limits.MaxUsers),
		},
		Modules: dto.ResourceUsage{
			Current:    moduleCount,
			Limit:      cfg.Limits.MaxModules,
			Percentage: plan.UsagePercentage(moduleCount, cfg.Limits.MaxModules),
		},
	}, nil
}

// ChangePlan cambia el plan del tenant. Un downgrade se rechaza mientras el
// tenant tenga más módulos habilitados que max_modules del plan destino (el
// set habilitado nunca se recorta automáticamente).
func (uc *TenantUseCase) ChangePlan(ctx context.Context, tenantID, planID string) (*dto.DecisionResponse, error) {
	if !uc.policy.Known(planID) {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.DecisionResponse{}
	err := uc.tx.Run(ctx, func(tenants repository.TenantRepository, grants repository.ModuleGrantRepository) error {
		t, err := loadTenant(ctx, tenants, grants, tenantID, true)
		if err != nil {
			return err
		}
		limits := uc.policy.LimitsFor(planID)
		if limits.MaxModules != entity.Unlimited && len(t.EnabledModules) > limits.MaxModules {
			out.Decision = entitlement.Rejected(entitlement.ReasonQuotaExceeded)
			return nil
		}
		if err := tenants.UpdatePlan(ctx, tenantID, planID); err != nil {
			return err
		}
		out.Decision = entitlement.Allowed()
		out.EnabledModules = t.EnabledModules
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	modules := t.EnabledModules
	if modules == nil {
		modules = []string{}
	}
	return &dto.TenantResponse{
		ID:               t.ID,
		Name:             t.Name,
		Email:            t.Email,
		SubscriptionPlan: t.SubscriptionPlan,
		IsActive:         t.IsActive,
		EnabledModules:   modules,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
