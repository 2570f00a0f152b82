package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTenantRequest entrada para crear un tenant.
type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Plan        string `json:"plan" validate:"omitempty,oneof=BASIC STANDARD PREMIUM ENTERPRISE"`
	ExternalRef string `json:"external_ref" validate:"omitempty,max=191"`
}

// TenantResponse salida de un tenant con su set de módulos habilitados.
type TenantResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	SubscriptionPlan string    `json:"subscription_plan"`
	IsActive         bool      `json:"is_active"`
	EnabledModules   []string  `json:"enabled_modules"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TenantListResponse listado paginado de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ChangePlanRequest entrada para cambiar el plan de suscripción.
type ChangePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=BASIC STANDARD PREMIUM ENTERPRISE"`
}

// ResourceUsage uso de un recurso contra su límite de plan.
type ResourceUsage struct {
	Current    int `json:"current"`
	Limit      int `json:"limit"` // 0 = sin límite
	Percentage int `json:"percentage"`
}

// UsageResponse resumen de consumo del tenant contra las cuotas de su plan.
type UsageResponse struct {
	TenantID     string          `json:"tenant_id"`
	Plan         string          `json:"plan"`
	SupportTier  string          `json:"support_tier"`
	PriceMonthly decimal.Decimal `json:"price_monthly"`
	Users        ResourceUsage   `json:"users"`
	Modules      ResourceUsage   `json:"modules"`
}
