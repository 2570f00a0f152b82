package entity

import "github.com/shopspring/decimal"

// Planes de suscripción, ordenados por capacidad (ver PlanOrder).
const (
	PlanBasic      = "BASIC"
	PlanStandard   = "STANDARD"
	PlanPremium    = "PREMIUM"
	PlanEnterprise = "ENTERPRISE"
)

// PlanOrder lista los planes de menor a mayor capacidad. Los límites deben ser
// monótonamente no decrecientes a lo largo de este orden (validado al arranque).
var PlanOrder = []string{PlanBasic, PlanStandard, PlanPremium, PlanEnterprise}

// Unlimited es el centinela "sin límite" para cualquier campo de PlanLimits.
const Unlimited = 0

// PlanLimits cuotas numéricas de un plan. El valor Unlimited (0) significa sin tope.
type PlanLimits struct {
	MaxUsers     int `json:"max_users"`
	MaxServers   int `json:"max_servers"`
	MaxStorageGB int `json:"max_storage_gb"`
	MaxModules   int `json:"max_modules"`
}

// PlanConfig define un plan comercial: cuotas, nivel de soporte y precio mensual.
type PlanConfig struct {
	ID           string          `json:"id"`
	Limits       PlanLimits      `json:"limits"`
	SupportTier  string          `json:"support_tier"` // community | standard | priority | dedicated
	PriceMonthly decimal.Decimal `json:"price_monthly"`
}

// ResourceKind identifica el recurso contable contra una cuota del plan.
type ResourceKind string

const (
	ResourceUsers     ResourceKind = "users"
	ResourceServers   ResourceKind = "servers"
	ResourceStorageGB ResourceKind = "storage_gb"
	ResourceModules   ResourceKind = "modules"
)
