package dto

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
)

// ToggleModuleRequest entrada para habilitar/deshabilitar un módulo.
type ToggleModuleRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"` // nota de auditoría
}

// DecisionResponse resultado de un chequeo o intento de toggle. Si el toggle
// se aplicó, EnabledModules trae el set resultante.
type DecisionResponse struct {
	Decision       entitlement.Decision `json:"decision"`
	EnabledModules []string             `json:"enabled_modules,omitempty"`
}

// EntitlementsResponse estado de entitlements del tenant.
type EntitlementsResponse struct {
	TenantID       string   `json:"tenant_id"`
	IsActive       bool     `json:"is_active"`
	EnabledModules []string `json:"enabled_modules"`
}

// GrantResponse fila de auditoría de un grant de módulo.
type GrantResponse struct {
	ModuleID  string    `json:"module_id"`
	IsEnabled bool      `json:"is_enabled"`
	EnabledAt time.Time `json:"enabled_at"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorizeResponse resultado de un chequeo de acceso a una ruta.
// Deliberadamente no distingue "la ruta no existe" de "el rol no alcanza":
// ambas son denegaciones fail-closed.
type AuthorizeResponse struct {
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}
