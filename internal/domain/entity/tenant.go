package entity

import "time"

// Tenant representa una organización cliente de la plataforma (multi-tenant).
// IsActive lo muta únicamente la máquina de estados de billing; EnabledModules
// se muta únicamente a través de las operaciones del resolver de entitlements.
type Tenant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	SubscriptionPlan string    `json:"subscription_plan"` // BASIC | STANDARD | PREMIUM | ENTERPRISE
	IsActive         bool      `json:"is_active"`         // derivado de billing (suspensión global)
	ExternalRef      string    `json:"external_ref"`      // id de cliente en el proveedor de pagos
	EnabledModules   []string  `json:"enabled_modules"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasModule informa si el módulo está en el set habilitado (sin considerar IsActive).
func (t *Tenant) HasModule(moduleID string) bool {
	for _, id := range t.EnabledModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// TenantModuleGrant es el registro persistido de activación de un módulo.
// Los toggles posteriores actualizan IsEnabled/EnabledAt en lugar de borrar la
// fila, para conservar la traza de auditoría.
type TenantModuleGrant struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	ModuleID  string    `json:"module_id"`
	IsEnabled bool      `json:"is_enabled"`
	EnabledAt time.Time `json:"enabled_at"`
	Reason    string    `json:"reason"` // nota libre de auditoría
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
