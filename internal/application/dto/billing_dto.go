package dto

import "time"

// BillingWebhookRequest payload del webhook del proveedor de pagos.
type BillingWebhookRequest struct {
	Type        string    `json:"type" validate:"required"`
	ExternalRef string    `json:"external_ref" validate:"required"`
	ObservedAt  time.Time `json:"observed_at"`
}
