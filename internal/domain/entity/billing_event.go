package entity

import "time"

// Tipos de evento de billing conocidos. Tipos nuevos del proveedor se ignoran
// (se registran en log) para no romper el procesamiento de los conocidos.
const (
	BillingPaymentSucceeded      = "payment_succeeded"
	BillingPaymentFailed         = "payment_failed"
	BillingSubscriptionCancelled = "subscription_cancelled"
)

// BillingEvent es un evento efímero del proveedor de pagos, entregado
// al-menos-una-vez y sin garantía de orden entre eventos del mismo tenant.
type BillingEvent struct {
	Type        string    `json:"type"`
	ExternalRef string    `json:"external_ref"` // mapea al Tenant vía ExternalRef
	ObservedAt  time.Time `json:"observed_at"`
}
