package billing

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// Estados de activación de un tenant derivados de billing.
const (
	StateActive    = "ACTIVE"
	StateSuspended = "SUSPENDED"
)

// TargetState deriva el estado objetivo del tenant a partir del TIPO de evento,
// no de un delta: por eso reprocesar el mismo evento es un no-op en efecto
// (idempotencia bajo entrega al-menos-una-vez).
//
// known=false para tipos desconocidos del proveedor: se ignoran (el llamador
// los registra en log) para no romper el procesamiento de los conocidos.
//
// Limitación documentada: no hay chequeo de secuencia/versión, así que un
// payment_failed tardío que llegue después de un payment_succeeded más nuevo
// suspende un tenant ya reactivado; el siguiente evento del proveedor lo corrige.
func TargetState(eventType string) (active bool, known bool) {
	switch eventType {
	case entity.BillingPaymentSucceeded:
		// También cubre la activación inicial y la reactivación tras un fallo.
		return true, true
	case entity.BillingPaymentFailed:
		return false, true
	case entity.BillingSubscriptionCancelled:
		// Terminal para el proveedor, pero el tenant no se borra: conserva su
		// configuración para una eventual reactivación.
		return false, true
	default:
		return false, false
	}
}
