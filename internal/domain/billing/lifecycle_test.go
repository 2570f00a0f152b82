package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/gestion-pro/internal/domain/billing"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

func TestTargetState_Tabla(t *testing.T) {
	cases := []struct {
		eventType  string
		wantActive bool
		wantKnown  bool
	}{
		{entity.BillingPaymentSucceeded, true, true},
		{entity.BillingPaymentFailed, false, true},
		{entity.BillingSubscriptionCancelled, false, true},
		{"invoice.finalized", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.eventType, func(t *testing.T) {
			active, known := billing.TargetState(tc.eventType)
			assert.Equal(t, tc.wantKnown, known)
			if known {
				assert.Equal(t, tc.wantActive, active)
			}
		})
	}
}

// El estado destino depende solo del tipo: aplicar dos veces el mismo evento
// converge al mismo estado (base de la idempotencia del webhook).
func TestTargetState_DeterministaPorTipo(t *testing.T) {
	a1, _ := billing.TargetState(entity.BillingPaymentFailed)
	a2, _ := billing.TargetState(entity.BillingPaymentFailed)
	assert.Equal(t, a1, a2)
}
