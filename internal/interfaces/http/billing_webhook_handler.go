package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// BillingWebhookHandler recibe los eventos del proveedor de pagos.
type BillingWebhookHandler struct {
	uc     *billing.LifecycleUseCase
	secret string
}

// NewBillingWebhookHandler construye el handler. secret es el compartido con
// el proveedor (header X-Webhook-Secret); vacío desactiva la verificación
// (solo para development).
func NewBillingWebhookHandler(uc *billing.LifecycleUseCase, secret string) *BillingWebhookHandler {
	return &BillingWebhookHandler{uc: uc, secret: secret}
}

// Handle godoc
// @Summary      Webhook de billing (payment_succeeded, payment_failed, subscription_cancelled)
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BillingWebhookRequest  true  "Evento del proveedor"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/webhooks/billing [post]
func (h *BillingWebhookHandler) Handle(c *fiber.Ctx) error {
	if h.secret != "" && c.Get("X-Webhook-Secret") != h.secret {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "secreto de webhook inválido"})
	}
	var in dto.BillingWebhookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" || in.ExternalRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type y external_ref son requeridos"})
	}
	observedAt := in.ObservedAt
	if observedAt.IsZero() {
		observedAt = time.Now()
	}
	err := h.uc.ApplyEvent(c.Context(), entity.BillingEvent{
		Type:        in.Type,
		ExternalRef: in.ExternalRef,
		ObservedAt:  observedAt,
	})
	if err != nil {
		if err == domain.ErrTenantNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tenant no encontrado para ese external_ref"})
		}
		// 5xx para que el proveedor reintente (la aplicación es idempotente).
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
