package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que autoriza solo a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol sin acceso a este recurso",
		})
	}
}

// moduleChecker es el contrato mínimo que necesita el middleware para
// verificar módulos. Lo implementa *usecase.NavigationUseCase; el uso de
// interfaz evita el import circular.
type moduleChecker interface {
	ModuleActive(ctx context.Context, tenantID, moduleID string) (bool, error)
}

// RequireModule devuelve un middleware Fiber que verifica si el tenant del
// token tiene el módulo activo. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 Forbidden → módulo no habilitado o tenant suspendido (no se
//     distingue cuál: ambas son denegaciones fail-closed).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay tenant_id en el contexto, responde 401.
func RequireModule(moduleID string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := GetTenantID(c)
		if tenantID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "tenant_id no encontrado en el token",
			})
		}

		active, err := checker.ModuleActive(c.Context(), tenantID, moduleID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NOT_AVAILABLE",
				Message: "recurso no disponible para esta organización",
			})
		}

		return c.Next()
	}
}
