package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// NavigationHandler expone el menú y el chequeo de acceso a rutas para la
// capa de presentación.
type NavigationHandler struct {
	uc *usecase.NavigationUseCase
}

// NewNavigationHandler construye el handler inyectando el caso de uso.
func NewNavigationHandler(uc *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{uc: uc}
}

// Menu godoc
// @Summary      Menú de navegación del usuario autenticado
// @Tags         navigation
// @Produce      json
// @Success      200  {array}  entitlement.MenuCategory
// @Router       /api/menu [get]
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	out, err := h.uc.Menu(c.Context(), GetTenantID(c), GetUserID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Authorize godoc
// @Summary      Verificar acceso a una ruta de UI
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "Path exacto de la ruta"
// @Success      200   {object}  dto.AuthorizeResponse
// @Router       /api/navigation/authorize [get]
func (h *NavigationHandler) Authorize(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	allowed, err := h.uc.Authorize(c.Context(), GetTenantID(c), GetUserID(c), path)
	if err != nil {
		return h.mapError(c, err)
	}
	// La respuesta es un booleano genérico: no se revela si la ruta no existe
	// o si el rol no alcanza (ambas son denegaciones fail-closed).
	return c.JSON(dto.AuthorizeResponse{Path: path, Allowed: allowed})
}

func (h *NavigationHandler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrTenantNotFound, domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
