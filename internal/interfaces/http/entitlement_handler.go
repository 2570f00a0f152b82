package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
)

// EntitlementHandler maneja el catálogo de módulos y los toggles por tenant.
type EntitlementHandler struct {
	uc  *usecase.EntitlementUseCase
	cat *catalog.Catalog
}

// NewEntitlementHandler construye el handler inyectando caso de uso y catálogo.
func NewEntitlementHandler(uc *usecase.EntitlementUseCase, cat *catalog.Catalog) *EntitlementHandler {
	return &EntitlementHandler{uc: uc, cat: cat}
}

// Modules godoc
// @Summary      Catálogo de módulos de la plataforma
// @Tags         entitlements
// @Produce      json
// @Success      200  {array}  entity.Module
// @Router       /api/modules [get]
func (h *EntitlementHandler) Modules(c *fiber.Ctx) error {
	return c.JSON(h.cat.All())
}

// Entitlements godoc
// @Summary      Estado de entitlements del tenant
// @Tags         entitlements
// @Produce      json
// @Param        id  path  string  true  "ID del tenant"
// @Success      200  {object}  dto.EntitlementsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id}/entitlements [get]
func (h *EntitlementHandler) Entitlements(c *fiber.Ctx) error {
	out, err := h.uc.Entitlements(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// CanEnable godoc
// @Summary      Verificar si un módulo se puede habilitar (cuota y estado)
// @Tags         entitlements
// @Produce      json
// @Param        id        path  string  true  "ID del tenant"
// @Param        moduleID  path  string  true  "ID del módulo"
// @Success      200  {object}  dto.DecisionResponse
// @Router       /api/tenants/{id}/modules/{moduleID}/can-enable [get]
func (h *EntitlementHandler) CanEnable(c *fiber.Ctx) error {
	out, err := h.uc.CanEnable(c.Context(), c.Params("id"), c.Params("moduleID"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Enable godoc
// @Summary      Habilitar un módulo para el tenant
// @Tags         entitlements
// @Accept       json
// @Produce      json
// @Param        id        path  string                   true   "ID del tenant"
// @Param        moduleID  path  string                   true   "ID del módulo"
// @Param        body      body  dto.ToggleModuleRequest  false  "Nota de auditoría"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      409  {object}  dto.DecisionResponse  "Rechazo de política (cuota o dependencias)"
// @Router       /api/tenants/{id}/modules/{moduleID}/enable [post]
func (h *EntitlementHandler) Enable(c *fiber.Ctx) error {
	var in dto.ToggleModuleRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	out, err := h.uc.Enable(c.Context(), c.Params("id"), c.Params("moduleID"), in.Reason)
	if err != nil {
		return h.mapError(c, err)
	}
	if !out.Decision.OK {
		return c.Status(fiber.StatusConflict).JSON(out)
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Deshabilitar un módulo del tenant
// @Tags         entitlements
// @Accept       json
// @Produce      json
// @Param        id        path  string                   true   "ID del tenant"
// @Param        moduleID  path  string                   true   "ID del módulo"
// @Param        body      body  dto.ToggleModuleRequest  false  "Nota de auditoría"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      409  {object}  dto.DecisionResponse  "Rechazo de política (módulos dependientes)"
// @Router       /api/tenants/{id}/modules/{moduleID}/disable [post]
func (h *EntitlementHandler) Disable(c *fiber.Ctx) error {
	var in dto.ToggleModuleRequest
	_ = c.BodyParser(&in)
	out, err := h.uc.Disable(c.Context(), c.Params("id"), c.Params("moduleID"), in.Reason)
	if err != nil {
		return h.mapError(c, err)
	}
	if !out.Decision.OK {
		return c.Status(fiber.StatusConflict).JSON(out)
	}
	return c.JSON(out)
}

// Grants godoc
// @Summary      Historial de auditoría de grants del tenant
// @Tags         entitlements
// @Produce      json
// @Param        id  path  string  true  "ID del tenant"
// @Success      200  {array}  dto.GrantResponse
// @Router       /api/tenants/{id}/grants [get]
func (h *EntitlementHandler) Grants(c *fiber.Ctx) error {
	out, err := h.uc.Grants(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

func (h *EntitlementHandler) mapError(c *fiber.Ctx, err error) error {
	if err == domain.ErrTenantNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tenant no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
