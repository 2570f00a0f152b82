package http

import (
	"github.com/gofiber/fiber/v2"
	appauth "github.com/tu-usuario/gestion-pro/internal/application/auth"
	appbilling "github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC      *usecase.TenantUseCase
	EntitlementUC *usecase.EntitlementUseCase
	NavigationUC  *usecase.NavigationUseCase
	AuthUC        *appauth.AuthUseCase
	BillingUC     *appbilling.LifecycleUseCase
	Catalog       *catalog.Catalog
	JWTSecret     string
	WebhookSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Webhook de billing (autenticado por secreto compartido, no por JWT)
	webhookHandler := NewBillingWebhookHandler(deps.BillingUC, deps.WebhookSecret)
	api.Post("/webhooks/billing", webhookHandler.Handle)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de módulos (solo lectura)
	entitlementHandler := NewEntitlementHandler(deps.EntitlementUC, deps.Catalog)
	protected.Get("/modules", entitlementHandler.Modules)

	// Navegación (cualquier usuario autenticado)
	navigationHandler := NewNavigationHandler(deps.NavigationUC)
	protected.Get("/menu", navigationHandler.Menu)
	protected.Get("/navigation/authorize", navigationHandler.Authorize)

	// Tenants: lectura para roles elevados del propio tenant, administración
	// de la plataforma para SUPER_ADMIN.
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants := protected.Group("/tenants")
	tenants.Post("/", RequireRole(entity.RoleSuperAdmin), tenantHandler.Create)
	tenants.Get("/", RequireRole(entity.RoleSuperAdmin), tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Get("/:id/usage", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleManager), tenantHandler.Usage)
	tenants.Put("/:id/plan", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), tenantHandler.ChangePlan)

	// Entitlements: toggles solo para roles administrativos.
	tenants.Get("/:id/entitlements", entitlementHandler.Entitlements)
	tenants.Get("/:id/grants", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), entitlementHandler.Grants)
	tenants.Get("/:id/modules/:moduleID/can-enable", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), entitlementHandler.CanEnable)
	tenants.Post("/:id/modules/:moduleID/enable", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), entitlementHandler.Enable)
	tenants.Post("/:id/modules/:moduleID/disable", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), entitlementHandler.Disable)
}
