package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/tu-usuario/gestion-pro/internal/application/auth"
	appbilling "github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/catalog"
	"github.com/tu-usuario/gestion-pro/internal/domain/entitlement"
	"github.com/tu-usuario/gestion-pro/internal/domain/plan"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Catálogo y política de planes: configuración inmutable validada al
	// arranque. Un ciclo de dependencias o límites no monótonos son fatales.
	cat := catalog.Default()
	policy := plan.DefaultPolicy()
	resolver := entitlement.NewResolver(cat, policy, entitlement.DefaultAllowList())

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	grantRepo := postgres.NewModuleGrantRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tenantUC := usecase.NewTenantUseCase(tenantRepo, grantRepo, userRepo, policy, txRunner)
	entitlementUC := usecase.NewEntitlementUseCase(tenantRepo, grantRepo, resolver, txRunner)
	navigationUC := usecase.NewNavigationUseCase(tenantRepo, grantRepo, userRepo, resolver)
	billingUC := appbilling.NewLifecycleUseCase(tenantRepo, log)
	authUC := appauth.NewAuthUseCase(userRepo, tenantRepo, policy, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:      tenantUC,
		EntitlementUC: entitlementUC,
		NavigationUC:  navigationUC,
		AuthUC:        authUC,
		BillingUC:     billingUC,
		Catalog:       cat,
		JWTSecret:     cfg.JWT.Secret,
		WebhookSecret: cfg.Billing.WebhookSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
