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

	appanalytics "github.com/kellyos/kellyos-api/internal/application/analytics"
	"github.com/kellyos/kellyos-api/internal/application/auth"
	"github.com/kellyos/kellyos-api/internal/application/inventory"
	apppayments "github.com/kellyos/kellyos-api/internal/application/payments"
	"github.com/kellyos/kellyos-api/internal/application/sales"
	"github.com/kellyos/kellyos-api/internal/application/usecase"
	"github.com/kellyos/kellyos-api/internal/infrastructure/cache"
	"github.com/kellyos/kellyos-api/internal/infrastructure/events"
	"github.com/kellyos/kellyos-api/internal/infrastructure/gateway"
	infrapdf "github.com/kellyos/kellyos-api/internal/infrastructure/pdf"
	"github.com/kellyos/kellyos-api/internal/infrastructure/postgres"
	httpRouter "github.com/kellyos/kellyos-api/internal/interfaces/http"
	"github.com/kellyos/kellyos-api/internal/plugins"
	"github.com/kellyos/kellyos-api/pkg/config"
	"github.com/kellyos/kellyos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Infraestructura opcional: cache y eventos se deshabilitan si no hay
	// REDIS_ADDR / KAFKA_BROKERS configurados.
	appCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	producer := events.NewProducer(cfg.Kafka)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	pluginRepo := postgres.NewPluginRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stripeClient := gateway.NewStripeClient(cfg.Gateways.StripeSecretKey, cfg.Gateways.StripeWebhookSecret)
	paypalClient := gateway.NewPayPalClient(cfg.Gateways.PayPalClientID, cfg.Gateways.PayPalClientSecret, cfg.Gateways.PayPalMode)
	squareClient := gateway.NewSquareClient(cfg.Gateways.SquareAccessToken, cfg.Gateways.SquareEnvironment)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	productUC := usecase.NewProductUseCase(productRepo, appCache)
	inventoryUC := inventory.NewUseCase(txRunner, productRepo, movementRepo, appCache, producer)
	salesUC := sales.NewUseCase(txRunner, orderRepo, customerRepo, productRepo, pdfGenerator, producer, cfg.App.Name)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	accountingUC := usecase.NewAccountingUseCase(ledgerRepo)
	hrUC := usecase.NewHRUseCase(employeeRepo)
	analyticsUC := appanalytics.NewUseCase(analyticsRepo, appCache)
	paymentsUC := apppayments.NewUseCase(paymentRepo, orderRepo, stripeClient, paypalClient, squareClient)

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
		Title:    "KellyOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	pluginRouter := httpRouter.MountRoutes(app, httpRouter.RouterDeps{
		JWTSecret:  cfg.JWT.Secret,
		Auth:       httpRouter.NewAuthHandler(authUC),
		Products:   httpRouter.NewProductHandler(productUC),
		Inventory:  httpRouter.NewInventoryHandler(inventoryUC),
		Orders:     httpRouter.NewOrderHandler(salesUC),
		Customers:  httpRouter.NewCustomerHandler(customerUC),
		Accounting: httpRouter.NewAccountingHandler(accountingUC),
		HR:         httpRouter.NewHRHandler(hrUC),
		Analytics:  httpRouter.NewAnalyticsHandler(analyticsUC),
		Payments:   httpRouter.NewPaymentHandler(paymentsUC),
	})

	// El manager necesita el grupo /api/plugins para montar rutas de plugins;
	// el handler de plugins se registra después de crearlo.
	pluginManager := plugins.NewManager(pluginRepo, pluginRouter)
	httpRouter.MountPluginRoutes(pluginRouter, httpRouter.NewPluginHandler(pluginManager))
	if err := pluginManager.Bootstrap(); err != nil {
		log.Error().Err(err).Msg("bootstrap de plugins")
	}

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
	if err := producer.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del productor de eventos")
	}
	if err := appCache.Close(); err != nil {
		log.Error().Err(err).Msg("cierre de la conexión a Redis")
	}

	log.Info().Msg("aplicación detenida")
}
