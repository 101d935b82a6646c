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

	appanalytics "github.com/moganraj05/Inventory-Management-System/internal/application/analytics"
	"github.com/moganraj05/Inventory-Management-System/internal/application/auth"
	"github.com/moganraj05/Inventory-Management-System/internal/application/stock"
	"github.com/moganraj05/Inventory-Management-System/internal/application/usecase"
	"github.com/moganraj05/Inventory-Management-System/internal/infrastructure/cache"
	"github.com/moganraj05/Inventory-Management-System/internal/infrastructure/events"
	"github.com/moganraj05/Inventory-Management-System/internal/infrastructure/postgres"
	httpRouter "github.com/moganraj05/Inventory-Management-System/internal/interfaces/http"
	"github.com/moganraj05/Inventory-Management-System/pkg/config"
	"github.com/moganraj05/Inventory-Management-System/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis es opcional: sin REDIS_ADDR el dashboard consulta siempre la DB.
	var summaryCache appanalytics.SummaryCache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.Connect(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		ttl := time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second
		summaryCache = cache.NewSummaryCache(redisClient, ttl)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitado")
	}

	// NATS es opcional: sin NATS_URL los movimientos no publican eventos.
	var publisher stock.EventPublisher
	if cfg.NATS.URL != "" {
		natsConn, err := events.Connect(cfg.NATS.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer natsConn.Close()
		publisher = events.NewNATSPublisher(natsConn)
		log.Info().Str("url", cfg.NATS.URL).Msg("publicador NATS habilitado")
	}

	movementUC := stock.NewMovementUseCase(txRunner, productRepo, supplierRepo, publisher, log)
	ledgerUC := stock.NewLedgerUseCase(transactionRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, summaryCache, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra
	// en pánico si el archivo no existe, así que solo se monta cuando está.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventory Management API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		MovementUC:  movementUC,
		LedgerUC:    ledgerUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
