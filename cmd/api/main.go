package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dulcehorno/panaderia-api/internal/application/analytics"
	"github.com/dulcehorno/panaderia-api/internal/application/auth"
	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
	infracache "github.com/dulcehorno/panaderia-api/internal/infrastructure/cache"
	"github.com/dulcehorno/panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/dulcehorno/panaderia-api/internal/interfaces/http"
	"github.com/dulcehorno/panaderia-api/pkg/config"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
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

	// Cache del escáner de stock crítico. Opcional: sin REDIS_ADDR el escáner
	// consulta siempre la base.
	var criticalCache inventory.CriticalCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible; escáner de críticos sin cache")
		} else {
			defer redisClient.Close()
			criticalCache = infracache.NewCriticalStockCache(
				redisClient,
				time.Duration(cfg.Redis.TTLSeconds)*time.Second,
				log.Component("cache"),
			)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de stock crítico habilitado")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewRawMaterialRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo, criticalCache)
	criticalStockUC := inventory.NewCriticalStockUseCase(materialRepo, criticalCache)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo)
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
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dulce Horno API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		MaterialUC:       materialUC,
		RegisterMovement: registerMovementUC,
		CriticalStock:    criticalStockUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
