package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/cliente"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	// Tablas y usuario demo antes de aceptar tráfico.
	bootCtx, cancelBoot := context.WithTimeout(ctx, 30*time.Second)
	err = postgres.EnsureSchema(bootCtx, pool, postgres.SeedUser{
		Usuario:  cfg.Seed.User,
		Password: cfg.Seed.Password,
	})
	cancelBoot()
	if err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}
	log.Info().Str("seed_user", cfg.Seed.User).Msg("esquema listo")

	runner := postgres.NewConnRunner(pool)
	clienteUC := cliente.NewClienteUseCase(runner)
	authUC := auth.NewAuthUseCase(runner)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:           cfg.App.Name,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		AllowOrigins:   cfg.HTTP.AllowOrigins,
		Logger:         log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Swagger.FilePath != "" {
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    "Clientes API",
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC: clienteUC,
		AuthUC:    authUC,
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
