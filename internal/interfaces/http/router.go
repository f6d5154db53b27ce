package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/cliente"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// AppOptions parámetros de la app Fiber.
type AppOptions struct {
	Name           string
	RequestTimeout time.Duration
	AllowOrigins   string
	Logger         *logger.Logger
}

// NewApp crea la app Fiber con el ErrorHandler JSON y la cadena de middlewares comunes.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := strings.TrimSpace(opts.AllowOrigins)
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestID())
	app.Use(AccessLog(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	app.Use(Timeout(opts.RequestTimeout))
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC *cliente.ClienteUseCase
	AuthUC    *auth.AuthUseCase
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/check", clienteHandler.Check)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id<int>", clienteHandler.Update)
	clientes.Delete("/:id<int>", clienteHandler.Delete)
}
