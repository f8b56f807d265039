package routes

import (
	"log"

	"content-platform/internal/config"
	"content-platform/internal/delivery/http/handler"
	"content-platform/internal/domain/user"
	"content-platform/internal/repository"
	"content-platform/internal/usecase"
	"content-platform/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure routes wire the handlers against.
type Deps struct {
	Jobs   repository.JobRepository
	Users  user.Repository
	Cache  usecase.SearchCache
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	cfg    config.Config
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, deps Deps) *Registry {
	return &Registry{cfg: cfg, deps: deps, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))

	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws/jobs", wsHandler.HandleJobsWS)
}
