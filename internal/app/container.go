package app

import (
	"context"
	"log"
	"os"
	"time"

	"content-platform/internal/config"
	"content-platform/internal/domain/user"
	"content-platform/internal/infrastructure/cache"
	"content-platform/internal/repository"
	"content-platform/internal/seeder"
	"content-platform/internal/ws"
)

// Container wires the process-wide state: the in-memory stores, the optional
// Redis cache, and the websocket hub.
type Container struct {
	Config config.Config
	Logger *log.Logger
	Jobs   repository.JobRepository
	Users  user.Repository
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	jobs := repository.NewMemoryJobRepository()
	users := repository.NewMemoryUserRepository()

	if cfg.Board.SeedJobs {
		ctx := context.Background()
		seeded := seeder.SeedJobs(time.Now())
		for _, j := range seeded {
			if err := jobs.Save(ctx, j); err != nil {
				return nil, err
			}
		}
		logger.Printf("[Seed] Board seeded | jobs=%d", len(seeded))
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		Logger: logger,
		Jobs:   jobs,
		Users:  users,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
