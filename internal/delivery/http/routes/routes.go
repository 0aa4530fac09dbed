package routes

import (
	"log"

	"insightx/internal/config"
	"insightx/internal/database"
	"insightx/internal/delivery/http/handler"
	v1 "insightx/internal/delivery/http/routes/v1"
	"insightx/internal/infrastructure/cache"
	"insightx/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, rdb *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: rdb, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.db, r.cache).RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.hub, r.logger)
	app.Get("/ws/interactions", wsHandler.HandleInteractionsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: r.cfg,
		DB:     r.db,
		Cache:  r.cache,
		Hub:    r.hub,
		Logger: r.logger,
	})
}
