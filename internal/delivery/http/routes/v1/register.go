package v1

import (
	"log"

	"insightx/internal/config"
	"insightx/internal/database"
	"insightx/internal/delivery/http/handler"
	"insightx/internal/delivery/http/middleware"
	"insightx/internal/domain/recommender"
	"insightx/internal/infrastructure/cache"
	"insightx/internal/pkg/jwt"
	"insightx/internal/repository"
	"insightx/internal/usecase"
	"insightx/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	cfg := deps.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	interactionRepo := repository.NewPostgresInteractionRepository(deps.DB)

	engine := recommender.NewEngine()
	engine.GA = recommender.GAConfig{
		Generations:    cfg.Recommender.Generations,
		PopulationSize: cfg.Recommender.PopulationSize,
	}

	var recCache usecase.RecommendationCache
	if deps.Cache != nil {
		recCache = deps.Cache
	}
	var notifier usecase.InteractionNotifier
	if deps.Hub != nil {
		notifier = deps.Hub
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobListUC := usecase.NewJobListUsecase(jobRepo, deps.Logger)
	recommendationUC := usecase.NewRecommendationUsecase(
		jobRepo, interactionRepo, engine, recCache, cfg.Cache.RecommendationTTL, deps.Logger,
	)
	interactionUC := usecase.NewInteractionUsecase(
		jobRepo, interactionRepo, recCache, notifier, deps.Logger,
	)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(jobListUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC, cfg.Recommender.DefaultTopN)
	interactionHandler := handler.NewInteractionHandler(interactionUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	jobsGroup := r.Group("/jobs")
	jobsHandler.RegisterRoutes(jobsGroup)
	recommendationHandler.RegisterRoutes(jobsGroup, authMw.OptionalMiddleware())
	interactionHandler.RegisterRoutes(jobsGroup, authMw.Middleware())
}
