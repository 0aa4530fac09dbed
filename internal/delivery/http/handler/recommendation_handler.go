package handler

import (
	"errors"
	"strconv"

	"insightx/internal/delivery/http/dto"
	"insightx/internal/delivery/http/middleware"
	"insightx/internal/pkg/response"
	"insightx/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase

	// defaultTopN is the result length when top_n is absent; 0 falls back
	// to the engine default.
	defaultTopN int
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase, defaultTopN int) *RecommendationHandler {
	if defaultTopN < 0 {
		defaultTopN = 0
	}
	return &RecommendationHandler{uc: uc, defaultTopN: defaultTopN}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router, optionalAuth fiber.Handler) {
	if r == nil {
		return
	}
	if optionalAuth == nil {
		r.Get("/recommendations", h.GetRecommendations)
		return
	}
	r.Get("/recommendations", h.GetRecommendations, optionalAuth)
}

// GetRecommendations serves the ranked jobs. The route carries optional
// auth: without a token the caller gets the anonymous popularity ordering.
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(int64)

	topN := parseQueryInt(c, "top_n", h.defaultTopN)
	if topN < 0 {
		topN = 0
	}
	if topN > 100 {
		topN = 100
	}

	items, err := h.uc.GetRecommendations(c.Context(), userID, usecase.RecommendationParams{TopN: topN})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationResponseList(items))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
