package handler

import (
	"errors"
	"strconv"

	"insightx/internal/delivery/http/dto"
	"insightx/internal/delivery/http/middleware"
	"insightx/internal/pkg/response"
	"insightx/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type InteractionHandler struct {
	uc       usecase.InteractionUsecase
	validate *validator.Validate
}

func NewInteractionHandler(uc usecase.InteractionUsecase) *InteractionHandler {
	return &InteractionHandler{uc: uc, validate: validator.New()}
}

func (h *InteractionHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}
	if requireAuth == nil {
		r.Post("/:id/interactions", h.RecordInteraction)
		return
	}
	r.Post("/:id/interactions", h.RecordInteraction, requireAuth)
}

func (h *InteractionHandler) RecordInteraction(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(int64)
	if !ok || userID <= 0 {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || jobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req dto.InteractionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid event", nil, err)
	}

	item, err := h.uc.RecordInteraction(c.Context(), userID, usecase.InteractionInput{
		JobID: jobID,
		Event: req.Event,
	})
	if err != nil {
		return mapInteractionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewInteractionResponse(item))
}

func mapInteractionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
