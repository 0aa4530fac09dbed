package dto

import (
	"time"

	"insightx/internal/usecase"
)

type InteractionRequest struct {
	Event string `json:"event" validate:"required,oneof=view save bookmark apply hire shortlisted"`
}

type InteractionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInteractionResponse(it usecase.InteractionItem) InteractionResponse {
	return InteractionResponse{
		ID:        it.ID,
		UserID:    it.UserID,
		JobID:     it.JobID,
		Event:     it.Event,
		CreatedAt: it.CreatedAt,
	}
}
