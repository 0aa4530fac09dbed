package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"insightx/internal/repository"
)

var ErrJobNotFound = errors.New("job not found")

// InteractionNotifier fans a freshly recorded interaction out to live
// listeners. The websocket hub implements it; a nil notifier is a no-op.
type InteractionNotifier interface {
	NotifyInteractionRecorded(userID, jobID int64, event string)
}

type InteractionInput struct {
	JobID int64
	Event string
}

type InteractionItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

type InteractionUsecase interface {
	RecordInteraction(ctx context.Context, userID int64, in InteractionInput) (InteractionItem, error)
}

type Interaction struct {
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	cache        RecommendationCache
	notifier     InteractionNotifier
	logger       *log.Logger
}

func NewInteractionUsecase(
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	cache RecommendationCache,
	notifier InteractionNotifier,
	logger *log.Logger,
) *Interaction {
	return &Interaction{
		jobs:         jobs,
		interactions: interactions,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
	}
}

// RecordInteraction persists one user event against a job and invalidates
// the cached rankings it can shift: the user's own and the anonymous
// popularity ordering.
func (u *Interaction) RecordInteraction(ctx context.Context, userID int64, in InteractionInput) (InteractionItem, error) {
	if userID <= 0 {
		return InteractionItem{}, ErrUnauthorized
	}
	if in.JobID <= 0 {
		return InteractionItem{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, in.JobID)
	if err != nil {
		u.logf("interaction | job existence check failed job_id=%d err=%v", in.JobID, err)
		return InteractionItem{}, ErrInternal
	}
	if !exists {
		return InteractionItem{}, ErrJobNotFound
	}

	rec, err := u.interactions.Insert(ctx, userID, in.JobID, in.Event)
	if err != nil {
		u.logf("interaction | insert failed user_id=%d job_id=%d err=%v", userID, in.JobID, err)
		return InteractionItem{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, recommendationsUserPattern(userID)); err != nil {
			u.logf("interaction | cache invalidation failed user_id=%d err=%v", userID, err)
		}
		if err := u.cache.DeleteByPattern(ctx, recommendationsAnonymousPattern()); err != nil {
			u.logf("interaction | anonymous cache invalidation failed err=%v", err)
		}
	}

	if u.notifier != nil {
		u.notifier.NotifyInteractionRecorded(rec.UserID, rec.JobID, rec.Event)
	}

	return InteractionItem{
		ID:        rec.ID,
		UserID:    rec.UserID,
		JobID:     rec.JobID,
		Event:     rec.Event,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (u *Interaction) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
