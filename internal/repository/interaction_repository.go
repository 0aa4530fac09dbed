package repository

import (
	"context"
	"time"

	"insightx/internal/database"
)

type Interaction struct {
	ID        int64
	UserID    int64
	JobID     int64
	Event     string
	CreatedAt time.Time
}

type InteractionRepository interface {
	// ListAll streams the full interaction history; the recommender folds
	// it into a fresh rating matrix on every call.
	ListAll(ctx context.Context) ([]Interaction, error)
	Insert(ctx context.Context, userID, jobID int64, event string) (Interaction, error)
}

type PostgresInteractionRepository struct {
	db database.DB
}

func NewPostgresInteractionRepository(db database.DB) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{db: db}
}

func (r *PostgresInteractionRepository) ListAll(ctx context.Context) ([]Interaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, COALESCE(event, ''), created_at
		 FROM job_interactions
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Interaction, 0)
	for rows.Next() {
		var in Interaction
		if err := rows.Scan(&in.ID, &in.UserID, &in.JobID, &in.Event, &in.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInteractionRepository) Insert(ctx context.Context, userID, jobID int64, event string) (Interaction, error) {
	var in Interaction
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_interactions (user_id, job_id, event)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, job_id, event, created_at`,
		userID, jobID, event,
	)
	if err := row.Scan(&in.ID, &in.UserID, &in.JobID, &in.Event, &in.CreatedAt); err != nil {
		return Interaction{}, err
	}
	return in, nil
}
