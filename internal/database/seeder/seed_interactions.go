package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"insightx/internal/database"
)

// InteractionsSeeder creates synthetic users and spreads interaction events
// across the seeded jobs so the collaborative signal has something to work
// with. Event mix follows observed traffic: mostly views, few hires.
type InteractionsSeeder struct {
	UserCount           int
	InteractionsPerUser int
	Rand                *rand.Rand
}

func (InteractionsSeeder) Name() string { return "interactions" }

func (s InteractionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_interactions", "id", "user_id", "job_id", "event", "created_at"); err != nil {
		return err
	}

	userCount := s.UserCount
	if userCount <= 0 {
		userCount = 100
	}
	perUser := s.InteractionsPerUser
	if perUser <= 0 {
		perUser = 20
	}
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	jobIDs, err := listJobIDs(ctx, db)
	if err != nil {
		return err
	}
	if len(jobIDs) == 0 {
		return fmt.Errorf("no jobs to interact with, seed jobs first")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i := 0; i < userCount; i++ {
		email := fmt.Sprintf("demo-user-%d@example.com", i)

		var userID int64
		row := tx.QueryRow(ctx,
			`INSERT INTO users (email, password_hash)
			 VALUES ($1, $2)
			 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			 RETURNING id`,
			email, "!seeded-no-login",
		)
		if err := row.Scan(&userID); err != nil {
			return err
		}

		for j := 0; j < perUser; j++ {
			jobID := jobIDs[rng.Intn(len(jobIDs))]
			if _, err := tx.Exec(ctx,
				`INSERT INTO job_interactions (user_id, job_id, event) VALUES ($1, $2, $3)`,
				userID, jobID, randomEvent(rng),
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// randomEvent draws view 70%, save 20%, apply 9%, hire 1%.
func randomEvent(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r < 0.70:
		return "view"
	case r < 0.90:
		return "save"
	case r < 0.99:
		return "apply"
	default:
		return "hire"
	}
}

func listJobIDs(ctx context.Context, db database.DB) ([]int64, error) {
	rows, err := db.Query(ctx, `SELECT id FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
