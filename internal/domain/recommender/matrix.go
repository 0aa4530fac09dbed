package recommender

import (
	"strings"
	"time"
)

// Interaction is one raw event from the interaction store. Multiple records
// may exist per (user, job) pair; they accumulate.
type Interaction struct {
	UserID    int64
	JobID     int64
	Event     string
	CreatedAt time.Time
}

// RatingMatrix is a sparse user -> (job -> accumulated implicit rating) map.
// It is rebuilt from the full interaction set on every recommendation pass.
type RatingMatrix map[int64]map[int64]float64

// EventWeight maps an interaction event to its implicit rating weight.
// Unrecognized events still count as a small positive signal.
func EventWeight(event string) float64 {
	switch strings.ToLower(strings.TrimSpace(event)) {
	case "view", "viewed":
		return 1
	case "save", "saved", "bookmark":
		return 2
	case "apply", "applied":
		return 3
	case "hire", "hired", "shortlisted", "selected":
		return 4
	default:
		return 1
	}
}

// BuildRatingMatrix folds raw interaction records into a sparse rating matrix
// and per-job popularity counts. Ratings accumulate across repeat
// interactions; popularity counts one per record regardless of event weight.
func BuildRatingMatrix(interactions []Interaction) (RatingMatrix, map[int64]int) {
	matrix := make(RatingMatrix)
	popularity := make(map[int64]int)

	for _, in := range interactions {
		ratings, ok := matrix[in.UserID]
		if !ok {
			ratings = make(map[int64]float64)
			matrix[in.UserID] = ratings
		}
		ratings[in.JobID] += EventWeight(in.Event)
		popularity[in.JobID]++
	}

	return matrix, popularity
}
