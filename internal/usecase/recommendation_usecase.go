package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"insightx/internal/domain/recommender"
	"insightx/internal/repository"
)

// RecommendationCache is the slice of the Redis wrapper the recommendation
// flow needs. A nil implementation-backed cache degrades to a pass-through.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type RecommendationParams struct {
	TopN int
}

// RecommendationItem carries the ranked job with its raw sub-scores in [0,1]
// units (CF in predicted-rating units). Percentage shaping belongs to the
// delivery layer.
type RecommendationItem struct {
	JobID        int64   `json:"job_id"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location"`
	SkillOverlap float64 `json:"skill_overlap"`
	Popularity   float64 `json:"popularity"`
	CFScore      float64 `json:"cf_score"`
	SuccessScore float64 `json:"success_score"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID int64, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	engine       *recommender.Engine
	cache        RecommendationCache
	cacheTTL     time.Duration
	logger       *log.Logger

	// newRand supplies the GA seed source; tests pin it for reproducible runs.
	newRand func() *rand.Rand
}

func NewRecommendationUsecase(
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	engine *recommender.Engine,
	cache RecommendationCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *Recommendation {
	if engine == nil {
		engine = recommender.NewEngine()
	}
	return &Recommendation{
		jobs:         jobs,
		interactions: interactions,
		engine:       engine,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
		newRand:      nil,
	}
}

// GetRecommendations ranks the full job universe for the caller. userID <= 0
// is the anonymous cold path: popularity-led ordering under default weights.
func (u *Recommendation) GetRecommendations(ctx context.Context, userID int64, params RecommendationParams) ([]RecommendationItem, error) {
	topN := params.TopN
	if topN <= 0 {
		topN = recommender.DefaultTopN
	}

	key := recommendationsCacheKey(userID, topN)
	if u.cache != nil {
		var cached []RecommendationItem
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		u.logf("recommendation | list jobs failed err=%v", err)
		return nil, ErrInternal
	}
	if len(jobs) == 0 {
		return []RecommendationItem{}, nil
	}

	history, err := u.interactions.ListAll(ctx)
	if err != nil {
		// Degrade to content/no-signal scoring instead of failing the request.
		u.logf("recommendation | list interactions failed, proceeding without history err=%v", err)
		history = nil
	}

	engineJobs := make([]recommender.Job, 0, len(jobs))
	for _, j := range jobs {
		engineJobs = append(engineJobs, recommender.Job{
			ID:       j.ID,
			Title:    j.Title,
			Company:  j.Company,
			Location: j.Location,
			Skills:   j.Skills,
		})
	}

	engineHistory := make([]recommender.Interaction, 0, len(history))
	for _, in := range history {
		engineHistory = append(engineHistory, recommender.Interaction{
			UserID:    in.UserID,
			JobID:     in.JobID,
			Event:     in.Event,
			CreatedAt: in.CreatedAt,
		})
	}

	var rng *rand.Rand
	if u.newRand != nil {
		rng = u.newRand()
	}

	ranked := u.engine.Recommend(engineJobs, engineHistory, recommender.Request{
		UserID: userID,
		TopN:   topN,
		Rand:   rng,
	})

	out := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RecommendationItem{
			JobID:        r.Job.ID,
			Title:        r.Job.Title,
			Company:      r.Job.Company,
			Location:     r.Job.Location,
			SkillOverlap: r.SkillOverlap,
			Popularity:   r.Popularity,
			CFScore:      r.CFScore,
			SuccessScore: r.Combined,
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
			u.logf("recommendation | cache store failed key=%s err=%v", key, err)
		}
	}

	return out, nil
}

func (u *Recommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func recommendationsCacheKey(userID int64, topN int) string {
	if userID <= 0 {
		return fmt.Sprintf("recommendations:anonymous:top:%d", topN)
	}
	return fmt.Sprintf("recommendations:user:%d:top:%d", userID, topN)
}

func recommendationsUserPattern(userID int64) string {
	return fmt.Sprintf("recommendations:user:%d:*", userID)
}

func recommendationsAnonymousPattern() string {
	return "recommendations:anonymous:*"
}
