package dto

import (
	"math"

	"insightx/internal/usecase"
)

// RecommendationResponse exposes the ranked job with its sub-scores shaped
// for clients: overlap, popularity and the combined success score as
// percentages, CF in raw predicted-rating units.
type RecommendationResponse struct {
	JobID           int64   `json:"job_id"`
	Title           string  `json:"title"`
	Company         string  `json:"company"`
	Location        string  `json:"location"`
	SkillOverlapPct float64 `json:"skill_overlap_pct"`
	PopularityPct   float64 `json:"popularity_pct"`
	CFScore         float64 `json:"cf_score"`
	SuccessScore    float64 `json:"success_score"`
}

func NewRecommendationResponse(it usecase.RecommendationItem) RecommendationResponse {
	return RecommendationResponse{
		JobID:           it.JobID,
		Title:           it.Title,
		Company:         it.Company,
		Location:        it.Location,
		SkillOverlapPct: round2(100 * it.SkillOverlap),
		PopularityPct:   round2(100 * it.Popularity),
		CFScore:         round3(it.CFScore),
		SuccessScore:    round2(100 * it.SuccessScore),
	}
}

func NewRecommendationResponseList(items []usecase.RecommendationItem) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewRecommendationResponse(it))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
