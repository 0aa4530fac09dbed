package recommender

import "math"

// Feature names shared by the scorers, the feature vectors and the weight
// combiner.
const (
	FeatureSkillOverlap = "skill_overlap"
	FeaturePopularity   = "popularity"
	FeatureCFScore      = "cf_score"
)

// FeatureVector holds the per-job signal scores keyed by scorer name.
// skill_overlap and popularity are bounded to [0,1]; cf_score is reported in
// raw predicted-rating units.
type FeatureVector map[string]float64

// Weights blends the three per-job signals into one score. Components are
// non-negative and sum to 1 within floating tolerance.
type Weights struct {
	Skill      float64 `json:"skill"`
	Popularity float64 `json:"popularity"`
	CF         float64 `json:"cf"`
}

// DefaultWeights is the fixed fallback: used when a user has no positive
// history and when renormalization degenerates.
func DefaultWeights() Weights {
	return Weights{Skill: 0.5, Popularity: 0.25, CF: 0.25}
}

// Normalize clamps negative components to zero and rescales the vector to
// sum to 1. A vector that collapses to zero resets to the default.
func (w Weights) Normalize() Weights {
	s := Weights{
		Skill:      math.Max(w.Skill, 0),
		Popularity: math.Max(w.Popularity, 0),
		CF:         math.Max(w.CF, 0),
	}
	sum := s.Skill + s.Popularity + s.CF
	if sum == 0 {
		return DefaultWeights()
	}
	return Weights{
		Skill:      s.Skill / sum,
		Popularity: s.Popularity / sum,
		CF:         s.CF / sum,
	}
}

// Combine collapses a feature vector into a single score under w. A nil or
// partial vector reads missing features as zero.
func (w Weights) Combine(f FeatureVector) float64 {
	return w.Skill*f[FeatureSkillOverlap] +
		w.Popularity*f[FeaturePopularity] +
		w.CF*f[FeatureCFScore]
}
