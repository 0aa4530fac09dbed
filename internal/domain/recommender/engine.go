package recommender

import (
	"math/rand"
	"sort"
)

// DefaultTopN bounds the result when the caller does not ask for a length.
const DefaultTopN = 10

// Job is the immutable job snapshot the engine scores. Skills stay as the
// store's free-text comma-separated string and are normalized on demand.
type Job struct {
	ID       int64
	Title    string
	Company  string
	Location string
	Skills   string
}

// ScoredJob is one ranked entry with its sub-scores exposed for caller
// transparency. SkillOverlap and Popularity are in [0,1]; CFScore is in raw
// predicted-rating units.
type ScoredJob struct {
	Job          Job
	SkillOverlap float64
	Popularity   float64
	CFScore      float64
	Combined     float64
}

// Request selects the target of one recommendation pass. UserID <= 0 is an
// anonymous caller and takes the cold path: no profile, no CF signal,
// default weights. Rand seeds the weight search; nil means time-seeded.
type Request struct {
	UserID int64
	TopN   int
	Rand   *rand.Rand
}

// Engine wires the scorers, the weight optimizer and the ranker. It keeps no
// state between calls: the rating matrix, the feature vectors and the
// weights are rebuilt from the inputs on every Recommend, so new interaction
// history is always reflected.
type Engine struct {
	GA                GAConfig
	PositiveThreshold float64
}

func NewEngine() *Engine {
	return &Engine{PositiveThreshold: DefaultPositiveThreshold}
}

// Recommend produces the topN ranked jobs for the request. An empty job
// universe yields an empty result; an empty interaction set degrades to zero
// CF and popularity signal with skill overlap still functional.
func (e *Engine) Recommend(jobs []Job, interactions []Interaction, req Request) []ScoredJob {
	if len(jobs) == 0 {
		return []ScoredJob{}
	}

	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	threshold := e.PositiveThreshold
	if threshold <= 0 {
		threshold = DefaultPositiveThreshold
	}

	matrix, popularity := BuildRatingMatrix(interactions)

	var (
		profile   map[string]struct{}
		positives []int64
		predicted map[int64]float64
	)
	if req.UserID > 0 {
		profile, positives = BuildUserProfile(req.UserID, matrix, jobs, threshold)
		predicted = PredictCF(req.UserID, matrix)
	}

	scorers := []Scorer{
		NewContentScorer(jobs, profile),
		NewPopularityScorer(popularity),
		NewCFScorer(predicted),
	}
	features := BuildFeatures(jobs, scorers)

	weights := DefaultWeights()
	if len(positives) > 0 {
		weights = OptimizeWeights(positives, features, e.GA, req.Rand)
	}

	return RankJobs(jobs, features, weights, topN)
}

// RankJobs combines each job's features under the weights, sorts descending
// by combined score and truncates to topN. The sort is stable, so ties keep
// the original job enumeration order.
func RankJobs(jobs []Job, features map[int64]FeatureVector, weights Weights, topN int) []ScoredJob {
	out := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		f := features[job.ID]
		out = append(out, ScoredJob{
			Job:          job,
			SkillOverlap: f[FeatureSkillOverlap],
			Popularity:   f[FeaturePopularity],
			CFScore:      f[FeatureCFScore],
			Combined:     weights.Combine(f),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Combined > out[j].Combined })

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
