package recommender

// Scorer produces one signal per job. The engine assembles feature vectors
// by iterating its scorers and keying on Name, so a fourth signal can be
// wired in without touching the optimizer or the ranker.
type Scorer interface {
	Name() string
	Score(jobID int64) float64
}

type contentScorer struct {
	profile map[string]struct{}
	skills  map[int64]map[string]struct{}
}

// NewContentScorer scores jobs by the fraction of their skills already in
// the user profile. Job skill sets are normalized once up front.
func NewContentScorer(jobs []Job, profile map[string]struct{}) Scorer {
	skills := make(map[int64]map[string]struct{}, len(jobs))
	for _, job := range jobs {
		skills[job.ID] = NormalizeSkills(job.Skills)
	}
	return &contentScorer{profile: profile, skills: skills}
}

func (s *contentScorer) Name() string { return FeatureSkillOverlap }

func (s *contentScorer) Score(jobID int64) float64 {
	return OverlapScore(s.skills[jobID], s.profile)
}

type popularityScorer struct {
	counts   map[int64]int
	maxCount int
}

// NewPopularityScorer scores jobs by log-normalized interaction count.
func NewPopularityScorer(popularity map[int64]int) Scorer {
	return &popularityScorer{counts: popularity, maxCount: MaxPopularity(popularity)}
}

func (s *popularityScorer) Name() string { return FeaturePopularity }

func (s *popularityScorer) Score(jobID int64) float64 {
	return PopularityScore(s.counts[jobID], s.maxCount)
}

type cfScorer struct {
	predicted map[int64]float64
}

// NewCFScorer scores jobs by predicted collaborative-filtering rating. Jobs
// without a prediction score zero.
func NewCFScorer(predicted map[int64]float64) Scorer {
	return &cfScorer{predicted: predicted}
}

func (s *cfScorer) Name() string { return FeatureCFScore }

func (s *cfScorer) Score(jobID int64) float64 { return s.predicted[jobID] }

// BuildFeatures assembles one feature vector per job from the wired scorers,
// in job enumeration order.
func BuildFeatures(jobs []Job, scorers []Scorer) map[int64]FeatureVector {
	features := make(map[int64]FeatureVector, len(jobs))
	for _, job := range jobs {
		f := make(FeatureVector, len(scorers))
		for _, s := range scorers {
			f[s.Name()] = s.Score(job.ID)
		}
		features[job.ID] = f
	}
	return features
}
