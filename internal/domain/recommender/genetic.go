package recommender

import (
	"math/rand"
	"sort"
	"time"
)

// GAConfig bounds the evolutionary search for blend weights. Zero values
// fall back to the defaults below.
type GAConfig struct {
	Generations    int
	PopulationSize int
	EliteCount     int
	MutationSpan   float64
}

const (
	defaultGenerations    = 10
	defaultPopulationSize = 20
	defaultEliteCount     = 5
	defaultMutationSpan   = 0.1
)

func (c GAConfig) withDefaults() GAConfig {
	if c.Generations <= 0 {
		c.Generations = defaultGenerations
	}
	if c.PopulationSize <= 0 {
		c.PopulationSize = defaultPopulationSize
	}
	if c.PopulationSize < 2 {
		c.PopulationSize = 2
	}
	if c.EliteCount <= 0 {
		c.EliteCount = defaultEliteCount
	}
	// Crossover/mutation needs at least two elites to draw from.
	if c.EliteCount < 2 {
		c.EliteCount = 2
	}
	if c.EliteCount > c.PopulationSize {
		c.EliteCount = c.PopulationSize
	}
	if c.MutationSpan <= 0 {
		c.MutationSpan = defaultMutationSpan
	}
	return c
}

type candidate struct {
	weights Weights
	fitness float64
}

// OptimizeWeights runs a small genetic search for the weight vector that
// scores the user's historically positive jobs highest. Fitness is the mean
// combined score over positiveJobIDs; jobs without a feature entry are
// skipped. With no positive history there is nothing to fit, so the default
// weights come back unchanged.
//
// The search is stochastic. Callers that need reproducible results pass a
// seeded rng; given the same seed and inputs the result is bit-identical.
// A nil rng gets a time-seeded one.
func OptimizeWeights(positiveJobIDs []int64, features map[int64]FeatureVector, cfg GAConfig, rng *rand.Rand) Weights {
	if len(positiveJobIDs) == 0 {
		return DefaultWeights()
	}
	cfg = cfg.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	fitness := func(w Weights) float64 {
		var sum float64
		n := 0
		for _, jobID := range positiveJobIDs {
			f, ok := features[jobID]
			if !ok {
				continue
			}
			sum += w.Combine(f)
			n++
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}

	population := make([]Weights, cfg.PopulationSize)
	for i := range population {
		population[i] = Weights{
			Skill:      rng.Float64(),
			Popularity: rng.Float64(),
			CF:         rng.Float64(),
		}.Normalize()
	}

	for g := 0; g < cfg.Generations; g++ {
		scored := evaluateGeneration(population, fitness)

		next := make([]Weights, 0, cfg.PopulationSize)
		for i := 0; i < cfg.EliteCount; i++ {
			next = append(next, scored[i].weights)
		}
		for len(next) < cfg.PopulationSize {
			parent := scored[rng.Intn(cfg.EliteCount)].weights
			child := Weights{
				Skill:      parent.Skill + mutationNoise(rng, cfg.MutationSpan),
				Popularity: parent.Popularity + mutationNoise(rng, cfg.MutationSpan),
				CF:         parent.CF + mutationNoise(rng, cfg.MutationSpan),
			}.Normalize()
			next = append(next, child)
		}
		population = next
	}

	final := evaluateGeneration(population, fitness)
	return final[0].weights
}

// evaluateGeneration scores and sorts a population by fitness descending.
// The sort is stable so equal-fitness candidates keep insertion order and
// the whole search stays deterministic under a fixed seed.
func evaluateGeneration(population []Weights, fitness func(Weights) float64) []candidate {
	scored := make([]candidate, len(population))
	for i, w := range population {
		scored[i] = candidate{weights: w, fitness: fitness(w)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].fitness > scored[j].fitness })
	return scored
}

func mutationNoise(rng *rand.Rand, span float64) float64 {
	return (rng.Float64()*2 - 1) * span
}
