package recommender

import (
	"math"
	"sort"
)

// CosineSimilarity computes cosine similarity between two sparse rating
// vectors. The dot product runs over shared job ids only; the norms run over
// the full vectors. Zero when either vector is empty, either norm is zero,
// or no dimension is shared. Symmetric by construction.
//
// Accumulation happens in job-id order so repeated runs over the same inputs
// are bit-identical.
func CosineSimilarity(a, b map[int64]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	shared := false
	for _, jobID := range sortedVectorKeys(a) {
		bv, ok := b[jobID]
		if !ok {
			continue
		}
		dot += a[jobID] * bv
		shared = true
	}
	if !shared {
		return 0
	}

	normA := vectorNorm(a)
	normB := vectorNorm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (normA * normB)
}

// PredictCF predicts ratings for every job the target user has not rated,
// using user-user collaborative filtering with similarity-weighted
// averaging. Only strictly positive similarities contribute. Dividing each
// prediction by its summed |similarity| keeps users with many weak neighbors
// comparable to users with few strong ones. Cold start (target absent, or no
// positive neighbor) yields an empty map.
func PredictCF(userID int64, matrix RatingMatrix) map[int64]float64 {
	target, ok := matrix[userID]
	if !ok {
		return map[int64]float64{}
	}

	// Neighbors are visited in user-id order so float accumulation below is
	// reproducible across calls.
	otherIDs := make([]int64, 0, len(matrix))
	for otherID := range matrix {
		if otherID != userID {
			otherIDs = append(otherIDs, otherID)
		}
	}
	sort.Slice(otherIDs, func(i, j int) bool { return otherIDs[i] < otherIDs[j] })

	similarities := make(map[int64]float64, len(otherIDs))
	contributors := make([]int64, 0, len(otherIDs))
	for _, otherID := range otherIDs {
		if sim := CosineSimilarity(target, matrix[otherID]); sim > 0 {
			similarities[otherID] = sim
			contributors = append(contributors, otherID)
		}
	}
	if len(contributors) == 0 {
		return map[int64]float64{}
	}

	predicted := make(map[int64]float64)
	norm := make(map[int64]float64)
	for _, otherID := range contributors {
		sim := similarities[otherID]
		for _, jobID := range sortedVectorKeys(matrix[otherID]) {
			if _, rated := target[jobID]; rated {
				continue
			}
			predicted[jobID] += sim * matrix[otherID][jobID]
			norm[jobID] += math.Abs(sim)
		}
	}

	for jobID := range predicted {
		if n := norm[jobID]; n > 0 {
			predicted[jobID] /= n
		} else {
			predicted[jobID] = 0
		}
	}

	return predicted
}

func vectorNorm(v map[int64]float64) float64 {
	var sum float64
	for _, jobID := range sortedVectorKeys(v) {
		x := v[jobID]
		sum += x * x
	}
	return math.Sqrt(sum)
}

func sortedVectorKeys(v map[int64]float64) []int64 {
	keys := make([]int64, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
