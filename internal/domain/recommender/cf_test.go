package recommender

import (
	"math"
	"testing"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	a := map[int64]float64{1: 3, 2: 2}
	b := map[int64]float64{1: 3, 2: 2}

	got := CosineSimilarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("similarity of identical vectors = %v, want 1.0", got)
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := map[int64]float64{1: 3, 2: 1, 5: 4}
	b := map[int64]float64{2: 2, 5: 1, 9: 3}

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)
	if ab != ba {
		t.Fatalf("similarity not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("expected positive similarity, got %v", ab)
	}
}

func TestCosineSimilarity_Guards(t *testing.T) {
	if got := CosineSimilarity(nil, map[int64]float64{1: 1}); got != 0 {
		t.Fatalf("empty vector: got %v, want 0", got)
	}
	if got := CosineSimilarity(map[int64]float64{1: 1}, map[int64]float64{2: 1}); got != 0 {
		t.Fatalf("no shared dimension: got %v, want 0", got)
	}
	if got := CosineSimilarity(map[int64]float64{1: 0}, map[int64]float64{1: 1}); got != 0 {
		t.Fatalf("zero norm: got %v, want 0", got)
	}
}

func TestPredictCF_ColdStart(t *testing.T) {
	matrix := RatingMatrix{
		2: {10: 3, 11: 2},
	}
	if got := PredictCF(1, matrix); len(got) != 0 {
		t.Fatalf("expected empty predictions for unknown user, got %v", got)
	}
}

func TestPredictCF_NoPositiveNeighbors(t *testing.T) {
	// Users share no jobs, so every similarity is zero.
	matrix := RatingMatrix{
		1: {10: 3},
		2: {11: 2},
	}
	if got := PredictCF(1, matrix); len(got) != 0 {
		t.Fatalf("expected empty predictions without positive neighbors, got %v", got)
	}
}

func TestPredictCF_PredictsOnlyUnratedJobs(t *testing.T) {
	matrix := RatingMatrix{
		1: {10: 3, 11: 2},
		2: {10: 3, 11: 2, 12: 4},
	}

	got := PredictCF(1, matrix)

	if _, ok := got[10]; ok {
		t.Fatalf("predicted a job the target already rated")
	}
	pred, ok := got[12]
	if !ok {
		t.Fatalf("expected a prediction for job 12")
	}
	// Single neighbor with similarity 1: prediction equals the neighbor's
	// rating after normalization.
	if math.Abs(pred-4.0) > 1e-9 {
		t.Fatalf("prediction for job 12 = %v, want 4.0", pred)
	}
}

func TestPredictCF_NormalizesBySimilaritySum(t *testing.T) {
	// Two identical neighbors rating job 12 differently: the prediction is
	// the similarity-weighted average, not the raw sum.
	matrix := RatingMatrix{
		1: {10: 2},
		2: {10: 2, 12: 4},
		3: {10: 2, 12: 2},
	}

	got := PredictCF(1, matrix)
	pred := got[12]
	if pred < 2.0 || pred > 4.0 {
		t.Fatalf("prediction %v outside neighbor rating range [2,4]", pred)
	}
}

func TestPredictCF_Deterministic(t *testing.T) {
	matrix := RatingMatrix{
		1: {10: 3, 11: 1},
		2: {10: 2, 12: 4, 13: 1},
		3: {11: 2, 12: 1, 14: 5},
		4: {10: 1, 14: 2},
	}

	first := PredictCF(1, matrix)
	for i := 0; i < 10; i++ {
		again := PredictCF(1, matrix)
		if len(again) != len(first) {
			t.Fatalf("prediction count changed between runs")
		}
		for jobID, v := range first {
			if again[jobID] != v {
				t.Fatalf("prediction for job %d changed: %v vs %v", jobID, v, again[jobID])
			}
		}
	}
}
