package recommender

import (
	"math"
	"testing"
)

const weightTolerance = 1e-6

func assertSimplex(t *testing.T, w Weights) {
	t.Helper()
	if w.Skill < 0 || w.Popularity < 0 || w.CF < 0 {
		t.Fatalf("negative component in %+v", w)
	}
	sum := w.Skill + w.Popularity + w.CF
	if math.Abs(sum-1.0) > weightTolerance {
		t.Fatalf("weights sum to %v, want 1: %+v", sum, w)
	}
}

func TestWeights_NormalizeRescales(t *testing.T) {
	w := Weights{Skill: 2, Popularity: 1, CF: 1}.Normalize()
	assertSimplex(t, w)
	if math.Abs(w.Skill-0.5) > weightTolerance {
		t.Fatalf("Skill = %v, want 0.5", w.Skill)
	}
}

func TestWeights_NormalizeClampsNegatives(t *testing.T) {
	w := Weights{Skill: -1, Popularity: 1, CF: 1}.Normalize()
	assertSimplex(t, w)
	if w.Skill != 0 {
		t.Fatalf("negative component not clamped: %+v", w)
	}
}

func TestWeights_NormalizeZeroResetsToDefault(t *testing.T) {
	for _, w := range []Weights{{}, {Skill: -1, Popularity: -2, CF: -3}} {
		got := w.Normalize()
		if got != DefaultWeights() {
			t.Fatalf("Normalize(%+v) = %+v, want default", w, got)
		}
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assertSimplex(t, w)
	if w.Skill != 0.5 || w.Popularity != 0.25 || w.CF != 0.25 {
		t.Fatalf("unexpected default weights %+v", w)
	}
}

func TestWeights_Combine(t *testing.T) {
	w := Weights{Skill: 0.5, Popularity: 0.25, CF: 0.25}
	f := FeatureVector{
		FeatureSkillOverlap: 1.0,
		FeaturePopularity:   0.4,
		FeatureCFScore:      2.0,
	}

	got := w.Combine(f)
	want := 0.5*1.0 + 0.25*0.4 + 0.25*2.0
	if math.Abs(got-want) > weightTolerance {
		t.Fatalf("Combine = %v, want %v", got, want)
	}
}

func TestWeights_CombineNilVector(t *testing.T) {
	if got := DefaultWeights().Combine(nil); got != 0 {
		t.Fatalf("Combine(nil) = %v, want 0", got)
	}
}
