package recommender

import "testing"

func TestPopularityScore_ZeroMaxIsZero(t *testing.T) {
	for _, count := range []int{0, 1, 100} {
		if got := PopularityScore(count, 0); got != 0 {
			t.Fatalf("PopularityScore(%d, 0) = %v, want 0", count, got)
		}
	}
}

func TestPopularityScore_BoundsAndMonotone(t *testing.T) {
	maxCount := 50
	prev := -1.0
	for count := 0; count <= maxCount; count += 5 {
		got := PopularityScore(count, maxCount)
		if got < 0 || got > 1 {
			t.Fatalf("PopularityScore(%d, %d) = %v out of [0,1]", count, maxCount, got)
		}
		if got < prev {
			t.Fatalf("PopularityScore not monotone at count=%d: %v < %v", count, got, prev)
		}
		prev = got
	}

	if got := PopularityScore(maxCount, maxCount); got != 1 {
		t.Fatalf("PopularityScore(max, max) = %v, want 1", got)
	}
}

func TestPopularityScore_CompressesLongTail(t *testing.T) {
	// Log scaling: half the max count scores well above half the score.
	got := PopularityScore(50, 100)
	if got <= 0.5 {
		t.Fatalf("expected log compression to lift mid counts, got %v", got)
	}
}

func TestMaxPopularity(t *testing.T) {
	if got := MaxPopularity(nil); got != 0 {
		t.Fatalf("MaxPopularity(nil) = %d, want 0", got)
	}
	if got := MaxPopularity(map[int64]int{1: 3, 2: 9, 3: 1}); got != 9 {
		t.Fatalf("MaxPopularity = %d, want 9", got)
	}
}
