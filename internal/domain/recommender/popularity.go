package recommender

import "math"

// PopularityScore log-normalizes a job's raw interaction count against the
// most-interacted job. The log compresses the long tail of highly popular
// jobs relative to linear scaling. Zero when there is no interaction data at
// all; otherwise in [0,1] and monotone in count.
func PopularityScore(count, maxCount int) float64 {
	if maxCount <= 0 {
		return 0
	}
	if count < 0 {
		count = 0
	}
	if count > maxCount {
		count = maxCount
	}
	return math.Log1p(float64(count)) / math.Log1p(float64(maxCount))
}

// MaxPopularity returns the highest interaction count in the map, zero when
// the map is empty.
func MaxPopularity(popularity map[int64]int) int {
	maxCount := 0
	for _, c := range popularity {
		if c > maxCount {
			maxCount = c
		}
	}
	return maxCount
}
