package recommender

// DefaultPositiveThreshold is the accumulated rating at which a job counts
// as revealed preference: a save or stronger, or repeat views.
const DefaultPositiveThreshold = 2.0

// BuildUserProfile unions the normalized skill tokens of every job the user
// has rated at or above threshold. It returns the profile and the ids of
// those jobs in job enumeration order; the ids feed the weight optimizer as
// the user's positive set. An unknown user yields an empty profile.
func BuildUserProfile(userID int64, matrix RatingMatrix, jobs []Job, threshold float64) (map[string]struct{}, []int64) {
	profile := make(map[string]struct{})
	positives := make([]int64, 0)

	ratings, ok := matrix[userID]
	if !ok {
		return profile, positives
	}

	for _, job := range jobs {
		rating, ok := ratings[job.ID]
		if !ok || rating < threshold {
			continue
		}
		for token := range NormalizeSkills(job.Skills) {
			profile[token] = struct{}{}
		}
		positives = append(positives, job.ID)
	}

	return profile, positives
}

// OverlapScore is the fraction of the job's required skills already present
// in the user profile. Always in [0,1]; zero when either set is empty.
func OverlapScore(jobSkills, profile map[string]struct{}) float64 {
	if len(jobSkills) == 0 || len(profile) == 0 {
		return 0
	}

	common := 0
	for token := range jobSkills {
		if _, ok := profile[token]; ok {
			common++
		}
	}

	return float64(common) / float64(len(jobSkills))
}
