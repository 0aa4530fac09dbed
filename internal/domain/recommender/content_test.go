package recommender

import "testing"

func testJobs() []Job {
	return []Job{
		{ID: 1, Title: "Data Entry Operator", Skills: "python,sql"},
		{ID: 2, Title: "IT Assistant", Skills: "python,go"},
		{ID: 3, Title: "Field Mobilizer", Skills: "communication"},
	}
}

func TestBuildUserProfile_ThresholdFiltersWeakSignals(t *testing.T) {
	matrix := RatingMatrix{
		7: {1: 3.0, 2: 1.0, 3: 2.0},
	}

	profile, positives := BuildUserProfile(7, matrix, testJobs(), DefaultPositiveThreshold)

	// Job 2 is below threshold, jobs 1 and 3 are at or above.
	for _, want := range []string{"python", "sql", "communication"} {
		if _, ok := profile[want]; !ok {
			t.Fatalf("expected profile token %q", want)
		}
	}
	if _, ok := profile["go"]; ok {
		t.Fatalf("did not expect token from sub-threshold job")
	}

	if len(positives) != 2 || positives[0] != 1 || positives[1] != 3 {
		t.Fatalf("positives = %v, want [1 3] in job order", positives)
	}
}

func TestBuildUserProfile_UnknownUser(t *testing.T) {
	profile, positives := BuildUserProfile(99, RatingMatrix{}, testJobs(), DefaultPositiveThreshold)
	if len(profile) != 0 {
		t.Fatalf("expected empty profile for unknown user")
	}
	if len(positives) != 0 {
		t.Fatalf("expected no positives for unknown user")
	}
}

func TestOverlapScore_Bounds(t *testing.T) {
	profile := NormalizeSkills("python,sql")

	cases := []struct {
		skills string
		want   float64
	}{
		{"python,sql", 1.0},
		{"python,go", 0.5},
		{"java", 0.0},
	}
	for _, c := range cases {
		got := OverlapScore(NormalizeSkills(c.skills), profile)
		if got != c.want {
			t.Fatalf("OverlapScore(%q) = %v, want %v", c.skills, got, c.want)
		}
		if got < 0 || got > 1 {
			t.Fatalf("OverlapScore(%q) = %v out of [0,1]", c.skills, got)
		}
	}
}

func TestOverlapScore_EmptySetsScoreZero(t *testing.T) {
	profile := NormalizeSkills("python")
	if got := OverlapScore(NormalizeSkills(""), profile); got != 0 {
		t.Fatalf("empty job skills: got %v, want 0", got)
	}
	if got := OverlapScore(NormalizeSkills("python"), NormalizeSkills("")); got != 0 {
		t.Fatalf("empty profile: got %v, want 0", got)
	}
}
