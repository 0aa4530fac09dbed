package recommender

import "testing"

func TestEventWeight_KnownEvents(t *testing.T) {
	cases := map[string]float64{
		"view":        1,
		"save":        2,
		"bookmark":    2,
		"apply":       3,
		"hire":        4,
		"shortlisted": 4,
		" Apply ":     3,
	}
	for event, want := range cases {
		if got := EventWeight(event); got != want {
			t.Fatalf("EventWeight(%q) = %v, want %v", event, got, want)
		}
	}
}

func TestEventWeight_UnknownDefaultsToOne(t *testing.T) {
	if got := EventWeight("poke"); got != 1 {
		t.Fatalf("unknown event weight = %v, want 1", got)
	}
	if got := EventWeight(""); got != 1 {
		t.Fatalf("empty event weight = %v, want 1", got)
	}
}

func TestBuildRatingMatrix_Accumulates(t *testing.T) {
	matrix, popularity := BuildRatingMatrix([]Interaction{
		{UserID: 1, JobID: 10, Event: "view"},
		{UserID: 1, JobID: 10, Event: "apply"},
		{UserID: 2, JobID: 10, Event: "save"},
		{UserID: 1, JobID: 11, Event: "hire"},
	})

	if got := matrix[1][10]; got != 4 {
		t.Fatalf("matrix[1][10] = %v, want 4 (view+apply)", got)
	}
	if got := matrix[2][10]; got != 2 {
		t.Fatalf("matrix[2][10] = %v, want 2", got)
	}
	if got := matrix[1][11]; got != 4 {
		t.Fatalf("matrix[1][11] = %v, want 4", got)
	}

	if got := popularity[10]; got != 3 {
		t.Fatalf("popularity[10] = %d, want 3 raw events", got)
	}
	if got := popularity[11]; got != 1 {
		t.Fatalf("popularity[11] = %d, want 1", got)
	}
}

func TestBuildRatingMatrix_Empty(t *testing.T) {
	matrix, popularity := BuildRatingMatrix(nil)
	if len(matrix) != 0 {
		t.Fatalf("expected empty matrix, got %d users", len(matrix))
	}
	if len(popularity) != 0 {
		t.Fatalf("expected empty popularity, got %d jobs", len(popularity))
	}
}
