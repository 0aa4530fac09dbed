package recommender

import "testing"

func TestNormalizeSkills_Basic(t *testing.T) {
	got := NormalizeSkills("Python, SQL ,go")
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(got))
	}
	for _, want := range []string{"python", "sql", "go"} {
		if _, ok := got[want]; !ok {
			t.Fatalf("expected token %q", want)
		}
	}
}

func TestNormalizeSkills_EmptyAndBlank(t *testing.T) {
	if got := NormalizeSkills(""); len(got) != 0 {
		t.Fatalf("expected empty set for empty input, got %d tokens", len(got))
	}
	if got := NormalizeSkills(" , ,, "); len(got) != 0 {
		t.Fatalf("expected empty set for blank tokens, got %d tokens", len(got))
	}
}

func TestNormalizeSkills_Dedupes(t *testing.T) {
	got := NormalizeSkills("Go,go, GO ")
	if len(got) != 1 {
		t.Fatalf("expected 1 token after dedupe, got %d", len(got))
	}
}
