package recommender

import "strings"

// NormalizeSkills parses a free-text, comma-separated skill string into a
// canonical set of lower-cased tokens. Duplicates collapse, empty tokens are
// dropped, and an empty or missing string yields an empty set.
func NormalizeSkills(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		out[token] = struct{}{}
	}
	return out
}
