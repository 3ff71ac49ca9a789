package match

import "strings"

// suggestionThreshold is the minimum normalized similarity for a candidate
// to be offered as a "did you mean" suggestion.
const suggestionThreshold = 0.6

// NormalizeKey normalizes a configuration key for fuzzy matching:
// case-fold to lower and strip separators (_, -, spaces).
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Score computes the similarity score between two configuration keys
// after normalizing them.
func Score(a, b string) float64 {
	return LevenshteinNormalized(NormalizeKey(a), NormalizeKey(b))
}

// Closest returns the candidate most similar to name, or "" if no candidate
// scores above the suggestion threshold. Ties go to the earlier candidate so
// suggestions are stable across runs.
func Closest(name string, candidates []string) string {
	best := ""
	bestScore := suggestionThreshold

	for _, c := range candidates {
		if s := Score(name, c); s > bestScore {
			best = c
			bestScore = s
		}
	}

	return best
}
