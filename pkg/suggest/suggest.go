// Package suggest finds "did you mean" candidates for mistyped command and option names.
package suggest

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

// FindSimilar returns up to maxResults candidates that resemble target, best match first. Leading
// dashes are ignored when comparing, so "--verbsoe" finds "--verbose" and "-V" finds "-v".
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if strings.TrimLeft(target, "-") == "" || maxResults <= 0 {
		return []string{}
	}

	type scored struct {
		name  string
		score float64
	}
	suggestions := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		score := calculateSimilarity(strings.TrimLeft(target, "-"), strings.TrimLeft(name, "-"))
		if score > threshold {
			suggestions = append(suggestions, scored{name, score})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].score == suggestions[j].score {
			return suggestions[i].name < suggestions[j].name
		}
		return suggestions[i].score > suggestions[j].score
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(suggestions) && i < maxResults; i++ {
		result = append(result, suggestions[i].name)
	}
	return result
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	// Prefix match bonus
	if a != "" && strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshtein.Distance(a, b, nil)
	maxLen := float64(max(len(a), len(b)))
	return 1.0 - float64(distance)/maxLen
}
