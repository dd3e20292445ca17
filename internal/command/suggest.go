package command

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a hint.
const suggestThreshold = 0.8

// Suggest returns the known verb most similar to input, or "" when none
// is close enough.
func Suggest(input string) string {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best, bestScore := "", 0.0
	for _, v := range verbs {
		score := float64(edlib.JaroWinklerSimilarity(input, v.name))
		if score > bestScore {
			best, bestScore = v.name, score
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}
