package navigation

import (
	"strings"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
)

// Scoring weights for keyword matching.
const (
	scoreKeyword     = 3
	scoreName        = 2
	scoreDescription = 1

	// minTokenLen filters out stop-word sized tokens ("a", "to", "is").
	minTokenLen = 3
)

// Match scores every registry location against the free-text query and
// returns the best one with its score. Ties go to the earliest registry
// position. A zero top score means no match: (nil, 0).
func Match(reg *campus.Registry, query string) (*campus.Location, int) {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, 0
	}

	locations := reg.All()
	bestIdx := -1
	bestScore := 0

	for i := range locations {
		score := scoreLocation(&locations[i], tokens)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return nil, 0
	}
	return &locations[bestIdx], bestScore
}

// tokenize splits the query on whitespace, lowercases it and drops
// tokens shorter than minTokenLen.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func scoreLocation(loc *campus.Location, tokens []string) int {
	name := strings.ToLower(loc.Name)
	desc := strings.ToLower(loc.Description)

	score := 0
	for _, token := range tokens {
		for _, kw := range loc.Keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(kw, token) || strings.Contains(token, kw) {
				score += scoreKeyword
				break
			}
		}
		if strings.Contains(name, token) {
			score += scoreName
		}
		if strings.Contains(desc, token) {
			score += scoreDescription
		}
	}
	return score
}
