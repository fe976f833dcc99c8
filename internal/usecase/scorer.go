package usecase

import (
	"math"
	"strings"
)

// Scoring contributions, applied in this order
const (
	scoreExactName      = 200 // normalized name equals query (short-circuit)
	scoreNamePrefix     = 100 // name starts with query
	scoreNameSubstring  = 80  // name contains query
	scoreBrandSubstring = 40  // brand contains query

	scoreWordEqual     = 30 // candidate word equals an expanded term
	scoreWordPrefix    = 25 // candidate word starts with an expanded term
	scoreWordSubstring = 10 // candidate word contains an expanded term

	minSubstringTermLen = 3 // runes; shorter terms skip the substring rule
)

// Trigram fallback: only consulted when no lexical rule fired
const (
	trigramMinSimilarity = 0.35
	trigramScoreWeight   = 40.0
)

// ScoreFood computes the relevance of a candidate (name, brand) for a
// query. Zero means no match; higher is more relevant. An exact name
// match dominates every other candidate for the same query.
func ScoreFood(name, brand, query string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	b := strings.ToLower(strings.TrimSpace(brand))
	q := strings.ToLower(strings.TrimSpace(query))

	if n == q {
		return scoreExactName
	}

	score := 0
	if strings.HasPrefix(n, q) {
		score += scoreNamePrefix
	}
	if strings.Contains(n, q) {
		score += scoreNameSubstring
	}
	if b != "" && strings.Contains(b, q) {
		score += scoreBrandSubstring
	}

	terms := ExpandQuery(q)
	nameWords := strings.Fields(n)
	allWords := strings.Fields(n + " " + b)

	for _, term := range terms {
		for _, word := range allWords {
			switch {
			case word == term:
				score += scoreWordEqual
			case strings.HasPrefix(word, term):
				score += scoreWordPrefix
			case len([]rune(term)) >= minSubstringTermLen && strings.Contains(word, term):
				score += scoreWordSubstring
			}
		}
	}

	// Fuzzy fallback for typos and transliteration noise. Gated on a
	// zero score so it never inflates an already-matched candidate.
	if score == 0 {
		for _, qw := range strings.Fields(q) {
			for _, nw := range nameWords {
				if sim := trigramSimilarity(qw, nw); sim >= trigramMinSimilarity {
					score += int(math.Round(sim * trigramScoreWeight))
				}
			}
		}
	}

	return score
}

// trigramSimilarity returns the Jaccard similarity of the trigram sets
// of a and b, in [0,1]. Each string is padded with one leading and one
// trailing space before the 3-rune windows are taken. An empty union
// yields 0.
func trigramSimilarity(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 0
	}

	intersection := 0
	for t := range ta {
		if tb[t] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// trigrams extracts the set of contiguous 3-rune windows of the padded,
// lowercased input.
func trigrams(s string) map[string]bool {
	runes := []rune(" " + strings.ToLower(s) + " ")
	set := make(map[string]bool)
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = true
	}
	return set
}
