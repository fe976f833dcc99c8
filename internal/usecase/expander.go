package usecase

import (
	"math"
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance. Keeps basic
// Latin/Cyrillic letters, digits and whitespace; everything else is
// stripped before tokenizing.
var queryCharsRegex = regexp.MustCompile(`[^a-z0-9а-яёіїєґ\s]`)

// Stemming parameters: words of stemMinLength runes and longer are
// truncated to max(stemFloor, 60% of their length) to tolerate
// declension endings.
const (
	stemMinLength = 4
	stemRatio     = 0.6
	stemFloor     = 3
)

// ExpandQuery turns a raw user query into a deduplicated set of search
// terms: the original words, synonym-table fragments for exact and
// prefix key hits, and truncated stems. Returns nil for a query that is
// empty after normalization; callers fall back to the raw query alone.
//
// The prefix pass scans every synonym key. The table is a few hundred
// entries, so a full scan stays cheap; bucket the keys by first rune
// before growing it past that.
func ExpandQuery(query string) []string {
	words := normalizeQuery(query)
	if len(words) == 0 {
		return nil
	}

	var terms []string
	seen := make(map[string]bool)
	add := func(term string) {
		if term != "" && !seen[term] {
			terms = append(terms, term)
			seen[term] = true
		}
	}

	for _, word := range words {
		add(word)

		if fragments, ok := foodSynonyms[word]; ok {
			for _, f := range fragments {
				add(f)
			}
		}

		// Partial input: a clipped or declined word may be a prefix of a
		// longer canonical key ("кур" -> "курка").
		for key, fragments := range foodSynonyms {
			if key != word && strings.HasPrefix(key, word) {
				for _, f := range fragments {
					add(f)
				}
			}
		}

		if stem := stemWord(word); stem != "" {
			add(stem)
		}
	}

	return terms
}

// normalizeQuery lowercases the query, strips punctuation and splits it
// into words.
func normalizeQuery(query string) []string {
	cleaned := queryCharsRegex.ReplaceAllString(strings.ToLower(query), " ")
	return strings.Fields(cleaned)
}

// stemWord truncates a word to a declension-tolerant prefix. Words
// shorter than stemMinLength runes are left alone (empty return).
func stemWord(word string) string {
	runes := []rune(word)
	if len(runes) < stemMinLength {
		return ""
	}
	cut := int(math.Floor(float64(len(runes)) * stemRatio))
	if cut < stemFloor {
		cut = stemFloor
	}
	return string(runes[:cut])
}
