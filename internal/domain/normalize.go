package domain

import (
	"strings"
)

const (
	// MaxSearchTerms caps how many words of a query take part in matching.
	MaxSearchTerms = 5
	// FuzzyMinTermLength is the shortest term (in runes) matched approximately.
	FuzzyMinTermLength = 5
	// FuzzyMaxEdits is the edit-distance budget of an approximate match.
	FuzzyMaxEdits = 2
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// SearchTerms splits a free-text query into normalized, de-duplicated terms.
// At most MaxSearchTerms terms are returned; an empty query yields nil.
func SearchTerms(query string) []string {
	fields := strings.Fields(NormalizeText(query))
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, min(len(fields), MaxSearchTerms))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
		if len(terms) == MaxSearchTerms {
			break
		}
	}
	return terms
}

// IsFuzzyTerm reports whether term is long enough for approximate matching.
func IsFuzzyTerm(term string) bool {
	return len([]rune(term)) >= FuzzyMinTermLength
}
