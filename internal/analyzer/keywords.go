package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Hit is one vocabulary term found in the text.
type Hit struct {
	Term  string
	Count int
}

// FindKeywords counts case-insensitive, word-bounded occurrences of every term in text.
// Terms that do not occur are dropped. Hits are sorted by descending count, ties keep vocabulary order.
func FindKeywords(text string, terms []string) []Hit {
	lower := strings.ToLower(text)

	hits := make([]Hit, 0)
	for _, term := range terms {
		if n := countTerm(lower, strings.ToLower(term)); n > 0 {
			hits = append(hits, Hit{Term: term, Count: n})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Count > hits[j].Count
	})

	return hits
}

func hitTerms(hits []Hit) []string {
	result := make([]string, len(hits))
	for i, h := range hits {
		result[i] = h.Term
	}
	return result
}

// countTerm counts non-overlapping occurrences of term in lower that are not glued to a word character.
// The check looks at the characters around the match, so terms like "c++" or ".net" can match too.
func countTerm(lower, term string) int {
	if term == "" {
		return 0
	}

	count := 0
	for offset := 0; offset < len(lower); {
		i := strings.Index(lower[offset:], term)
		if i < 0 {
			break
		}

		start := offset + i
		end := start + len(term)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			count++
			offset = end
			continue
		}

		_, size := utf8.DecodeRuneInString(lower[start:])
		offset = start + size
	}

	return count
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lowerAll(list []string) []string {
	result := make([]string, len(list))
	for i, s := range list {
		result[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return result
}
