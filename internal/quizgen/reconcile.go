package quizgen

import (
	"strings"

	"github.com/agext/levenshtein"
)

// ReconcileAnswer resolves an answer that matches none of the offered options
// to the option it most likely meant. The result is always an element of
// options when options is non-empty; with no options the answer is returned
// unchanged.
//
// Options are compared trimmed and case-folded, so an answer that differs
// from an option only in case or surrounding space selects it. Failing that,
// a bare option letter ("B", "b)", "C.") selects by position. Otherwise the
// option with the highest edit-distance similarity wins, and ties or a
// complete mismatch fall back to the first option.
func ReconcileAnswer(answer string, options []string) string {
	if len(options) == 0 {
		return answer
	}

	target := foldAnswer(answer)
	for _, opt := range options {
		if foldAnswer(opt) == target {
			return opt
		}
	}

	if idx, ok := optionLetterIndex(answer); ok && idx < len(options) {
		return options[idx]
	}

	best := 0
	bestScore := 0.0
	for i, opt := range options {
		score := levenshtein.Similarity(target, foldAnswer(opt), nil)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return options[best]
}

func foldAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// optionLetterIndex recognizes answers such as "A", "b)", "(c)" or "D.".
func optionLetterIndex(answer string) (int, bool) {
	s := strings.TrimSpace(answer)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimRight(s, ").:")
	if len(s) != 1 {
		return 0, false
	}
	c := s[0] | 0x20 // lower-case ASCII letters
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
