package report

import (
	"fmt"
	"strings"

	tserrors "github.com/standardbeagle/termscan/internal/errors"
	"github.com/standardbeagle/termscan/internal/matcher"
)

// ZeroWordsPolicy decides what a percentage over zero words means.
type ZeroWordsPolicy string

const (
	// ZeroWordsAsZero reports 0% when there are no words.
	ZeroWordsAsZero ZeroWordsPolicy = "zero"
	// ZeroWordsAsError fails with errors.ErrNoWords.
	ZeroWordsAsError ZeroWordsPolicy = "error"
)

// ParseZeroWordsPolicy validates a policy name. Empty selects ZeroWordsAsZero.
func ParseZeroWordsPolicy(name string) (ZeroWordsPolicy, error) {
	switch ZeroWordsPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", ZeroWordsAsZero:
		return ZeroWordsAsZero, nil
	case ZeroWordsAsError:
		return ZeroWordsAsError, nil
	default:
		return "", fmt.Errorf("unknown zero_words policy %q (want %q or %q)", name, ZeroWordsAsZero, ZeroWordsAsError)
	}
}

// Report is the hit accounting for one search.
type Report struct {
	Hits       int
	TotalWords int
	Percentage float64
}

// Summarize computes hits / totalWords * 100.
func Summarize(hits, totalWords int, policy ZeroWordsPolicy) (Report, error) {
	r := Report{Hits: hits, TotalWords: totalWords}
	if totalWords == 0 {
		if policy == ZeroWordsAsError {
			return r, fmt.Errorf("cannot compute hit percentage for %d hits: %w", hits, tserrors.ErrNoWords)
		}
		return r, nil
	}
	r.Percentage = float64(hits) / float64(totalWords) * 100
	return r, nil
}

// PercentString formats the percentage with two decimals, without the % sign.
func (r Report) PercentString() string {
	return fmt.Sprintf("%.2f", r.Percentage)
}

// Summary is the closing console line of a run.
func (r Report) Summary() string {
	return fmt.Sprintf("Search hits: %d out of %d words (%s%%)", r.Hits, r.TotalWords, r.PercentString())
}

// FormatMatch renders one hit for the console.
func FormatMatch(m matcher.Match) string {
	return fmt.Sprintf("Found on line %d, word %d", m.LineNumber(), m.Word)
}
