package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tserrors "github.com/standardbeagle/termscan/internal/errors"
	"github.com/standardbeagle/termscan/internal/matcher"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		hits       int
		totalWords int
		percent    string
		summary    string
	}{
		{"quarter", 1, 4, "25.00", "Search hits: 1 out of 4 words (25.00%)"},
		{"three quarters", 3, 4, "75.00", "Search hits: 3 out of 4 words (75.00%)"},
		{"no hits", 0, 12, "0.00", "Search hits: 0 out of 12 words (0.00%)"},
		{"rounding", 1, 3, "33.33", "Search hits: 1 out of 3 words (33.33%)"},
		{"more hits than words", 5, 2, "250.00", "Search hits: 5 out of 2 words (250.00%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Summarize(tt.hits, tt.totalWords, ZeroWordsAsZero)
			require.NoError(t, err)
			assert.Equal(t, tt.hits, r.Hits)
			assert.Equal(t, tt.totalWords, r.TotalWords)
			assert.Equal(t, tt.percent, r.PercentString())
			assert.Equal(t, tt.summary, r.Summary())
		})
	}
}

func TestSummarize_ZeroWords(t *testing.T) {
	r, err := Summarize(0, 0, ZeroWordsAsZero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Percentage)
	assert.Equal(t, "0.00", r.PercentString())

	_, err = Summarize(0, 0, ZeroWordsAsError)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrNoWords))
}

func TestParseZeroWordsPolicy(t *testing.T) {
	p, err := ParseZeroWordsPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ZeroWordsAsZero, p)

	p, err = ParseZeroWordsPolicy("Error")
	require.NoError(t, err)
	assert.Equal(t, ZeroWordsAsError, p)

	_, err = ParseZeroWordsPolicy("nan")
	assert.Error(t, err)
}

func TestFormatMatch(t *testing.T) {
	assert.Equal(t, "Found on line 2, word 3", FormatMatch(matcher.Match{Line: 1, Word: 3}))
}
