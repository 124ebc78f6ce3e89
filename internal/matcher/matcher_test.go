package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/termscan/internal/document"
	tserrors "github.com/standardbeagle/termscan/internal/errors"
)

func TestWordIndex(t *testing.T) {
	line := "the quick brown fox"

	tests := []struct {
		name     string
		offset   int
		expected int
	}{
		{"start of line", 0, 1},
		{"inside first word", 2, 1},
		{"on first space", 3, 1},
		{"second word", 4, 2},
		{"brown", 10, 3},
		{"fox", 16, 4},
		{"end of line", len(line), 4},
		{"past end is clamped", len(line) + 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordIndex(line, tt.offset))
		})
	}
}

func TestWordIndex_ConsecutiveSpaces(t *testing.T) {
	// "a  b": the empty word between the spaces counts
	assert.Equal(t, 3, WordIndex("a  b", 3))
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineRE2, e)

	e, err = ParseEngine(" ECMAScript ")
	require.NoError(t, err)
	assert.Equal(t, EngineECMAScript, e)

	_, err = ParseEngine("pcre")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "mode(7)", Mode(7).String())
}

func TestSearch_LiteralBrown(t *testing.T) {
	doc := document.Split("the quick brown fox")
	m, err := New("brown", Literal, "")
	require.NoError(t, err)

	matches := Search(doc, m)
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Line: 0, Word: 3, Offset: 10}, matches[0])
	assert.Equal(t, 1, matches[0].LineNumber())
}

func TestSearch_LiteralFirstOccurrenceOnly(t *testing.T) {
	doc := document.Split("na na na\nbatman")
	m, err := New("na", Literal, "")
	require.NoError(t, err)

	matches := Search(doc, m)
	assert.Equal(t, []Match{
		{Line: 0, Word: 1, Offset: 0},
		{Line: 1, Word: 1, Offset: 4},
	}, matches)
}

func TestSearch_RegexReportsEveryOccurrence(t *testing.T) {
	for _, engine := range []Engine{EngineRE2, EngineECMAScript} {
		t.Run(string(engine), func(t *testing.T) {
			doc := document.Split("na na na\nbatman")
			m, err := New("na", Regex, engine)
			require.NoError(t, err)

			matches := Search(doc, m)
			assert.Equal(t, []Match{
				{Line: 0, Word: 1, Offset: 0},
				{Line: 0, Word: 2, Offset: 3},
				{Line: 0, Word: 3, Offset: 6},
				{Line: 1, Word: 1, Offset: 4},
			}, matches)
		})
	}
}

func TestSearch_CatSatDogRan(t *testing.T) {
	doc := document.Split("cat sat\ndog ran")

	literal, err := New("at", Literal, "")
	require.NoError(t, err)
	assert.Equal(t, []Match{{Line: 0, Word: 1, Offset: 1}}, Search(doc, literal))

	regex, err := New("a", Regex, EngineRE2)
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Line: 0, Word: 1, Offset: 1},
		{Line: 0, Word: 2, Offset: 5},
		{Line: 1, Word: 2, Offset: 5},
	}, Search(doc, regex))
}

func TestSearch_NoMatches(t *testing.T) {
	doc := document.Split("alpha beta\ngamma")
	for _, mode := range []Mode{Literal, Regex} {
		m, err := New("zeta", mode, "")
		require.NoError(t, err)
		assert.Empty(t, Search(doc, m), "mode %s", mode)
	}
}

func TestSearch_EmptyLiteralHitsEveryLine(t *testing.T) {
	doc := document.Split("a b\n\nc")
	m, err := New("", Literal, "")
	require.NoError(t, err)

	matches := Search(doc, m)
	require.Len(t, matches, 3)
	for i, match := range matches {
		assert.Equal(t, i, match.Line)
		assert.Equal(t, 1, match.Word)
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	for _, engine := range []Engine{EngineRE2, EngineECMAScript} {
		t.Run(string(engine), func(t *testing.T) {
			m, err := New("(unclosed", Regex, engine)
			assert.Nil(t, m)
			require.Error(t, err)

			var patternErr *tserrors.PatternError
			require.True(t, errors.As(err, &patternErr))
			assert.Equal(t, "(unclosed", patternErr.Pattern)
			assert.Equal(t, string(engine), patternErr.Engine)
		})
	}
}

func TestNew_UnknownEngine(t *testing.T) {
	_, err := New("a", Regex, Engine("pcre"))

	var patternErr *tserrors.PatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Contains(t, err.Error(), "unknown regex engine")
}

func TestNew_NonCanonicalEngine(t *testing.T) {
	tests := []struct {
		name   string
		engine Engine
		want   interface{}
	}{
		{"upper case re2", Engine("RE2"), &RE2Matcher{}},
		{"padded re2", Engine(" re2"), &RE2Matcher{}},
		{"empty selects default", Engine(""), &RE2Matcher{}},
		{"mixed case ecmascript", Engine("ECMAScript"), &ECMAScriptMatcher{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New("a", Regex, tt.engine)
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.IsType(t, tt.want, m)

			matches := Search(document.Split("cat sat"), m)
			assert.Len(t, matches, 2)
		})
	}
}

func TestNew_LiteralIgnoresRegexSyntax(t *testing.T) {
	doc := document.Split("call f(x) now")
	m, err := New("f(", Literal, EngineECMAScript)
	require.NoError(t, err)

	matches := Search(doc, m)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Word)
}

func TestSearch_ModeAsymmetryProperty(t *testing.T) {
	lines := []string{"x x x", "xx", "", "a x"}
	for _, line := range lines {
		doc := document.Split(line)

		lit, err := New("x", Literal, "")
		require.NoError(t, err)
		re, err := New("x", Regex, EngineRE2)
		require.NoError(t, err)

		litHits := Search(doc, lit)
		reHits := Search(doc, re)

		assert.LessOrEqual(t, len(litHits), 1, "line %q", line)
		assert.Len(t, reHits, countByte(line, 'x'), "line %q", line)
		if len(litHits) == 1 {
			assert.Equal(t, reHits[0], litHits[0], "first regex hit equals literal hit on %q", line)
		}
	}
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
