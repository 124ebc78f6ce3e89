package matcher

import (
	"regexp"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// RE2Matcher reports every non-overlapping match of a Go regular expression.
type RE2Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewRE2Matcher compiles pattern with the regexp package.
func NewRE2Matcher(pattern string) (*RE2Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RE2Matcher{pattern: pattern, re: re}, nil
}

// FindLine implements Matcher.
func (rm *RE2Matcher) FindLine(line string) []int {
	locs := rm.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	offsets := make([]int, len(locs))
	for i, loc := range locs {
		offsets[i] = loc[0]
	}
	return offsets
}

// Mode implements Matcher.
func (rm *RE2Matcher) Mode() Mode { return Regex }

// Pattern implements Matcher.
func (rm *RE2Matcher) Pattern() string { return rm.pattern }

// ECMAScriptMatcher reports every non-overlapping match of an ECMAScript
// regular expression, evaluated by regexp2.
type ECMAScriptMatcher struct {
	pattern string
	re      *regexp2.Regexp
}

// NewECMAScriptMatcher compiles pattern with regexp2 in ECMAScript mode.
func NewECMAScriptMatcher(pattern string) (*ECMAScriptMatcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	return &ECMAScriptMatcher{pattern: pattern, re: re}, nil
}

// FindLine implements Matcher. regexp2 reports rune indexes; they are
// converted to byte offsets so word indexes agree with the other matchers.
func (em *ECMAScriptMatcher) FindLine(line string) []int {
	var offsets []int

	// Errors only come from MatchTimeout, which is left unset.
	m, _ := em.re.FindStringMatch(line)
	if m == nil {
		return nil
	}

	conv := newRuneOffsets(line)
	for m != nil {
		offsets = append(offsets, conv.byteOffset(m.Index))
		m, _ = em.re.FindNextMatch(m)
	}
	return offsets
}

// Mode implements Matcher.
func (em *ECMAScriptMatcher) Mode() Mode { return Regex }

// Pattern implements Matcher.
func (em *ECMAScriptMatcher) Pattern() string { return em.pattern }

// runeOffsets converts ascending rune indexes of one line into byte offsets.
type runeOffsets struct {
	line  string
	runes int // rune index reached
	bytes int // byte offset of that rune
}

func newRuneOffsets(line string) *runeOffsets {
	return &runeOffsets{line: line}
}

func (ro *runeOffsets) byteOffset(runeIdx int) int {
	if runeIdx < ro.runes {
		ro.runes, ro.bytes = 0, 0
	}
	for ro.runes < runeIdx && ro.bytes < len(ro.line) {
		_, size := utf8.DecodeRuneInString(ro.line[ro.bytes:])
		ro.bytes += size
		ro.runes++
	}
	return ro.bytes
}
