package matcher

import "strings"

// LiteralMatcher reports the first occurrence of a fixed substring per line.
type LiteralMatcher struct {
	term string
}

// NewLiteralMatcher creates a literal matcher for term.
func NewLiteralMatcher(term string) *LiteralMatcher {
	return &LiteralMatcher{term: term}
}

// FindLine returns the offset of the first occurrence, if any.
func (lm *LiteralMatcher) FindLine(line string) []int {
	idx := strings.Index(line, lm.term)
	if idx < 0 {
		return nil
	}
	return []int{idx}
}

// Mode implements Matcher.
func (lm *LiteralMatcher) Mode() Mode { return Literal }

// Pattern implements Matcher.
func (lm *LiteralMatcher) Pattern() string { return lm.term }
