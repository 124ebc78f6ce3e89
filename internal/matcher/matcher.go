// Package matcher finds search-term occurrences in the lines of a document
// and reports the 1-based word index of each hit.
//
// Two modes exist and they deliberately differ: Literal reports at most the
// first occurrence on each line, Regex reports every leftmost
// non-overlapping match.
package matcher

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/termscan/internal/debug"
	"github.com/standardbeagle/termscan/internal/document"
	tserrors "github.com/standardbeagle/termscan/internal/errors"
)

// Mode selects how the search term is interpreted.
type Mode int

const (
	// Literal treats the term as an exact substring.
	Literal Mode = iota
	// Regex treats the term as a regular expression.
	Regex
)

func (m Mode) String() string {
	switch m {
	case Literal:
		return "literal"
	case Regex:
		return "regex"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Engine names the regular expression implementation used in Regex mode.
type Engine string

const (
	// EngineRE2 is Go's regexp package (RE2 syntax, linear time).
	EngineRE2 Engine = "re2"
	// EngineECMAScript is regexp2 in ECMAScript mode (backreferences, lookaround).
	EngineECMAScript Engine = "ecmascript"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EngineRE2

// ParseEngine validates an engine name. An empty name selects DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultEngine, nil
	case EngineRE2:
		return EngineRE2, nil
	case EngineECMAScript:
		return EngineECMAScript, nil
	default:
		return "", fmt.Errorf("unknown regex engine %q (want %q or %q)", name, EngineRE2, EngineECMAScript)
	}
}

// Match is one hit: the 0-based line index, the 1-based word index and the
// byte offset of the hit within its line.
type Match struct {
	Line   int
	Word   int
	Offset int
}

// LineNumber returns the 1-based line number of the match.
func (m Match) LineNumber() int {
	return m.Line + 1
}

// Matcher finds hits on a single line.
type Matcher interface {
	// FindLine returns the byte offsets where hits start, in scan order.
	FindLine(line string) []int
	Mode() Mode
	Pattern() string
}

// New builds the Matcher for pattern. The engine is ignored in Literal mode.
// An uncompilable pattern yields a *errors.PatternError.
func New(pattern string, mode Mode, engine Engine) (Matcher, error) {
	switch mode {
	case Literal:
		return NewLiteralMatcher(pattern), nil
	case Regex:
		canonical, err := ParseEngine(string(engine))
		if err != nil {
			return nil, tserrors.NewPatternError(pattern, string(engine), err)
		}
		var m Matcher
		switch canonical {
		case EngineECMAScript:
			m, err = NewECMAScriptMatcher(pattern)
		default:
			m, err = NewRE2Matcher(pattern)
		}
		if err != nil {
			return nil, tserrors.NewPatternError(pattern, string(canonical), err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported search mode %v", mode)
	}
}

// Search runs m over every line of doc and returns the hits ordered by line,
// then by scan order within the line.
func Search(doc *document.Document, m Matcher) []Match {
	debug.LogSearch("%s search for %q over %d lines (doc %016x)\n", m.Mode(), m.Pattern(), doc.Len(), doc.Fingerprint())

	var matches []Match
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i).Text
		for _, offset := range m.FindLine(line) {
			matches = append(matches, Match{
				Line:   i,
				Word:   WordIndex(line, offset),
				Offset: offset,
			})
		}
	}

	debug.LogSearch("%d hits\n", len(matches))
	return matches
}

// WordIndex returns 1 plus the number of spaces in line strictly before the
// byte offset.
func WordIndex(line string, offset int) int {
	if offset > len(line) {
		offset = len(line)
	}
	return strings.Count(line[:offset], " ") + 1
}
