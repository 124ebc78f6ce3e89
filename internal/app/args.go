package app

import (
	tserrors "github.com/standardbeagle/termscan/internal/errors"
)

// Usage is the one-line synopsis shown on argument errors.
const Usage = "termscan <filename> <search term> [-regex]"

// RegexFlag switches the search to regex mode wherever it appears.
const RegexFlag = "-regex"

// Args is the positional part of a command line.
type Args struct {
	File  string
	Term  string
	Regex bool
}

// ParseArgs reads <filename> <search-term> from args. RegexFlag (or its
// double-dash form) may appear at any position and is not counted as a
// positional argument. Positionals past the second are ignored.
func ParseArgs(args []string) (Args, error) {
	var (
		parsed      Args
		positionals []string
	)

	for _, arg := range args {
		if arg == RegexFlag || arg == "-"+RegexFlag {
			parsed.Regex = true
			continue
		}
		positionals = append(positionals, arg)
	}

	if len(positionals) < 2 {
		return parsed, tserrors.NewUsageError("Not enough arguments provided.", Usage)
	}

	parsed.File = positionals[0]
	parsed.Term = positionals[1]
	return parsed, nil
}
