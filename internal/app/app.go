// Package app wires one search run together: read the file, split it into
// lines, match, summarize, print and append the summary to the results log.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/standardbeagle/termscan/internal/debug"
	"github.com/standardbeagle/termscan/internal/document"
	tserrors "github.com/standardbeagle/termscan/internal/errors"
	"github.com/standardbeagle/termscan/internal/matcher"
	"github.com/standardbeagle/termscan/internal/report"
	"github.com/standardbeagle/termscan/internal/results"
	"github.com/standardbeagle/termscan/internal/source"
)

// Options describe one run.
type Options struct {
	File         string
	Term         string
	Mode         matcher.Mode
	Engine       matcher.Engine
	ZeroWords    report.ZeroWordsPolicy
	EchoContents bool
}

// Outcome is what a successful run produced. Fingerprint identifies the
// searched content independently of the file name.
type Outcome struct {
	Matches     []matcher.Match
	Report      report.Report
	Fingerprint uint64
}

// Application runs searches against its collaborators.
type Application struct {
	out   io.Writer
	files source.Reader
	sink  results.Sink
}

// New creates an Application printing to out.
func New(out io.Writer, files source.Reader, sink results.Sink) *Application {
	return &Application{out: out, files: files, sink: sink}
}

// Run performs one search. Nothing is appended to the results log unless
// every earlier stage succeeded.
func (a *Application) Run(opts Options) (*Outcome, error) {
	if !a.files.Exists(opts.File) {
		return nil, tserrors.NewFileError("open", opts.File, os.ErrNotExist)
	}

	content, err := a.files.ReadAll(opts.File)
	if err != nil {
		return nil, err
	}

	if opts.EchoContents {
		fmt.Fprintln(a.out, "File Contents:")
		fmt.Fprintln(a.out, content)
	}

	doc := document.Split(content)

	m, err := matcher.New(opts.Term, opts.Mode, opts.Engine)
	if err != nil {
		return nil, err
	}

	matches := matcher.Search(doc, m)

	fmt.Fprintln(a.out, "Search Results:")
	for _, match := range matches {
		fmt.Fprintln(a.out, report.FormatMatch(match))
	}

	rep, err := report.Summarize(len(matches), doc.TotalWords(), opts.ZeroWords)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out, rep.Summary())

	if err := a.sink.Append(results.Record{
		File:       opts.File,
		Term:       opts.Term,
		Percentage: rep.Percentage,
	}); err != nil {
		return nil, err
	}

	debug.LogSearch("run finished: %s %q %d/%d words (doc %016x)\n",
		opts.File, opts.Term, rep.Hits, rep.TotalWords, doc.Fingerprint())
	return &Outcome{Matches: matches, Report: rep, Fingerprint: doc.Fingerprint()}, nil
}

// UserMessage turns a run error into the text shown to the user.
func UserMessage(err error) string {
	var (
		usageErr   *tserrors.UsageError
		fileErr    *tserrors.FileError
		patternErr *tserrors.PatternError
		logErr     *tserrors.LogWriteError
	)

	switch {
	case errors.As(err, &usageErr):
		return fmt.Sprintf("Error: %s\nUsage: %s", usageErr.Reason, usageErr.Usage)
	case errors.As(err, &fileErr):
		return fmt.Sprintf("Error: Unable to open file %s", fileErr.Path)
	case errors.As(err, &patternErr):
		return fmt.Sprintf("Error: %s", patternErr.Error())
	case errors.As(err, &logErr):
		return fmt.Sprintf("Error creating %s.", logErr.Path)
	case errors.Is(err, tserrors.ErrNoWords):
		return "Error: the file has no words to compute a hit percentage from."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
