// Package document splits raw file text into lines and does the word
// accounting the search report is based on.
package document

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Line is one '\n'-separated line of a Document.
type Line struct {
	Text  string
	Words int
}

// Document is the immutable, ordered set of lines read from one file.
// Index i holds source line i+1.
type Document struct {
	lines       []Line
	totalWords  int
	fingerprint uint64
}

// CountWords returns the number of words in a line: one more than the number
// of space characters. Runs of spaces produce empty words and an empty line
// counts as one word.
func CountWords(line string) int {
	return strings.Count(line, " ") + 1
}

// Split builds a Document from text.
func Split(text string) *Document {
	doc := &Document{
		lines:       make([]Line, 0, CountLines(text)),
		fingerprint: xxhash.Sum64String(text),
	}

	scanner := NewLineScanner(text)
	for scanner.Scan() {
		line := scanner.Text()
		words := CountWords(line)
		doc.lines = append(doc.lines, Line{Text: line, Words: words})
		doc.totalWords += words
	}

	return doc
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at 0-based index i.
func (d *Document) Line(i int) Line {
	return d.lines[i]
}

// Lines returns a copy of all lines in order.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// TotalWords is the sum of the per-line word counts.
func (d *Document) TotalWords() int {
	return d.totalWords
}

// Join reassembles the source text.
func (d *Document) Join() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}

// Fingerprint returns the xxhash64 of the source text.
func (d *Document) Fingerprint() uint64 {
	return d.fingerprint
}
