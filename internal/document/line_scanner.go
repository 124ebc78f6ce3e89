package document

import (
	"strings"
)

// LineScanner iterates over the lines of a text without allocating a slice
// of strings up front.
//
// Lines are separated by '\n' only. A carriage return stays part of the
// line, and a trailing newline yields a final empty line, so an empty text
// still produces exactly one (empty) line.
//
// Usage:
//
//	scanner := NewLineScanner(text)
//	for scanner.Scan() {
//	    line := scanner.Text()          // current line, no newline
//	    lineNum := scanner.LineNumber() // 1-based line number
//	}
type LineScanner struct {
	text    string
	start   int  // Start of current line
	end     int  // End of current line (exclusive, before newline)
	pos     int  // Current position in text
	lineNum int  // Current line number (1-based)
	done    bool // Whether scanning is complete
}

// NewLineScanner creates a new line scanner for the given text.
func NewLineScanner(text string) *LineScanner {
	return &LineScanner{text: text}
}

// Scan advances to the next line. Returns false when done.
func (ls *LineScanner) Scan() bool {
	if ls.done {
		return false
	}

	ls.start = ls.pos
	ls.lineNum++

	idx := strings.IndexByte(ls.text[ls.pos:], '\n')
	if idx < 0 {
		// Last line, possibly empty after a trailing newline
		ls.end = len(ls.text)
		ls.pos = len(ls.text)
		ls.done = true
	} else {
		ls.end = ls.pos + idx
		ls.pos = ls.end + 1
	}

	return true
}

// Text returns the current line without its newline.
func (ls *LineScanner) Text() string {
	return ls.text[ls.start:ls.end]
}

// LineNumber returns the current line number (1-based).
func (ls *LineScanner) LineNumber() int {
	return ls.lineNum
}

// Offset returns the byte offset of the current line start.
func (ls *LineScanner) Offset() int {
	return ls.start
}

// EndOffset returns the byte offset of the current line end (exclusive).
func (ls *LineScanner) EndOffset() int {
	return ls.end
}

// Reset resets the scanner to the beginning.
func (ls *LineScanner) Reset() {
	ls.start = 0
	ls.end = 0
	ls.pos = 0
	ls.lineNum = 0
	ls.done = false
}

// CountLines returns the number of lines Scan will produce for text.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}
