package document

import (
	"testing"
)

func TestLineScanner_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "single line no newline",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "single line with newline",
			input:    "hello\n",
			expected: []string{"hello", ""},
		},
		{
			name:     "multiple lines",
			input:    "line1\nline2\nline3",
			expected: []string{"line1", "line2", "line3"},
		},
		{
			name:     "CRLF endings kept",
			input:    "line1\r\nline2\r\n",
			expected: []string{"line1\r", "line2\r", ""},
		},
		{
			name:     "empty lines",
			input:    "line1\n\nline3",
			expected: []string{"line1", "", "line3"},
		},
		{
			name:     "only newlines",
			input:    "\n\n",
			expected: []string{"", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewLineScanner(tt.input)
			var lines []string
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}

			if len(lines) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.expected), len(lines), lines)
			}

			for i, line := range lines {
				if line != tt.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i+1, tt.expected[i], line)
				}
			}

			if got := CountLines(tt.input); got != len(tt.expected) {
				t.Errorf("CountLines: expected %d, got %d", len(tt.expected), got)
			}
		})
	}
}

func TestLineScanner_LineNumbersAndOffsets(t *testing.T) {
	scanner := NewLineScanner("ab\ncde\n\nf")

	expected := []struct {
		lineNum int
		offset  int
		end     int
	}{
		{1, 0, 2},
		{2, 3, 6},
		{3, 7, 7},
		{4, 8, 9},
	}

	for i, exp := range expected {
		if !scanner.Scan() {
			t.Fatalf("scan %d: expected a line", i)
		}
		if scanner.LineNumber() != exp.lineNum {
			t.Errorf("scan %d: expected line number %d, got %d", i, exp.lineNum, scanner.LineNumber())
		}
		if scanner.Offset() != exp.offset || scanner.EndOffset() != exp.end {
			t.Errorf("scan %d: expected [%d,%d), got [%d,%d)", i, exp.offset, exp.end, scanner.Offset(), scanner.EndOffset())
		}
	}

	if scanner.Scan() {
		t.Errorf("expected scanner to be exhausted")
	}
}

func TestLineScanner_Reset(t *testing.T) {
	scanner := NewLineScanner("a\nb")
	for scanner.Scan() {
	}

	scanner.Reset()
	if !scanner.Scan() {
		t.Fatal("expected a line after reset")
	}
	if scanner.Text() != "a" || scanner.LineNumber() != 1 {
		t.Errorf("expected first line after reset, got %q (line %d)", scanner.Text(), scanner.LineNumber())
	}
}
