package util

import (
	"sort"
	"strings"
)

// Source is one file's text split into lines, with offsets for mapping
// match positions back to 1-based line and column numbers. A Source is
// read-only after construction and safe to share between goroutines.
type Source struct {
	Path  string
	Text  string
	Lines []string

	// Masked is Text with string literal contents and comments blanked
	// out. Offsets and line breaks are identical to Text.
	Masked      string
	MaskedLines []string

	lineStarts []int
}

// NewSource splits text into lines. Empty text has no lines, and a trailing
// newline does not start an extra line.
func NewSource(path, text string) *Source {
	s := &Source{Path: path, Text: text}
	if text == "" {
		return s
	}

	s.Masked = MaskLiterals(path, text)
	s.Lines = splitLines(text)
	s.MaskedLines = splitLines(s.Masked)

	s.lineStarts = make([]int, len(s.Lines))
	offset := 0
	for i := range s.Lines {
		s.lineStarts[i] = offset
		offset += len(s.Lines[i]) + 1
		s.Lines[i] = strings.TrimSuffix(s.Lines[i], "\r")
		s.MaskedLines[i] = strings.TrimSuffix(s.MaskedLines[i], "\r")
	}
	return s
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineCount returns the number of lines
func (s *Source) LineCount() int {
	return len(s.Lines)
}

// Position converts a byte offset in Text to a 1-based line and column
func (s *Source) Position(offset int) (line, column int) {
	if len(s.lineStarts) == 0 {
		return 1, 1
	}
	idx := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - s.lineStarts[idx] + 1
}

// IsBlank reports whether a line holds only whitespace
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsComment reports whether a line is a whole-line comment in the C, shell or
// block-comment style
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"//", "#", "/*", "*", "<!--"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// Indent returns the 1-based column of the first non-space character
func Indent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t")) + 1
}
