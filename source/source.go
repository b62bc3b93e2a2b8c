// Package source owns the text of a command script and maps byte offsets
// to line numbers through an ordered newline index, so diagnostics can be
// positioned without rescanning the text.
package source

import "sort"

// Source owns a UTF-8 text buffer and an ordered index of newline byte
// offsets, so byte offsets can be mapped to line numbers without rescanning
// the text.
//
// Invariant: newlineOffsets is strictly ascending and every offset lies
// within [0, len(text)).
type Source struct {
	path           string
	text           string
	newlineOffsets []int
}

// New builds a Source over text. path is informational (used only for
// diagnostic rendering) and may be empty.
func New(path, text string) *Source {
	return &Source{
		path:           path,
		text:           text,
		newlineOffsets: findNewlines(text, 0),
	}
}

func findNewlines(text string, base int) []int {
	var offsets []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, base+i)
		}
	}
	return offsets
}

// Path returns the source's informational file path, or "" if none was set.
func (s *Source) Path() string {
	return s.path
}

// Text returns the full source text.
func (s *Source) Text() string {
	return s.text
}

// ByteToLine returns the zero-based line number containing byte offset idx.
// idx may equal len(Text()) to address the position just past the end.
func (s *Source) ByteToLine(idx int) (int, bool) {
	if idx < 0 || idx > len(s.text) {
		return 0, false
	}
	// The line containing idx is the count of newlines strictly before idx.
	return sort.SearchInts(s.newlineOffsets, idx), true
}

// LineToByte returns the byte offset where line (zero-based) begins.
func (s *Source) LineToByte(line int) (int, bool) {
	if line == 0 {
		return 0, true
	}
	if line-1 >= len(s.newlineOffsets) {
		return 0, false
	}
	return s.newlineOffsets[line-1] + 1, true
}

// ReplaceRange replaces the bytes in [start, end) with newText and updates
// the newline index accordingly. Only the suffix of the index from the
// touched line onward is recomputed; earlier lines are untouched.
//
// This supports editing a Source in place; the system does not reparse
// incrementally (see Non-goals), so this operation exists for completeness
// and is exercised by tests only.
func (s *Source) ReplaceRange(start, end int, newText string) {
	line, _ := s.ByteToLine(start)
	s.text = s.text[:start] + newText + s.text[end:]
	s.newlineOffsets = s.newlineOffsets[:line]
	s.newlineOffsets = append(s.newlineOffsets, findNewlines(s.text[start:], start)...)
}
