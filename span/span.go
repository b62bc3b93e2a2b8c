// Package span defines the byte-range type shared by the source, reader,
// diagnostic, and CST packages.
package span

import "fmt"

// Span is a closed-open byte range [Start, End) into a Source's text.
type Span struct {
	Start int
	End   int
}

// New returns the Span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Slice returns the substring of text covered by s.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
