// Package reader provides a cursor over a character stream with one
// character of lookahead, the primitive that every argument parser and the
// schema-driven parser build on.
package reader

import "unicode/utf8"

// Reader is a cursor over a string. The zero value is not usable; construct
// one with New or WithPos.
//
// Invariant: pos always sits on a UTF-8 rune boundary; cur holds the rune at
// pos, or has ok=false iff pos == len(src).
type Reader struct {
	src string
	pos int
	cur rune
	ok  bool
}

// New returns a Reader positioned at the start of src.
func New(src string) Reader {
	return WithPos(src, 0)
}

// WithPos returns a Reader over src positioned at byte offset pos.
func WithPos(src string, pos int) Reader {
	r := Reader{src: src, pos: pos}
	r.cur, r.ok = decodeAt(src, pos)
	return r
}

// WithRange returns a Reader whose visible text ends at range.End and which
// starts positioned at range.Start.
func WithRange(src string, start, end int) Reader {
	return WithPos(src[:end], start)
}

func decodeAt(src string, pos int) (rune, bool) {
	if pos >= len(src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(src[pos:])
	return r, true
}

// Src returns the full string the reader was constructed over (its visible
// prefix, for readers built with WithRange).
func (r Reader) Src() string {
	return r.src
}

// Pos returns the current byte offset.
func (r Reader) Pos() int {
	return r.pos
}

// SetPos repositions the reader.
func (r *Reader) SetPos(pos int) {
	r.pos = pos
	r.cur, r.ok = decodeAt(r.src, pos)
}

// NextPos returns the byte offset just after the current character, or Pos()
// at EOF.
func (r Reader) NextPos() int {
	if !r.ok {
		return r.pos
	}
	return r.pos + utf8.RuneLen(r.cur)
}

// HasMore reports whether the reader has not reached EOF.
func (r Reader) HasMore() bool {
	return r.ok
}

// Peek returns the current character and true, or (0, false) at EOF.
func (r Reader) Peek() (rune, bool) {
	return r.cur, r.ok
}

// Peek2 returns the character after the current one.
func (r Reader) Peek2() (rune, bool) {
	clone := r
	clone.Advance()
	return clone.Peek()
}

// Advance moves past the current character. It is a no-op at EOF.
func (r *Reader) Advance() {
	if r.ok {
		r.pos += utf8.RuneLen(r.cur)
		r.cur, r.ok = decodeAt(r.src, r.pos)
	}
}

// Remaining returns the text from the current position to the end.
func (r Reader) Remaining() string {
	return r.src[r.pos:]
}

// Skip advances past literal if the reader is currently positioned at it,
// reporting whether it did.
func (r *Reader) Skip(literal string) bool {
	if len(r.Remaining()) >= len(literal) && r.Remaining()[:len(literal)] == literal {
		r.SetPos(r.pos + len(literal))
		return true
	}
	return false
}

// SkipWhitespace advances past a run of ASCII whitespace (space, tab,
// newline, carriage return, vertical tab, form feed).
func (r *Reader) SkipWhitespace() {
	r.ReadWhile(isSpace)
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// ReadRangeUntil advances while pred is false, returning the covered byte
// range.
func (r *Reader) ReadRangeUntil(pred func(rune) bool) (start, end int) {
	start = r.pos
	for {
		c, ok := r.Peek()
		if !ok || pred(c) {
			break
		}
		r.Advance()
	}
	return start, r.pos
}

// ReadUntil advances while pred is false, returning the covered text.
func (r *Reader) ReadUntil(pred func(rune) bool) string {
	start, end := r.ReadRangeUntil(pred)
	return r.src[start:end]
}

// ReadWhile advances while pred is true, returning the covered text.
func (r *Reader) ReadWhile(pred func(rune) bool) string {
	return r.ReadUntil(func(c rune) bool { return !pred(c) })
}

// ReadLiteral reads a single whitespace-delimited token.
func (r *Reader) ReadLiteral() string {
	return r.ReadUntil(isSpace)
}

// ParseWithSpan runs f and returns its result paired with the byte range it
// covered ([start before f, pos after f)).
func ParseWithSpan[T any](r *Reader, f func(*Reader) T) (int, int, T) {
	start := r.pos
	result := f(r)
	return start, r.pos, result
}
