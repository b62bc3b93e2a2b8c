// Package parse implements the primitive, per-argument parsers: bool,
// integer/float/double, the three string forms, angle, world/local
// coordinates, and chat color. Every parser consumes from a reader.Reader
// (most read one whitespace-delimited token; a greedy string takes the
// rest of the input, a quoted string runs to its closing quote, and a
// coordinate tuple reads one token per axis), produces a typed cst value,
// and on failure records a typed error while still returning a value whose
// payload is absent, so parsing never stops at the first bad argument.
package parse

import (
	"fmt"

	"github.com/kaoru-ogata/dpctree/diag"
	"github.com/kaoru-ogata/dpctree/span"
)

// NumberKind distinguishes which numeric primitive a ParseNumber error
// came from, so its message can name the expected type.
type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberFloat
	NumberDouble
)

func (k NumberKind) String() string {
	switch k {
	case NumberInteger:
		return "integer"
	case NumberFloat:
		return "float"
	case NumberDouble:
		return "double"
	default:
		return "number"
	}
}

// ErrParseBool is recorded when a brigadier:bool argument is not exactly
// "true" or "false".
type ErrParseBool struct{ Span span.Span }

func (e ErrParseBool) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "invalid bool, expected true or false")
}

// ErrParseNumber is recorded when an integer/float/double argument is not
// a valid number in range, covering both "contains a disallowed
// character" and "parses but falls outside [min, max]".
type ErrParseNumber struct {
	Kind NumberKind
	Span span.Span
}

func (e ErrParseNumber) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "invalid %s", e.Kind)
}

// ErrUnterminatedString is recorded when a quoted string argument reaches
// EOF before its closing quote.
type ErrUnterminatedString struct{ Span span.Span }

func (e ErrUnterminatedString) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "unterminated string")
}

// ErrInvalidStringChars is recorded when a bare (unquoted) string contains
// a character outside [A-Za-z0-9_.+-].
type ErrInvalidStringChars struct{ Span span.Span }

func (e ErrInvalidStringChars) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "invalid characters in unquoted string")
}

// ErrQuotedSingleWord is recorded when a StringSingleWord argument is
// given a quoted value; the quoted text is still accepted as the value.
type ErrQuotedSingleWord struct{ Span span.Span }

func (e ErrQuotedSingleWord) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "a single word argument does not need to be quoted")
}

// ErrIncompleteLocalCoordinates is recorded when a coordinate tuple runs
// out of input before all of its axes are read, whether the tuple was
// caret-relative (local) or tilde-relative (world).
type ErrIncompleteLocalCoordinates struct{ Span span.Span }

func (e ErrIncompleteLocalCoordinates) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "incomplete set of coordinates")
}

// ErrExpectedLocalCoordinate is recorded when a local coordinate axis does
// not begin with '^'.
type ErrExpectedLocalCoordinate struct{ Span span.Span }

func (e ErrExpectedLocalCoordinate) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "expected a local coordinate starting with ^")
}

// ErrMixedCoordinates is recorded when a '~' appears in a local coordinate
// tuple, or a '^' appears in a world coordinate tuple.
type ErrMixedCoordinates struct{ Span span.Span }

func (e ErrMixedCoordinates) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "cannot mix world and local coordinates")
}

// ErrInvalidColor is recorded when a minecraft:color argument does not
// match any of the sixteen named chat colors.
type ErrInvalidColor struct{ Span span.Span }

func (e ErrInvalidColor) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "unknown chat color")
}

// ErrNotImplemented is recorded for every argument category the grammar
// recognises without a semantic parser behind it; ParserID names the
// schema parser id so the message is actionable even though the value
// cannot be produced.
type ErrNotImplemented struct {
	Span     span.Span
	ParserID string
}

func (e ErrNotImplemented) Emit() diag.Diagnostic {
	return diag.New(diag.Warn, e.Span, fmt.Sprintf("%s is not yet implemented; consumed as an opaque token", e.ParserID))
}
