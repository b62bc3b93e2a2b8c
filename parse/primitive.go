package parse

import (
	"strconv"
	"strings"

	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/reader"
	"github.com/kaoru-ogata/dpctree/span"
)

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// isNumericChars reports whether every byte of s is a digit, '.', or '-':
// the coarse lexical check run before attempting a numeric conversion.
func isNumericChars(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

func isBareStringChar(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '+' || c == '-':
		return true
	default:
		return false
	}
}

// Bool parses a brigadier:bool argument.
func Bool(r *reader.Reader) (*cst.Boolean, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	switch word {
	case "true":
		v := true
		return &cst.Boolean{Value: &v}, nil
	case "false":
		v := false
		return &cst.Boolean{Value: &v}, nil
	default:
		return &cst.Boolean{}, []cst.ParseError{ErrParseBool{Span: sp}}
	}
}

// Integer parses a brigadier:integer argument, bounded to [min, max].
func Integer(r *reader.Reader, min, max int32) (*cst.Integer, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	if !isNumericChars(word) {
		return &cst.Integer{}, []cst.ParseError{ErrParseNumber{Kind: NumberInteger, Span: sp}}
	}
	n, err := strconv.ParseInt(word, 10, 32)
	if err != nil || int32(n) < min || int32(n) > max {
		return &cst.Integer{}, []cst.ParseError{ErrParseNumber{Kind: NumberInteger, Span: sp}}
	}
	v := int32(n)
	return &cst.Integer{Value: &v}, nil
}

// Float parses a brigadier:float argument, bounded to [min, max].
func Float(r *reader.Reader, min, max float32) (*cst.Float, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	if !isNumericChars(word) {
		return &cst.Float{}, []cst.ParseError{ErrParseNumber{Kind: NumberFloat, Span: sp}}
	}
	f, err := strconv.ParseFloat(word, 32)
	v := float32(f)
	if err != nil || v < min || v > max {
		return &cst.Float{}, []cst.ParseError{ErrParseNumber{Kind: NumberFloat, Span: sp}}
	}
	return &cst.Float{Value: &v}, nil
}

// Double parses a brigadier:double argument, bounded to [min, max].
func Double(r *reader.Reader, min, max float64) (*cst.Double, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	if !isNumericChars(word) {
		return &cst.Double{}, []cst.ParseError{ErrParseNumber{Kind: NumberDouble, Span: sp}}
	}
	f, err := strconv.ParseFloat(word, 64)
	if err != nil || f < min || f > max {
		return &cst.Double{}, []cst.ParseError{ErrParseNumber{Kind: NumberDouble, Span: sp}}
	}
	return &cst.Double{Value: &f}, nil
}

// StringKind mirrors schema.StringKind without importing the schema
// package, so this package stays a leaf the schema-driven parser depends
// on rather than the other way around.
type StringKind int

const (
	StringSingleWord StringKind = iota
	StringQuotablePhrase
	StringGreedyPhrase
)

// String parses a brigadier:string argument of the given kind, interning
// its value through in.
func String(r *reader.Reader, in *intern.Interner, kind StringKind) (*cst.Text, []cst.ParseError) {
	start := r.Pos()

	if kind == StringGreedyPhrase {
		rest := r.Remaining()
		r.SetPos(start + len(rest))
		trimmed := strings.TrimRightFunc(rest, isWhitespace)
		return &cst.Text{Value: in.Intern(trimmed), HasValue: true, Kind: cst.StringBare}, nil
	}

	if c, ok := r.Peek(); ok && (c == '"' || c == '\'') {
		quote := c
		r.Advance()
		var buf strings.Builder
		closed := false
		for {
			c, ok := r.Peek()
			if !ok {
				break
			}
			if c == '\\' {
				r.Advance()
				esc, ok := r.Peek()
				if !ok {
					break
				}
				buf.WriteRune(esc)
				r.Advance()
				continue
			}
			if c == quote {
				r.Advance()
				closed = true
				break
			}
			buf.WriteRune(c)
			r.Advance()
		}
		sp := span.New(start, r.Pos())
		if !closed {
			return &cst.Text{}, []cst.ParseError{ErrUnterminatedString{Span: sp}}
		}
		sym := in.Intern(buf.String())
		if kind == StringSingleWord {
			return &cst.Text{Value: sym, HasValue: true, Kind: cst.StringQuoted}, []cst.ParseError{ErrQuotedSingleWord{Span: sp}}
		}
		return &cst.Text{Value: sym, HasValue: true, Kind: cst.StringQuoted}, nil
	}

	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	for _, c := range word {
		if !isBareStringChar(c) {
			return &cst.Text{Kind: cst.StringBare}, []cst.ParseError{ErrInvalidStringChars{Span: sp}}
		}
	}
	return &cst.Text{Value: in.Intern(word), HasValue: true, Kind: cst.StringBare}, nil
}

// Angle parses a minecraft:angle argument: an optional leading '~' marks
// it relative, and an empty tail defaults to 0.0.
func Angle(r *reader.Reader) (*cst.Angle, []cst.ParseError) {
	relative := false
	if c, ok := r.Peek(); ok && c == '~' {
		relative = true
		r.Advance()
	}
	start := r.Pos()
	word := r.ReadLiteral()
	if word == "" {
		v := float32(0)
		return &cst.Angle{Value: cst.Float{Value: &v}, Relative: relative}, nil
	}
	sp := span.New(start, r.Pos())
	if !isNumericChars(word) {
		return &cst.Angle{Relative: relative}, []cst.ParseError{ErrParseNumber{Kind: NumberFloat, Span: sp}}
	}
	f, err := strconv.ParseFloat(word, 32)
	if err != nil {
		return &cst.Angle{Relative: relative}, []cst.ParseError{ErrParseNumber{Kind: NumberFloat, Span: sp}}
	}
	v := float32(f)
	return &cst.Angle{Value: cst.Float{Value: &v}, Relative: relative}, nil
}

// Color parses a minecraft:color argument against the sixteen named chat
// colors, case-insensitively.
func Color(r *reader.Reader) (*cst.Color, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	c, ok := cst.ChatColorFromString(word)
	if !ok {
		return &cst.Color{}, []cst.ParseError{ErrInvalidColor{Span: sp}}
	}
	return &cst.Color{Value: &c}, nil
}

// NotImplemented consumes one whitespace-delimited token for an argument
// category this implementation does not parse semantically, recording a
// diagnostic that names the schema parser id.
func NotImplemented(r *reader.Reader, parserID string) (*cst.Text, []cst.ParseError) {
	start := r.Pos()
	r.ReadLiteral()
	sp := span.New(start, r.Pos())
	return &cst.Text{}, []cst.ParseError{ErrNotImplemented{Span: sp, ParserID: parserID}}
}
