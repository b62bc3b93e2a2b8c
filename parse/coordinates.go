package parse

import (
	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/reader"
	"github.com/kaoru-ogata/dpctree/span"
)

// ScalarMode controls whether an absolute coordinate axis is parsed with
// integer or double lexical rules; relative axes are always doubles.
// block_pos uses ScalarBlockPos, every other coordinate category uses
// ScalarDouble.
type ScalarMode int

const (
	ScalarDouble ScalarMode = iota
	ScalarBlockPos
)

func scalarIsInteger(mode ScalarMode, relative bool) bool {
	return mode == ScalarBlockPos && !relative
}

func parseScalar(r *reader.Reader, asInteger bool) (cst.Double, []cst.ParseError) {
	start := r.Pos()
	word := r.ReadLiteral()
	sp := span.New(start, r.Pos())
	if !isNumericChars(word) {
		kind := NumberDouble
		if asInteger {
			kind = NumberInteger
		}
		return cst.Double{}, []cst.ParseError{ErrParseNumber{Kind: kind, Span: sp}}
	}
	if asInteger {
		n, err := parseIntStrict(word)
		if err != nil {
			return cst.Double{}, []cst.ParseError{ErrParseNumber{Kind: NumberInteger, Span: sp}}
		}
		v := float64(n)
		return cst.Double{Value: &v}, nil
	}
	f, err := parseFloatStrict(word)
	if err != nil {
		return cst.Double{}, []cst.ParseError{ErrParseNumber{Kind: NumberDouble, Span: sp}}
	}
	return cst.Double{Value: &f}, nil
}

func parseOptionalScalarOrZero(r *reader.Reader, asInteger bool) (cst.Double, []cst.ParseError) {
	c, ok := r.Peek()
	if !ok || isWhitespace(c) {
		v := 0.0
		return cst.Double{Value: &v}, nil
	}
	return parseScalar(r, asInteger)
}

func parseWorldAxis(r *reader.Reader, mode ScalarMode) (cst.WorldCoordinate, []cst.ParseError) {
	relative := false
	mixed := false
	mixedSpan := span.Span{}
	if c, ok := r.Peek(); ok {
		switch c {
		case '~':
			relative = true
			r.Advance()
		case '^':
			start := r.Pos()
			r.Advance()
			mixed = true
			mixedSpan = span.New(start, r.Pos())
		}
	}

	var errs []cst.ParseError
	if mixed {
		errs = append(errs, ErrMixedCoordinates{Span: mixedSpan})
	}

	var val cst.Double
	if relative || mixed {
		// A mixed-prefix axis ('^' where '~' or an absolute value was
		// expected) still reads as lenient optional-or-zero: the user
		// wrote a relative-looking prefix, so the scalar that follows
		// should not be forced through strict absolute parsing.
		var e []cst.ParseError
		val, e = parseOptionalScalarOrZero(r, false)
		errs = append(errs, e...)
	} else {
		var e []cst.ParseError
		val, e = parseScalar(r, scalarIsInteger(mode, relative))
		errs = append(errs, e...)
	}
	return cst.WorldCoordinate{Value: val, Relative: relative}, errs
}

func parseLocalAxis(r *reader.Reader) (cst.Double, []cst.ParseError) {
	c, ok := r.Peek()
	if !ok {
		return cst.Double{}, nil
	}
	switch c {
	case '^':
		r.Advance()
		return parseOptionalScalarOrZero(r, false)
	case '~':
		start := r.Pos()
		r.Advance()
		val, errs := parseOptionalScalarOrZero(r, false)
		return val, append([]cst.ParseError{ErrMixedCoordinates{Span: span.New(start, start+1)}}, errs...)
	default:
		start := r.Pos()
		return cst.Double{}, []cst.ParseError{ErrExpectedLocalCoordinate{Span: span.New(start, start)}}
	}
}

func localCoordinates(r *reader.Reader, n int) ([]cst.Double, []cst.ParseError) {
	start := r.Pos()
	vals := make([]cst.Double, 0, n)
	var errs []cst.ParseError
	for i := 0; i < n; i++ {
		if i > 0 {
			r.SkipWhitespace()
		}
		if !r.HasMore() {
			errs = append(errs, ErrIncompleteLocalCoordinates{Span: span.New(start, r.Pos())})
			for len(vals) < n {
				vals = append(vals, cst.Double{})
			}
			break
		}
		val, e := parseLocalAxis(r)
		vals = append(vals, val)
		errs = append(errs, e...)
	}
	return vals, errs
}

func worldCoordinates(r *reader.Reader, n int, mode ScalarMode) ([]cst.WorldCoordinate, []cst.ParseError) {
	start := r.Pos()
	vals := make([]cst.WorldCoordinate, 0, n)
	var errs []cst.ParseError
	for i := 0; i < n; i++ {
		if i > 0 {
			r.SkipWhitespace()
		}
		if !r.HasMore() {
			errs = append(errs, ErrIncompleteLocalCoordinates{Span: span.New(start, r.Pos())})
			for len(vals) < n {
				vals = append(vals, cst.WorldCoordinate{})
			}
			break
		}
		wc, e := parseWorldAxis(r, mode)
		vals = append(vals, wc)
		errs = append(errs, e...)
	}
	return vals, errs
}

// isLocal reports whether the reader is positioned at a local ('^')
// coordinate tuple.
func isLocal(r *reader.Reader) bool {
	c, ok := r.Peek()
	return ok && c == '^'
}

// Coordinates2 parses a minecraft:vec2/column_pos argument: two world
// coordinates, or two local coordinates, dispatched on the leading
// character.
func Coordinates2(r *reader.Reader, mode ScalarMode) (*cst.Coordinates2, []cst.ParseError) {
	if isLocal(r) {
		local, errs := localCoordinates(r, 2)
		return &cst.Coordinates2{Local: local}, errs
	}
	world, errs := worldCoordinates(r, 2, mode)
	return &cst.Coordinates2{World: world}, errs
}

// Coordinates3 parses a minecraft:block_pos/vec3 argument: three world
// coordinates, or three local coordinates, dispatched on the leading
// character.
func Coordinates3(r *reader.Reader, mode ScalarMode) (*cst.Coordinates3, []cst.ParseError) {
	if isLocal(r) {
		local, errs := localCoordinates(r, 3)
		return &cst.Coordinates3{Local: local}, errs
	}
	world, errs := worldCoordinates(r, 3, mode)
	return &cst.Coordinates3{World: world}, errs
}
