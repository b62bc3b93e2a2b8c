package parser

import (
	"github.com/kaoru-ogata/dpctree/diag"
	"github.com/kaoru-ogata/dpctree/schema"
	"github.com/kaoru-ogata/dpctree/span"
)

// ErrInvalidLiteral is a command-level error: the pre-read word did not
// match any literal sibling in Valid, and Valid holds no argument sibling
// to fall back on. It ends the command's argument chain rather
// than being recorded against any single argument.
type ErrInvalidLiteral struct {
	Span  span.Span
	Valid schema.Range
}

func (e ErrInvalidLiteral) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "unrecognised command word")
}

// ErrTooManyArguments is a command-level error: input remained after the
// schema's children range for this position was exhausted.
type ErrTooManyArguments struct {
	Span span.Span
}

func (e ErrTooManyArguments) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "unexpected trailing input")
}
