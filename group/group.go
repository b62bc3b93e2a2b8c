// Package group partitions a character stream into commands, comments,
// and nested blocks driven by leading spaces relative to an enclosing
// indent. It is the preprocessor the schema-driven parser runs before
// descending into each command's tokens.
package group

import (
	"strings"

	"github.com/kaoru-ogata/dpctree/diag"
	"github.com/kaoru-ogata/dpctree/span"
)

// Kind classifies a Group as a command to be schema-parsed or a
// standalone comment line.
type Kind int

const (
	Command Kind = iota
	Comment
)

// Group is one command or comment span, in source order.
type Group struct {
	Span span.Span
	Kind Kind
}

// IndentationKind distinguishes the two ways a line's indentation can be
// invalid.
type IndentationKind int

const (
	MixedWhitespace IndentationKind = iota
	InvalidIndentation
)

// IndentationError aborts the enclosing Split call: it is fatal to that
// grouping level rather than recoverable per-argument, since without a
// correctly grouped command there is nothing for the schema parser to
// descend into.
type IndentationError struct {
	Kind IndentationKind
	Span span.Span
}

func (e *IndentationError) Error() string {
	switch e.Kind {
	case MixedWhitespace:
		return "group: line mixes tabs or other whitespace with spaces in its indentation"
	default:
		return "group: line's indentation does not match any enclosing block"
	}
}

// Emit renders this error as a Diagnostic for a CLI or other downstream
// renderer.
func (e *IndentationError) Emit() diag.Diagnostic {
	return diag.Errorf(e.Span, "%s", e.Error())
}

func isOtherWhitespace(c byte) bool {
	switch c {
	case '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Split partitions text[offset:] into commands and comments. commonIndent
// is the leading-space count every line at this level is expected to
// share; a deeper indent extends the current command group, a shallower
// one is an error, and a '#' line at or above commonIndent is an
// independent comment. Blank lines are skipped.
func Split(text string, offset, commonIndent int) ([]Group, error) {
	var groups []Group
	var openStart, openEnd int
	open := false

	flush := func() {
		if open {
			groups = append(groups, Group{Span: span.New(openStart, openEnd), Kind: Command})
			open = false
		}
	}

	pos := offset
	for pos <= len(text) {
		lineStart := pos
		nl := strings.IndexByte(text[pos:], '\n')
		var lineEnd int
		if nl < 0 {
			lineEnd = len(text)
		} else {
			lineEnd = pos + nl
		}
		line := text[lineStart:lineEnd]

		indent := 0
		for indent < len(line) && line[indent] == ' ' {
			indent++
		}
		if indent < len(line) && isOtherWhitespace(line[indent]) {
			return nil, &IndentationError{Kind: MixedWhitespace, Span: span.New(lineStart, lineEnd)}
		}

		if indent < len(line) {
			first := line[indent]
			switch {
			case first == '#' && indent <= commonIndent:
				flush()
				groups = append(groups, Group{Span: span.New(lineStart, lineEnd), Kind: Comment})
			case indent == commonIndent:
				flush()
				open = true
				openStart, openEnd = lineStart, lineEnd
			case indent > commonIndent:
				if !open {
					return nil, &IndentationError{Kind: InvalidIndentation, Span: span.New(lineStart, lineEnd)}
				}
				openEnd = lineEnd
			default:
				return nil, &IndentationError{Kind: InvalidIndentation, Span: span.New(lineStart, lineEnd)}
			}
		}

		if nl < 0 {
			break
		}
		pos = lineEnd + 1
	}
	flush()
	return groups, nil
}
