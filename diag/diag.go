// Package diag holds the structured diagnostic model produced by parsing:
// a level, a span into the source, a message, and optional labels and
// sub-diagnostics. Rendering a Diagnostic to a terminal or editor is a
// downstream concern; this package only builds and carries the data.
package diag

import (
	"fmt"

	"github.com/kaoru-ogata/dpctree/span"
)

// Level classifies the severity of a Diagnostic or SubDiagnostic.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Help
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warn:
		return "warning"
	case Info:
		return "info"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Label attaches a short message to a sub-span of a Diagnostic, for
// pointing at a specific token within a wider error.
type Label struct {
	Span    span.Span
	Message string
}

// NewLabel returns a Label over span with message.
func NewLabel(sp span.Span, message string) Label {
	return Label{Span: sp, Message: message}
}

// SubDiagnostic is a secondary note, often a Help-level suggestion,
// attached to a Diagnostic.
type SubDiagnostic struct {
	Level   Level
	Message string
}

// Diagnostic is a single structured parse or compile error, warning, or
// note. Construct with New, Errorf, or Warnf, then chain WithLabel /
// WithSub / WithHelp as needed.
type Diagnostic struct {
	Level   Level
	Span    span.Span
	Message string
	Labels  []Label
	Subs    []SubDiagnostic
}

// New returns a bare Diagnostic at level over span with message.
func New(level Level, sp span.Span, message string) Diagnostic {
	return Diagnostic{Level: level, Span: sp, Message: message}
}

// Errorf returns an Error-level Diagnostic over span.
func Errorf(sp span.Span, format string, args ...any) Diagnostic {
	return New(Error, sp, fmt.Sprintf(format, args...))
}

// Warnf returns a Warn-level Diagnostic over span.
func Warnf(sp span.Span, format string, args ...any) Diagnostic {
	return New(Warn, sp, fmt.Sprintf(format, args...))
}

// WithLabel appends a Label and returns the Diagnostic for chaining.
func (d Diagnostic) WithLabel(label Label) Diagnostic {
	d.Labels = append(d.Labels, label)
	return d
}

// WithSub appends a SubDiagnostic and returns the Diagnostic for chaining.
func (d Diagnostic) WithSub(level Level, message string) Diagnostic {
	d.Subs = append(d.Subs, SubDiagnostic{Level: level, Message: message})
	return d
}

// WithHelp appends a Help-level sub-diagnostic.
func (d Diagnostic) WithHelp(message string) Diagnostic {
	return d.WithSub(Help, message)
}

// Error implements the error interface so a Diagnostic can flow through
// ordinary Go error handling; callers that need the structured form use
// the fields directly.
func (d Diagnostic) Error() string {
	return d.Level.String() + ": " + d.Message
}
