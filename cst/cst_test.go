package cst

import (
	"testing"

	"github.com/kaoru-ogata/dpctree/span"
)

type countingVisitor struct {
	BaseVisitor
	integers int
	strings  int
	errors   int
}

func newCountingVisitor() *countingVisitor {
	v := &countingVisitor{}
	v.Self = v
	return v
}

func (v *countingVisitor) VisitInteger(*Integer) { v.integers++ }
func (v *countingVisitor) VisitString(*Text)     { v.strings++ }

func TestWalkBlockDispatchesArgumentKinds(t *testing.T) {
	one := int32(1)
	block := &Block{
		Items: []Item{
			{Comment: ptrSpan(span.New(0, 1))},
			{Command: &Command{
				Args: []Argument{
					{Value: ArgumentValue{Literal: true}},
					{Value: ArgumentValue{Integer: &Integer{Value: &one}}},
					{Value: ArgumentValue{String: &Text{HasValue: true}}},
				},
			}},
		},
	}

	v := newCountingVisitor()
	WalkBlock(v, block)

	if v.integers != 1 {
		t.Errorf("integers visited = %d, want 1", v.integers)
	}
	if v.strings != 1 {
		t.Errorf("strings visited = %d, want 1", v.strings)
	}
}

func ptrSpan(s span.Span) *span.Span { return &s }
