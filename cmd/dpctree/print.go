package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/intern"
)

// printBlock writes a debug rendering of the parsed tree: one line per
// command or comment, one indented line per argument, with nested blocks
// indented a level deeper.
func printBlock(w io.Writer, in *intern.Interner, block *cst.Block, depth int) {
	indent := strings.Repeat("    ", depth)
	for i := range block.Items {
		item := &block.Items[i]
		if item.Comment != nil {
			fmt.Fprintf(w, "%vcomment %v\n", indent, *item.Comment)
			continue
		}
		fmt.Fprintf(w, "%vcommand\n", indent)
		for j := range item.Command.Args {
			arg := &item.Command.Args[j]
			if arg.Value.Block != nil {
				fmt.Fprintf(w, "%v    block\n", indent)
				printBlock(w, in, arg.Value.Block, depth+2)
				continue
			}
			fmt.Fprintf(w, "%v    %v %v\n", indent, describeValue(in, arg.Value), arg.Span)
		}
		if item.Command.Error != nil {
			fmt.Fprintf(w, "%v    error: %v\n", indent, (*item.Command.Error).Emit().Message)
		}
	}
}

func describeValue(in *intern.Interner, v cst.ArgumentValue) string {
	switch {
	case v.Literal:
		return "literal"
	case v.Boolean != nil:
		if v.Boolean.Value == nil {
			return "bool <none>"
		}
		return fmt.Sprintf("bool %v", *v.Boolean.Value)
	case v.Integer != nil:
		if v.Integer.Value == nil {
			return "integer <none>"
		}
		return fmt.Sprintf("integer %v", *v.Integer.Value)
	case v.Float != nil:
		if v.Float.Value == nil {
			return "float <none>"
		}
		return fmt.Sprintf("float %v", *v.Float.Value)
	case v.Double != nil:
		if v.Double.Value == nil {
			return "double <none>"
		}
		return fmt.Sprintf("double %v", *v.Double.Value)
	case v.String != nil:
		if !v.String.HasValue {
			return "string <none>"
		}
		return fmt.Sprintf("string %q", in.MustResolve(v.String.Value))
	case v.Angle != nil:
		prefix := ""
		if v.Angle.Relative {
			prefix = "~"
		}
		if v.Angle.Value.Value == nil {
			return fmt.Sprintf("angle %v<none>", prefix)
		}
		return fmt.Sprintf("angle %v%v", prefix, *v.Angle.Value.Value)
	case v.Coordinates2 != nil:
		return "coordinates " + describeCoords(v.Coordinates2.World, v.Coordinates2.Local)
	case v.Coordinates3 != nil:
		return "coordinates " + describeCoords(v.Coordinates3.World, v.Coordinates3.Local)
	case v.Color != nil:
		if v.Color.Value == nil {
			return "color <none>"
		}
		return fmt.Sprintf("color %v", *v.Color.Value)
	default:
		return "<none>"
	}
}

func describeCoords(world []cst.WorldCoordinate, local []cst.Double) string {
	var parts []string
	for _, axis := range world {
		prefix := ""
		if axis.Relative {
			prefix = "~"
		}
		if axis.Value.Value == nil {
			parts = append(parts, prefix+"<none>")
			continue
		}
		parts = append(parts, fmt.Sprintf("%v%v", prefix, *axis.Value.Value))
	}
	for _, axis := range local {
		if axis.Value == nil {
			parts = append(parts, "^<none>")
			continue
		}
		parts = append(parts, fmt.Sprintf("^%v", *axis.Value))
	}
	return strings.Join(parts, " ")
}
