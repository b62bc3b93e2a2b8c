package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/diag"
	"github.com/kaoru-ogata/dpctree/group"
	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/parser"
	"github.com/kaoru-ogata/dpctree/schema"
	"github.com/kaoru-ogata/dpctree/source"
	"github.com/spf13/cobra"
)

const catalogueFileName = "commands.json"

func init() {
	cmd := &cobra.Command{
		Use:     "parse <source file path>",
		Short:   "Parse a command script",
		Example: `  dpctree parse spawn.mcfunction`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(catalogueFileName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the source file %s: %w", args[0], err)
	}
	src := source.New(args[0], string(data))

	in := intern.New()
	block, err := parser.Parse(src.Text(), tree, in)
	if err != nil {
		var ie *group.IndentationError
		if errors.As(err, &ie) {
			return fmt.Errorf("%s", formatDiagnostic(src, ie.Emit()))
		}
		return err
	}

	printBlock(os.Stdout, in, block, 0)

	for _, d := range collectDiagnostics(block) {
		fmt.Fprintln(os.Stderr, formatDiagnostic(src, d))
	}
	return nil
}

// loadTree imports the command catalogue and rewrites the two well-known
// run targets into block arguments, so "execute run" and "return run" take
// an indentation-delimited command block instead of looping back to the
// root grammar.
func loadTree(path string) (*schema.ParsingTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read the command catalogue %s: %w", path, err)
	}
	bt := schema.NewBuildTree()
	if err := schema.Import(data, bt); err != nil {
		return nil, err
	}
	for _, p := range [][]string{{"execute", "run"}, {"return", "run"}} {
		if _, ok := bt.FindNodeID(p...); !ok {
			continue
		}
		if err := schema.RewriteToBlock(bt, p...); err != nil {
			return nil, err
		}
	}
	return bt.IntoParsingTree(), nil
}

// diagnosticVisitor gathers every recoverable diagnostic the parse
// recorded, in CST order.
type diagnosticVisitor struct {
	cst.BaseVisitor
	diags []diag.Diagnostic
}

func (v *diagnosticVisitor) VisitParseError(err cst.ParseError) {
	v.diags = append(v.diags, err.Emit())
}

func collectDiagnostics(block *cst.Block) []diag.Diagnostic {
	v := &diagnosticVisitor{}
	v.Self = v
	cst.WalkBlock(v, block)
	return v.diags
}

func formatDiagnostic(src *source.Source, d diag.Diagnostic) string {
	var b strings.Builder
	row, _ := src.ByteToLine(d.Span.Start)
	lineStart, _ := src.LineToByte(row)
	col := d.Span.Start - lineStart
	fmt.Fprintf(&b, "%v:%v: %v: %v", row+1, col+1, d.Level, d.Message)
	for _, sub := range d.Subs {
		fmt.Fprintf(&b, "\n  %v: %v", sub.Level, sub.Message)
	}
	return b.String()
}
