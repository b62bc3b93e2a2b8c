// Package parser implements the schema-driven recursive descent: walking a
// ParsingTree alongside a Reader, matching literals deterministically,
// ranking argument candidates by how cleanly their own argument parses,
// and absorbing Block arguments as the terminal node of a command.
package parser

import (
	"strings"

	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/group"
	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/reader"
	"github.com/kaoru-ogata/dpctree/schema"
	"github.com/kaoru-ogata/dpctree/span"
)

type parseCtx struct {
	tree *schema.ParsingTree
	in   *intern.Interner
}

// Parse compiles text against tree into a Block, interning any string
// argument values through in. The only error this returns is a fatal
// indentation failure at the document's own top level; every other parse
// problem, including an indentation error inside a nested block, is
// recorded as a recoverable diagnostic inside the returned CST.
func Parse(text string, tree *schema.ParsingTree, in *intern.Interner) (*cst.Block, error) {
	p := &parseCtx{tree: tree, in: in}
	return p.parseCommands(text, 0, 0)
}

// parseCommands groups text[offset:] at commonIndent and parses each
// resulting group into a CST Item. A grouping failure is fatal to this
// call: at the top level it propagates out of Parse, and when this call is
// servicing a nested Block argument it becomes the enclosing command's
// terminal error.
func (p *parseCtx) parseCommands(text string, offset, commonIndent int) (*cst.Block, error) {
	groups, err := group.Split(text, offset, commonIndent)
	if err != nil {
		return nil, err
	}

	items := make([]cst.Item, 0, len(groups))
	for _, g := range groups {
		if g.Kind == group.Comment {
			sp := g.Span
			items = append(items, cst.Item{Comment: &sp})
			continue
		}
		cr := reader.WithRange(text, g.Span.Start, g.Span.End)
		cmd := p.parseCommand(&cr)
		if cmd == nil {
			continue
		}
		items = append(items, cst.Item{Command: cmd})
	}
	return &cst.Block{Items: items}, nil
}

// parseCommand parses the single command whose whole body is r's visible
// range, returning nil when the range holds nothing but whitespace.
func (p *parseCtx) parseCommand(r *reader.Reader) *cst.Command {
	chain := p.parseChildren(r, p.tree.Roots())
	if chain == nil {
		return nil
	}
	return linearize(chain)
}

// parseChildren matches r against the schema nodes in rng, returning the
// head of the matched chain, or nil for a clean end of input with nothing
// left to match. Every failure is expressed as a chain node: recoverable
// argument errors ride on their argument, and terminal failures (an
// unmatched word, trailing input, a broken nested block) become an error
// link that ends the chain.
func (p *parseCtx) parseChildren(r *reader.Reader, rng schema.Range) *parseResult {
	r.SkipWhitespace()
	if !r.HasMore() {
		return nil
	}
	if rng.Len() == 0 {
		start := r.Pos()
		trimmed := strings.TrimRightFunc(r.Remaining(), isTrailingSpace)
		return &parseResult{
			isErr:  true,
			cmdErr: ErrTooManyArguments{Span: span.New(start, start+len(trimmed))},
		}
	}

	first := p.tree.At(rng.Start)
	havePreRead := first.Node.Kind == schema.KindLiteral
	var word string
	var wordSpan span.Span
	if havePreRead {
		wr := *r
		start := r.Pos()
		word = wr.ReadLiteral()
		wordSpan = span.New(start, wr.Pos())
	}

	var candidates []*parseResult
	for i := rng.Start; i < rng.End; i++ {
		node := p.tree.At(i)
		switch node.Node.Kind {
		case schema.KindLiteral:
			if havePreRead && node.Node.Name == word {
				r.SetPos(wordSpan.End)
				return &parseResult{
					span:   wordSpan,
					nodeID: i,
					value:  cst.ArgumentValue{Literal: true},
					next:   p.parseChildren(r, node.Children),
				}
			}
		case schema.KindArgument:
			cr := *r
			startPos := r.Pos()
			val, errs := dispatchArgument(node.Node.Argument, &cr, p.in)
			argSpan := span.New(startPos, cr.Pos())
			candidates = append(candidates, &parseResult{
				span:   argSpan,
				nodeID: i,
				value:  val,
				errs:   errs,
				next:   p.parseChildren(&cr, node.Children),
			})
		case schema.KindBlock:
			startPos := r.Pos()
			block, blockErr := p.parseBlockArgument(r)
			if blockErr != nil {
				return &parseResult{isErr: true, cmdErr: blockErr}
			}
			return &parseResult{
				span:   span.New(startPos, r.Pos()),
				nodeID: i,
				value:  cst.ArgumentValue{Block: block},
			}
		}
	}

	if len(candidates) == 0 {
		return &parseResult{
			isErr:  true,
			cmdErr: ErrInvalidLiteral{Span: wordSpan, Valid: rng},
		}
	}

	best := candidates[0]
	bestTier := candidateTier(best)
	for _, c := range candidates[1:] {
		if t := candidateTier(c); t < bestTier {
			best, bestTier = c, t
		}
	}
	return best
}

func isTrailingSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}
