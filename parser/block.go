package parser

import (
	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/reader"
)

// parseBlockArgument resolves a Block schema node's body. If the block
// starts on its own line (only spaces separate it from the previous
// newline), the body is a nested sequence of commands grouped at that
// line's indent. Otherwise the reader sits mid-line (e.g. "execute run say
// hi") and the body is a single inline command covering the rest of the
// reader's range. A fatal indentation error inside a nested body is
// returned as the parse error that terminates the enclosing command's
// argument chain.
func (p *parseCtx) parseBlockArgument(r *reader.Reader) (*cst.Block, cst.ParseError) {
	r.SkipWhitespace()
	if !r.HasMore() {
		return &cst.Block{}, nil
	}

	src := r.Src()
	lineStart, indent, onOwnLine := indentAt(src, r.Pos())
	if !onOwnLine {
		cr := reader.WithPos(src, r.Pos())
		cmd := p.parseCommand(&cr)
		r.SetPos(len(src))
		if cmd == nil {
			return &cst.Block{}, nil
		}
		return &cst.Block{Items: []cst.Item{{Command: cmd}}}, nil
	}

	block, err := p.parseCommands(src, lineStart, indent)
	if err != nil {
		// The only error parseCommands produces is a *group.IndentationError,
		// which carries its own diagnostic.
		return nil, err.(cst.ParseError)
	}
	r.SetPos(len(src))
	return block, nil
}

// indentAt scans backward from pos. If only spaces separate pos from the
// previous newline, the position starts its own line: the returned indent
// is the space count and lineStart the offset just past that newline.
// Hitting any other character first (or the start of the text) means pos
// sits mid-line.
func indentAt(src string, pos int) (lineStart, indent int, ok bool) {
	for i := pos - 1; i >= 0; i-- {
		switch src[i] {
		case ' ':
			indent++
		case '\n':
			return i + 1, indent, true
		default:
			return 0, 0, false
		}
	}
	return 0, 0, false
}
