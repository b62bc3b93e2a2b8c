package parser

import (
	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/span"
)

// parseResult is one link of the cons-list of matched schema nodes that
// parseChildren builds as it descends: either a successfully matched
// literal/argument/block (isErr false, with next continuing the chain),
// or a terminal command-level failure (isErr true, which always ends the
// chain). Keeping the chain as a cons-list rather than a flat slice lets a
// later sibling's whole continuation be discarded if a better candidate is
// found first.
type parseResult struct {
	isErr  bool
	cmdErr cst.ParseError

	span   span.Span
	nodeID int
	value  cst.ArgumentValue
	errs   []cst.ParseError
	next   *parseResult
}

// tier ranks a candidate chain for selection: Ok-without-errors sorts
// before Ok-with-errors, which sorts before a terminal Err.
type tier int

const (
	tierOkClean tier = iota
	tierOkWithErrors
	tierErr
)

// candidateTier ranks a candidate by its head alone. Trouble further down
// the chain does not demote a candidate whose own argument parsed cleanly;
// it surfaces later, when the chain is linearised.
func candidateTier(pr *parseResult) tier {
	if pr == nil {
		return tierOkClean
	}
	if pr.isErr {
		return tierErr
	}
	if len(pr.errs) > 0 {
		return tierOkWithErrors
	}
	return tierOkClean
}

// linearize flattens a resolved chain into a Command, stopping at the
// first terminal error.
func linearize(chain *parseResult) *cst.Command {
	cmd := &cst.Command{}
	for pr := chain; pr != nil; pr = pr.next {
		if pr.isErr {
			err := pr.cmdErr
			cmd.Error = &err
			break
		}
		cmd.Args = append(cmd.Args, cst.Argument{
			Span:   pr.span,
			NodeID: pr.nodeID,
			Value:  pr.value,
			Errors: pr.errs,
		})
	}
	return cmd
}
