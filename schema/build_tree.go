package schema

import "fmt"

// BuildNodeID indexes a node within a BuildTree's arena.
type BuildNodeID int

// Root is the id of the tree's root node. It holds no Node payload of its
// own; its children are the grammar's top-level literals and arguments.
const Root BuildNodeID = 0

const noID BuildNodeID = -1

type buildNode struct {
	node Node

	next BuildNodeID // next sibling in the parent's child list, or noID

	headChild  BuildNodeID // head of this node's own child list, or noID
	childCount int

	redirectTo BuildNodeID // target of a redirect, or noID if this node holds children
}

// BuildTree is a mutable arena of schema nodes, built by a schema importer
// and cheaply edited (redirects, clears) before being lowered into a
// ParsingTree. Node 0 is Root. Every node holds either a list of children
// or a redirect to another node's children, never both.
type BuildTree struct {
	nodes []buildNode
}

// NewBuildTree returns a BuildTree containing only the empty Root node.
func NewBuildTree() *BuildTree {
	bt := &BuildTree{nodes: make([]buildNode, 1, 64)}
	bt.nodes[Root] = buildNode{headChild: noID, redirectTo: noID}
	return bt
}

// Insert appends a child to parent's list (at the head) and returns its
// id. It panics if parent currently redirects, since a redirecting node
// has no child list to append to.
func (bt *BuildTree) Insert(parent BuildNodeID, n Node) BuildNodeID {
	if bt.nodes[parent].redirectTo != noID {
		panic(fmt.Sprintf("schema: cannot insert into redirecting node %d", parent))
	}
	id := BuildNodeID(len(bt.nodes))
	bt.nodes = append(bt.nodes, buildNode{
		node:       n,
		next:       bt.nodes[parent].headChild,
		headChild:  noID,
		redirectTo: noID,
	})
	bt.nodes[parent].headChild = id
	bt.nodes[parent].childCount++
	return id
}

// ClearNode resets id to an empty Children node, discarding any existing
// children and any redirect it previously held.
func (bt *BuildTree) ClearNode(id BuildNodeID) {
	bt.nodes[id].headChild = noID
	bt.nodes[id].childCount = 0
	bt.nodes[id].redirectTo = noID
}

// Redirect makes id an alias for target's children. id must currently have
// zero children and not already redirect; target must not itself redirect.
// Violating either invariant is a fatal schema error, reported here rather
// than panicking since it can stem from untrusted schema input.
func (bt *BuildTree) Redirect(id, target BuildNodeID) error {
	if bt.nodes[id].childCount != 0 {
		return fmt.Errorf("schema: cannot redirect node %d: it already has children", id)
	}
	if bt.nodes[id].redirectTo != noID {
		return fmt.Errorf("schema: cannot redirect node %d: it already redirects", id)
	}
	if bt.nodes[target].redirectTo != noID {
		return fmt.Errorf("schema: cannot redirect node %d to node %d: the target itself redirects", id, target)
	}
	bt.nodes[id].redirectTo = target
	return nil
}

// Node returns the payload stored at id.
func (bt *BuildTree) Node(id BuildNodeID) Node {
	return bt.nodes[id].node
}

func (bt *BuildTree) followRedirect(id BuildNodeID) BuildNodeID {
	if t := bt.nodes[id].redirectTo; t != noID {
		return t
	}
	return id
}

func (bt *BuildTree) childByName(parent BuildNodeID, name string) (BuildNodeID, bool) {
	for c := bt.nodes[parent].headChild; c != noID; c = bt.nodes[c].next {
		if bt.nodes[c].node.Name == name {
			return c, true
		}
	}
	return 0, false
}

// FindNodeID resolves a sequence of name components starting from Root,
// following redirects transparently before each step. It returns false if
// any component fails to resolve. An empty path resolves to Root itself.
func (bt *BuildTree) FindNodeID(path ...string) (BuildNodeID, bool) {
	cur := Root
	for _, name := range path {
		cur = bt.followRedirect(cur)
		child, ok := bt.childByName(cur, name)
		if !ok {
			return 0, false
		}
		cur = child
	}
	return cur, true
}

// childList returns id's children in original insertion order (the
// BuildTree's linked list is head-inserted, so it is walked and reversed
// here; lowering does not depend on this order beyond the literal/non-
// literal partition it performs itself).
func (bt *BuildTree) childList(id BuildNodeID) []BuildNodeID {
	var rev []BuildNodeID
	for c := bt.nodes[id].headChild; c != noID; c = bt.nodes[c].next {
		rev = append(rev, c)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// IntoParsingTree lowers the BuildTree into an immutable, flattened
// ParsingTree: each group of siblings is allocated as a contiguous output
// slice before its members are individually descended into, and redirect
// nodes are resolved to their target's children range only after the
// whole tree has been emitted (see schema/parsing_tree.go).
func (bt *BuildTree) IntoParsingTree() *ParsingTree {
	e := &emitter{bt: bt, outputIndex: make(map[BuildNodeID]int)}
	rootRange := e.emitSiblings(bt.childList(Root))
	for _, pr := range e.pending {
		e.nodes[pr.outputIndex].Children = e.resolveRedirectTarget(pr.target, rootRange)
	}
	return &ParsingTree{Nodes: e.nodes, NumRoots: rootRange.Len()}
}

func (e *emitter) resolveRedirectTarget(target BuildNodeID, rootRange Range) Range {
	if target == Root {
		return rootRange
	}
	ti := e.outputIndex[target]
	return e.nodes[ti].Children
}

type pendingRedirect struct {
	outputIndex int
	target      BuildNodeID
}

type emitter struct {
	bt          *BuildTree
	nodes       []ParsingNode
	outputIndex map[BuildNodeID]int
	pending     []pendingRedirect
}

// emitSiblings allocates output slots for every id in ids (literals
// partitioned before arguments and blocks), then descends into each one,
// returning the contiguous range the group occupies.
func (e *emitter) emitSiblings(ids []BuildNodeID) Range {
	ordered := partitionLiteralsFirst(e.bt, ids)

	start := len(e.nodes)
	for _, id := range ordered {
		e.nodes = append(e.nodes, ParsingNode{Node: e.bt.nodes[id].node})
		e.outputIndex[id] = len(e.nodes) - 1
	}
	end := len(e.nodes)

	for i, id := range ordered {
		idx := start + i
		bn := e.bt.nodes[id]
		if bn.redirectTo != noID {
			e.pending = append(e.pending, pendingRedirect{outputIndex: idx, target: bn.redirectTo})
			continue
		}
		e.nodes[idx].Children = e.emitSiblings(e.bt.childList(id))
	}

	return Range{Start: start, End: end}
}

func partitionLiteralsFirst(bt *BuildTree, ids []BuildNodeID) []BuildNodeID {
	ordered := make([]BuildNodeID, 0, len(ids))
	for _, id := range ids {
		if bt.nodes[id].node.Kind == KindLiteral {
			ordered = append(ordered, id)
		}
	}
	for _, id := range ids {
		if bt.nodes[id].node.Kind != KindLiteral {
			ordered = append(ordered, id)
		}
	}
	return ordered
}
