package schema

import (
	"encoding/json"
	"fmt"
	"sort"
)

// jsonNode is the wire shape of one node in a command grammar catalogue.
// Children are keyed by the name each child is dispatched under.
type jsonNode struct {
	Type       string              `json:"type"`
	Children   map[string]jsonNode `json:"children"`
	Executable bool                `json:"executable"`
	Redirect   []string            `json:"redirect"`
	Parser     string              `json:"parser"`
	Properties map[string]any      `json:"properties"`
}

// Import loads a JSON command grammar catalogue into tree. The top-level
// object must be a non-executable root without a redirect. Redirect paths
// are resolved against the fully imported tree, after every node has been
// inserted, so a redirect may point forward to a node its own subtree
// precedes.
func Import(data []byte, tree *BuildTree) error {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("schema: malformed catalogue: %w", err)
	}
	if root.Type != "root" {
		return fmt.Errorf("schema: top-level node must have type root, got %q", root.Type)
	}
	if root.Executable {
		return fmt.Errorf("schema: root node cannot be executable")
	}
	if len(root.Redirect) > 0 {
		return fmt.Errorf("schema: root node cannot redirect")
	}

	type redirect struct {
		source BuildNodeID
		path   []string
	}
	var redirects []redirect

	type frame struct {
		parent BuildNodeID
		node   *jsonNode
	}
	stack := []frame{{parent: Root, node: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Map iteration order is randomized; fix it so repeated imports of
		// the same catalogue produce identical trees.
		names := make([]string, 0, len(f.node.Children))
		for name := range f.node.Children {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			child := f.node.Children[name]

			var n Node
			switch child.Type {
			case "root":
				return fmt.Errorf("schema: root node %q cannot appear as a child", name)
			case "literal":
				n = Node{Kind: KindLiteral, Name: name}
			case "argument":
				ak, err := ResolveArgumentKind(child.Parser, child.Properties)
				if err != nil {
					return fmt.Errorf("schema: node %q: %w", name, err)
				}
				n = Node{Kind: KindArgument, Name: name, Argument: ak}
			default:
				return fmt.Errorf("schema: node %q has unknown type %q", name, child.Type)
			}
			n.Executable = child.Executable

			id := tree.Insert(f.parent, n)
			if len(child.Redirect) > 0 {
				redirects = append(redirects, redirect{source: id, path: child.Redirect})
			}
			stack = append(stack, frame{parent: id, node: &child})
		}
	}

	for _, rd := range redirects {
		target, ok := tree.FindNodeID(rd.path...)
		if !ok {
			return fmt.Errorf("schema: unknown redirect target %v", rd.path)
		}
		if err := tree.Redirect(rd.source, target); err != nil {
			return err
		}
	}
	return nil
}

// RewriteToBlock gives the node at path a single Block child, discarding
// whatever children or redirect the catalogue gave it. The
// grammar expresses "the tail of this command is a nested command block"
// (execute run, return run) as a redirect back to the root; the rewrite
// turns that into the block form the parser groups by indentation.
func RewriteToBlock(tree *BuildTree, path ...string) error {
	id, ok := tree.FindNodeID(path...)
	if !ok {
		return fmt.Errorf("schema: no node at path %v", path)
	}
	tree.ClearNode(id)
	tree.Insert(id, Node{Kind: KindBlock, Executable: true})
	return nil
}
