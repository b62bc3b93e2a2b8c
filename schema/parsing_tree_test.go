package schema

import "testing"

// buildSayTpTree wires up two root literals "say" and "tp", "say" taking
// a greedy string, "tp" taking a block_pos, plus "execute run" redirecting
// back to Root.
func buildSayTpTree(t *testing.T) *BuildTree {
	t.Helper()
	bt := NewBuildTree()
	say := bt.Insert(Root, Node{Kind: KindLiteral, Name: "say"})
	bt.Insert(say, Node{Kind: KindArgument, Name: "message", Argument: ArgumentKind{Category: CategoryString, StringKind: StringGreedyPhrase}, Executable: true})

	tp := bt.Insert(Root, Node{Kind: KindLiteral, Name: "tp"})
	bt.Insert(tp, Node{Kind: KindArgument, Name: "location", Argument: ArgumentKind{Category: CategoryBlockPos}, Executable: true})

	execute := bt.Insert(Root, Node{Kind: KindLiteral, Name: "execute"})
	run := bt.Insert(execute, Node{Kind: KindLiteral, Name: "run"})
	if err := bt.Redirect(run, Root); err != nil {
		t.Fatalf("Redirect: %v", err)
	}
	return bt
}

func TestIntoParsingTreeLiteralsFirstAndRoots(t *testing.T) {
	bt := buildSayTpTree(t)
	pt := bt.IntoParsingTree()

	if pt.NumRoots != 3 {
		t.Fatalf("NumRoots = %d, want 3", pt.NumRoots)
	}
	names := map[string]bool{}
	for i := 0; i < pt.NumRoots; i++ {
		n := pt.At(i)
		if n.Node.Kind != KindLiteral {
			t.Errorf("root node %d has kind %v, want literal", i, n.Node.Kind)
		}
		names[n.Node.Name] = true
	}
	for _, want := range []string{"say", "tp", "execute"} {
		if !names[want] {
			t.Errorf("missing root literal %q", want)
		}
	}
}

func TestIntoParsingTreeRedirectAliasesTarget(t *testing.T) {
	bt := buildSayTpTree(t)
	pt := bt.IntoParsingTree()

	var executeIdx int
	for i := 0; i < pt.NumRoots; i++ {
		if pt.At(i).Node.Name == "execute" {
			executeIdx = i
		}
	}
	executeRange := pt.At(executeIdx).Children
	if executeRange.Len() != 1 {
		t.Fatalf("execute has %d children, want 1 (run)", executeRange.Len())
	}
	runIdx := executeRange.Start
	run := pt.At(runIdx)
	if run.Node.Name != "run" {
		t.Fatalf("expected run node, got %q", run.Node.Name)
	}
	if run.Children != pt.Roots() {
		t.Errorf("run.Children = %+v, want root range %+v", run.Children, pt.Roots())
	}
}

func TestIntoParsingTreeChildrenLieAfterParent(t *testing.T) {
	bt := buildSayTpTree(t)
	pt := bt.IntoParsingTree()

	for i, n := range pt.Nodes {
		if n.Node.Kind == KindLiteral && n.Node.Name == "run" {
			// A redirect aliases an earlier range; only concrete children
			// must lie after their parent.
			continue
		}
		if n.Children.Len() == 0 {
			continue
		}
		if n.Children.Start < i+1 {
			t.Errorf("node %d (%s): children start %d does not lie after parent", i, n.Node.Name, n.Children.Start)
		}
	}
}

func TestPartitionWithinEachRangeIsLiteralsFirst(t *testing.T) {
	bt := NewBuildTree()
	mixed := bt.Insert(Root, Node{Kind: KindLiteral, Name: "mixed"})
	bt.Insert(mixed, Node{Kind: KindArgument, Name: "arg1", Argument: ArgumentKind{Category: CategoryBool}})
	bt.Insert(mixed, Node{Kind: KindLiteral, Name: "lit1"})
	bt.Insert(mixed, Node{Kind: KindArgument, Name: "arg2", Argument: ArgumentKind{Category: CategoryBool}})
	bt.Insert(mixed, Node{Kind: KindLiteral, Name: "lit2"})

	pt := bt.IntoParsingTree()
	rng := pt.At(0).Children
	sawNonLiteral := false
	for i := rng.Start; i < rng.End; i++ {
		n := pt.At(i).Node
		if n.Kind == KindLiteral {
			if sawNonLiteral {
				t.Fatalf("literal node %q appears after a non-literal node in range %+v", n.Name, rng)
			}
		} else {
			sawNonLiteral = true
		}
	}
}
