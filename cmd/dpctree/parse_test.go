package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/parser"
	"github.com/kaoru-ogata/dpctree/schema"
	"github.com/kaoru-ogata/dpctree/source"
)

func TestLoadTreeRewritesRunTargets(t *testing.T) {
	tree, err := loadTree("testdata/commands.json")
	require.NoError(t, err)

	// Walking execute -> run must land on a range holding a single block
	// child after the rewrite.
	runChildren := findChildren(t, tree, "execute", "run")
	require.Equal(t, 1, runChildren.Len())
	require.Equal(t, schema.KindBlock, tree.At(runChildren.Start).Node.Kind)

	returnChildren := findChildren(t, tree, "return", "run")
	require.Equal(t, 1, returnChildren.Len())
	require.Equal(t, schema.KindBlock, tree.At(returnChildren.Start).Node.Kind)
}

func TestParseFixtureEndToEnd(t *testing.T) {
	tree, err := loadTree("testdata/commands.json")
	require.NoError(t, err)

	data, err := os.ReadFile("testdata/spawn.mcfunction")
	require.NoError(t, err)
	src := source.New("testdata/spawn.mcfunction", string(data))

	in := intern.New()
	block, err := parser.Parse(src.Text(), tree, in)
	require.NoError(t, err)
	require.Len(t, block.Items, 4)

	require.NotNil(t, block.Items[0].Comment)

	say := block.Items[1].Command
	require.NotNil(t, say)
	require.Nil(t, say.Error)
	require.Len(t, say.Args, 2)
	require.True(t, say.Args[0].Value.Literal)
	require.Equal(t, "hello world", in.MustResolve(say.Args[1].Value.String.Value))

	execute := block.Items[2].Command
	require.NotNil(t, execute)
	require.Nil(t, execute.Error)
	require.Len(t, execute.Args, 3)
	nested := execute.Args[2].Value.Block
	require.NotNil(t, nested)
	require.Len(t, nested.Items, 2)
	for i, want := range []string{"nested a", "nested b"} {
		inner := nested.Items[i].Command
		require.NotNil(t, inner)
		require.Equal(t, want, in.MustResolve(inner.Args[1].Value.String.Value))
	}

	require.Empty(t, collectDiagnostics(block))
}

func TestCollectDiagnosticsAndFormat(t *testing.T) {
	tree, err := loadTree("testdata/commands.json")
	require.NoError(t, err)

	text := "say hi\ntp one two three\n"
	src := source.New("broken.mcfunction", text)
	in := intern.New()
	block, err := parser.Parse(src.Text(), tree, in)
	require.NoError(t, err)

	diags := collectDiagnostics(block)
	require.NotEmpty(t, diags)
	for _, d := range diags {
		require.GreaterOrEqual(t, d.Span.Start, len("say hi\n"))
	}

	formatted := formatDiagnostic(src, diags[0])
	require.True(t, strings.HasPrefix(formatted, "2:4: error: "), formatted)
}

func findChildren(t *testing.T, tree *schema.ParsingTree, path ...string) schema.Range {
	t.Helper()
	rng := tree.Roots()
	for _, name := range path {
		found := false
		for i := rng.Start; i < rng.End; i++ {
			if tree.At(i).Node.Name == name {
				rng = tree.At(i).Children
				found = true
				break
			}
		}
		require.True(t, found, "no node named %q", name)
	}
	return rng
}
