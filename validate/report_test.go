package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/patterngraph/core"
	"github.com/weftworks/patterngraph/validate"
)

// ioBlock builds a block with one Output point "out" and one Input "in".
func ioBlock(id string, kind core.BlockKind) *core.Block {
	return core.NewBlock(id, kind,
		core.ConnectionPoint{ID: "out", Kind: core.Output},
		core.ConnectionPoint{ID: "in", Kind: core.Input},
	)
}

// TestReport_EmptyGraph: vacuously well-formed, not a valid pattern.
func TestReport_EmptyGraph(t *testing.T) {
	g := core.NewPatternGraph()
	res := validate.Report(g)

	assert.True(t, res.WellFormed)
	assert.False(t, res.ValidPattern)
}

// TestReport_ValidTwoBlockPattern covers the canonical Pattern→Color
// scenario: well-formed and a valid pattern.
func TestReport_ValidTwoBlockPattern(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("p", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("c", core.KindColor)))
	require.NoError(t, g.Bind("p", "out", "c", "in"))

	res := validate.Report(g)
	assert.True(t, res.WellFormed)
	assert.True(t, res.ValidPattern)
	assert.Equal(t, 0, res.Summary.Errors)
	assert.Equal(t, 1, res.Summary.Binds)

	assert.True(t, validate.ValidPattern(g))
}

// TestReport_CollectsEveryIssue: the report visits everything instead of
// short-circuiting on the first failure.
func TestReport_CollectsEveryIssue(t *testing.T) {
	g := core.NewPatternGraph()
	// Two independent problems: a dangling peer on "a" and a non-reciprocal
	// reference on "b".
	require.NoError(t, g.AddBlock(core.NewBlock("a", core.KindPattern,
		core.ConnectionPoint{ID: "out", Kind: core.Output, PeerBlockID: "ghost", PeerPointID: "x"},
	)))
	require.NoError(t, g.AddBlock(core.NewBlock("b", core.KindColor,
		core.ConnectionPoint{ID: "in", Kind: core.Input, PeerBlockID: "a", PeerPointID: "out"},
	)))

	res := validate.Report(g)
	assert.False(t, res.WellFormed)

	cats := make(map[string]int)
	for _, is := range res.Issues {
		cats[is.Category]++
	}
	assert.Equal(t, 1, cats[validate.CategoryDangling])
	assert.Equal(t, 1, cats[validate.CategoryReciprocity])
}

// TestReport_IncompatibleStoredBind reports both the connection-kind and
// block-kind rules independently for a pre-built bad bind.
func TestReport_IncompatibleStoredBind(t *testing.T) {
	g := core.NewPatternGraph()
	// Color↔Column bound Input↔Input: wrong on both axes.
	require.NoError(t, g.AddBlock(core.NewBlock("c", core.KindColor,
		core.ConnectionPoint{ID: "p", Kind: core.Input, PeerBlockID: "k", PeerPointID: "q"},
	)))
	require.NoError(t, g.AddBlock(core.NewBlock("k", core.KindColumn,
		core.ConnectionPoint{ID: "q", Kind: core.Input, PeerBlockID: "c", PeerPointID: "p"},
	)))

	res := validate.Report(g)
	assert.False(t, res.WellFormed)

	cats := make(map[string]int)
	for _, is := range res.Issues {
		cats[is.Category]++
	}
	// Both endpoints report both rule failures.
	assert.Equal(t, 2, cats[validate.CategoryConnectionKind])
	assert.Equal(t, 2, cats[validate.CategoryBlockKind])
}

// TestValidPattern_RequiresPatternKind: a well-formed graph without a
// Pattern-kind block is not a valid pattern.
func TestValidPattern_RequiresPatternKind(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("s", core.KindStructure)))
	require.NoError(t, g.AddBlock(ioBlock("k", core.KindColumn)))
	require.NoError(t, g.Bind("s", "out", "k", "in"))

	assert.True(t, g.IsWellFormed())
	assert.False(t, validate.ValidPattern(g))

	res := validate.Report(g)
	assert.True(t, res.WellFormed)
	assert.False(t, res.ValidPattern)
}

// TestValidPattern_RejectsIsolatedBlock: every block must be connected;
// the check is per-block, not "graph is one component".
func TestValidPattern_RejectsIsolatedBlock(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("p", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("c", core.KindColor)))
	require.NoError(t, g.AddBlock(ioBlock("lonely", core.KindColor)))
	require.NoError(t, g.Bind("p", "out", "c", "in"))

	assert.False(t, validate.ValidPattern(g))

	res := validate.Report(g)
	found := false
	for _, is := range res.Issues {
		if is.Category == validate.CategoryPattern && is.BlockID == "lonely" {
			found = true
		}
	}
	assert.True(t, found, "the isolated block must be named in the report")
}

// TestValidPattern_RejectsSingleBlock: one block is never a valid pattern.
func TestValidPattern_RejectsSingleBlock(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("p", core.KindPattern)))

	assert.False(t, validate.ValidPattern(g))
}

// TestReport_ZeroPointBlockIsWarning: advisory findings do not affect the
// booleans.
func TestReport_ZeroPointBlockIsWarning(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(core.NewBlock("bare", core.KindPattern)))

	res := validate.Report(g)
	assert.True(t, res.WellFormed)
	assert.Equal(t, 1, res.Summary.Warnings)
}

// TestReport_NilGraph behaves like the empty graph.
func TestReport_NilGraph(t *testing.T) {
	res := validate.Report(nil)
	assert.True(t, res.WellFormed)
	assert.False(t, res.ValidPattern)
}
