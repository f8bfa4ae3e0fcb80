package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/patterngraph/core"
)

// TestAddBlock_RejectsNilEmptyAndCollision covers the AddBlock validation
// ladder.
func TestAddBlock_RejectsNilEmptyAndCollision(t *testing.T) {
	g := core.NewPatternGraph()

	assert.ErrorIs(t, g.AddBlock(nil), core.ErrNilBlock)
	assert.ErrorIs(t, g.AddBlock(core.NewBlock("", core.KindPattern)), core.ErrEmptyBlockID)

	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))
	assert.ErrorIs(t, g.AddBlock(ioBlock("a", core.KindColor)), core.ErrIDCollision)

	// The original block survives the rejected overwrite.
	b, err := g.Block("a")
	require.NoError(t, err)
	assert.Equal(t, core.KindPattern, b.Kind)
}

// TestBind_SetsBothSidesSymmetrically verifies a successful bind writes
// reciprocal peer references.
func TestBind_SetsBothSidesSymmetrically(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("b", core.KindColor)))

	require.NoError(t, g.Bind("a", "out", "b", "in"))

	ba, _ := g.Block("a")
	pa, ok := ba.Point("out")
	require.True(t, ok)
	assert.Equal(t, "b", pa.PeerBlockID)
	assert.Equal(t, "in", pa.PeerPointID)

	bb, _ := g.Block("b")
	pb, ok := bb.Point("in")
	require.True(t, ok)
	assert.Equal(t, "a", pb.PeerBlockID)
	assert.Equal(t, "out", pb.PeerPointID)
}

// TestBind_NotFound surfaces typed failures for unknown blocks and points —
// bind never silently no-ops.
func TestBind_NotFound(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))

	assert.ErrorIs(t, g.Bind("ghost", "out", "a", "in"), core.ErrBlockNotFound)
	assert.ErrorIs(t, g.Bind("a", "nopoint", "a", "in"), core.ErrPointNotFound)
}

// TestBind_RejectsIncompatibleConnectionKinds rejects Input↔Input at bind
// time: the graph never reaches an invalid stored state through Bind.
func TestBind_RejectsIncompatibleConnectionKinds(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("b", core.KindColor)))

	assert.ErrorIs(t, g.Bind("a", "in", "b", "in"), core.ErrConnectionKindMismatch)
	assert.True(t, g.IsWellFormed()) // nothing was written
}

// TestBind_RejectsIncompatibleBlockKinds verifies the block-kind rule is
// checked independently of connection-kind compatibility.
func TestBind_RejectsIncompatibleBlockKinds(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("c", core.KindColor)))
	require.NoError(t, g.AddBlock(ioBlock("l", core.KindLoop)))

	// Output→Input is fine on the connection axis; Color↔Loop is not in the
	// block-kind table.
	assert.ErrorIs(t, g.Bind("c", "out", "l", "in"), core.ErrBlockKindMismatch)
}

// TestBind_RejectsIncompatibleAnchors verifies the spatial axis is enforced
// when both sides carry a non-None anchor.
func TestBind_RejectsIncompatibleAnchors(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(core.NewBlock("a", core.KindPattern,
		core.ConnectionPoint{ID: "p", Kind: core.Output, Anchor: core.AnchorTop},
	)))
	require.NoError(t, g.AddBlock(core.NewBlock("b", core.KindColor,
		core.ConnectionPoint{ID: "q", Kind: core.Input, Anchor: core.AnchorTop},
	)))

	assert.ErrorIs(t, g.Bind("a", "p", "b", "q"), core.ErrAnchorMismatch)
}

// TestBind_RejectsAlreadyBoundPoint enforces the one-peer-per-point rule.
func TestBind_RejectsAlreadyBoundPoint(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("b", core.KindColor)))
	require.NoError(t, g.AddBlock(ioBlock("c", core.KindColor)))

	require.NoError(t, g.Bind("a", "out", "b", "in"))
	assert.ErrorIs(t, g.Bind("a", "out", "c", "in"), core.ErrPointBound)
}

// TestBind_Atomicity: a bind that fails any precondition leaves both
// involved points completely unmodified — no partial peer assignment.
func TestBind_Atomicity(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindColor)))
	require.NoError(t, g.AddBlock(ioBlock("b", core.KindColumn)))

	// Color↔Column fails the block-kind rule, the last check in the ladder;
	// everything before it passed, so this is the sharpest atomicity probe.
	require.Error(t, g.Bind("a", "out", "b", "in"))

	ba, _ := g.Block("a")
	pa, _ := ba.Point("out")
	assert.False(t, pa.Bound())

	bb, _ := g.Block("b")
	pb, _ := bb.Point("in")
	assert.False(t, pb.Bound())
}

// TestBind_SelfPointRejected: a point cannot peer with itself.
func TestBind_SelfPointRejected(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))

	assert.ErrorIs(t, g.Bind("a", "out", "a", "out"), core.ErrSelfBind)
}

// TestUnbind_RequiresMutualPeers verifies unbind checks both directions and
// rejects pairs that are not currently bound to each other.
func TestUnbind_RequiresMutualPeers(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))
	require.NoError(t, g.AddBlock(ioBlock("b", core.KindColor)))
	require.NoError(t, g.AddBlock(ioBlock("c", core.KindColor)))

	require.NoError(t, g.Bind("a", "out", "b", "in"))

	// c/in is free; a/out is bound to b/in, not c/in.
	assert.ErrorIs(t, g.Unbind("a", "out", "c", "in"), core.ErrNotPeers)

	// The real pair unbinds cleanly and both sides are cleared.
	require.NoError(t, g.Unbind("a", "out", "b", "in"))
	ba, _ := g.Block("a")
	pa, _ := ba.Point("out")
	assert.False(t, pa.Bound())
	bb, _ := g.Block("b")
	pb, _ := bb.Point("in")
	assert.False(t, pb.Bound())

	// Unbinding again is an error: they are no longer peers.
	assert.ErrorIs(t, g.Unbind("a", "out", "b", "in"), core.ErrNotPeers)
}

// TestRemoveBlock_SeversAllInboundReferences: after RemoveBlock(X) no
// remaining point names X as a peer.
func TestRemoveBlock_SeversAllInboundReferences(t *testing.T) {
	g := chainGraph(core.KindPattern, core.KindColor, core.KindPattern)

	g.RemoveBlock("b1") // the middle block, bound on both sides

	assert.False(t, g.HasBlock("b1"))
	for _, b := range g.Blocks() {
		for _, p := range b.Points {
			assert.NotEqual(t, "b1", p.PeerBlockID,
				"block %s still references the removed block", b.ID)
		}
	}
	assert.True(t, g.IsWellFormed())
}

// TestRemoveBlock_AbsentIsNoOp: deletion is idempotent.
func TestRemoveBlock_AbsentIsNoOp(t *testing.T) {
	g := core.NewPatternGraph()
	require.NoError(t, g.AddBlock(ioBlock("a", core.KindPattern)))

	g.RemoveBlock("ghost")
	g.RemoveBlock("a")
	g.RemoveBlock("a") // second removal of the same id is fine

	assert.Equal(t, 0, g.BlockCount())
}

// TestRemoveBlock_PreservesInsertionOrder verifies the order slice tracks
// removals.
func TestRemoveBlock_PreservesInsertionOrder(t *testing.T) {
	g := chainGraph(core.KindPattern, core.KindColor, core.KindPattern)

	g.RemoveBlock("b1")
	assert.Equal(t, []string{"b0", "b2"}, g.BlockIDs())
}

// TestUnbindAll_ClearsBothEnds severs every bind touching a block while the
// block itself stays in the arena.
func TestUnbindAll_ClearsBothEnds(t *testing.T) {
	g := chainGraph(core.KindPattern, core.KindColor, core.KindPattern)

	g.UnbindAll("b1")

	assert.True(t, g.HasBlock("b1"))
	st := g.Stats()
	assert.Equal(t, 0, st.BoundCount)
	assert.True(t, g.IsWellFormed())
}

// TestUnbindAll_AbsentIsNoOp: an unknown block id does nothing.
func TestUnbindAll_AbsentIsNoOp(t *testing.T) {
	g := chainGraph(core.KindPattern, core.KindColor)

	g.UnbindAll("ghost")
	assert.Equal(t, 2, g.Stats().BoundCount)
}

// TestReciprocity_Property: any graph produced only through the public
// mutation API keeps every stated peer reference reciprocal.
func TestReciprocity_Property(t *testing.T) {
	g := ringGraph(core.KindPattern, core.KindColor, core.KindPattern)
	require.NoError(t, g.Unbind("b1", "out", "b2", "in"))
	g.RemoveBlock("b0")

	for _, b := range g.Blocks() {
		for _, p := range b.Points {
			if !p.Bound() {
				continue
			}
			peer, err := g.Block(p.PeerBlockID)
			require.NoError(t, err)
			pp, ok := peer.Point(p.PeerPointID)
			require.True(t, ok)
			assert.Equal(t, b.ID, pp.PeerBlockID)
			assert.Equal(t, p.ID, pp.PeerPointID)
		}
	}
}
