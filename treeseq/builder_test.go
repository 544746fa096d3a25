package treeseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T, numSites int) *Builder {
	t.Helper()
	alleles := make([]*string, numSites)
	b, err := Alloc(alleles, WithIndexSeed(12345))
	require.NoError(t, err)
	return b
}

// Scenario 1 (§8): two-node genealogy, single edge spanning the whole
// sequence.
func TestAddPathTwoNodeGenealogy(t *testing.T) {
	b := newTestBuilder(t, 3)
	parent := b.AddNode(2, 0)
	child := b.AddNode(1, 0)
	require.Equal(t, NodeID(0), parent)
	require.Equal(t, NodeID(1), child)

	err := b.AddPath(child, []PathSegment{{Left: 0, Right: 3, Parent: parent}}, 0)
	require.NoError(t, err)

	require.Equal(t, 1, b.GetNumEdges())
	head := b.pathHead[child]
	require.NotEqual(t, NoEdge, head)
	e := b.edges.get(head)
	require.Equal(t, int64(0), e.Left)
	require.Equal(t, int64(3), e.Right)
	require.Equal(t, NoEdge, e.Next)
	require.NoError(t, b.CheckState())
}

// Scenario 2 (§8): without COMPRESS_PATH, add_path preserves the input
// edges exactly (no implicit squash).
func TestAddPathWithoutCompressPreservesInputEdges(t *testing.T) {
	b := newTestBuilder(t, 3)
	parent := b.AddNode(3, 0)
	child := b.AddNode(1, 0)

	// Right-to-left order per contract: rightmost segment first.
	err := b.AddPath(child, []PathSegment{
		{Left: 1, Right: 3, Parent: parent},
		{Left: 0, Right: 1, Parent: parent},
	}, 0)
	require.NoError(t, err)

	count := 0
	for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
		count++
	}
	require.Equal(t, 2, count, "without COMPRESS_PATH, adjacent same-parent edges must not be squashed")
	require.NoError(t, b.CheckState())
}

// With COMPRESS_PATH set, squash is implicit at the end of compression
// even when nothing actually got path-compressed, collapsing the same
// two-segment, same-parent path from scenario 2 into one edge.
func TestAddPathWithCompressSquashesContiguousSameParent(t *testing.T) {
	b := newTestBuilder(t, 3)
	parent := b.AddNode(3, 0)
	child := b.AddNode(1, 0)

	err := b.AddPath(child, []PathSegment{
		{Left: 1, Right: 3, Parent: parent},
		{Left: 0, Right: 1, Parent: parent},
	}, CompressPath)
	require.NoError(t, err)

	count := 0
	for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
		count++
	}
	require.Equal(t, 1, count)
	e := b.edges.get(b.pathHead[child])
	require.Equal(t, int64(0), e.Left)
	require.Equal(t, int64(3), e.Right)
	require.NoError(t, b.CheckState())
}

// Scenario 5 (§8): non-contiguous rejection.
func TestAddPathRejectsNonContiguousEdges(t *testing.T) {
	b := newTestBuilder(t, 3)
	parent := b.AddNode(3, 0)
	child := b.AddNode(1, 0)

	err := b.AddPath(child, []PathSegment{
		{Left: 2, Right: 3, Parent: parent},
		{Left: 0, Right: 1, Parent: parent},
	}, 0)
	require.Error(t, err)
	tsErr, ok := err.(*TreeSeqError)
	require.True(t, ok)
	require.Equal(t, ErrCodeNonContiguousEdges, tsErr.Code)
	require.ErrorIs(t, err, ErrNonContiguousEdges)
}

// Scenario 6 (§8): time-order rejection.
func TestAddPathRejectsBadPathTime(t *testing.T) {
	b := newTestBuilder(t, 3)
	parent := b.AddNode(1, 0)
	child := b.AddNode(2, 0)

	err := b.AddPath(child, []PathSegment{{Left: 0, Right: 1, Parent: parent}}, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadPathTime)
}

func TestAddPathRejectsUnknownParent(t *testing.T) {
	b := newTestBuilder(t, 3)
	child := b.AddNode(1, 0)

	err := b.AddPath(child, []PathSegment{{Left: 0, Right: 3, Parent: 99}}, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadPathParent)
}

func TestGetNumNodesEdgesMutations(t *testing.T) {
	b := newTestBuilder(t, 2)
	parent := b.AddNode(2, 0)
	child := b.AddNode(1, 0)
	require.Equal(t, 2, b.GetNumNodes())

	require.NoError(t, b.AddPath(child, []PathSegment{{Left: 0, Right: 2, Parent: parent}}, 0))
	require.Equal(t, 1, b.GetNumEdges())

	require.NoError(t, b.AddMutations(child, []int64{0, 1}, []uint8{1, 1}))
	require.Equal(t, 2, b.GetNumMutations())
}

func TestAddMutationsRejectsStateNotOneOnFirstAtSite(t *testing.T) {
	b := newTestBuilder(t, 1)
	n := b.AddNode(1, 0)
	err := b.AddMutations(n, []int64{0}, []uint8{0})
	require.Error(t, err)
}
