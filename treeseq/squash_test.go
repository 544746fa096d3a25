package treeseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chainEdges(b *Builder, head EdgeID) []Edge {
	var out []Edge
	for cur := head; cur != NoEdge; cur = b.edges.get(cur).Next {
		out = append(out, *b.edges.get(cur))
	}
	return out
}

func TestSquashNonIndexedMergesTransitiveRun(t *testing.T) {
	b := newTestBuilder(t, 4)
	parent := b.AddNode(5, 0)
	child := b.AddNode(1, 0)

	var head, tail EdgeID = NoEdge, NoEdge
	for _, seg := range []PathSegment{{0, 1, parent}, {1, 2, parent}, {2, 3, parent}, {3, 4, parent}} {
		id := b.edges.alloc()
		e := b.edges.get(id)
		e.Left, e.Right, e.Parent, e.Child, e.Next = seg.Left, seg.Right, seg.Parent, child, NoEdge
		if tail == NoEdge {
			head = id
		} else {
			b.edges.get(tail).Next = id
		}
		tail = id
	}

	merged := b.squashNonIndexed(head)
	chain := chainEdges(b, merged)
	require.Len(t, chain, 1)
	require.Equal(t, int64(0), chain[0].Left)
	require.Equal(t, int64(4), chain[0].Right)
}

func TestSquashNonIndexedLeavesDifferentParentsAlone(t *testing.T) {
	b := newTestBuilder(t, 2)
	p1 := b.AddNode(5, 0)
	p2 := b.AddNode(6, 0)
	child := b.AddNode(1, 0)

	var head, tail EdgeID = NoEdge, NoEdge
	for _, seg := range []PathSegment{{0, 1, p1}, {1, 2, p2}} {
		id := b.edges.alloc()
		e := b.edges.get(id)
		e.Left, e.Right, e.Parent, e.Child, e.Next = seg.Left, seg.Right, seg.Parent, child, NoEdge
		if tail == NoEdge {
			head = id
		} else {
			b.edges.get(tail).Next = id
		}
		tail = id
	}

	merged := b.squashNonIndexed(head)
	chain := chainEdges(b, merged)
	require.Len(t, chain, 2)
}
