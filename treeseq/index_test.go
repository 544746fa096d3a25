package treeseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedIndexFindClosestNeighbors(t *testing.T) {
	edges := newEdgeArena(16)
	ix := newOrderedIndex(edges, leftLess, 42)

	ids := make([]EdgeID, 5)
	for i, left := range []int64{10, 20, 30, 40, 50} {
		id := edges.alloc()
		e := edges.get(id)
		e.Left, e.Right, e.Parent, e.Child, e.Time = left, left+1, 0, 0, 0
		ids[i] = id
		ix.insert(id)
	}
	require.Equal(t, 5, ix.count)

	probe := edges.alloc()
	pe := edges.get(probe)
	pe.Left, pe.Right, pe.Parent, pe.Child, pe.Time = 30, 31, 0, 0, 0
	pred, exact, succ := ix.findClosest(probe)
	require.NotEqual(t, noIndexNode, exact)
	require.Equal(t, ids[2], ix.arena.get(exact).edge)
	require.Equal(t, ids[1], ix.arena.get(pred).edge)
	require.Equal(t, ids[3], ix.arena.get(succ).edge)

	pe.Left = 25
	pred, exact, succ = ix.findClosest(probe)
	require.Equal(t, noIndexNode, exact)
	require.Equal(t, ids[1], ix.arena.get(pred).edge)
	require.Equal(t, ids[2], ix.arena.get(succ).edge)
}

func TestOrderedIndexDeleteRemovesAndRebalances(t *testing.T) {
	edges := newEdgeArena(16)
	ix := newOrderedIndex(edges, leftLess, 7)

	ids := make([]EdgeID, 6)
	for i, left := range []int64{1, 2, 3, 4, 5, 6} {
		id := edges.alloc()
		e := edges.get(id)
		e.Left, e.Right = left, left+1
		ids[i] = id
		ix.insert(id)
	}
	ix.delete(ids[2])
	require.Equal(t, 5, ix.count)

	var walked []EdgeID
	ix.walk(func(id EdgeID) { walked = append(walked, id) })
	require.Len(t, walked, 5)
	require.NotContains(t, walked, ids[2])

	probe := edges.alloc()
	pe := edges.get(probe)
	pe.Left, pe.Right = 3, 4
	_, exact, _ := ix.findClosest(probe)
	require.Equal(t, noIndexNode, exact)
}

func TestOrderedIndexWalkIsAscending(t *testing.T) {
	edges := newEdgeArena(16)
	ix := newOrderedIndex(edges, leftLess, 99)

	for _, left := range []int64{5, 1, 4, 2, 3} {
		id := edges.alloc()
		e := edges.get(id)
		e.Left, e.Right = left, left+1
		ix.insert(id)
	}

	var lefts []int64
	ix.walk(func(id EdgeID) { lefts = append(lefts, edges.get(id).Left) })
	require.Equal(t, []int64{1, 2, 3, 4, 5}, lefts)
}
