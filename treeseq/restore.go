package treeseq

import (
	"fmt"

	"github.com/forestrie/go-treeseq/tables"
)

// RestoreNodes rebuilds the node table from flat rows (§4.10). The builder
// must be freshly Alloc'd; this replaces any existing nodes.
func (b *Builder) RestoreNodes(rows []tables.NodeRow) error {
	b.nodes = newNodeTable(b.cfg.nodeChunkSize)
	b.pathHead = b.pathHead[:0]
	for _, r := range rows {
		b.addNodeInternal(r.Time, NodeFlags(r.Flags))
	}
	return nil
}

// RestoreEdges rebuilds the path store and all three indexes from flat
// rows (§4.10). rows must be sorted by (child asc, left asc); out-of-order
// input is rejected with ErrUnsortedEdges. FreezeIndexes is called once
// restoration completes.
func (b *Builder) RestoreEdges(rows []tables.EdgeRow) error {
	var lastChild int32 = -1
	var lastLeft int64 = -1
	for i, r := range rows {
		if r.Child < lastChild || (r.Child == lastChild && r.Left < lastLeft) {
			return unsortedEdges(fmt.Errorf("row %d: (child=%d,left=%d) out of order", i, r.Child, r.Left))
		}
		lastChild, lastLeft = r.Child, r.Left
	}

	for i := range b.pathHead {
		b.pathHead[i] = NoEdge
	}
	b.edges = newEdgeArena(b.cfg.edgeChunkSize)
	b.leftIndex = newOrderedIndex(b.edges, leftLess, b.cfg.indexSeed^1)
	b.rightIndex = newOrderedIndex(b.edges, rightLess, b.cfg.indexSeed^2)
	b.pathIndex = newOrderedIndex(b.edges, pathLess, b.cfg.indexSeed^3)

	var tail EdgeID = NoEdge
	currentChild := NodeID(-1)
	for _, r := range rows {
		child := NodeID(r.Child)
		if !b.nodes.valid(child) {
			return badPathParent(fmt.Errorf("restore: child node %d does not exist", child))
		}
		if !b.nodes.valid(NodeID(r.Parent)) {
			return badPathParent(fmt.Errorf("restore: parent node %d does not exist", r.Parent))
		}
		id := b.edges.alloc()
		e := b.edges.get(id)
		e.Left, e.Right = r.Left, r.Right
		e.Parent = NodeID(r.Parent)
		e.Child = child
		e.Time = b.nodes.get(child).Time
		e.Next = NoEdge

		if child != currentChild {
			b.pathHead[child] = id
			currentChild = child
		} else {
			b.edges.get(tail).Next = id
		}
		tail = id
		b.indexEdge(id)
	}

	b.FreezeIndexes()
	return nil
}

// RestoreMutations rebuilds the per-site mutation lists from flat rows
// (§4.10). rows must be grouped by site in the same append order Dump
// produced (parent_mutation is re-derived from list position, not read
// back from the Parent field).
func (b *Builder) RestoreMutations(rows []tables.MutationRow) error {
	b.mutations = newMutationTable(b.numSites)
	for _, r := range rows {
		if _, err := b.mutations.add(r.Site, NodeID(r.Node), derivedStateByte(r.DerivedState)); err != nil {
			return newError(ErrCodeGeneric, err)
		}
	}
	return nil
}

func derivedStateByte(s string) uint8 {
	if s == "1" {
		return 1
	}
	return 0
}
