package treeseq

import "fmt"

// edgeArena is a slab-backed, free-list allocator for Edge records. It
// grows in fixed chunks and returns freed slots to the free list rather
// than compacting, so EdgeID values stay stable across the builder's
// lifetime (§4.2).
type edgeArena struct {
	slab      []Edge
	freeList  []EdgeID
	chunkSize int
}

func newEdgeArena(chunkSize int) *edgeArena {
	if chunkSize <= 0 {
		chunkSize = defaultEdgeChunkSize
	}
	return &edgeArena{chunkSize: chunkSize}
}

func (a *edgeArena) grow() {
	old := len(a.slab)
	grown := make([]Edge, old+a.chunkSize)
	copy(grown, a.slab)
	a.slab = grown
	for i := old + a.chunkSize - 1; i >= old; i-- {
		a.freeList = append(a.freeList, EdgeID(i))
	}
}

// alloc returns a fresh, zeroed Edge id.
func (a *edgeArena) alloc() EdgeID {
	if len(a.freeList) == 0 {
		a.grow()
	}
	n := len(a.freeList) - 1
	id := a.freeList[n]
	a.freeList = a.freeList[:n]
	a.slab[id] = Edge{Next: NoEdge}
	a.slab[id].inUse = true
	return id
}

// free returns id to the free list. The caller must have already removed
// id from every index it participated in.
func (a *edgeArena) free(id EdgeID) {
	if !a.slab[id].inUse {
		panic(fmt.Sprintf("treeseq: double free of edge %d", id))
	}
	a.slab[id].inUse = false
	a.freeList = append(a.freeList, id)
}

func (a *edgeArena) get(id EdgeID) *Edge {
	if !a.slab[id].inUse {
		panic(fmt.Sprintf("treeseq: access to freed edge %d", id))
	}
	return &a.slab[id]
}

// liveCount returns the number of currently allocated (not freed) edges.
func (a *edgeArena) liveCount() int {
	return len(a.slab) - len(a.freeList)
}

const (
	defaultNodeChunkSize = 1024
	defaultEdgeChunkSize = 1024
)

// nodeTable is the append-only array of nodes (§4.1). Unlike the edge
// arena, nodes are never freed, so no free list is needed.
type nodeTable struct {
	nodes     []Node
	chunkSize int
}

func newNodeTable(chunkSize int) *nodeTable {
	if chunkSize <= 0 {
		chunkSize = defaultNodeChunkSize
	}
	return &nodeTable{chunkSize: chunkSize}
}

func (t *nodeTable) add(time float64, flags NodeFlags) NodeID {
	id := NodeID(len(t.nodes))
	if len(t.nodes) == cap(t.nodes) {
		grown := make([]Node, len(t.nodes), len(t.nodes)+t.chunkSize)
		copy(grown, t.nodes)
		t.nodes = grown
	}
	t.nodes = append(t.nodes, Node{Time: time, Flags: flags})
	return id
}

func (t *nodeTable) get(id NodeID) Node {
	return t.nodes[id]
}

func (t *nodeTable) setFlags(id NodeID, flags NodeFlags) {
	t.nodes[id].Flags = flags
}

func (t *nodeTable) count() int { return len(t.nodes) }

func (t *nodeTable) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
