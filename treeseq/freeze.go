package treeseq

// FreezeIndexes materializes flat, cache-friendly snapshots of left_index
// and right_index (§4.8). Sequential traversal of these arrays dominates
// random treap traversal for the downstream matcher; the snapshot is an
// immutable view invalidated by any subsequent AddPath or AddMutations call
// (indexEdge / unindexEdge and AddMutations clear the frozen flag).
func (b *Builder) FreezeIndexes() {
	b.frozenLeft = b.frozenLeft[:0]
	b.frozenRight = b.frozenRight[:0]
	b.leftIndex.walk(func(id EdgeID) {
		b.frozenLeft = append(b.frozenLeft, *b.edges.get(id))
	})
	b.rightIndex.walk(func(id EdgeID) {
		b.frozenRight = append(b.frozenRight, *b.edges.get(id))
	})
	b.frozen = true
}

// Frozen reports whether the last FreezeIndexes snapshot is still current.
func (b *Builder) Frozen() bool { return b.frozen }

// LeftIndexEdges returns the frozen left_index snapshot. Call
// FreezeIndexes first; the result is stale (and Frozen reports false) after
// any further AddPath or AddMutations call.
func (b *Builder) LeftIndexEdges() []Edge { return b.frozenLeft }

// RightIndexEdges returns the frozen right_index snapshot.
func (b *Builder) RightIndexEdges() []Edge { return b.frozenRight }
