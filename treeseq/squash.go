package treeseq

// longSquashRunThreshold is the number of edges a single squash merge must
// collapse before it is logged at Warn rather than left silent; an
// ordinary merge of two or three adjacent edges is routine, but a long run
// usually means a path was assembled from far more segments than the
// caller's ancestor matcher needed to emit.
const longSquashRunThreshold = 4

// squashNonIndexed merges contiguous same-parent edges on a path that has
// not yet been indexed (§4.6). It walks the chain once: prev stays put
// while adjacent edges absorb into it, so a transitive run (A,B,C all
// sharing a parent) collapses in a single forward pass rather than
// requiring a second look at the merged result.
func (b *Builder) squashNonIndexed(head EdgeID) EdgeID {
	if head == NoEdge {
		return head
	}
	prev := head
	merged := 1
	for {
		prevEdge := b.edges.get(prev)
		next := prevEdge.Next
		if next == NoEdge {
			if merged >= longSquashRunThreshold {
				b.log.Warnw("squash collapsed a long run of edges", "child", prevEdge.Child, "edges", merged)
			}
			return head
		}
		nextEdge := b.edges.get(next)
		if prevEdge.Right == nextEdge.Left && prevEdge.Parent == nextEdge.Parent {
			prevEdge.Right = nextEdge.Right
			prevEdge.Next = nextEdge.Next
			b.edges.free(next)
			merged++
			continue
		}
		if merged >= longSquashRunThreshold {
			b.log.Warnw("squash collapsed a long run of edges", "child", prevEdge.Child, "edges", merged)
		}
		merged = 1
		prev = next
	}
}

// squashIndexed re-applies the same merge rule to an already-indexed path
// whose membership may have just been perturbed by path compression
// (§4.6). Any edge touched by a merge is unindexed first (if it was still
// indexed) and marked detached; once the merge pass settles, a second pass
// restores every detached edge's child and reinserts it into all three
// indexes.
func (b *Builder) squashIndexed(child NodeID) {
	head := b.pathHead[child]
	if head == NoEdge {
		return
	}
	prev := head
	merged := 1
	for {
		prevEdge := b.edges.get(prev)
		next := prevEdge.Next
		if next == NoEdge {
			if merged >= longSquashRunThreshold {
				b.log.Warnw("squash collapsed a long run of edges", "child", child, "edges", merged)
			}
			break
		}
		nextEdge := b.edges.get(next)
		if prevEdge.Right == nextEdge.Left && prevEdge.Parent == nextEdge.Parent {
			if prevEdge.Child != NullNode {
				b.unindexEdge(prev)
				prevEdge.Child = NullNode
			}
			if nextEdge.Child != NullNode {
				b.unindexEdge(next)
				nextEdge.Child = NullNode
			}
			prevEdge.Right = nextEdge.Right
			prevEdge.Next = nextEdge.Next
			b.edges.free(next)
			merged++
			continue
		}
		if merged >= longSquashRunThreshold {
			b.log.Warnw("squash collapsed a long run of edges", "child", child, "edges", merged)
		}
		merged = 1
		prev = next
	}

	for cur := head; cur != NoEdge; {
		e := b.edges.get(cur)
		if e.Child == NullNode {
			e.Child = child
			b.indexEdge(cur)
		}
		cur = e.Next
	}
}
