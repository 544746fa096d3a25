package treeseq

import (
	"fmt"
	"math"
)

// pcMatch pairs a new (unindexed) edge on the child's path with an
// existing indexed edge sharing its (left, right, parent) key.
type pcMatch struct {
	source EdgeID // on the new child's path
	dest   EdgeID // already indexed, belongs to some other child
}

// compress runs path compression (§4.5) over child's freshly assembled,
// not-yet-indexed path. It may synthesize new ancestor nodes and mutate
// the indexed edges of other children in place; it never indexes child's
// own path (the caller squashes and indexes it afterward, per step 4/5 of
// add_path).
func (b *Builder) compress(child NodeID) error {
	var matches []pcMatch
	for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
		e := b.edges.get(cur)
		if dest, ok := b.findPathPrefixMatch(e.Left, e.Right, e.Parent); ok {
			matches = append(matches, pcMatch{source: cur, dest: dest})
		}
	}

	i := 0
	for i < len(matches) {
		j := i + 1
		for j < len(matches) {
			prevSrc := b.edges.get(matches[j-1].source)
			curSrc := b.edges.get(matches[j].source)
			prevDest := b.edges.get(matches[j-1].dest)
			curDest := b.edges.get(matches[j].dest)
			if curSrc.Left != prevSrc.Right || curDest.Child != prevDest.Child {
				break
			}
			j++
		}
		if j-i >= 2 {
			if err := b.applyContig(matches[i:j]); err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}

// findPathPrefixMatch searches path_index for any existing edge keyed
// (left, right, parent, *) regardless of child, by probing with child=0
// and inspecting the matched node and its neighbors (§4.5 step 1). Because
// path_index orders child ascending last, any true match sorts at or after
// this probe position.
func (b *Builder) findPathPrefixMatch(left, right int64, parent NodeID) (EdgeID, bool) {
	probe := b.edges.alloc()
	defer b.edges.free(probe)
	pe := b.edges.get(probe)
	pe.Left, pe.Right, pe.Parent, pe.Child = left, right, parent, 0

	pred, exact, succ := b.pathIndex.findClosest(probe)
	for _, candidate := range [...]indexNodeID{exact, pred, succ} {
		if candidate == noIndexNode {
			continue
		}
		id := b.pathIndex.arena.get(candidate).edge
		ce := b.edges.get(id)
		if ce.Left == left && ce.Right == right && ce.Parent == parent {
			return id, true
		}
	}
	return NoEdge, false
}

// applyContig processes one contig of size >= 2 (§4.5 step 3): either
// reusing an existing PC ancestor, or synthesizing a new one. A single
// matched segment is left as a direct edge; compression only pays off once
// two or more contiguous segments share the same destination child.
func (b *Builder) applyContig(contig []pcMatch) error {
	sharedChild := b.edges.get(contig[0].dest).Child

	if b.nodes.get(sharedChild).IsPCAncestor() {
		for _, m := range contig {
			b.edges.get(m.source).Parent = sharedChild
		}
		return nil
	}
	return b.synthesizePCAncestor(sharedChild, contig)
}

func (b *Builder) synthesizePCAncestor(sharedChild NodeID, contig []pcMatch) error {
	minParentTime := math.Inf(1)
	for _, m := range contig {
		pt := b.nodes.get(b.edges.get(m.source).Parent).Time
		if pt < minParentTime {
			minParentTime = pt
		}
	}
	pcTime := minParentTime - Epsilon
	childTime := b.nodes.get(sharedChild).Time
	if pcTime <= childTime {
		return assertionFailure(fmt.Errorf(
			"pc ancestor time %v does not exceed shared child %d time %v", pcTime, sharedChild, childTime))
	}

	p := b.addNodeInternal(pcTime, NodeFlagIsPCAncestor)
	b.log.Debugw("synthesized path-compression ancestor", "node", p, "sharedChild", sharedChild, "time", pcTime, "contigLen", len(contig))

	// Build p's own path: one new (unindexed) edge per contig entry,
	// parented on the *original* parent captured before redirecting.
	var pHead, pTail EdgeID = NoEdge, NoEdge
	for _, m := range contig {
		src := b.edges.get(m.source)
		id := b.edges.alloc()
		ne := b.edges.get(id)
		ne.Left, ne.Right = src.Left, src.Right
		ne.Parent = src.Parent
		ne.Child = p
		ne.Time = pcTime
		ne.Next = NoEdge
		if pTail == NoEdge {
			pHead = id
		} else {
			b.edges.get(pTail).Next = id
		}
		pTail = id
	}
	b.pathHead[p] = b.squashNonIndexed(pHead)

	// Redirect the new child's (still unindexed) edges to p.
	for _, m := range contig {
		b.edges.get(m.source).Parent = p
	}

	// Detach the existing indexed edges, reparenting them to p.
	for _, m := range contig {
		b.unindexEdge(m.dest)
		d := b.edges.get(m.dest)
		d.Parent = p
		d.Child = NullNode
	}
	b.squashIndexed(sharedChild)

	for cur := b.pathHead[p]; cur != NoEdge; cur = b.edges.get(cur).Next {
		b.indexEdge(cur)
	}
	return nil
}
