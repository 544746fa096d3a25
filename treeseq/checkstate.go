package treeseq

import (
	"errors"
	"fmt"
	"io"
)

// CheckState walks the path store and all three indexes, returning an
// aggregated error (via errors.Join) describing every invariant violation
// found rather than stopping at the first one (§8, §9 "print_state" with
// a built-in invariant check). A nil return means the builder is
// internally consistent.
func (b *Builder) CheckState() error {
	var problems []error

	totalPathEdges := 0
	for child := NodeID(0); int(child) < len(b.pathHead); child++ {
		n := 0
		var prevEdge *Edge
		for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
			e := b.edges.get(cur)
			n++
			if e.Child == NullNode {
				problems = append(problems, fmt.Errorf("edge %d on child %d path is detached (child=NullNode) at rest", cur, child))
			} else if e.Child != child {
				problems = append(problems, fmt.Errorf("edge %d on child %d path has child field %d", cur, child, e.Child))
			}
			if b.nodes.valid(e.Parent) && b.nodes.get(e.Parent).Time <= b.nodes.get(child).Time {
				problems = append(problems, fmt.Errorf("edge %d: parent %d time %v does not exceed child %d time %v",
					cur, e.Parent, b.nodes.get(e.Parent).Time, child, b.nodes.get(child).Time))
			}
			if prevEdge != nil {
				if prevEdge.Right != e.Left {
					problems = append(problems, fmt.Errorf("child %d path is not left-contiguous: %d != %d", child, prevEdge.Right, e.Left))
				}
				// Only path-compression ancestors are squashed unconditionally;
				// a path added without CompressPath keeps its input edges.
				if b.nodes.get(child).IsPCAncestor() && prevEdge.Right == e.Left && prevEdge.Parent == e.Parent {
					problems = append(problems, fmt.Errorf("pc ancestor %d path has adjacent same-parent edges that should have squashed (right=%d, parent=%d)", child, e.Left, e.Parent))
				}
			}
			if !b.edgeIndexed(cur) {
				problems = append(problems, fmt.Errorf("edge %d on child %d path missing from one or more indexes", cur, child))
			}
			prevEdge = e
		}
		if b.nodes.get(child).IsPCAncestor() {
			for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
				e := b.edges.get(cur)
				if b.nodes.get(e.Parent).Time-b.nodes.get(child).Time < Epsilon-1e-12 {
					problems = append(problems, fmt.Errorf("pc ancestor %d: parent %d time gap %v below epsilon", child, e.Parent, b.nodes.get(e.Parent).Time-b.nodes.get(child).Time))
				}
			}
		}
		totalPathEdges += n
	}

	live := b.edges.liveCount()
	if live != totalPathEdges {
		problems = append(problems, fmt.Errorf("live edge count %d does not match Σ path lengths %d", live, totalPathEdges))
	}
	if b.leftIndex.count != live || b.rightIndex.count != live || b.pathIndex.count != live {
		problems = append(problems, fmt.Errorf("index counts (%d,%d,%d) do not all match live edge count %d",
			b.leftIndex.count, b.rightIndex.count, b.pathIndex.count, live))
	}

	return errors.Join(problems...)
}

// edgeIndexed reports whether id currently has an entry in all three
// ordered indexes (used by CheckState; not on the hot path).
func (b *Builder) edgeIndexed(id EdgeID) bool {
	for _, ix := range [...]*orderedIndex{b.leftIndex, b.rightIndex, b.pathIndex} {
		_, exact, _ := ix.findClosest(id)
		if exact == noIndexNode || ix.arena.get(exact).edge != id {
			return false
		}
	}
	return true
}

// PrintState writes a diagnostic dump to out: node/edge counts, the build
// id, and the per-child path lengths, followed by the result of
// CheckState (§6, print_state).
func (b *Builder) PrintState(out io.Writer) error {
	fmt.Fprintf(out, "treeseq builder %s\n", b.buildID)
	fmt.Fprintf(out, "nodes=%d edges=%d mutations=%d sites=%d\n",
		b.GetNumNodes(), b.GetNumEdges(), b.GetNumMutations(), b.numSites)
	for child := NodeID(0); int(child) < len(b.pathHead); child++ {
		n := 0
		for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
			n++
		}
		fmt.Fprintf(out, "  child %d: time=%v flags=%v edges=%d\n", child, b.nodes.get(child).Time, b.nodes.get(child).Flags, n)
	}
	if err := b.CheckState(); err != nil {
		fmt.Fprintf(out, "invariant violations:\n%v\n", err)
		return err
	}
	fmt.Fprintln(out, "ok")
	return nil
}
