package treeseq

import (
	"github.com/forestrie/go-treeseq/tables"
)

// DumpFlags controls Dump behavior (§6).
type DumpFlags uint32

const (
	// DumpNoInit skips clearing tbls before emitting rows, so the caller's
	// existing table collection is reused and appended to in place.
	DumpNoInit DumpFlags = 1 << iota
)

// Dump emits nodes (by id), edges (by child then by the child's path
// order), sites (one row per site, ancestral state "0"), and mutations (by
// site then list order, with parent_mutation set to the previous mutation
// id recorded at that site) into tbls (§4.9).
func (b *Builder) Dump(tbls *tables.Collection, flags DumpFlags) error {
	if flags&DumpNoInit == 0 {
		tbls.Clear()
	}

	for i := 0; i < b.nodes.count(); i++ {
		n := b.nodes.get(NodeID(i))
		tbls.Nodes = append(tbls.Nodes, tables.NodeRow{
			Flags: uint32(n.Flags),
			Time:  n.Time,
		})
	}

	for child := NodeID(0); int(child) < len(b.pathHead); child++ {
		for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
			e := b.edges.get(cur)
			tbls.Edges = append(tbls.Edges, tables.EdgeRow{
				Left:   e.Left,
				Right:  e.Right,
				Parent: int32(e.Parent),
				Child:  int32(e.Child),
			})
		}
	}

	for i := 0; i < b.numSites; i++ {
		tbls.Sites = append(tbls.Sites, tables.SiteRow{
			Position:       int64(i),
			AncestralState: "0",
		})
	}

	for site := 0; site < len(b.mutations.heads); site++ {
		var prev *int32
		for cur := b.mutations.heads[site]; cur != NoMutation; {
			rec := b.mutations.records[cur]
			tbls.Mutations = append(tbls.Mutations, tables.MutationRow{
				Site:         rec.Site,
				Node:         int32(rec.Node),
				Parent:       prev,
				DerivedState: derivedStateString(rec.DerivedState),
			})
			// id is the row index just appended to tbls.Mutations, so the
			// next mutation at this site points at that row.
			id := int32(len(tbls.Mutations) - 1)
			prev = &id
			cur = rec.Next
		}
	}

	tbls.SequenceLength = int64(b.numSites)
	tbls.BuildID = b.buildID.String()
	return nil
}

func derivedStateString(state uint8) string {
	if state == 0 {
		return "0"
	}
	return "1"
}
