package treeseq

import "fmt"

// mutationTable is the per-site linked list of mutations (§3, §4.7). Like
// the edge arena, records are pooled; unlike edges, mutations are never
// freed individually (the whole builder is torn down at once, per §5's
// bump-allocator note).
type mutationTable struct {
	records []Mutation
	heads   []MutationID // per site, first mutation appended
	tails   []MutationID // per site, most recently appended mutation
	total   int
}

func newMutationTable(numSites int) *mutationTable {
	heads := make([]MutationID, numSites)
	tails := make([]MutationID, numSites)
	for i := range heads {
		heads[i] = NoMutation
		tails[i] = NoMutation
	}
	return &mutationTable{heads: heads, tails: tails}
}

func (m *mutationTable) count() int { return m.total }

// add appends (site, node, state) to site's list (§4.7). The first
// mutation recorded at a site must have state 1, since the ancestral state
// is 0 by construction.
func (m *mutationTable) add(site int64, node NodeID, state uint8) (MutationID, error) {
	if site < 0 || int(site) >= len(m.heads) {
		return NoMutation, fmt.Errorf("site %d out of range [0,%d)", site, len(m.heads))
	}
	if m.heads[site] == NoMutation && state != 1 {
		return NoMutation, fmt.Errorf("site %d: first mutation must have derived_state=1, got %d", site, state)
	}
	id := MutationID(len(m.records))
	m.records = append(m.records, Mutation{Site: site, Node: node, DerivedState: state, Next: NoMutation})
	if m.heads[site] == NoMutation {
		m.heads[site] = id
	} else {
		m.records[m.tails[site]].Next = id
	}
	m.tails[site] = id
	m.total++
	return id, nil
}

// AddMutations appends mutations for node (§6, add_mutations). sites and
// derivedStates must be the same length.
func (b *Builder) AddMutations(node NodeID, sites []int64, derivedStates []uint8) error {
	if len(sites) != len(derivedStates) {
		return newError(ErrCodeGeneric, fmt.Errorf("sites and derivedStates length mismatch: %d vs %d", len(sites), len(derivedStates)))
	}
	if !b.nodes.valid(node) {
		return newError(ErrCodeGeneric, fmt.Errorf("node %d does not exist", node))
	}
	b.frozen = false
	for i := range sites {
		if _, err := b.mutations.add(sites[i], node, derivedStates[i]); err != nil {
			return newError(ErrCodeGeneric, err)
		}
	}
	return nil
}
