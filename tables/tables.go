// Package tables defines the flat output table collection a Builder dumps
// into, and restores from. Layout follows §6/§9 of the tree sequence
// builder spec: nodes, edges, sites, mutations, in that order, with CBOR
// struct tags so the collection is ready for the external file-format
// glue the core explicitly does not implement.
package tables

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// NodeRow is one row of the node table (§6 output layout).
type NodeRow struct {
	Flags      uint32  `cbor:"flags"`
	Time       float64 `cbor:"time"`
	Population *int32  `cbor:"population"`
	Individual *int32  `cbor:"individual"`
}

// EdgeRow is one row of the edge table.
type EdgeRow struct {
	Left   int64 `cbor:"left"`
	Right  int64 `cbor:"right"`
	Parent int32 `cbor:"parent"`
	Child  int32 `cbor:"child"`
}

// SiteRow is one row of the site table. AncestralState is always "0" (§6).
type SiteRow struct {
	Position       int64  `cbor:"position"`
	AncestralState string `cbor:"ancestral_state"`
}

// MutationRow is one row of the mutation table. Parent is the id of the
// previous mutation recorded at the same site, or nil for the first.
type MutationRow struct {
	Site          int64  `cbor:"site"`
	Node          int32  `cbor:"node"`
	Parent        *int32 `cbor:"parent"`
	DerivedState  string `cbor:"derived_state"`
}

// Collection is the full set of tables Dump emits and Restore* consumes.
type Collection struct {
	Nodes     []NodeRow     `cbor:"nodes"`
	Edges     []EdgeRow     `cbor:"edges"`
	Sites     []SiteRow     `cbor:"sites"`
	Mutations []MutationRow `cbor:"mutations"`

	// SequenceLength equals num_sites (§4.9).
	SequenceLength int64 `cbor:"sequence_length"`

	// BuildID carries the builder's provenance uuid (ambient stack
	// addition: not part of the original C contract, but threaded through
	// so multiple dumps can be told apart downstream).
	BuildID string `cbor:"build_id"`
}

// Clear empties the collection in place, mirroring the NO_INIT dump option
// (§6: "If NO_INIT flag set, clear and reuse given tables").
func (c *Collection) Clear() {
	c.Nodes = c.Nodes[:0]
	c.Edges = c.Edges[:0]
	c.Sites = c.Sites[:0]
	c.Mutations = c.Mutations[:0]
	c.SequenceLength = 0
	c.BuildID = ""
}

// Encode serializes the collection to CBOR.
func (c *Collection) Encode() ([]byte, error) {
	data, err := cbor.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("tables: encode: %w", err)
	}
	return data, nil
}

// Decode populates c from a CBOR-encoded collection.
func (c *Collection) Decode(data []byte) error {
	if err := cbor.Unmarshal(data, c); err != nil {
		return fmt.Errorf("tables: decode: %w", err)
	}
	return nil
}
