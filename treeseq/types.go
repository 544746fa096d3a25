package treeseq

// Epsilon is the fixed time decrement applied when synthesizing a
// path-compression ancestor. It is a power of two so that repeated
// subtraction across many generations never accumulates floating-point
// drift (§4.5).
const Epsilon = 1.0 / 65536.0

// NodeID identifies a row of the node table. Ids are assigned in insertion
// order starting at 0.
type NodeID int32

// NullNode is the sentinel child value that marks an edge as transiently
// detached from the ordered indexes.
const NullNode NodeID = -1

// EdgeID identifies a record in the edge arena.
type EdgeID int32

// NoEdge is the sentinel "absent edge" id, used for chain termination and
// for "no match found" returns.
const NoEdge EdgeID = -1

// NodeFlags is a bitfield carried on every node.
type NodeFlags uint32

const (
	// NodeFlagIsPCAncestor marks a node synthesized by path compression
	// (§3, IS_PC_ANCESTOR).
	NodeFlagIsPCAncestor NodeFlags = 1 << iota
)

// AddPathFlags controls add_path behavior (§4.4).
type AddPathFlags uint32

const (
	// CompressPath runs path compression (§4.5) after the new path is
	// assembled and before it is indexed.
	CompressPath AddPathFlags = 1 << iota
	// ExtendedChecks runs CheckState after the call completes, mirroring
	// TSI_EXTENDED_CHECKS in the originating C source. Expensive; intended
	// for tests and debugging, not hot loops.
	ExtendedChecks
)

// Node is a row of the append-only node table (§3).
type Node struct {
	Time  float64
	Flags NodeFlags
}

// IsPCAncestor reports whether n was synthesized by path compression.
func (n Node) IsPCAncestor() bool { return n.Flags&NodeFlagIsPCAncestor != 0 }

// Edge is one indexed interval assertion: child inherits from parent over
// [Left, Right). Time is cached at creation as time(Child) (§3).
type Edge struct {
	Left, Right int64
	Parent      NodeID
	Child       NodeID
	Time        float64

	// Next chains this edge to the following edge (by Left order) on the
	// same child's path. NoEdge terminates the chain.
	Next EdgeID

	inUse bool
}

// PathSegment is one (left, right, parent) triple as delivered to AddPath,
// in the caller's right-to-left iteration order (§4.4).
type PathSegment struct {
	Left, Right int64
	Parent      NodeID
}

// Mutation is one row of the per-site mutation list (§3, §4.7).
type Mutation struct {
	Site         int64
	Node         NodeID
	DerivedState uint8
	// Next chains to the mutation recorded after this one at the same site
	// (the mutation table is a per-site, append-ordered linked list); Dump
	// walks the list head-to-tail to compute parent_mutation.
	Next MutationID
}

// MutationID identifies a record in the mutation arena.
type MutationID int32

// NoMutation is the sentinel "absent mutation" id.
const NoMutation MutationID = -1
