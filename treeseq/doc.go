/*
Package treeseq implements the incremental builder at the core of an
ancestral-recombination-graph inference pipeline.

It accepts a stream of inferred haplotype paths, each a contiguous tiling of
parent intervals along a genomic coordinate, and maintains a compact,
indexed genealogy: a node table, a per-child path store, and three ordered
indexes over edges (by left coordinate, by right coordinate, and by full
path key). Two opportunistic rewrites keep the structure small as paths
accumulate:

  - path compression, which detects shared prefixes/segments across
    haplotypes and replaces the duplicated parentage with a synthesized
    intermediate ancestor node
  - squashing, which coalesces contiguous same-parent edges on a path

A Builder is single-threaded and holds no state beyond its own arenas; it
does not infer paths, match ancestors, or write any file format. Those are
external collaborators (see package ancestorstore for the one input
contract this package depends on, and package tables for the output
collection this package emits via Dump).

# Arena model

Edges and index nodes are allocated from slab-backed arenas addressed by
small integer ids (EdgeID, indexNodeID) rather than pointers, following the
same "arena index, not address pointer" discipline as forestrie's urkle
package. An edge transiently detached from the indexes (mid-compression,
mid-squash) carries the sentinel child id NullNode; no edge may carry that
sentinel once control returns to the caller.

# Errors

Operations return a *TreeSeqError wrapping one of the package's sentinel
errors (ErrBadPathParent, ErrBadPathTime, ErrNonContiguousEdges,
ErrNoMemory, ErrAssertionFailure, ErrUnsortedEdges). None of them roll back
partial mutation, so after any of them, ErrAssertionFailure included, the
caller should discard the builder.
*/
package treeseq
