// Package ancestorstore implements the one input contract this repository
// depends on but does not implement the producer of: a static, per-site
// segment encoding of ancestral haplotypes, as described peripherally in
// §1/§2 of the tree sequence builder spec and concretely in the
// originating `ancestor_store.c`. The ancestor-matching algorithm that
// populates a Store is an external collaborator; this package only reads
// and writes the segment encoding it hands off.
package ancestorstore

import (
	"cmp"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/slices"
)

// AncestorID identifies a row in a Store, assigned in insertion order.
type AncestorID int32

// Segment is one ancestor's haplotype encoding over the half-open site
// range [Start, End): one state byte per site plus the focal sites that
// defined the ancestor (mirrors ancestor_store.c's per-epoch segment
// record).
type Segment struct {
	Start      int64   `cbor:"start"`
	End        int64   `cbor:"end"`
	FocalSites []int64 `cbor:"focal_sites"`
	// Genotypes holds one state byte (0 or 1) per site in [Start, End); the
	// original packs these into nibbles, but a Go consumer has no reason to
	// pay that cost back out again on every read.
	Genotypes []byte `cbor:"genotypes"`
	// Age orders ancestors within an epoch (older ancestors have larger
	// Age); see GLOSSARY "Epoch".
	Age float64 `cbor:"age"`
}

// Store is a read-only, in-memory collection of ancestor segments indexed
// by site, ready for an ancestor-matching algorithm to query.
type Store struct {
	numSites int
	segments []Segment
	bySite   [][]AncestorID
}

// New creates an empty Store sized for numSites.
func New(numSites int) *Store {
	return &Store{numSites: numSites, bySite: make([][]AncestorID, numSites)}
}

// NumSites returns the site count the store was created with.
func (s *Store) NumSites() int { return s.numSites }

// NumAncestors returns the number of segments held.
func (s *Store) NumAncestors() int { return len(s.segments) }

// AddSegment appends seg and returns its assigned id.
func (s *Store) AddSegment(seg Segment) (AncestorID, error) {
	if seg.Start < 0 || seg.End > int64(s.numSites) || seg.Start >= seg.End {
		return 0, fmt.Errorf("ancestorstore: segment range [%d,%d) invalid for %d sites", seg.Start, seg.End, s.numSites)
	}
	if len(seg.Genotypes) != int(seg.End-seg.Start) {
		return 0, fmt.Errorf("ancestorstore: segment has %d genotype entries, want %d", len(seg.Genotypes), seg.End-seg.Start)
	}
	id := AncestorID(len(s.segments))
	s.segments = append(s.segments, seg)
	for site := seg.Start; site < seg.End; site++ {
		s.bySite[site] = append(s.bySite[site], id)
	}
	return id, nil
}

// Segment returns the segment for id.
func (s *Store) Segment(id AncestorID) Segment { return s.segments[id] }

// SegmentsAt returns the ids of every segment covering site, ordered
// oldest (largest Age) first.
func (s *Store) SegmentsAt(site int64) []AncestorID {
	ids := append([]AncestorID(nil), s.bySite[site]...)
	slices.SortFunc(ids, func(a, b AncestorID) int {
		return cmp.Compare(s.segments[b].Age, s.segments[a].Age)
	})
	return ids
}

// wireStore is the CBOR-friendly shape of a Store; bySite is recomputed on
// Load rather than serialized.
type wireStore struct {
	NumSites int       `cbor:"num_sites"`
	Segments []Segment `cbor:"segments"`
}

// Save encodes the store to CBOR.
func (s *Store) Save() ([]byte, error) {
	w := wireStore{NumSites: s.numSites, Segments: s.segments}
	data, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("ancestorstore: encode: %w", err)
	}
	return data, nil
}

// Load decodes a CBOR-encoded store, rebuilding the per-site index.
func Load(data []byte) (*Store, error) {
	var w wireStore
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("ancestorstore: decode: %w", err)
	}
	s := New(w.NumSites)
	for _, seg := range w.Segments {
		if _, err := s.AddSegment(seg); err != nil {
			return nil, err
		}
	}
	return s, nil
}
