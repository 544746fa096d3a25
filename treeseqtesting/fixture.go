// Package treeseqtesting provides deterministic test fixtures for package
// treeseq, grounded on the mmrtesting.TestContext / TestConfig shape: a
// config struct naming a fixed seed so repeated runs generate identical
// input, and a constructor that does the setup work and fails the test on
// error rather than returning one.
package treeseqtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-treeseq/treeseq"
)

// Config controls fixture generation.
type Config struct {
	// Seed drives the deterministic path generator below. Force it to a
	// fixed value so generated fixtures are identical from run to run.
	Seed     uint64
	NumSites int
}

// Fixture wraps a fresh Builder plus the RNG state used to generate paths
// against it.
type Fixture struct {
	T       *testing.T
	Builder *treeseq.Builder
	rng     uint64
}

// NewFixture allocates a Builder sized for cfg.NumSites sites and wraps it
// for deterministic path generation.
func NewFixture(t *testing.T, cfg Config) *Fixture {
	alleles := make([]*string, cfg.NumSites)
	b, err := treeseq.Alloc(alleles, treeseq.WithIndexSeed(cfg.Seed))
	require.NoError(t, err)
	return &Fixture{T: t, Builder: b, rng: cfg.Seed ^ 0xD1B54A32D192ED03}
}

func (f *Fixture) next() uint64 {
	f.rng += 0x9E3779B97F4A7C15
	x := f.rng
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// AddSampleNode appends a node at the given time via the wrapped Builder.
func (f *Fixture) AddSampleNode(time float64) treeseq.NodeID {
	return f.Builder.AddNode(time, 0)
}

// SingleSegmentPath builds a one-edge path spanning the full site range
// under parent, the boundary case named in §8 ("a single edge spans
// [0, num_sites)").
func (f *Fixture) SingleSegmentPath(child, parent treeseq.NodeID) []treeseq.PathSegment {
	return []treeseq.PathSegment{{Left: 0, Right: int64(f.Builder.NumSites()), Parent: parent}}
}

// RandomContiguousPath generates a left-to-right contiguous tiling of
// nSegments parents over [0, numSites), returned in the right-to-left
// order AddPath requires, using parents drawn uniformly from candidates.
func (f *Fixture) RandomContiguousPath(numSites int64, nSegments int, candidates []treeseq.NodeID) []treeseq.PathSegment {
	if nSegments <= 0 {
		nSegments = 1
	}
	bounds := make([]int64, nSegments+1)
	bounds[0] = 0
	bounds[nSegments] = numSites
	for i := 1; i < nSegments; i++ {
		bounds[i] = int64(f.next()%uint64(numSites-1)) + 1
	}
	// sort bounds in place (small n; insertion sort keeps this dependency-free)
	for i := 1; i < len(bounds); i++ {
		for j := i; j > 0 && bounds[j-1] > bounds[j]; j-- {
			bounds[j-1], bounds[j] = bounds[j], bounds[j-1]
		}
	}
	segs := make([]treeseq.PathSegment, 0, nSegments)
	for i := 0; i < nSegments; i++ {
		if bounds[i] == bounds[i+1] {
			continue
		}
		parent := candidates[f.next()%uint64(len(candidates))]
		segs = append(segs, treeseq.PathSegment{Left: bounds[i], Right: bounds[i+1], Parent: parent})
	}
	// reverse to right-to-left order, as AddPath's contract requires
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return segs
}
