package treeseq

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// builderConfig collects the knobs Alloc accepts. It follows the teacher's
// functional-options idiom (massifs.Option) rather than a struct literal,
// since most callers only ever override one or two fields.
type builderConfig struct {
	nodeChunkSize int
	edgeChunkSize int
	log           *zap.SugaredLogger
	buildID       uuid.UUID
	indexSeed     uint64
}

// Option configures a Builder at Alloc time.
type Option func(*builderConfig)

// WithNodeChunkSize sets the growth chunk for the node table (§4.1,
// node_chunk_size).
func WithNodeChunkSize(n int) Option {
	return func(c *builderConfig) { c.nodeChunkSize = n }
}

// WithEdgeChunkSize sets the growth chunk for the edge arena (§4.2,
// edge_chunk_size).
func WithEdgeChunkSize(n int) Option {
	return func(c *builderConfig) { c.edgeChunkSize = n }
}

// WithLogger attaches a structured logger. Compression contig decisions log
// at Debug; squash runs that collapse an unusually long contiguous run log
// at Warn. Defaults to a no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *builderConfig) { c.log = log }
}

// WithBuildID overrides the builder's provenance id, which otherwise
// defaults to a freshly generated uuid.UUID. Tests that need deterministic
// dumps should set this explicitly.
func WithBuildID(id uuid.UUID) Option {
	return func(c *builderConfig) { c.buildID = id }
}

// WithIndexSeed pins the seed used to derive treap priorities in the three
// ordered indexes. The seed only affects internal tree shape, never
// ordering semantics, but pinning it makes CheckState traversal order
// reproducible across runs with identical input.
func WithIndexSeed(seed uint64) Option {
	return func(c *builderConfig) { c.indexSeed = seed }
}

func defaultConfig() builderConfig {
	return builderConfig{
		nodeChunkSize: defaultNodeChunkSize,
		edgeChunkSize: defaultEdgeChunkSize,
		log:           zap.NewNop().Sugar(),
		indexSeed:     0x9e3779b97f4a7c15,
	}
}
