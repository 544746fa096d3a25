package treeseq

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Builder is the incremental tree sequence construction core (§2). It is
// single-threaded, holds no global state, and owns its own edge and
// index-node arenas (§5).
type Builder struct {
	cfg builderConfig
	log *zap.SugaredLogger

	buildID uuid.UUID

	nodes    *nodeTable
	edges    *edgeArena
	pathHead []EdgeID // per NodeID, head of that child's path chain

	leftIndex  *orderedIndex
	rightIndex *orderedIndex
	pathIndex  *orderedIndex

	mutations *mutationTable

	numSites int

	frozen      bool
	frozenLeft  []Edge
	frozenRight []Edge
}

// Alloc initializes a Builder (§6, alloc). alleles determines the number
// of sites: num_sites is the count of entries equal to nil (an unset
// ancestral allele slot, mirroring the C contract where a populated entry
// means the site table row already exists upstream).
func Alloc(alleles []*string, opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	numSites := 0
	for _, a := range alleles {
		if a == nil {
			numSites++
		}
	}

	b := &Builder{
		cfg:       cfg,
		log:       cfg.log,
		buildID:   cfg.buildID,
		nodes:     newNodeTable(cfg.nodeChunkSize),
		edges:     newEdgeArena(cfg.edgeChunkSize),
		mutations: newMutationTable(numSites),
		numSites:  numSites,
	}
	if b.buildID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, noMemory(fmt.Errorf("generating build id: %w", err))
		}
		b.buildID = id
	}
	b.leftIndex = newOrderedIndex(b.edges, leftLess, cfg.indexSeed^1)
	b.rightIndex = newOrderedIndex(b.edges, rightLess, cfg.indexSeed^2)
	b.pathIndex = newOrderedIndex(b.edges, pathLess, cfg.indexSeed^3)
	return b, nil
}

// BuildID returns the provenance identifier stamped at Alloc time.
func (b *Builder) BuildID() uuid.UUID { return b.buildID }

// NumSites returns the site count fixed at Alloc time.
func (b *Builder) NumSites() int { return b.numSites }

// AddNode appends a node (§4.1, add_node). No existing edge is perturbed.
func (b *Builder) AddNode(time float64, flags NodeFlags) NodeID {
	return b.addNodeInternal(time, flags)
}

func (b *Builder) addNodeInternal(time float64, flags NodeFlags) NodeID {
	id := b.nodes.add(time, flags)
	b.pathHead = append(b.pathHead, NoEdge)
	return id
}

// GetNumNodes returns the node count.
func (b *Builder) GetNumNodes() int { return b.nodes.count() }

// GetNumEdges returns the live edge count (Σ_c |path(c)|).
func (b *Builder) GetNumEdges() int { return b.edges.liveCount() }

// GetNumMutations returns the total recorded mutation count.
func (b *Builder) GetNumMutations() int { return b.mutations.count() }

func (b *Builder) indexEdge(id EdgeID) {
	b.leftIndex.insert(id)
	b.rightIndex.insert(id)
	b.pathIndex.insert(id)
	b.frozen = false
}

func (b *Builder) unindexEdge(id EdgeID) {
	b.leftIndex.delete(id)
	b.rightIndex.delete(id)
	b.pathIndex.delete(id)
	b.frozen = false
}

// AddPath appends a full path for child (§4.4, add_path). segments must be
// supplied in right-to-left order (rightmost first); the resulting chain is
// left-to-right.
func (b *Builder) AddPath(child NodeID, segments []PathSegment, flags AddPathFlags) error {
	if !b.nodes.valid(child) {
		return badPathParent(fmt.Errorf("child node %d does not exist", child))
	}
	childTime := b.nodes.get(child).Time

	leftToRight := make([]PathSegment, len(segments))
	for i, seg := range segments {
		leftToRight[len(segments)-1-i] = seg
	}

	for _, seg := range leftToRight {
		if !b.nodes.valid(seg.Parent) {
			return badPathParent(fmt.Errorf("parent node %d does not exist", seg.Parent))
		}
		if b.nodes.get(seg.Parent).Time <= childTime {
			return badPathTime(fmt.Errorf(
				"parent %d time %v does not exceed child %d time %v",
				seg.Parent, b.nodes.get(seg.Parent).Time, child, childTime))
		}
	}
	for i := 1; i < len(leftToRight); i++ {
		if leftToRight[i-1].Right != leftToRight[i].Left {
			return nonContiguousEdges(fmt.Errorf(
				"gap or overlap between segment %d (right=%d) and segment %d (left=%d)",
				i-1, leftToRight[i-1].Right, i, leftToRight[i].Left))
		}
	}

	var head, tail EdgeID = NoEdge, NoEdge
	for _, seg := range leftToRight {
		id := b.edges.alloc()
		e := b.edges.get(id)
		e.Left, e.Right = seg.Left, seg.Right
		e.Parent = seg.Parent
		e.Child = child
		e.Time = childTime
		e.Next = NoEdge
		if tail == NoEdge {
			head = id
		} else {
			b.edges.get(tail).Next = id
		}
		tail = id
	}
	b.pathHead[child] = head

	if flags&CompressPath != 0 {
		if err := b.compress(child); err != nil {
			return err
		}
		b.pathHead[child] = b.squashNonIndexed(b.pathHead[child])
	}

	for cur := b.pathHead[child]; cur != NoEdge; cur = b.edges.get(cur).Next {
		b.indexEdge(cur)
	}

	if flags&ExtendedChecks != 0 {
		if err := b.CheckState(); err != nil {
			return assertionFailure(err)
		}
	}
	return nil
}
