package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionClear(t *testing.T) {
	var c Collection
	c.Nodes = append(c.Nodes, NodeRow{Time: 1})
	c.Edges = append(c.Edges, EdgeRow{Left: 0, Right: 1})
	c.Sites = append(c.Sites, SiteRow{Position: 0, AncestralState: "0"})
	c.Mutations = append(c.Mutations, MutationRow{Site: 0, DerivedState: "1"})
	c.SequenceLength = 1
	c.BuildID = "abc"

	c.Clear()
	require.Empty(t, c.Nodes)
	require.Empty(t, c.Edges)
	require.Empty(t, c.Sites)
	require.Empty(t, c.Mutations)
	require.Zero(t, c.SequenceLength)
	require.Empty(t, c.BuildID)
}

func TestCollectionEncodeDecodeRoundTrip(t *testing.T) {
	parentID := int32(0)
	orig := Collection{
		Nodes: []NodeRow{{Flags: 0, Time: 2}, {Flags: 1, Time: 1}},
		Edges: []EdgeRow{{Left: 0, Right: 3, Parent: 0, Child: 1}},
		Sites: []SiteRow{{Position: 0, AncestralState: "0"}},
		Mutations: []MutationRow{
			{Site: 0, Node: 1, Parent: nil, DerivedState: "1"},
			{Site: 0, Node: 1, Parent: &parentID, DerivedState: "0"},
		},
		SequenceLength: 3,
		BuildID:        "test-build",
	}

	data, err := orig.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var decoded Collection
	require.NoError(t, decoded.Decode(data))
	require.Equal(t, orig, decoded)
}
