package network

import (
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/perr"
	"github.com/katalvlaran/lvlath/core"
)

// LPNNode is one vertex of the Line Planning Network: an access, egress,
// transfer or service node. LineID and Direction are set only for
// service nodes.
type LPNNode struct {
	Name      string
	LineID    *model.LineNr
	Direction *model.DirectionName
}

// LPNLink is one directed edge of the Line Planning Network.
// LineID and Frequency are populated only for activities that carry
// them: IN_VEHICLE carries LineID only, ACCESS_LINE carries both,
// EGRESS_LINE and WALKING carry neither.
type LPNLink struct {
	From, To string
	Activity Activity
	Duration time.Duration
	LineID   *model.LineNr
	Frequency *model.LineFrequency
}

// edgeKey identifies a link by its ordered endpoint pair. Because the
// LPN is a directed multigraph (e.g. two ACCESS_LINE edges can share an
// endpoint pair at different frequencies), GetLinkIndex returns the
// first inserted edge between the pair, matching the builder's
// insertion order.
type edgeKey struct {
	from, to string
}

// LinePlanningNetwork is the directed multi-activity graph described in
// spec.md §3/§4.2. Topology (adjacency, directedness, vertex/edge
// counts) is delegated to an lvlath/core.Graph; LPNLink attributes
// (activity, duration, line, frequency) live in a parallel
// insertion-ordered slice since core.Graph carries no per-edge payload.
type LinePlanningNetwork struct {
	graph *core.Graph

	nodes     []LPNNode
	nodeIndex map[string]int

	links     []LPNLink
	linkIndex map[edgeKey]int

	incoming map[string][]int
	outgoing map[string][]int
}

// newLinePlanningNetwork constructs an empty network over a fresh
// directed, weighted, multi-edge graph.
func newLinePlanningNetwork() (*LinePlanningNetwork, error) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted(), core.WithMultiEdges())
	if !g.Directed() {
		return nil, perr.InvalidGraph("line planning network requires a directed graph")
	}
	return &LinePlanningNetwork{
		graph:     g,
		nodeIndex: make(map[string]int),
		linkIndex: make(map[edgeKey]int),
		incoming:  make(map[string][]int),
		outgoing:  make(map[string][]int),
	}, nil
}

// addNode registers node if not already present and returns its index.
func (n *LinePlanningNetwork) addNode(node LPNNode) (int, error) {
	if idx, ok := n.nodeIndex[node.Name]; ok {
		return idx, nil
	}
	if err := n.graph.AddVertex(node.Name); err != nil {
		return 0, err
	}
	idx := len(n.nodes)
	n.nodes = append(n.nodes, node)
	n.nodeIndex[node.Name] = idx
	return idx, nil
}

// addLink appends a new directed link, always inserted (the network is
// a multigraph: two links may share an endpoint pair).
func (n *LinePlanningNetwork) addLink(link LPNLink) error {
	weight := link.Duration.Milliseconds()
	if _, err := n.graph.AddEdge(link.From, link.To, weight); err != nil {
		return err
	}
	idx := len(n.links)
	n.links = append(n.links, link)
	key := edgeKey{from: link.From, to: link.To}
	if _, exists := n.linkIndex[key]; !exists {
		n.linkIndex[key] = idx
	}
	n.outgoing[link.From] = append(n.outgoing[link.From], idx)
	n.incoming[link.To] = append(n.incoming[link.To], idx)
	return nil
}

// IncomingLinkIndices returns the indices, in insertion order, of links
// terminating at nodeName.
func (n *LinePlanningNetwork) IncomingLinkIndices(nodeName string) []int {
	return append([]int(nil), n.incoming[nodeName]...)
}

// OutgoingLinkIndices returns the indices, in insertion order, of links
// originating at nodeName.
func (n *LinePlanningNetwork) OutgoingLinkIndices(nodeName string) []int {
	return append([]int(nil), n.outgoing[nodeName]...)
}

// AllNodes returns the network's nodes in insertion order.
func (n *LinePlanningNetwork) AllNodes() []LPNNode {
	return append([]LPNNode(nil), n.nodes...)
}

// AllNodeNames returns the network's node names in insertion order.
func (n *LinePlanningNetwork) AllNodeNames() []string {
	names := make([]string, len(n.nodes))
	for i, node := range n.nodes {
		names[i] = node.Name
	}
	return names
}

// AllLinks returns the network's links in insertion order.
func (n *LinePlanningNetwork) AllLinks() []LPNLink {
	return append([]LPNLink(nil), n.links...)
}

// GetLinkIndex returns the index of the first link inserted between
// source and target, and whether one exists.
func (n *LinePlanningNetwork) GetLinkIndex(source, target string) (int, bool) {
	idx, ok := n.linkIndex[edgeKey{from: source, to: target}]
	return idx, ok
}

// NodeCount returns the number of vertices the underlying graph holds.
func (n *LinePlanningNetwork) NodeCount() int {
	return n.graph.VertexCount()
}

// LinkCount returns the number of edges the underlying graph holds.
func (n *LinePlanningNetwork) LinkCount() int {
	return n.graph.EdgeCount()
}

// HasLink reports whether the underlying graph has at least one edge
// from source to target.
func (n *LinePlanningNetwork) HasLink(source, target string) bool {
	return n.graph.HasEdge(source, target)
}
