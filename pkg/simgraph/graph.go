package simgraph

// Graph owns the node and link collections. Nodes are owned exclusively by
// the graph; links reference nodes by id. Both collections are immutable
// after construction, consumers only ever see copies.
type Graph struct {
	nodes     []Node
	nodeIndex map[uint64]int
	links     []Link
	adjacency map[uint64][]int // node id -> indices into links
}

// NewGraph validates and assembles a graph. Links with unknown endpoints,
// self-links, and duplicate pairs are rejected.
func NewGraph(nodes []Node, links []Link) (*Graph, error) {
	g := &Graph{
		nodes:     make([]Node, len(nodes)),
		nodeIndex: make(map[uint64]int, len(nodes)),
		links:     make([]Link, 0, len(links)),
		adjacency: make(map[uint64][]int, len(nodes)),
	}
	copy(g.nodes, nodes)

	for i, n := range g.nodes {
		g.nodeIndex[n.ID] = i
	}

	seen := make(map[[2]uint64]bool, len(links))
	for _, l := range links {
		l = NewLink(l.A, l.B, l.Type, l.Weight)
		if l.A == l.B {
			return nil, newGraphError("NewGraph", l.A, 0, ErrSelfLink)
		}
		if _, ok := g.nodeIndex[l.A]; !ok {
			return nil, newGraphError("NewGraph", l.A, 0, ErrUnknownNode)
		}
		if _, ok := g.nodeIndex[l.B]; !ok {
			return nil, newGraphError("NewGraph", l.B, 0, ErrUnknownNode)
		}
		if seen[l.key()] {
			return nil, newGraphError("NewGraph", l.A, l.B, ErrDuplicateLink)
		}
		seen[l.key()] = true

		idx := len(g.links)
		g.links = append(g.links, l)
		g.adjacency[l.A] = append(g.adjacency[l.A], idx)
		g.adjacency[l.B] = append(g.adjacency[l.B], idx)
	}

	return g, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id uint64) (Node, bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns a copy of the node collection in placement order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Links returns a copy of the link collection.
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.links))
	copy(out, g.links)
	return out
}

// IncidentLinks returns the links incident to the given node.
func (g *Graph) IncidentLinks(id uint64) []Link {
	indices := g.adjacency[id]
	out := make([]Link, len(indices))
	for i, idx := range indices {
		out[i] = g.links[idx]
	}
	return out
}

// Degree returns the number of links incident to the node.
func (g *Graph) Degree(id uint64) int {
	return len(g.adjacency[id])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int {
	return len(g.links)
}

// IsolatedCount returns the number of nodes with no incident links.
// Isolation is meaningful: isolated nodes can never be infected through
// propagation.
func (g *Graph) IsolatedCount() int {
	n := 0
	for _, node := range g.nodes {
		if len(g.adjacency[node.ID]) == 0 {
			n++
		}
	}
	return n
}
