package simgraph

import (
	"errors"
	"testing"

	"github.com/mwold/netplague/pkg/worldmap"
)

func testNodes(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{
			ID:    uint64(i + 1),
			Coord: worldmap.Coord{Lon: float64(i), Lat: float64(i)},
			Class: DeviceComputer,
			Mix:   MixForClass(DeviceComputer),
		}
	}
	return nodes
}

func TestNewGraph_Valid(t *testing.T) {
	nodes := testNodes(3)
	links := []Link{
		NewLink(1, 2, LinkFiber, 0.9),
		NewLink(2, 3, LinkVPNTunnel, 0.6),
	}

	g, err := NewGraph(nodes, links)
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	if g.LinkCount() != 2 {
		t.Errorf("LinkCount = %d, want 2", g.LinkCount())
	}
	if g.Degree(2) != 2 {
		t.Errorf("Degree(2) = %d, want 2", g.Degree(2))
	}
	if g.IsolatedCount() != 0 {
		t.Errorf("IsolatedCount = %d, want 0", g.IsolatedCount())
	}
}

func TestNewGraph_RejectsSelfLink(t *testing.T) {
	_, err := NewGraph(testNodes(2), []Link{{A: 1, B: 1, Type: LinkFiber}})
	if !errors.Is(err, ErrSelfLink) {
		t.Errorf("NewGraph self-link error = %v, want ErrSelfLink", err)
	}
}

func TestNewGraph_RejectsDuplicate(t *testing.T) {
	links := []Link{
		NewLink(1, 2, LinkFiber, 0.9),
		NewLink(2, 1, LinkVPNTunnel, 0.5), // same unordered pair
	}
	_, err := NewGraph(testNodes(2), links)
	if !errors.Is(err, ErrDuplicateLink) {
		t.Errorf("NewGraph duplicate error = %v, want ErrDuplicateLink", err)
	}
}

func TestNewGraph_RejectsUnknownEndpoint(t *testing.T) {
	_, err := NewGraph(testNodes(2), []Link{NewLink(1, 99, LinkFiber, 0.9)})
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("NewGraph unknown endpoint error = %v, want ErrUnknownNode", err)
	}
}

func TestGraph_SnapshotsAreCopies(t *testing.T) {
	g, err := NewGraph(testNodes(2), []Link{NewLink(1, 2, LinkFiber, 0.9)})
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}

	nodes := g.Nodes()
	nodes[0].ID = 999
	if _, ok := g.Node(999); ok {
		t.Error("Mutating the Nodes() snapshot leaked into the graph")
	}

	links := g.Links()
	links[0].Weight = -1
	if g.Links()[0].Weight == -1 {
		t.Error("Mutating the Links() snapshot leaked into the graph")
	}
}

func TestGraph_IsolatedCount(t *testing.T) {
	g, err := NewGraph(testNodes(4), []Link{NewLink(1, 2, LinkFiber, 0.9)})
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}
	if g.IsolatedCount() != 2 {
		t.Errorf("IsolatedCount = %d, want 2", g.IsolatedCount())
	}
}

func TestLink_CanonicalOrdering(t *testing.T) {
	l := NewLink(7, 3, LinkFiber, 0.5)
	if l.A != 3 || l.B != 7 {
		t.Errorf("NewLink(7,3) = {%d,%d}, want {3,7}", l.A, l.B)
	}
	if l.Other(3) != 7 || l.Other(7) != 3 {
		t.Error("Other() returned wrong endpoint")
	}
}

func TestLinkTypeSet(t *testing.T) {
	mix := NewLinkTypeSet(LinkMunicipalWiFi, LinkFiber)

	if !mix.Has(LinkFiber) || mix.Has(LinkVPNTunnel) {
		t.Errorf("LinkTypeSet membership wrong: %v", mix)
	}
	if mix.Count() != 2 {
		t.Errorf("Count = %d, want 2", mix.Count())
	}

	best, ok := mix.Best()
	if !ok || best != LinkFiber {
		t.Errorf("Best = %v/%v, want fiber", best, ok)
	}

	empty := LinkTypeSet(0)
	if _, ok := empty.Best(); ok {
		t.Error("Best on empty set should report not found")
	}
}

func TestMixForClass(t *testing.T) {
	tests := []struct {
		class DeviceClass
		has   LinkType
		not   LinkType
	}{
		{DeviceSmartphone, LinkMunicipalWiFi, LinkFiber},
		{DeviceIoT, LinkMunicipalWiFi, LinkVPNTunnel},
		{DeviceServer, LinkFiber, LinkMunicipalWiFi},
	}

	for _, tt := range tests {
		mix := MixForClass(tt.class)
		if !mix.Has(tt.has) {
			t.Errorf("%v mix missing %v", tt.class, tt.has)
		}
		if mix.Has(tt.not) {
			t.Errorf("%v mix should not include %v", tt.class, tt.not)
		}
	}

	// Computer supports everything
	if MixForClass(DeviceComputer).Count() != 3 {
		t.Error("Computer mix should include all three link types")
	}
}
