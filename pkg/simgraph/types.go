package simgraph

import (
	"github.com/mwold/netplague/pkg/worldmap"
)

// DeviceClass is the closed set of simulated device categories.
type DeviceClass int

const (
	DeviceIoT DeviceClass = iota
	DeviceComputer
	DeviceServer
	DeviceSmartphone
)

// String returns the string representation of a device class
func (c DeviceClass) String() string {
	switch c {
	case DeviceIoT:
		return "iot"
	case DeviceComputer:
		return "computer"
	case DeviceServer:
		return "server"
	case DeviceSmartphone:
		return "smartphone"
	default:
		return "unknown"
	}
}

// Lightweight reports whether the class is a lightweight endpoint.
// Smartphones and IoT devices share a vulnerability profile, as do
// computers and servers.
func (c DeviceClass) Lightweight() bool {
	return c == DeviceSmartphone || c == DeviceIoT
}

// LinkType is the closed set of connection path categories, ordered by
// ascending transmission priority: fiber beats VPN beats municipal Wi-Fi.
type LinkType int

const (
	LinkMunicipalWiFi LinkType = iota
	LinkVPNTunnel
	LinkFiber
)

// String returns the string representation of a link type
func (t LinkType) String() string {
	switch t {
	case LinkMunicipalWiFi:
		return "municipal_wifi"
	case LinkVPNTunnel:
		return "vpn_tunnel"
	case LinkFiber:
		return "fiber"
	default:
		return "unknown"
	}
}

// baseWeight is the transmission weight contributed by the link medium.
func (t LinkType) baseWeight() float64 {
	switch t {
	case LinkFiber:
		return 0.9
	case LinkVPNTunnel:
		return 0.65
	case LinkMunicipalWiFi:
		return 0.45
	default:
		return 0
	}
}

// LinkTypeSet is a bitmask over LinkType, the connectivity mix a node supports.
type LinkTypeSet uint8

// NewLinkTypeSet builds a set from the given types.
func NewLinkTypeSet(types ...LinkType) LinkTypeSet {
	var s LinkTypeSet
	for _, t := range types {
		s |= 1 << uint(t)
	}
	return s
}

// Has reports whether the set contains t.
func (s LinkTypeSet) Has(t LinkType) bool {
	return s&(1<<uint(t)) != 0
}

// Intersect returns the types present in both sets.
func (s LinkTypeSet) Intersect(other LinkTypeSet) LinkTypeSet {
	return s & other
}

// Count returns the number of types in the set.
func (s LinkTypeSet) Count() int {
	n := 0
	for t := LinkMunicipalWiFi; t <= LinkFiber; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Best returns the highest-priority type in the set.
func (s LinkTypeSet) Best() (LinkType, bool) {
	for t := LinkFiber; t >= LinkMunicipalWiFi; t-- {
		if s.Has(t) {
			return t, true
		}
	}
	return LinkMunicipalWiFi, false
}

// MixForClass returns the connectivity mix a device class supports.
// Smartphones favor municipal Wi-Fi, servers favor fiber.
func MixForClass(c DeviceClass) LinkTypeSet {
	switch c {
	case DeviceSmartphone:
		return NewLinkTypeSet(LinkMunicipalWiFi, LinkVPNTunnel)
	case DeviceIoT:
		return NewLinkTypeSet(LinkMunicipalWiFi)
	case DeviceComputer:
		return NewLinkTypeSet(LinkMunicipalWiFi, LinkVPNTunnel, LinkFiber)
	case DeviceServer:
		return NewLinkTypeSet(LinkVPNTunnel, LinkFiber)
	default:
		return NewLinkTypeSet(LinkMunicipalWiFi)
	}
}

// Node is a simulated device. All fields are fixed at world-generation time;
// infection state lives in the outbreak engine's world state, not here.
type Node struct {
	ID        uint64
	Coord     worldmap.Coord
	Class     DeviceClass
	Mix       LinkTypeSet
	FocusArea string

	// Hub is the population hub the node was sampled from.
	Hub string
	// Fallback marks a node placed at its hub center after the retry
	// budget was exhausted.
	Fallback bool
}

// Link is an undirected edge between two nodes. Endpoints are stored in
// canonical order (A < B) so an unordered pair has exactly one representation.
type Link struct {
	A      uint64
	B      uint64
	Type   LinkType
	Weight float64
}

// NewLink builds a link with canonical endpoint ordering.
func NewLink(a, b uint64, linkType LinkType, weight float64) Link {
	if a > b {
		a, b = b, a
	}
	return Link{A: a, B: b, Type: linkType, Weight: weight}
}

// Other returns the endpoint opposite to id.
func (l Link) Other(id uint64) uint64 {
	if l.A == id {
		return l.B
	}
	return l.A
}

// key identifies the unordered pair.
func (l Link) key() [2]uint64 {
	return [2]uint64{l.A, l.B}
}
