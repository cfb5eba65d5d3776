// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Map declarations, construction options.

package planar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/girih/geometry"
)

// DefaultEpsilon is the positional tolerance under which two points are the
// same vertex.
const DefaultEpsilon = geometry.Tolerance

// EdgeKind distinguishes straight edges from circular arcs.
type EdgeKind int

const (
	// Straight is a line segment between the two endpoints.
	Straight EdgeKind = iota
	// Arc is a circular arc about Edge.Center.
	Arc
)

// String returns "line" or "arc".
func (k EdgeKind) String() string {
	switch k {
	case Straight:
		return "line"
	case Arc:
		return "arc"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Vertex is a point of a Map together with its incident edges.
//
// Pos may be read freely; it is rewritten only by Map transforms. Moving a
// vertex by hand can break invariant (a) and is caught by Verify.
type Vertex struct {
	Pos geometry.Point

	owner *Map
	seq   int
	adj   []*Edge
}

// Seq returns the insertion sequence number of v within its map.
func (v *Vertex) Seq() int { return v.seq }

// Degree returns the number of incident edges.
func (v *Vertex) Degree() int { return len(v.adj) }

// Edges returns a copy of the incident edges in adjacency order.
func (v *Vertex) Edges() []*Edge {
	out := make([]*Edge, len(v.adj))
	copy(out, v.adj)
	return out
}

// Edge joins two vertices of the same Map.
type Edge struct {
	V1, V2 *Vertex
	Kind   EdgeKind

	// Center and Convex are meaningful only for arcs.
	Center geometry.Point
	Convex bool

	seq int
}

// EdgeOption configures an edge at insertion time.
type EdgeOption func(*Edge)

// AsArc turns the inserted edge into a circular arc about center.
// convex selects the counter-clockwise sweep from V1 to V2.
func AsArc(center geometry.Point, convex bool) EdgeOption {
	return func(e *Edge) {
		e.Kind = Arc
		e.Center = center
		e.Convex = convex
	}
}

// Seq returns the insertion sequence number of e within its map.
func (e *Edge) Seq() int { return e.seq }

// IsArc reports whether e is a circular arc.
func (e *Edge) IsArc() bool { return e.Kind == Arc }

// Other returns the endpoint of e that is not v, or nil when v is not an
// endpoint.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		return nil
	}
}

// Has reports whether v is an endpoint of e.
func (e *Edge) Has(v *Vertex) bool { return e.V1 == v || e.V2 == v }

// Sweep describes an arc for renderers: radius, start angle (at V1) and the
// signed sweep to V2 (positive = counter-clockwise).
type Sweep struct {
	Radius float64
	Start  float64
	Delta  float64
}

// Sweep returns the arc sweep of e. Straight edges yield the zero Sweep.
func (e *Edge) Sweep() Sweep {
	if e.Kind != Arc {
		return Sweep{}
	}
	start := geometry.Angle(e.V1.Pos.Minus(e.Center))
	end := geometry.Angle(e.V2.Pos.Minus(e.Center))
	delta := end - start
	if e.Convex {
		for delta <= 0 {
			delta += 2 * math.Pi
		}
	} else {
		for delta >= 0 {
			delta -= 2 * math.Pi
		}
	}
	return Sweep{Radius: geometry.Dist(e.V1.Pos, e.Center), Start: start, Delta: delta}
}

// Length returns the euclidean length of a straight edge or the arc length
// of an arc.
func (e *Edge) Length() float64 {
	if e.Kind == Arc {
		s := e.Sweep()
		return s.Radius * math.Abs(s.Delta)
	}
	return geometry.Dist(e.V1.Pos, e.V2.Pos)
}

// Midpoint returns the point halfway along e.
func (e *Edge) Midpoint() geometry.Point {
	if e.Kind == Arc {
		s := e.Sweep()
		return e.Center.Plus(geometry.Polar(s.Radius, s.Start+s.Delta/2))
	}
	return geometry.Mid(e.V1.Pos, e.V2.Pos)
}

// sameGeometry reports whether e and f describe the same curve between the
// same pair of vertices.
func (e *Edge) sameGeometry(f *Edge, eps float64) bool {
	if e.Kind != f.Kind {
		return false
	}
	forward := e.V1 == f.V1 && e.V2 == f.V2
	reverse := e.V1 == f.V2 && e.V2 == f.V1
	if !forward && !reverse {
		return false
	}
	if e.Kind == Straight {
		return true
	}
	if !geometry.Near(e.Center, f.Center, eps) {
		return false
	}
	// Swapping the endpoints reverses the sweep direction.
	if forward {
		return e.Convex == f.Convex
	}
	return e.Convex != f.Convex
}

// Option configures a Map before use.
type Option func(*Map)

// WithEpsilon sets the positional tolerance. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("planar: WithEpsilon(%g): epsilon must be positive", eps))
	}
	return func(m *Map) { m.eps = eps }
}

// Map is a planar subdivision: vertices joined by straight and arc edges.
// Zero value is not usable; construct with NewMap.
type Map struct {
	eps      float64
	vertices []*Vertex
	edges    []*Edge
	nextSeq  int
}

// NewMap returns an empty Map.
// Complexity: O(1).
func NewMap(opts ...Option) *Map {
	m := &Map{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Epsilon returns the positional tolerance of m.
func (m *Map) Epsilon() float64 { return m.eps }

// VertexCount returns |V|.
func (m *Map) VertexCount() int { return len(m.vertices) }

// EdgeCount returns |E|.
func (m *Map) EdgeCount() int { return len(m.edges) }

// Vertices returns the vertices in insertion order. The slice is a copy;
// the vertices are shared.
func (m *Map) Vertices() []*Vertex {
	out := make([]*Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Edges returns the edges in insertion order. The slice is a copy; the
// edges are shared.
func (m *Map) Edges() []*Edge {
	out := make([]*Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// String returns a short summary such as "Map{V=24 E=32}".
func (m *Map) String() string {
	return fmt.Sprintf("Map{V=%d E=%d}", len(m.vertices), len(m.edges))
}

func (m *Map) seq() int {
	m.nextSeq++
	return m.nextSeq
}
