// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: vertex lifecycle and positional lookup.
//
// Determinism:
//   - Lookups scan in insertion order; the first vertex within ε wins.

package planar

import (
	"fmt"
	"math"
	"sort"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/girih/geometry"
)

// InsertVertex returns the vertex within ε of p, creating it when none exists.
//
// Implementation:
//   - Stage 1: FindVertex(p) scans the vertices in insertion order.
//   - Stage 2: If none is within ε, allocate a vertex at p and append it.
//
// Returns:
//   - *Vertex: never nil.
//
// Errors:
//   - None.
//
// Determinism:
//   - When several vertices lie within ε of p the oldest one wins.
//
// Complexity: O(V).
func (m *Map) InsertVertex(p geometry.Point) *Vertex {
	if v := m.FindVertex(p); v != nil {
		return v
	}
	v := &Vertex{Pos: p, owner: m, seq: m.seq()}
	m.vertices = append(m.vertices, v)
	return v
}

// FindVertex returns the vertex within ε of p, or nil.
//
// Complexity: O(V).
func (m *Map) FindVertex(p geometry.Point) *Vertex {
	for _, v := range m.vertices {
		if geometry.Near(v.Pos, p, m.eps) {
			return v
		}
	}
	return nil
}

// Contains reports whether v is a vertex of m.
func (m *Map) Contains(v *Vertex) bool {
	return v != nil && v.owner == m && m.indexOfVertex(v) >= 0
}

// RemoveVertex deletes v and every incident edge, fixing the adjacency of the
// opposite endpoints. Removing a vertex that is not in m is a no-op.
//
// Complexity: O(V + E·deg(v)).
func (m *Map) RemoveVertex(v *Vertex) {
	idx := m.indexOfVertex(v)
	if idx < 0 {
		return
	}
	for _, e := range v.Edges() {
		m.RemoveEdge(e)
	}
	m.vertices = append(m.vertices[:idx], m.vertices[idx+1:]...)
	v.owner = nil
}

// Neighbors returns the vertices adjacent to v, sorted counter-clockwise by
// the angle of the joining direction (straight chord for arcs), starting at
// the positive x axis.
func (m *Map) Neighbors(v *Vertex) []*Vertex {
	if !m.Contains(v) {
		return nil
	}
	out := make([]*Vertex, 0, len(v.adj))
	for _, e := range v.adj {
		out = append(out, e.Other(v))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return positiveAngle(out[i].Pos.Minus(v.Pos)) < positiveAngle(out[j].Pos.Minus(v.Pos))
	})
	return out
}

// Bounds returns the bounding box of all vertex positions (arc bulges are
// not included). An empty map yields the zero rectangle.
func (m *Map) Bounds() geom.Rect {
	pts := make([]geometry.Point, len(m.vertices))
	for i, v := range m.vertices {
		pts[i] = v.Pos
	}
	return geometry.Bounds(pts)
}

// RemoveIsolated deletes every vertex of degree zero and reports how many
// were removed.
func (m *Map) RemoveIsolated() int {
	kept := m.vertices[:0]
	removed := 0
	for _, v := range m.vertices {
		if len(v.adj) == 0 {
			v.owner = nil
			removed++
			continue
		}
		kept = append(kept, v)
	}
	for i := len(kept); i < len(m.vertices); i++ {
		m.vertices[i] = nil
	}
	m.vertices = kept
	return removed
}

// String formats v as "#seq(x, y)".
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%d(%.6g, %.6g)", v.seq, v.Pos.X, v.Pos.Y)
}

func (m *Map) indexOfVertex(v *Vertex) int {
	if v == nil || v.owner != m {
		return -1
	}
	for i, w := range m.vertices {
		if w == v {
			return i
		}
	}
	return -1
}

// positiveAngle returns the polar angle of d in [0, 2π).
func positiveAngle(d geometry.Point) float64 {
	a := geometry.Angle(d)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
