// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and adjacency maintenance.
//
// Policy:
//   - InsertEdge never fails: a request for an edge that already exists
//     returns the existing edge, a zero-length request returns nil.
//   - Passing a vertex owned by another map is a programmer error and panics.

package planar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/girih/geometry"
)

// InsertEdge joins v1 and v2 (idempotent).
//
// Implementation:
//   - Stage 1: Check that both endpoints belong to m.
//   - Stage 2: Build the candidate edge and apply opts (AsArc).
//   - Stage 3: Scan the adjacency of v1 for an edge with the same endpoints
//     and geometry; return it when found.
//   - Stage 4: Otherwise append the edge to m and to the adjacency of both
//     endpoints.
//
// Behavior highlights:
//   - Direction does not matter: (v1, v2) finds (v2, v1); for arcs the
//     convexity flag is compared relative to the stored direction.
//   - A straight edge and an arc between the same vertices are distinct.
//
// Returns:
//   - *Edge: the new or existing edge; nil when v1 == v2.
//
// Errors:
//   - None. A vertex that is nil or owned by another map panics.
//
// Complexity: O(deg(v1)).
func (m *Map) InsertEdge(v1, v2 *Vertex, opts ...EdgeOption) *Edge {
	m.mustOwn(v1, "InsertEdge")
	m.mustOwn(v2, "InsertEdge")
	if v1 == v2 {
		Logger().Debug("planar: skipped zero-length edge", "vertex", v1.String())
		return nil
	}
	e := &Edge{V1: v1, V2: v2, Kind: Straight}
	for _, opt := range opts {
		opt(e)
	}
	for _, f := range v1.adj {
		if f.sameGeometry(e, m.eps) {
			return f
		}
	}
	e.seq = m.seq()
	m.edges = append(m.edges, e)
	v1.adj = append(v1.adj, e)
	v2.adj = append(v2.adj, e)
	return e
}

// InsertArc is InsertEdge(v1, v2, AsArc(center, convex)).
func (m *Map) InsertArc(v1, v2 *Vertex, center geometry.Point, convex bool) *Edge {
	return m.InsertEdge(v1, v2, AsArc(center, convex))
}

// InsertLine inserts (or finds) the vertices at p and q and joins them with a
// straight edge.
func (m *Map) InsertLine(p, q geometry.Point) *Edge {
	return m.InsertEdge(m.InsertVertex(p), m.InsertVertex(q))
}

// FindEdge returns the first edge joining v1 and v2 (in either direction),
// or nil.
func (m *Map) FindEdge(v1, v2 *Vertex) *Edge {
	if v1 == nil || v2 == nil {
		return nil
	}
	for _, e := range v1.adj {
		if e.Other(v1) == v2 {
			return e
		}
	}
	return nil
}

// RemoveEdge deletes e from m and from the adjacency of its endpoints.
// Removing an edge that is not in m is a no-op.
//
// Complexity: O(E).
func (m *Map) RemoveEdge(e *Edge) {
	if e == nil {
		return
	}
	idx := -1
	for i, f := range m.edges {
		if f == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	m.edges = append(m.edges[:idx], m.edges[idx+1:]...)
	e.V1.adj = dropEdge(e.V1.adj, e)
	e.V2.adj = dropEdge(e.V2.adj, e)
}

// RebuildAdjacency discards every vertex's adjacency list and rebuilds it
// from the edge list. Edges whose endpoints are no longer vertices of m are
// dropped.
//
// Complexity: O(V + E).
func (m *Map) RebuildAdjacency() {
	for _, v := range m.vertices {
		v.adj = v.adj[:0]
	}
	kept := m.edges[:0]
	for _, e := range m.edges {
		if e.V1 == nil || e.V2 == nil || e.V1.owner != m || e.V2.owner != m || e.V1 == e.V2 {
			continue
		}
		kept = append(kept, e)
		e.V1.adj = append(e.V1.adj, e)
		e.V2.adj = append(e.V2.adj, e)
	}
	m.edges = kept
}

// SortAdjacency orders every vertex's adjacency counter-clockwise by the
// direction of the opposite endpoint, as renderers walking faces expect.
func (m *Map) SortAdjacency() {
	for _, v := range m.vertices {
		sort.SliceStable(v.adj, func(i, j int) bool {
			return positiveAngle(v.adj[i].Other(v).Pos.Minus(v.Pos)) <
				positiveAngle(v.adj[j].Other(v).Pos.Minus(v.Pos))
		})
	}
}

// String formats e as "#a-#b" (or "#a~#b" for arcs).
func (e *Edge) String() string {
	sep := "-"
	if e.Kind == Arc {
		sep = "~"
	}
	return fmt.Sprintf("%s%s%s", e.V1, sep, e.V2)
}

func (m *Map) mustOwn(v *Vertex, op string) {
	if v == nil {
		panic(fmt.Sprintf("planar: %s: nil vertex", op))
	}
	if v.owner != m {
		panic(fmt.Sprintf("planar: %s: vertex %s belongs to another map", op, v))
	}
}

func dropEdge(list []*Edge, e *Edge) []*Edge {
	for i, f := range list {
		if f == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
