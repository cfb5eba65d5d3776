// SPDX-License-Identifier: MIT
//
// File: methods_merge.go
// Role: copy-in combination of maps and whole-map geometry transforms.
//
// Policy:
//   - Merges copy: the source map is never modified and stays valid.
//   - Every copied vertex and edge goes through InsertVertex/InsertEdge, so
//     merging is deduplicating and idempotent.

package planar

import (
	"github.com/katalvlaran/girih/geometry"
)

// MergeMap copies every vertex and edge of other into m.
//
// Implementation:
//   - Stage 1: Snapshot the vertices and edges of other (self-merge safe).
//   - Stage 2: InsertVertex each position, remembering the vertex it maps to.
//   - Stage 3: InsertEdge each edge between the mapped endpoints, carrying
//     arc centers and convexity.
//
// Behavior highlights:
//   - Idempotent: merging the same content twice leaves m as merging it once.
//   - other is never modified.
//
// Errors:
//   - None. A nil other panics.
//
// Complexity: O(V_other·V + E_other·deg).
func (m *Map) MergeMap(other *Map) {
	m.merge(other, nil)
}

// MergeTransformed merges the image of other under t into m.
func (m *Map) MergeTransformed(other *Map, t geometry.Transform) {
	m.merge(other, &t)
}

// MergeSimpleMany merges one transformed copy of src per transform. It is the
// replication primitive: a unit under n rotations, or a figure under every
// tile placement.
//
// Implementation:
//   - Stage 1: For each transform in order, map every vertex of src and
//     insert it with dedup.
//   - Stage 2: Insert the edges; arcs under an orientation reversing
//     transform get their convexity flipped.
//
// Complexity: O(len(transforms)·(V_src·V + E_src·deg)).
func (m *Map) MergeSimpleMany(src *Map, transforms []geometry.Transform) {
	for i := range transforms {
		m.merge(src, &transforms[i])
	}
	Logger().Debug("planar: merged copies", "copies", len(transforms), "result", m.String())
}

func (m *Map) merge(other *Map, t *geometry.Transform) {
	if other == nil {
		panic("planar: merge of nil map")
	}
	// Snapshot so that a self-merge iterates over a stable list.
	verts := other.Vertices()
	edges := other.Edges()

	mapped := make(map[*Vertex]*Vertex, len(verts))
	for _, v := range verts {
		p := v.Pos
		if t != nil {
			p = t.Apply(p)
		}
		mapped[v] = m.InsertVertex(p)
	}
	flip := t != nil && t.Reflects()
	for _, e := range edges {
		v1, v2 := mapped[e.V1], mapped[e.V2]
		if v1 == nil || v2 == nil {
			// Stale edge in the source; Verify on the source reports it.
			continue
		}
		if e.Kind == Arc {
			c := e.Center
			if t != nil {
				c = t.Apply(c)
			}
			m.InsertEdge(v1, v2, AsArc(c, e.Convex != flip))
			continue
		}
		m.InsertEdge(v1, v2)
	}
}

// Clone returns an independent copy of m with identical vertex and edge
// order. Unlike MergeMap it copies verbatim, without dedup, so an invalid map
// clones into an equally invalid one.
func (m *Map) Clone() *Map {
	c := &Map{
		eps:      m.eps,
		vertices: make([]*Vertex, 0, len(m.vertices)),
		edges:    make([]*Edge, 0, len(m.edges)),
		nextSeq:  m.nextSeq,
	}
	mapped := make(map[*Vertex]*Vertex, len(m.vertices))
	for _, v := range m.vertices {
		nv := &Vertex{Pos: v.Pos, owner: c, seq: v.seq}
		mapped[v] = nv
		c.vertices = append(c.vertices, nv)
	}
	for _, e := range m.edges {
		v1, v2 := mapped[e.V1], mapped[e.V2]
		if v1 == nil || v2 == nil {
			continue
		}
		ne := &Edge{V1: v1, V2: v2, Kind: e.Kind, Center: e.Center, Convex: e.Convex, seq: e.seq}
		c.edges = append(c.edges, ne)
		v1.adj = append(v1.adj, ne)
		v2.adj = append(v2.adj, ne)
	}
	return c
}

// Transform applies t in place to every vertex and arc center. Adjacency is
// untouched since edges hold their vertices by identity. Orientation
// reversing transforms flip arc convexity.
func (m *Map) Transform(t geometry.Transform) {
	for _, v := range m.vertices {
		v.Pos = t.Apply(v.Pos)
	}
	flip := t.Reflects()
	for _, e := range m.edges {
		if e.Kind != Arc {
			continue
		}
		e.Center = t.Apply(e.Center)
		if flip {
			e.Convex = !e.Convex
		}
	}
}

// Rotate rotates m by rad about the origin.
func (m *Map) Rotate(rad float64) { m.Transform(geometry.Rotation(rad)) }

// Scale scales m uniformly by f about the origin.
func (m *Map) Scale(f float64) { m.Transform(geometry.UniformScaling(f)) }

// Translate moves m by (dx, dy).
func (m *Map) Translate(dx, dy float64) { m.Transform(geometry.Translation(dx, dy)) }
