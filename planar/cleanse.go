// SPDX-License-Identifier: MIT
//
// File: cleanse.go
// Role: intersection-based repair of a Map.
//
// Contract:
//   - Cleanse repeats whole passes until a pass changes nothing, at most
//     MaxCleansePasses times.
//   - Only straight edges are split or merged; arcs are left untouched.
//   - A pass is deterministic: edges and vertices are visited in insertion
//     order, so a second Cleanse after a converged one reports no change.

package planar

import (
	"math"

	"github.com/katalvlaran/girih/geometry"
)

// MaxCleansePasses bounds the number of repair passes of a single Cleanse.
const MaxCleansePasses = 256

// cleansePassLimit is the cap actually applied; tests lower it.
var cleansePassLimit = MaxCleansePasses

// CleanseOption selects the repairs performed by Cleanse.
type CleanseOption uint8

const (
	// SplitCrossings splits pairs of straight edges crossing at an interior
	// point: (a,b),(c,d) become (a,p),(p,b),(c,p),(p,d).
	SplitCrossings CleanseOption = 1 << iota
	// SplitTJunctions splits a straight edge at any vertex lying on its
	// interior.
	SplitTJunctions
	// MergeCollinear replaces two collinear straight edges meeting at a
	// degree-2 vertex by a single edge and drops the vertex.
	MergeCollinear
	// RemoveIsolated drops vertices without edges.
	RemoveIsolated

	// CleanseSplit is the usual repair after overlaying figures.
	CleanseSplit = SplitCrossings | SplitTJunctions
	// CleanseAll enables every repair.
	CleanseAll = SplitCrossings | SplitTJunctions | MergeCollinear | RemoveIsolated
)

// Has reports whether o enables every repair in flag.
func (o CleanseOption) Has(flag CleanseOption) bool { return o&flag == flag }

// Cleanse repairs m in place and reports whether anything changed.
//
// Implementation:
//   - Stage 1: Raise sensitivity to at least the map epsilon.
//   - Stage 2: Run one pass of every enabled repair, in the order
//     T-junctions, crossings, collinear merge, isolated removal.
//   - Stage 3: Repeat until a pass changes nothing or the pass cap is hit.
//
// Inputs:
//   - opts: repairs to run (SplitCrossings, SplitTJunctions, MergeCollinear,
//     RemoveIsolated, or the CleanseSplit / CleanseAll sets).
//   - sensitivity: distance under which a crossing or T-junction counts as
//     touching an endpoint and is ignored.
//
// Returns:
//   - bool: true iff m changed.
//
// Errors:
//   - None. Hitting MaxCleansePasses is logged at Warn.
//
// Complexity: O(passes·E²) for splitting, O(passes·V·E) for T-junctions.
func (m *Map) Cleanse(opts CleanseOption, sensitivity float64) bool {
	tol := math.Max(sensitivity, m.eps)
	changed := false
	for pass := 0; pass < cleansePassLimit; pass++ {
		did := false
		if opts.Has(SplitTJunctions) && m.splitTJunctions(tol) {
			did = true
		}
		if opts.Has(SplitCrossings) && m.splitCrossings(tol) {
			did = true
		}
		if opts.Has(MergeCollinear) && m.mergeCollinear(tol) {
			did = true
		}
		if opts.Has(RemoveIsolated) && m.RemoveIsolated() > 0 {
			did = true
		}
		if !did {
			Logger().Debug("planar: cleanse converged", "passes", pass+1, "changed", changed, "result", m.String())
			return changed
		}
		changed = true
	}
	Logger().Warn("planar: cleanse hit pass cap", "cap", cleansePassLimit, "result", m.String())
	return changed
}

// splitCrossings performs one pass of crossing splits over a snapshot of the
// straight edges. Each edge takes part in at most one split per pass; the
// pieces are examined by the next pass.
func (m *Map) splitCrossings(tol float64) bool {
	edges := m.straightEdges()
	dead := make(map[*Edge]bool)
	did := false
	for i, e := range edges {
		if dead[e] {
			continue
		}
		for _, f := range edges[i+1:] {
			if dead[f] || sharesEndpoint(e, f) {
				continue
			}
			p, ok := geometry.SegmentIntersection(e.V1.Pos, e.V2.Pos, f.V1.Pos, f.V2.Pos, tol)
			if !ok {
				continue
			}
			v := m.InsertVertex(p)
			if e.Has(v) || f.Has(v) {
				// Snapped onto an endpoint: splitting would recreate the same edge.
				continue
			}
			m.splitEdge(e, v)
			m.splitEdge(f, v)
			dead[e], dead[f] = true, true
			did = true
			break
		}
	}
	return did
}

// splitTJunctions performs one pass splitting straight edges at vertices
// lying on their interior.
func (m *Map) splitTJunctions(tol float64) bool {
	did := false
	for _, e := range m.straightEdges() {
		for _, v := range m.vertices {
			if e.Has(v) {
				continue
			}
			if _, ok := geometry.PointOnSegment(v.Pos, e.V1.Pos, e.V2.Pos, tol); ok {
				m.splitEdge(e, v)
				did = true
				break
			}
		}
	}
	return did
}

// mergeCollinear performs one pass dissolving straight degree-2 vertices.
func (m *Map) mergeCollinear(tol float64) bool {
	did := false
	for _, v := range m.Vertices() {
		if v.owner != m || len(v.adj) != 2 {
			continue
		}
		e1, e2 := v.adj[0], v.adj[1]
		if e1.Kind != Straight || e2.Kind != Straight {
			continue
		}
		a, b := e1.Other(v), e2.Other(v)
		if a == b {
			continue
		}
		// Folded paths (a and b on the same side of v) turn by less than a
		// right angle and must keep v.
		if !geometry.Collinear(a.Pos, b.Pos, v.Pos, tol) ||
			geometry.TurnAngle(a.Pos, v.Pos, b.Pos) <= math.Pi/2 {
			continue
		}
		m.RemoveVertex(v)
		m.InsertEdge(a, b)
		did = true
	}
	return did
}

// splitEdge replaces straight edge e=(a,b) by (a,v) and (v,b).
func (m *Map) splitEdge(e *Edge, v *Vertex) {
	a, b := e.V1, e.V2
	m.RemoveEdge(e)
	m.InsertEdge(a, v)
	m.InsertEdge(v, b)
}

func (m *Map) straightEdges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, e := range m.edges {
		if e.Kind == Straight {
			out = append(out, e)
		}
	}
	return out
}

func sharesEndpoint(e, f *Edge) bool {
	return e.V1 == f.V1 || e.V1 == f.V2 || e.V2 == f.V1 || e.V2 == f.V2
}
