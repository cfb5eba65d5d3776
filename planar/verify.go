// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: invariant checking.
//
// Failure policy:
//   - Verify never panics: it returns every violation joined into one error
//     and logs the report at Warn.
//   - MustVerify is reserved for internal consistency checkpoints and panics.

package planar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/girih/geometry"
)

// Verify checks invariants (a) to (d).
//
// Implementation:
//   - Stage 1: Pairwise vertex distances against ε.
//   - Stage 2: Edge endpoints are members of m and list the edge once;
//     every adjacency entry is a member edge touching its vertex.
//   - Stage 3: Pairwise duplicate geometry.
//   - Stage 4: Pairwise interior crossings of straight edges.
//
// Returns:
//   - error: nil when every invariant holds.
//
// Errors:
//   - One joined error per violation, each wrapping ErrCoincidentVertices,
//     ErrDuplicateEdge, ErrAdjacency, ErrDanglingEdge, ErrDegenerateEdge or
//     ErrCrossingEdges. The report is also logged at Warn.
//
// Complexity: O(V² + E²).
func (m *Map) Verify() error {
	var errs []error

	// (a) positional identity
	for i, v := range m.vertices {
		for _, w := range m.vertices[i+1:] {
			if geometry.Near(v.Pos, w.Pos, m.eps) {
				errs = append(errs, fmt.Errorf("%w: %s and %s", ErrCoincidentVertices, v, w))
			}
		}
	}

	members := make(map[*Edge]bool, len(m.edges))
	for _, e := range m.edges {
		members[e] = true
	}

	// (c) endpoints are members and list the edge exactly once
	for _, e := range m.edges {
		switch {
		case e.V1 == nil || e.V2 == nil || e.V1.owner != m || e.V2.owner != m:
			errs = append(errs, fmt.Errorf("%w: edge #%d", ErrDanglingEdge, e.seq))
			continue
		case e.V1 == e.V2:
			errs = append(errs, fmt.Errorf("%w: %s", ErrDegenerateEdge, e))
			continue
		}
		if count(e.V1.adj, e) != 1 || count(e.V2.adj, e) != 1 {
			errs = append(errs, fmt.Errorf("%w: %s missing from endpoint adjacency", ErrAdjacency, e))
		}
	}
	for _, v := range m.vertices {
		for _, e := range v.adj {
			if !members[e] || !e.Has(v) {
				errs = append(errs, fmt.Errorf("%w: %s lists foreign edge #%d", ErrAdjacency, v, e.seq))
			}
		}
	}

	// (b) duplicate geometry
	for i, e := range m.edges {
		for _, f := range m.edges[i+1:] {
			if e.sameGeometry(f, m.eps) {
				errs = append(errs, fmt.Errorf("%w: %s and %s", ErrDuplicateEdge, e, f))
			}
		}
	}

	// (d) planarity of straight edges
	straight := m.straightEdges()
	for i, e := range straight {
		if e.V1 == nil || e.V2 == nil {
			continue
		}
		for _, f := range straight[i+1:] {
			if f.V1 == nil || f.V2 == nil || sharesEndpoint(e, f) {
				continue
			}
			if p, ok := geometry.SegmentIntersection(e.V1.Pos, e.V2.Pos, f.V1.Pos, f.V2.Pos, m.eps); ok {
				errs = append(errs, fmt.Errorf("%w: %s and %s at (%.6g, %.6g)", ErrCrossingEdges, e, f, p.X, p.Y))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	Logger().Warn("planar: map verification failed",
		"vertices", len(m.vertices),
		"edges", len(m.edges),
		"violations", len(errs),
		"report", err.Error(),
	)
	return err
}

// MustVerify panics when Verify fails. Use it only where a violation means
// a bug in the engine, never for data loaded from outside.
func (m *Map) MustVerify() {
	if err := m.Verify(); err != nil {
		panic(fmt.Sprintf("planar: invariant violated: %v", err))
	}
}

func count(list []*Edge, e *Edge) int {
	n := 0
	for _, f := range list {
		if f == e {
			n++
		}
	}
	return n
}
