// SPDX-License-Identifier: MIT

package planar

import "errors"

// Sentinel errors reported by Verify. The joined error returned by Verify
// wraps one of these per violation, so callers can branch with errors.Is.
var (
	// ErrCoincidentVertices indicates two vertices within ε (invariant a).
	ErrCoincidentVertices = errors.New("planar: coincident vertices")

	// ErrDuplicateEdge indicates two edges with identical endpoints and geometry (invariant b).
	ErrDuplicateEdge = errors.New("planar: duplicate edge")

	// ErrAdjacency indicates an asymmetric or stale adjacency entry (invariant c).
	ErrAdjacency = errors.New("planar: adjacency mismatch")

	// ErrDanglingEdge indicates an edge whose endpoint is not a vertex of the map.
	ErrDanglingEdge = errors.New("planar: edge endpoint not in map")

	// ErrDegenerateEdge indicates an edge joining a vertex to itself.
	ErrDegenerateEdge = errors.New("planar: degenerate edge")

	// ErrCrossingEdges indicates two straight edges crossing away from a vertex (invariant d).
	ErrCrossingEdges = errors.New("planar: edges cross at a non-vertex point")
)
