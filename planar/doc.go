// SPDX-License-Identifier: MIT

// Package planar provides Map, the planar subdivision at the heart of the
// figure engine: a set of positional vertices joined by straight or circular
// arc edges, kept free of duplicates as content is inserted and merged.
//
// A Map M = (V, E) maintains four invariants:
//
//   - (a) no two vertices lie within ε of each other (vertex identity is
//     positional: InsertVertex returns the existing vertex within ε);
//   - (b) no two edges join the same endpoints with identical geometry;
//   - (c) adjacency is symmetric: every edge appears in the adjacency of both
//     of its endpoints, and nothing else does;
//   - (d) after Cleanse, no two straight edges cross at a point that is not a
//     vertex.
//
// Core methods:
//
//	// Insertion and removal (never fail)
//	InsertVertex(p) *Vertex                  // O(V)
//	InsertEdge(v1, v2, opts...) *Edge        // O(E)
//	InsertLine(p, q) *Edge                   // O(V+E)
//	RemoveVertex(v), RemoveEdge(e)           // O(V+E)
//
//	// Combination (copy-in with dedup; the source map is untouched)
//	MergeMap(other)                          // idempotent
//	MergeTransformed(other, T)
//	MergeSimpleMany(src, transforms)
//
//	// Repair and checking
//	Cleanse(opts, sensitivity) bool          // bounded by MaxCleansePasses
//	Verify() error                           // joined report, logged at Warn
//	MustVerify()                             // panics: internal checkpoints only
//
//	// Geometry in place
//	Transform(T), Rotate(rad), Scale(f), Translate(dx, dy)
//
// Ordering:
//
//   - Vertices() and Edges() return insertion order, so every build is
//     reproducible.
//   - Neighbors(v) returns neighbours sorted counter-clockwise by angle.
//
// Concurrency:
//
//   - A Map is owned by the code constructing it and is not safe for
//     concurrent mutation. Merging copies content, so a source map may be
//     shared read-only by any number of destinations.
//
// Arc convention:
//
//   - An arc edge with Convex == true runs counter-clockwise about Center from
//     V1 to V2; Convex == false runs clockwise. Reflections flip the flag so
//     the drawn curve is preserved.
package planar
