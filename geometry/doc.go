// SPDX-License-Identifier: MIT

// Package geometry provides the 2D primitives shared by the planar map engine
// and the figure builders: points, affine transforms, tolerant line and
// segment intersection, and small polygon helpers.
//
// Points are github.com/jbeda/geom coordinates, so values flow unchanged into
// the geom bounding-box helpers (geom.Rect) used elsewhere in the module.
//
// Tolerances:
//
//   - Every predicate that compares real numbers takes an explicit tolerance.
//   - Intersection helpers treat near-parallel and near-endpoint
//     configurations as "no intersection"; callers rely on this to avoid
//     spurious splits of edges that merely touch.
//
// Angles are radians unless a name says otherwise (Degrees, FromDegrees).
package geometry
