// SPDX-License-Identifier: MIT
//
// File: intersect.go
// Role: tolerant line / segment intersection.
//
// Policy:
//   - Near-parallel pairs never intersect (sine of the angle between the
//     directions below ParallelTolerance).
//   - Segment tests are interior-only: a crossing closer than tol to any of the
//     four endpoints is reported as "no intersection".

package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// ParallelTolerance bounds |sin θ| below which two directions are treated
// as parallel.
const ParallelTolerance = 1e-9

// LineIntersectionParams solves p1 + t·(q1-p1) = p2 + u·(q2-p2) for the
// infinite lines through the two point pairs. ok is false for degenerate or
// near-parallel lines.
func LineIntersectionParams(p1, q1, p2, q2 Point) (t, u float64, ok bool) {
	r := q1.Minus(p1)
	s := q2.Minus(p2)
	den := Cross(r, s)
	lr, ls := Len(r), Len(s)
	if lr == 0 || ls == 0 || math.Abs(den) <= ParallelTolerance*lr*ls {
		return 0, 0, false
	}
	w := p2.Minus(p1)
	return Cross(w, s) / den, Cross(w, r) / den, true
}

// LineIntersection returns the meeting point of the infinite lines p1q1 and
// p2q2.
func LineIntersection(p1, q1, p2, q2 Point) (Point, bool) {
	t, _, ok := LineIntersectionParams(p1, q1, p2, q2)
	if !ok {
		return Point{}, false
	}
	return Lerp(p1, q1, t), true
}

// SegmentIntersection returns the point where segments p1q1 and p2q2 cross
// strictly inside both of them. tol is a distance: crossings within tol of an
// endpoint are ignored.
func SegmentIntersection(p1, q1, p2, q2 Point, tol float64) (Point, bool) {
	if !boxesOverlap(segmentBox(p1, q1), segmentBox(p2, q2), tol) {
		return Point{}, false
	}
	t, u, ok := LineIntersectionParams(p1, q1, p2, q2)
	if !ok {
		return Point{}, false
	}
	tt := tol / Dist(p1, q1)
	tu := tol / Dist(p2, q2)
	if t <= tt || t >= 1-tt || u <= tu || u >= 1-tu {
		return Point{}, false
	}
	return Lerp(p1, q1, t), true
}

// PointOnSegment reports whether p lies strictly inside segment ab: within
// tol of the line and farther than tol from both endpoints. t is the
// parameter of the projection of p onto ab.
func PointOnSegment(p, a, b Point, tol float64) (t float64, ok bool) {
	d := b.Minus(a)
	l2 := Dot(d, d)
	if l2 == 0 {
		return 0, false
	}
	l := math.Sqrt(l2)
	if math.Abs(Cross(d, p.Minus(a)))/l > tol {
		return 0, false
	}
	t = Dot(p.Minus(a), d) / l2
	tt := tol / l
	if t <= tt || t >= 1-tt {
		return t, false
	}
	return t, true
}

// ClipSegment walks from a toward b and returns the first point where the
// segment meets the boundary of the closed polygon poly. Hits on polygon
// corners count. The start point itself is never reported.
func ClipSegment(a, b Point, poly []Point) (Point, bool) {
	best := math.Inf(1)
	n := len(poly)
	for i := 0; i < n; i++ {
		c, d := poly[i], poly[(i+1)%n]
		t, u, ok := LineIntersectionParams(a, b, c, d)
		if !ok || u < -1e-12 || u > 1+1e-12 || t <= 1e-12 || t > 1 {
			continue
		}
		if t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return Point{}, false
	}
	return Lerp(a, b, best), true
}

// segmentBox returns the bounding box of segment ab.
func segmentBox(a, b Point) geom.Rect {
	r := geom.Rect{Min: a, Max: a}
	r.ExpandToContainCoord(b)
	return r
}

// boxesOverlap reports whether r and s overlap after growing both by tol.
func boxesOverlap(r, s geom.Rect, tol float64) bool {
	return r.Min.X-tol <= s.Max.X && s.Min.X-tol <= r.Max.X &&
		r.Min.Y-tol <= s.Max.Y && s.Min.Y-tol <= r.Max.Y
}
