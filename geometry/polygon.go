// SPDX-License-Identifier: MIT
//
// File: polygon.go
// Role: small closed-polygon helpers (boundary construction, orientation,
// containment, bounds).

package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// RegularPolygon returns the n corners of a regular polygon with circumradius
// r, corner i at angle phase + 2πi/n. n below 3 yields nil.
func RegularPolygon(n int, r, phase float64) []Point {
	if n < 3 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Polar(r, phase+2*math.Pi*float64(i)/float64(n))
	}
	return pts
}

// SignedArea returns the shoelace area of poly; positive for CCW winding.
func SignedArea(poly []Point) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		sum += Cross(poly[i], poly[(i+1)%n])
	}
	return sum / 2
}

// NormalizePolygon returns a copy of poly with consecutive duplicates
// (within eps, including the closing pair) removed and CCW orientation.
// Fewer than three distinct corners yield nil.
func NormalizePolygon(poly []Point, eps float64) []Point {
	out := make([]Point, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && Near(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && Near(out[0], out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	if SignedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Contains reports whether p lies inside poly (even-odd rule). Points on the
// boundary may go either way.
func Contains(poly []Point, p Point) bool {
	in := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Bounds returns the bounding box of pts. An empty slice yields the zero
// rectangle.
func Bounds(pts []Point) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}
