// SPDX-License-Identifier: MIT
//
// File: point.go
// Role: point arithmetic on top of geom.Coord.

package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Tolerance is the default positional tolerance used when callers do not
// supply one of their own.
const Tolerance = 1e-7

// Point is a 2D point or vector.
type Point = geom.Coord

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }

// Len returns |p|.
func Len(p Point) float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// Near reports whether a and b lie within eps of each other.
func Near(a, b Point, eps float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= eps*eps
}

// Normalize returns p scaled to unit length; the zero vector stays zero.
func Normalize(p Point) Point {
	l := Len(p)
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Rotate returns p rotated by rad about the origin.
func Rotate(p Point, rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Mirror returns p reflected across the x axis.
func Mirror(p Point) Point { return Point{X: p.X, Y: -p.Y} }

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point { return Lerp(a, b, 0.5) }

// Angle returns the polar angle of p in (-π, π].
func Angle(p Point) float64 { return math.Atan2(p.Y, p.X) }

// Polar returns the point at distance r along angle rad.
func Polar(r, rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{X: r * cos, Y: r * sin}
}

// Arc returns the point on the unit circle at angle 2π·frac.
// Figure builders use it to address the vertices of a regular n-gon:
// vertex i sits at Arc(i/n).
func Arc(frac float64) Point { return Polar(1, 2*math.Pi*frac) }

// FromDegrees converts degrees to radians.
func FromDegrees(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Collinear reports whether p lies on the infinite line through a and b,
// measured as perpendicular distance no greater than tol. A degenerate line
// (a == b) is collinear with p only when p is near a.
func Collinear(a, b, p Point, tol float64) bool {
	d := b.Minus(a)
	l := Len(d)
	if l == 0 {
		return Near(a, p, tol)
	}
	return math.Abs(Cross(d, p.Minus(a)))/l <= tol
}

// TurnAngle returns the interior angle at vertex b of the path a-b-c, in
// [0, π]. Straight continuation yields π.
func TurnAngle(a, b, c Point) float64 {
	ang := math.Abs(geom.VertexAngle(a, b, c))
	if math.IsNaN(ang) {
		// acos rounding at exactly straight or folded paths
		if Dot(a.Minus(b), c.Minus(b)) < 0 {
			return math.Pi
		}
		return 0
	}
	if ang > math.Pi {
		ang = 2*math.Pi - ang
	}
	return ang
}
