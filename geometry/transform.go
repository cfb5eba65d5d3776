// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: composable 2D affine transforms.

package geometry

import "math"

// Transform is a 2D affine transform stored as a 2x3 row-major matrix:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F).
// The zero value is not the identity; use Identity.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translation returns a transform moving every point by (dx, dy).
func Translation(dx, dy float64) Transform {
	return Transform{A: 1, C: dx, E: 1, F: dy}
}

// Rotation returns a counter-clockwise rotation by rad about the origin.
func Rotation(rad float64) Transform {
	sin, cos := math.Sincos(rad)
	return Transform{A: cos, B: -sin, D: sin, E: cos}
}

// RotationAbout returns a rotation by rad about p.
func RotationAbout(p Point, rad float64) Transform {
	return Translation(-p.X, -p.Y).Then(Rotation(rad)).Then(Translation(p.X, p.Y))
}

// Scaling returns a non-uniform scale about the origin.
func Scaling(sx, sy float64) Transform {
	return Transform{A: sx, E: sy}
}

// UniformScaling returns a uniform scale about the origin.
func UniformScaling(s float64) Transform { return Scaling(s, s) }

// Reflection mirrors across the line through the origin at angle rad.
func Reflection(rad float64) Transform {
	sin, cos := math.Sincos(2 * rad)
	return Transform{A: cos, B: sin, D: sin, E: -cos}
}

// Multiply returns t * u: the transform applying u first, then t.
func (t Transform) Multiply(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// Then returns the transform applying t first, then u.
func (t Transform) Then(u Transform) Transform { return u.Multiply(t) }

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 { return t.A*t.E - t.B*t.D }

// Reflects reports whether t reverses orientation.
func (t Transform) Reflects() bool { return t.Det() < 0 }

// Invert returns the inverse of t, or the identity when t is singular.
func (t Transform) Invert() Transform {
	det := t.Det()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1 / det
	return Transform{
		A: t.E * inv,
		B: -t.B * inv,
		C: (t.B*t.F - t.C*t.E) * inv,
		D: -t.D * inv,
		E: t.A * inv,
		F: (t.C*t.D - t.A*t.F) * inv,
	}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Near reports whether every coefficient of t and u differs by at most eps.
func (t Transform) Near(u Transform, eps float64) bool {
	return math.Abs(t.A-u.A) <= eps && math.Abs(t.B-u.B) <= eps && math.Abs(t.C-u.C) <= eps &&
		math.Abs(t.D-u.D) <= eps && math.Abs(t.E-u.E) <= eps && math.Abs(t.F-u.F) <= eps
}

// Compose folds ts left to right: the first transform is applied first.
func Compose(ts ...Transform) Transform {
	out := Identity()
	for _, t := range ts {
		out = out.Then(t)
	}
	return out
}
