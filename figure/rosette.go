// SPDX-License-Identifier: MIT
//
// File: rosette.go
// Role: unit construction of Rosette(n, q, s, k).
//
// Geometry (α = π/n):
//   - The petal edge leaves the tip (1, 0) at half tip angle γ above the
//     inward x axis and meets the axis at angle α in p1. γ is interpolated
//     from q over (0, γmax) with γmax = (π-α)/2, the angle at which p1
//     reaches the unit circle.
//   - At p1 the neck turns by k·α/2 and crosses the axes at angles jα,
//     j = 2..s, in p2…ps. Each axis is the mirror line between this arm and
//     the lower arm of the copy at angle 2jα, so every pj is a crossing.
//   - The lower arm is the mirror image of the upper arm across the x axis.

package figure

import (
	"math"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// angleMargin keeps constructed angles away from their degenerate limits.
const angleMargin = 0.01

// buildRosette returns the unit of Rosette(n, q, s, k). The parameters must
// be clamped.
func buildRosette(ctx *Context, n int, q, k float64, s int) *planar.Map {
	unit := ctx.NewMap()
	tip := geometry.Pt(1, 0)
	alpha := math.Pi / float64(n)

	gamma := rosetteTipAngle(n, q)
	petal := math.Pi - gamma
	p1, ok := rayAxisHit(tip, petal, alpha)
	if !ok {
		// γ is clamped inside (0, π-α), so the petal always reaches the axis.
		panic("figure: rosette petal misses its axis")
	}
	arm := []geometry.Point{tip, p1}

	neck := clampFloat(petal+k*alpha/2, alpha+angleMargin, alpha+math.Pi-angleMargin)
	for j := 2; j <= s; j++ {
		p, ok := rayAxisHit(p1, neck, float64(j)*alpha)
		if !ok {
			planar.Logger().Debug("figure: rosette neck stops early", "n", n, "k", k, "crossings", j-1)
			break
		}
		arm = append(arm, p)
	}

	insertArm(unit, arm)
	return unit
}

// rosetteTipAngle maps q ∈ [-3, 3] to the half tip angle γ along a single
// linear ramp: q = 3 is a needle, q = -3 a petal whose first crossing
// touches the unit circle, and q = 0 the midpoint γmax/2. The usual [-1, 1]
// range has no break of its own.
func rosetteTipAngle(n int, q float64) float64 {
	gmax := (math.Pi - math.Pi/float64(n)) / 2
	return clampFloat(gmax*(MaxQK-q)/(MaxQK-MinQK), angleMargin, gmax-angleMargin)
}

// rayAxisHit intersects the ray from p with direction angle dir and the ray
// from the origin at angle axis. Both parameters must be positive.
func rayAxisHit(p geometry.Point, dir, axis float64) (geometry.Point, bool) {
	t, u, ok := geometry.LineIntersectionParams(p, p.Plus(geometry.Polar(1, dir)), geometry.Pt(0, 0), geometry.Polar(1, axis))
	if !ok || t <= geometry.Tolerance || u <= geometry.Tolerance {
		return geometry.Point{}, false
	}
	return geometry.Lerp(p, p.Plus(geometry.Polar(1, dir)), t), true
}
