// SPDX-License-Identifier: MIT
//
// File: connector.go
// Role: ray extension for the Extended and Connect variants, and the unit
//       post-processing helpers RotateHalf and ScaleToUnit.
//
// Algorithm (Extend):
//  1. Find the tip at (1, 0) and the tip's lower neighbour ("below-tip");
//     scale the unit.
//  2. The boundary is the regular n-gon with corners at angles 2πi/n on the
//     unit circle.
//  3. The extension ray runs from below-tip through the tip; clipping it
//     against the boundary gives the extended endpoint.
//  4. The ray is the mirror image of the lower extension of the copy at
//     angle 2πj/n about the axis at angle πj/n, so the two meet on that axis.
//     The walk visits those axes in order, at most ⌈(n+1)/2⌉ of them,
//     inserting every meeting point together with its mirror image.
//  5. The last point is joined to the extended endpoint unless they
//     coincide.
//
// Failure policy:
//   - A unit without a tip or below-tip vertex is a programmer error and
//     panics.
//   - Geometric dead ends (a ray that never leaves the boundary, a ray
//     parallel to the axis) skip the optional step and log at Warn.

package figure

import (
	"math"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// Tip returns the canonical tip vertex of unit, the vertex at (1, 0).
func Tip(unit *planar.Map) *planar.Vertex {
	return unit.FindVertex(geometry.Pt(1, 0))
}

// Extend scales unit by scale and extends the rays through its tip to the
// boundary n-gon, splitting them where they meet the rays of neighbouring
// copies. unit is modified in place.
//
// Implementation:
//   - Stage 1: Locate tip and below-tip, then scale unit.
//   - Stage 2: Clip the ray below-tip → tip against the boundary n-gon.
//   - Stage 3: Walk the axes at jπ/n, inserting each hit and its mirror.
//   - Stage 4: Join the last hit to the boundary endpoint.
//
// Errors:
//   - None. A ray that never leaves the boundary is logged at Warn and the
//     unit is only scaled. A unit without tip or below-tip panics.
//
// Complexity: O(n·V) for the inserts.
func Extend(ctx *Context, unit *planar.Map, n int, scale float64) {
	ctx = ctx.orDefault()
	tip, below := mustTip(unit)
	unit.Scale(scale)

	dir := geometry.Normalize(tip.Pos.Minus(below.Pos))
	start := tip.Pos
	far := start.Plus(dir.Times(ctx.reach * math.Max(1, geometry.Len(start))))
	end, ok := geometry.ClipSegment(start, far, geometry.RegularPolygon(n, 1, 0))
	if !ok {
		planar.Logger().Warn("figure: extension ray does not meet the boundary", "n", n, "scale", scale)
		return
	}

	alpha := math.Pi / float64(n)
	steps := (n + 2) / 2 // ⌈(n+1)/2⌉
	prev := start
	for j := 1; j <= steps; j++ {
		x, ok := segmentAxisHit(prev, end, float64(j)*alpha)
		if !ok {
			break
		}
		insertMirrored(unit, prev, x)
		prev = x
	}
	if !geometry.Near(prev, end, unit.Epsilon()) {
		insertMirrored(unit, prev, end)
	}
	planar.Logger().Debug("figure: extended unit", "n", n, "scale", scale, "end", end)
}

// ConnectScale returns the scale at which the extension rays of neighbouring
// copies of unit meet exactly on the boundary n-gon: the ray through the
// unscaled tip meets the axis at angle π/n in X, and the result moves X onto
// the n-gon edge midpoint at distance cos(π/n). When the ray never meets the
// axis the fallback 1.0 is returned.
func ConnectScale(unit *planar.Map, n int) float64 {
	tip, below := mustTip(unit)
	alpha := math.Pi / float64(n)
	t, u, ok := geometry.LineIntersectionParams(below.Pos, tip.Pos, geometry.Pt(0, 0), geometry.Polar(1, alpha))
	if !ok || t <= 1 || u <= 0 {
		planar.Logger().Warn("figure: extension ray never meets the connecting axis, using scale 1", "n", n)
		return 1
	}
	x := geometry.Lerp(below.Pos, tip.Pos, t)
	return math.Cos(alpha) / geometry.Len(x)
}

// RotateHalf returns a new unit made of the part of unit on or above the x
// axis rotated by -π/n, plus its mirror image. Replicated n times it gives
// the figure of unit rotated by -π/n: the point half way to the next copy
// becomes the new tip direction.
func RotateHalf(unit *planar.Map, n int) *planar.Map {
	eps := unit.Epsilon()
	upper := planar.NewMap(planar.WithEpsilon(eps))
	for _, e := range unit.Edges() {
		if e.V1.Pos.Y < -eps || e.V2.Pos.Y < -eps {
			continue
		}
		v1, v2 := upper.InsertVertex(e.V1.Pos), upper.InsertVertex(e.V2.Pos)
		if e.IsArc() {
			upper.InsertArc(v1, v2, e.Center, e.Convex)
			continue
		}
		upper.InsertEdge(v1, v2)
	}

	rot := geometry.Rotation(-math.Pi / float64(n))
	out := planar.NewMap(planar.WithEpsilon(eps))
	out.MergeTransformed(upper, rot)
	out.MergeTransformed(upper, rot.Then(geometry.Reflection(0)))
	return out
}

// ScaleToUnit scales unit so that its rightmost vertex lies at x = 1. Units
// with no vertex right of the origin are left alone.
func ScaleToUnit(unit *planar.Map) {
	maxX := math.Inf(-1)
	for _, v := range unit.Vertices() {
		maxX = math.Max(maxX, v.Pos.X)
	}
	if maxX <= unit.Epsilon() {
		return
	}
	unit.Scale(1 / maxX)
}

// mustTip returns the tip and below-tip vertices of unit, or panics. The
// below-tip vertex is the tip neighbour with the lowest y, which must not lie
// above the x axis; spokes use their on-axis neighbour.
func mustTip(unit *planar.Map) (tip, below *planar.Vertex) {
	tip = Tip(unit)
	if tip == nil {
		panic("figure: unit has no tip vertex at (1, 0)")
	}
	eps := unit.Epsilon()
	for _, e := range tip.Edges() {
		w := e.Other(tip)
		if w.Pos.Y < eps && (below == nil || w.Pos.Y < below.Pos.Y) {
			below = w
		}
	}
	if below == nil {
		panic("figure: tip vertex has no neighbour below the x axis")
	}
	return tip, below
}

// segmentAxisHit intersects segment ab with the ray from the origin at angle
// axis. The hit must lie past a and not past b.
func segmentAxisHit(a, b geometry.Point, axis float64) (geometry.Point, bool) {
	t, u, ok := geometry.LineIntersectionParams(a, b, geometry.Pt(0, 0), geometry.Polar(1, axis))
	if !ok || t <= geometry.Tolerance || t > 1+geometry.Tolerance || u <= 0 {
		return geometry.Point{}, false
	}
	return geometry.Lerp(a, b, t), true
}

func insertMirrored(unit *planar.Map, p, q geometry.Point) {
	unit.InsertLine(p, q)
	unit.InsertLine(geometry.Mirror(p), geometry.Mirror(q))
}
