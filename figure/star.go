// SPDX-License-Identifier: MIT
//
// File: star.go
// Role: unit construction of the [n/d]s star.
//
// Geometry:
//   - The upper arm follows the chord from the tip a = (1, 0) to
//     b = Arc(d/n). The chord and its mirror image about the axis at angle
//     πi/n cross on that axis; that mirror image is the lower arm of the tip
//     at angle 2πi/n, so the crossings of the arm are found one axis at a
//     time for i = 1, 2, ….
//   - The arm keeps s crossings. When s reaches past the last crossing before
//     the chord midpoint the arm is closed by an apex: the chord midpoint
//     for integer d, the next crossing for fractional d.
//   - The lower arm is the mirror image of the upper arm across the x axis.

package figure

import (
	"math"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// buildStar returns the unit of Star(n, d, s). The parameters must be
// clamped.
func buildStar(ctx *Context, n int, d float64, s int) *planar.Map {
	unit := ctx.NewMap()
	tip := geometry.Pt(1, 0)

	if 2*d >= float64(n) {
		// The chord runs through the centre: a single spoke per tip.
		unit.InsertLine(tip, geometry.Pt(0, 0))
		return unit
	}

	nn := float64(n)
	b := geometry.Arc(d / nn)
	crossing := func(i int) (geometry.Point, bool) {
		fi := float64(i)
		return geometry.LineIntersection(tip, b, geometry.Arc(fi/nn), geometry.Arc((fi-d)/nn))
	}

	arm := []geometry.Point{tip}
	last := int(math.Ceil(d)) - 1 // crossings strictly before the chord midpoint
	for i := 1; i <= last && i <= s; i++ {
		p, ok := crossing(i)
		if !ok {
			break
		}
		arm = append(arm, p)
	}
	if s > last {
		if d == math.Floor(d) {
			arm = append(arm, geometry.Mid(tip, b))
		} else if p, ok := crossing(last + 1); ok {
			arm = append(arm, p)
		}
	}

	insertArm(unit, arm)
	return unit
}

// insertArm inserts the polyline arm and its mirror image across the x axis.
func insertArm(unit *planar.Map, arm []geometry.Point) {
	for i := 0; i+1 < len(arm); i++ {
		unit.InsertLine(arm[i], arm[i+1])
		unit.InsertLine(geometry.Mirror(arm[i]), geometry.Mirror(arm[i+1]))
	}
}
