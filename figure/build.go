// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: unit construction dispatch by Kind.
//
// Stages:
//  1. Clamp the parameters.
//  2. Build the base unit (Star or Rosette) with its tip at (1, 0).
//  3. Scale it; Extended and Connect kinds extend their tip rays while
//     scaling, Connect kinds use ConnectScale instead of Params.Scale.
//  4. HalfTurn: RotateHalf then ScaleToUnit.
//  5. Rotate by Params.Rotation, rebuild adjacency and verify.

package figure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// BuildUnit returns a freshly built unit map for p.
//
// Implementation:
//   - Stage 1: Clamp p.
//   - Stage 2: Build the Star or Rosette base unit with its tip at (1, 0).
//   - Stage 3: Pick the scale (ConnectScale for Connect kinds, p.Scale
//     otherwise); Extended and Connect kinds scale inside Extend.
//   - Stage 4: HalfTurn applies RotateHalf then ScaleToUnit.
//   - Stage 5: Rotate by p.Rotation, rebuild adjacency, verify.
//
// Returns:
//   - *planar.Map: a new map owned by the caller.
//
// Errors:
//   - None. Verification failures are logged, never returned: the unit is
//     usable either way. An undeclared p.Kind panics.
//
// Complexity: O(s·n) for the arm, plus O(V² + E²) for the final Verify.
func BuildUnit(ctx *Context, p Params) *planar.Map {
	ctx = ctx.orDefault()
	p = p.Clamp()

	var unit *planar.Map
	switch p.Kind.Base() {
	case Star:
		unit = buildStar(ctx, p.N, p.D, p.S)
	case Rosette:
		unit = buildRosette(ctx, p.N, p.Q, p.K, p.S)
	default:
		panic(fmt.Sprintf("figure: BuildUnit of undeclared %v", p.Kind))
	}

	scale := p.Scale
	if p.Kind.Connected() {
		scale = ConnectScale(unit, p.N)
	}
	if p.Kind.Extended() {
		Extend(ctx, unit, p.N, scale)
	} else if scale != 1 {
		unit.Scale(scale)
	}

	if p.HalfTurn {
		unit = RotateHalf(unit, p.N)
		ScaleToUnit(unit)
	}
	if p.Rotation != 0 {
		unit.Rotate(geometry.FromDegrees(p.Rotation))
	}

	unit.RebuildAdjacency()
	_ = unit.Verify() // logged by Verify
	planar.Logger().Debug("figure: built unit", "params", p.String(), "scale", scale, "unit", unit.String())
	return unit
}

// Rotations returns the n rotations about the origin by multiples of 2π/n.
func Rotations(n int) []geometry.Transform {
	out := make([]geometry.Transform, n)
	for i := range out {
		out[i] = geometry.Rotation(2 * math.Pi * float64(i) / float64(n))
	}
	return out
}
