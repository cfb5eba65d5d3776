// SPDX-License-Identifier: MIT
//
// File: figure.go
// Role: the Figure type: parameters plus lazily built, cached maps.
//
// Cache policy:
//   - Unit and FigureMap are built on first use and kept until a setter
//     or ResetMaps invalidates them.
//   - The returned maps are owned by the Figure; callers that mutate them
//     must Clone first.

package figure

import (
	"github.com/katalvlaran/girih/planar"
)

// Figure is one radially symmetric figure.
type Figure struct {
	ctx    *Context
	params Params

	unit *planar.Map
	full *planar.Map
}

// New returns a figure for p built with ctx (nil for defaults). p is
// clamped.
func New(ctx *Context, p Params) *Figure {
	return &Figure{ctx: ctx.orDefault(), params: p.Clamp()}
}

// NewStar returns Star(n, d, s).
func NewStar(ctx *Context, n int, d float64, s int) *Figure {
	return New(ctx, StarParams(n, d, s))
}

// NewRosette returns Rosette(n, q, s, k).
func NewRosette(ctx *Context, n int, q float64, s int, k float64) *Figure {
	return New(ctx, RosetteParams(n, q, s, k))
}

// Params returns the clamped parameters.
func (f *Figure) Params() Params { return f.params }

// Kind returns the figure kind.
func (f *Figure) Kind() Kind { return f.params.Kind }

// N returns the symmetry order.
func (f *Figure) N() int { return f.params.N }

// Context returns the construction context.
func (f *Figure) Context() *Context { return f.ctx }

// String returns the parameter notation of f.
func (f *Figure) String() string { return f.params.String() }

// Unit returns the unit map, building it if needed.
func (f *Figure) Unit() *planar.Map {
	if f.unit == nil {
		f.unit = BuildUnit(f.ctx, f.params)
	}
	return f.unit
}

// FigureMap returns the unit replicated under the n rotations by 2π/n,
// merged and cleansed, building it if needed.
func (f *Figure) FigureMap() *planar.Map {
	if f.full != nil {
		return f.full
	}
	m := f.ctx.NewMap()
	m.MergeSimpleMany(f.Unit(), Rotations(f.params.N))
	m.Cleanse(planar.CleanseSplit, f.ctx.sensitivity)
	planar.Logger().Debug("figure: built figure map", "params", f.params.String(), "map", m.String())
	f.full = m
	return m
}

// ResetMaps drops the cached unit and figure maps.
func (f *Figure) ResetMaps() {
	f.unit, f.full = nil, nil
}

// Set replaces every parameter.
func (f *Figure) Set(p Params) {
	f.params = p.Clamp()
	f.ResetMaps()
}

// SetKind changes the kind, keeping the other parameters.
func (f *Figure) SetKind(k Kind) {
	p := f.params
	p.Kind = k
	f.Set(p)
}

// SetN changes the symmetry order; d and s are clamped to the new n.
func (f *Figure) SetN(n int) {
	p := f.params
	p.N = n
	f.Set(p)
}

// SetStar changes the star density and crossing count.
func (f *Figure) SetStar(d float64, s int) {
	p := f.params
	p.D, p.S = d, s
	f.Set(p)
}

// SetRosette changes the rosette tip, crossing count and neck.
func (f *Figure) SetRosette(q float64, s int, k float64) {
	p := f.params
	p.Q, p.S, p.K = q, s, k
	f.Set(p)
}

// SetRotation changes the rotation, in degrees.
func (f *Figure) SetRotation(deg float64) {
	p := f.params
	p.Rotation = deg
	f.Set(p)
}

// SetScale changes the scale. Connect kinds ignore it.
func (f *Figure) SetScale(s float64) {
	p := f.params
	p.Scale = s
	f.Set(p)
}

// SetHalfTurn toggles the half-turn post-processing.
func (f *Figure) SetHalfTurn(on bool) {
	p := f.params
	p.HalfTurn = on
	f.Set(p)
}

// ComputeConnectScale returns the scale at which the extended rays of
// neighbouring copies of the base unit meet on the boundary n-gon, or 1 when
// they never meet. It does not touch the cached maps.
func (f *Figure) ComputeConnectScale() float64 {
	base := f.params
	base.Kind = base.Kind.Base()
	base.Scale, base.Rotation, base.HalfTurn = 1, 0, false
	return ConnectScale(BuildUnit(f.ctx, base), base.N)
}
