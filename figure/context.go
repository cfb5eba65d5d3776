// SPDX-License-Identifier: MIT
//
// File: context.go
// Role: construction context shared by every figure builder.
//
// Defaults:
//   - epsilon     = planar.DefaultEpsilon
//   - sensitivity = DefaultSensitivity
//   - reach       = DefaultReach

package figure

import (
	"github.com/katalvlaran/girih/planar"
)

const (
	// DefaultSensitivity is the cleanse sensitivity used on figure maps.
	DefaultSensitivity = 1e-6
	// DefaultReach is how far past the tip an extension ray is traced before
	// it is clipped against the boundary n-gon (the n-gon has radius 1).
	DefaultReach = 8.0
)

// Context carries the construction settings of a family of figures. A nil
// *Context behaves as NewContext().
type Context struct {
	eps         float64
	sensitivity float64
	reach       float64
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithEpsilon sets the positional tolerance of every map the context builds.
// Panics on non-positive values.
func WithEpsilon(eps float64) ContextOption {
	if !(eps > 0) {
		panic("figure: WithEpsilon requires eps > 0")
	}
	return func(c *Context) { c.eps = eps }
}

// WithSensitivity sets the cleanse sensitivity used on figure maps.
// Panics on negative values.
func WithSensitivity(s float64) ContextOption {
	if !(s >= 0) {
		panic("figure: WithSensitivity requires s >= 0")
	}
	return func(c *Context) { c.sensitivity = s }
}

// WithReach sets the extension reach. Panics unless r > 1.
func WithReach(r float64) ContextOption {
	if !(r > 1) {
		panic("figure: WithReach requires r > 1")
	}
	return func(c *Context) { c.reach = r }
}

// NewContext returns a context with the defaults overridden by opts.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		eps:         planar.DefaultEpsilon,
		sensitivity: DefaultSensitivity,
		reach:       DefaultReach,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultContext = NewContext()

func (c *Context) orDefault() *Context {
	if c == nil {
		return defaultContext
	}
	return c
}

// Epsilon returns the positional tolerance.
func (c *Context) Epsilon() float64 { return c.orDefault().eps }

// Sensitivity returns the cleanse sensitivity.
func (c *Context) Sensitivity() float64 { return c.orDefault().sensitivity }

// Reach returns the extension reach.
func (c *Context) Reach() float64 { return c.orDefault().reach }

// NewMap returns an empty map using the context epsilon.
func (c *Context) NewMap() *planar.Map {
	return planar.NewMap(planar.WithEpsilon(c.Epsilon()))
}
