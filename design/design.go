// SPDX-License-Identifier: MIT
//
// File: design.go
// Role: YAML design documents and their translation into a prototype.
//
// Defaults:
//   - epsilon     = planar.DefaultEpsilon
//   - sensitivity = figure.DefaultSensitivity
//   - feature scale 0 means 1, a missing placement list means one
//     untransformed copy.

package design

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
	"github.com/katalvlaran/girih/prototype"
)

// Design is a parsed design document.
type Design struct {
	Name     string    `yaml:"name"`
	Epsilon  float64   `yaml:"epsilon,omitempty"`
	Cleanse  Cleanse   `yaml:"cleanse,omitempty"`
	Features []Feature `yaml:"features"`
}

// Cleanse selects the repairs run on the assembled map.
type Cleanse struct {
	Split          bool    `yaml:"split,omitempty"`
	MergeCollinear bool    `yaml:"merge_collinear,omitempty"`
	RemoveIsolated bool    `yaml:"remove_isolated,omitempty"`
	Sensitivity    float64 `yaml:"sensitivity,omitempty"`
}

// Options returns the planar cleanse flags selected by c.
func (c Cleanse) Options() planar.CleanseOption {
	var o planar.CleanseOption
	if c.Split {
		o |= planar.CleanseSplit
	}
	if c.MergeCollinear {
		o |= planar.MergeCollinear
	}
	if c.RemoveIsolated {
		o |= planar.RemoveIsolated
	}
	return o
}

// Feature is one figure and its placements.
type Feature struct {
	Kind       string      `yaml:"kind"`
	N          int         `yaml:"n"`
	D          float64     `yaml:"d,omitempty"`
	Q          float64     `yaml:"q,omitempty"`
	K          float64     `yaml:"k,omitempty"`
	S          int         `yaml:"s,omitempty"`
	Rotation   float64     `yaml:"rotation,omitempty"`
	Scale      float64     `yaml:"scale,omitempty"`
	HalfTurn   bool        `yaml:"half_turn,omitempty"`
	Placements []Placement `yaml:"placements,omitempty"`
}

// Placement positions one copy of a feature.
type Placement struct {
	Translate []float64 `yaml:"translate,omitempty,flow"`
	Rotate    float64   `yaml:"rotate,omitempty"`
	Scale     float64   `yaml:"scale,omitempty"`
}

// Parse reads one design document. Unknown fields are rejected.
func Parse(r io.Reader) (*Design, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Design
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidDesign, err)
	}
	return &d, nil
}

// Load parses the design document at path.
func Load(path string) (*Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("design: load: %w", err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Context returns the figure construction context of d.
func (d *Design) Context() (*figure.Context, error) {
	var opts []figure.ContextOption
	if d.Epsilon < 0 {
		return nil, fmt.Errorf("%w: epsilon %g", ErrInvalidDesign, d.Epsilon)
	}
	if d.Epsilon > 0 {
		opts = append(opts, figure.WithEpsilon(d.Epsilon))
	}
	if d.Cleanse.Sensitivity < 0 {
		return nil, fmt.Errorf("%w: sensitivity %g", ErrInvalidDesign, d.Cleanse.Sensitivity)
	}
	if d.Cleanse.Sensitivity > 0 {
		opts = append(opts, figure.WithSensitivity(d.Cleanse.Sensitivity))
	}
	return figure.NewContext(opts...), nil
}

// Params returns the figure parameters of f, unclamped.
func (f Feature) Params() (figure.Params, error) {
	kind, err := figure.ParseKind(f.Kind)
	if err != nil {
		return figure.Params{}, fmt.Errorf("%w: %w", ErrUnknownKind, err)
	}
	return figure.Params{
		Kind:     kind,
		N:        f.N,
		D:        f.D,
		Q:        f.Q,
		K:        f.K,
		S:        f.S,
		Rotation: f.Rotation,
		Scale:    f.Scale,
		HalfTurn: f.HalfTurn,
	}, nil
}

// Transform returns the affine transform of p: scale, rotate, translate.
func (p Placement) Transform() (geometry.Transform, error) {
	var dx, dy float64
	switch len(p.Translate) {
	case 0:
	case 2:
		dx, dy = p.Translate[0], p.Translate[1]
	default:
		return geometry.Transform{}, fmt.Errorf("%w: translate wants 2 values, got %d", ErrInvalidDesign, len(p.Translate))
	}
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return geometry.Transform{}, fmt.Errorf("%w: placement scale %g", ErrInvalidDesign, p.Scale)
	}
	return geometry.Compose(
		geometry.UniformScaling(scale),
		geometry.Rotation(geometry.FromDegrees(p.Rotate)),
		geometry.Translation(dx, dy),
	), nil
}

// Build creates the figures of d and places them in a new prototype.
func (d *Design) Build() (*prototype.Prototype, error) {
	if len(d.Features) == 0 {
		return nil, ErrNoFeatures
	}
	ctx, err := d.Context()
	if err != nil {
		return nil, err
	}

	opts := []prototype.Option{prototype.WithEpsilon(ctx.Epsilon())}
	if c := d.Cleanse.Options(); c != 0 {
		opts = append(opts, prototype.WithCleanse(c, ctx.Sensitivity()))
	}
	proto := prototype.New(opts...)

	for i, feat := range d.Features {
		params, err := feat.Params()
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		placements := make([]geometry.Transform, 0, len(feat.Placements))
		for j, pl := range feat.Placements {
			t, err := pl.Transform()
			if err != nil {
				return nil, fmt.Errorf("feature %d placement %d: %w", i, j, err)
			}
			placements = append(placements, t)
		}
		if _, err := proto.AddFeature(figure.New(ctx, params), placements...); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
	}
	planar.Logger().Debug("design: built prototype", "name", d.Name, "features", proto.Len())
	return proto, nil
}
