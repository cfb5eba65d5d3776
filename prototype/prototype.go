// SPDX-License-Identifier: MIT
//
// File: prototype.go
// Role: feature bookkeeping and master map assembly.
//
// Contract:
//   - A feature with no placements is placed once, untransformed.
//   - Features are merged in insertion order; placements in the order they
//     were added.
//   - Every mutation drops the cached master map.

package prototype

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// Feature is a figure together with its placements.
type Feature struct {
	ID         uuid.UUID
	Figure     *figure.Figure
	Placements []geometry.Transform
}

// Option configures a Prototype.
type Option func(*Prototype)

// WithEpsilon sets the positional tolerance of the master map. Panics on
// non-positive values.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("prototype: WithEpsilon requires eps > 0")
	}
	return func(p *Prototype) { p.eps = eps }
}

// WithCleanse cleanses the master map with opts after every rebuild.
func WithCleanse(opts planar.CleanseOption, sensitivity float64) Option {
	return func(p *Prototype) {
		p.cleanse = opts
		p.sensitivity = sensitivity
	}
}

// Prototype is an ordered set of placed features.
type Prototype struct {
	eps         float64
	cleanse     planar.CleanseOption
	sensitivity float64

	features []*Feature
	master   *planar.Map
}

// New returns an empty prototype.
func New(opts ...Option) *Prototype {
	p := &Prototype{eps: planar.DefaultEpsilon}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddFeature adds f with the given placements and returns the new feature
// id.
func (p *Prototype) AddFeature(f *figure.Figure, placements ...geometry.Transform) (uuid.UUID, error) {
	if f == nil {
		return uuid.Nil, ErrNilFigure
	}
	feat := &Feature{
		ID:         uuid.New(),
		Figure:     f,
		Placements: append([]geometry.Transform(nil), placements...),
	}
	p.features = append(p.features, feat)
	p.Invalidate()
	return feat.ID, nil
}

// AddPlacement appends placements to the feature with the given id.
func (p *Prototype) AddPlacement(id uuid.UUID, placements ...geometry.Transform) error {
	feat, err := p.find(id)
	if err != nil {
		return fmt.Errorf("AddPlacement: %w", err)
	}
	feat.Placements = append(feat.Placements, placements...)
	p.Invalidate()
	return nil
}

// RemoveFeature removes the feature with the given id.
func (p *Prototype) RemoveFeature(id uuid.UUID) error {
	for i, feat := range p.features {
		if feat.ID == id {
			p.features = append(p.features[:i], p.features[i+1:]...)
			p.Invalidate()
			return nil
		}
	}
	return fmt.Errorf("RemoveFeature: %w: %s", ErrFeatureNotFound, id)
}

// Feature returns a copy of the feature with the given id.
func (p *Prototype) Feature(id uuid.UUID) (Feature, error) {
	feat, err := p.find(id)
	if err != nil {
		return Feature{}, fmt.Errorf("Feature: %w", err)
	}
	return copyFeature(feat), nil
}

// Features returns copies of all features in insertion order.
func (p *Prototype) Features() []Feature {
	out := make([]Feature, len(p.features))
	for i, feat := range p.features {
		out[i] = copyFeature(feat)
	}
	return out
}

// Len returns the number of features.
func (p *Prototype) Len() int { return len(p.features) }

// Invalidate drops the cached master map. Call it after changing a
// feature's figure through the figure's own setters.
func (p *Prototype) Invalidate() { p.master = nil }

// Map returns the master map: the figure map of every feature merged under
// each of its placements, then cleansed if configured. The result is cached
// and owned by the prototype.
//
// Complexity: O(Σ placements·(V_fig·V + E_fig·deg)) plus the cleanse.
func (p *Prototype) Map() *planar.Map {
	if p.master != nil {
		return p.master
	}
	m := planar.NewMap(planar.WithEpsilon(p.eps))
	for _, feat := range p.features {
		placements := feat.Placements
		if len(placements) == 0 {
			placements = []geometry.Transform{geometry.Identity()}
		}
		m.MergeSimpleMany(feat.Figure.FigureMap(), placements)
	}
	if p.cleanse != 0 {
		m.Cleanse(p.cleanse, p.sensitivity)
	}
	planar.Logger().Debug("prototype: assembled map", "features", len(p.features), "map", m.String())
	p.master = m
	return m
}

func (p *Prototype) find(id uuid.UUID) (*Feature, error) {
	for _, feat := range p.features {
		if feat.ID == id {
			return feat, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
}

func copyFeature(f *Feature) Feature {
	c := *f
	c.Placements = append([]geometry.Transform(nil), f.Placements...)
	return c
}
