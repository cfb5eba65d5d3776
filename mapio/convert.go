// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: conversion between planar.Map and MapRecord.
//
// Load policy:
//   - Structural errors (bad indices, zero-length edges) are always
//     ErrInvalidDocument.
//   - Geometric errors (coincident vertices, crossings) fail Verify. With
//     WithRepair the map is cleansed and verified again; otherwise, or if
//     the repair does not help, the load fails with ErrInvalidMap.

package mapio

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// LoadOption configures ToMap and Resolver.
type LoadOption func(*loadConfig)

type loadConfig struct {
	repair      bool
	sensitivity float64
	eps         float64
}

// WithRepair allows a cleanse with the given sensitivity when a loaded map
// fails verification.
func WithRepair(sensitivity float64) LoadOption {
	return func(c *loadConfig) {
		c.repair = true
		c.sensitivity = sensitivity
	}
}

// WithEpsilon sets the tolerance of loaded maps whose record carries none.
// Panics on non-positive values.
func WithEpsilon(eps float64) LoadOption {
	if !(eps > 0) {
		panic("mapio: WithEpsilon requires eps > 0")
	}
	return func(c *loadConfig) { c.eps = eps }
}

func newLoadConfig(opts []LoadOption) loadConfig {
	c := loadConfig{eps: planar.DefaultEpsilon}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FromMap records m under id. Vertices and edges keep their insertion order.
func FromMap(id uuid.UUID, m *planar.Map) MapRecord {
	verts := m.Vertices()
	index := make(map[*planar.Vertex]int, len(verts))
	rec := MapRecord{
		ID:       id.String(),
		Epsilon:  m.Epsilon(),
		Vertices: make([]PointRecord, len(verts)),
		Edges:    make([]EdgeRecord, 0, m.EdgeCount()),
	}
	for i, v := range verts {
		index[v] = i
		rec.Vertices[i] = PointRecord{v.Pos.X, v.Pos.Y}
	}
	for _, e := range m.Edges() {
		er := EdgeRecord{V1: index[e.V1], V2: index[e.V2], Kind: KindLine}
		if e.IsArc() {
			c := PointRecord{e.Center.X, e.Center.Y}
			er.Kind, er.Center, er.Convex = KindArc, &c, e.Convex
		}
		rec.Edges = append(rec.Edges, er)
	}
	return rec
}

// ToMap builds the map described by rec, which must be in the current
// layout (Decode normalizes).
func ToMap(rec MapRecord, opts ...LoadOption) (*planar.Map, error) {
	cfg := newLoadConfig(opts)
	eps := cfg.eps
	if rec.Epsilon > 0 {
		eps = rec.Epsilon
	}
	m := planar.NewMap(planar.WithEpsilon(eps))

	verts := make([]*planar.Vertex, len(rec.Vertices))
	for i, p := range rec.Vertices {
		verts[i] = m.InsertVertex(geometry.Pt(p[0], p[1]))
	}
	collapsed := len(verts) - m.VertexCount()

	for j, er := range rec.Edges {
		if er.V1 < 0 || er.V1 >= len(verts) || er.V2 < 0 || er.V2 >= len(verts) {
			return nil, fmt.Errorf("%w: map %s edge %d: vertex index out of range", ErrInvalidDocument, rec.ID, j)
		}
		if er.V1 == er.V2 {
			return nil, fmt.Errorf("%w: map %s edge %d: zero-length edge", ErrInvalidDocument, rec.ID, j)
		}
		v1, v2 := verts[er.V1], verts[er.V2]
		if v1 == v2 {
			// Endpoints collapsed by vertex dedup; reported below.
			continue
		}
		switch er.Kind {
		case KindArc:
			if er.Center == nil {
				return nil, fmt.Errorf("%w: map %s edge %d: arc without center", ErrInvalidDocument, rec.ID, j)
			}
			m.InsertArc(v1, v2, geometry.Pt(er.Center[0], er.Center[1]), er.Convex)
		case KindLine, "":
			m.InsertEdge(v1, v2)
		default:
			return nil, fmt.Errorf("%w: map %s edge %d: unknown kind %q", ErrInvalidDocument, rec.ID, j, er.Kind)
		}
	}

	err := m.Verify()
	if err == nil && collapsed > 0 {
		err = fmt.Errorf("%w: %d vertices within epsilon of another", planar.ErrCoincidentVertices, collapsed)
	}
	if err == nil {
		return m, nil
	}
	if !cfg.repair {
		return nil, fmt.Errorf("%w: map %s: %w", ErrInvalidMap, rec.ID, err)
	}

	planar.Logger().Warn("mapio: repairing map", "id", rec.ID, "cause", err.Error())
	m.Cleanse(planar.CleanseSplit|planar.RemoveIsolated, cfg.sensitivity)
	if err := m.Verify(); err != nil {
		return nil, fmt.Errorf("%w: map %s: repair failed: %w", ErrInvalidMap, rec.ID, err)
	}
	return m, nil
}
