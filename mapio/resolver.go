// SPDX-License-Identifier: MIT
//
// File: resolver.go
// Role: id-tagged reference tables for shared maps.
//
// Reading: a Resolver indexes the map records of a document by id and
// builds each map at most once, so figures referring to the same id share
// one *planar.Map.
// Writing: a Writer hands out one id per distinct *planar.Map, so a map
// placed by several figures is recorded once.

package mapio

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// Resolver resolves map ids of one document to shared maps.
type Resolver struct {
	doc     *Document
	opts    []LoadOption
	records map[uuid.UUID]int
	maps    map[uuid.UUID]*planar.Map
}

// NewResolver indexes doc. It fails on malformed or duplicate ids.
func NewResolver(doc *Document, opts ...LoadOption) (*Resolver, error) {
	r := &Resolver{
		doc:     doc,
		opts:    opts,
		records: make(map[uuid.UUID]int, len(doc.Maps)),
		maps:    make(map[uuid.UUID]*planar.Map, len(doc.Maps)),
	}
	for i, rec := range doc.Maps {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: map %d: id %q: %w", ErrInvalidDocument, i, rec.ID, err)
		}
		if _, dup := r.records[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		r.records[id] = i
	}
	return r, nil
}

// IDs returns the map ids in document order.
func (r *Resolver) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.doc.Maps))
	for id, i := range r.records {
		out[i] = id
	}
	return out
}

// Map returns the map with the given id, building it on first use.
func (r *Resolver) Map(id uuid.UUID) (*planar.Map, error) {
	if m, ok := r.maps[id]; ok {
		return m, nil
	}
	i, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMap, id)
	}
	m, err := ToMap(r.doc.Maps[i], r.opts...)
	if err != nil {
		return nil, err
	}
	r.maps[id] = m
	return m, nil
}

// ResolvedFigure is a FigureRecord with its map and placements resolved.
type ResolvedFigure struct {
	Name       string
	Params     string
	Map        *planar.Map
	Placements []geometry.Transform
}

// Figures resolves every figure of the document in order.
func (r *Resolver) Figures() ([]ResolvedFigure, error) {
	out := make([]ResolvedFigure, 0, len(r.doc.Figures))
	for i, fr := range r.doc.Figures {
		id, err := uuid.Parse(fr.Map)
		if err != nil {
			return nil, fmt.Errorf("%w: figure %d: map id %q: %w", ErrInvalidDocument, i, fr.Map, err)
		}
		m, err := r.Map(id)
		if err != nil {
			return nil, fmt.Errorf("figure %q: %w", fr.Name, err)
		}
		placements := make([]geometry.Transform, len(fr.Placements))
		for j, row := range fr.Placements {
			if len(row) != 6 {
				return nil, fmt.Errorf("%w: figure %q placement %d: want 6 coefficients, got %d", ErrInvalidDocument, fr.Name, j, len(row))
			}
			placements[j] = geometry.Transform{A: row[0], B: row[1], C: row[2], D: row[3], E: row[4], F: row[5]}
		}
		out = append(out, ResolvedFigure{Name: fr.Name, Params: fr.Params, Map: m, Placements: placements})
	}
	return out, nil
}

// Assemble merges every figure map under its placements into one map, the
// inverse of writing a prototype figure by figure. A figure without
// placements is merged once, untransformed.
func (r *Resolver) Assemble() (*planar.Map, error) {
	figs, err := r.Figures()
	if err != nil {
		return nil, err
	}
	cfg := newLoadConfig(r.opts)
	m := planar.NewMap(planar.WithEpsilon(cfg.eps))
	for _, f := range figs {
		placements := f.Placements
		if len(placements) == 0 {
			placements = []geometry.Transform{geometry.Identity()}
		}
		m.MergeSimpleMany(f.Map, placements)
	}
	return m, nil
}

// Writer builds a Document, recording each distinct map once.
type Writer struct {
	doc Document
	ids map[*planar.Map]uuid.UUID
}

// NewWriter returns a writer for a document with the given name.
func NewWriter(name string) *Writer {
	return &Writer{
		doc: Document{Version: CurrentVersion, Name: name},
		ids: make(map[*planar.Map]uuid.UUID),
	}
}

// AddMap records m unless it was recorded before and returns its id.
func (w *Writer) AddMap(m *planar.Map) uuid.UUID {
	if id, ok := w.ids[m]; ok {
		return id
	}
	id := uuid.New()
	w.ids[m] = id
	w.doc.Maps = append(w.doc.Maps, FromMap(id, m))
	return id
}

// AddFigure records a figure placing m, recording m itself if needed.
func (w *Writer) AddFigure(name, params string, m *planar.Map, placements ...geometry.Transform) uuid.UUID {
	id := w.AddMap(m)
	fr := FigureRecord{Name: name, Map: id.String(), Params: params}
	for _, t := range placements {
		fr.Placements = append(fr.Placements, []float64{t.A, t.B, t.C, t.D, t.E, t.F})
	}
	w.doc.Figures = append(w.doc.Figures, fr)
	return id
}

// Document returns the document built so far.
func (w *Writer) Document() *Document {
	doc := w.doc
	return &doc
}
