// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: the persisted document layout.

package mapio

// CurrentVersion is the version written by Encode.
const CurrentVersion = 2

// Edge kind tags.
const (
	KindLine = "line"
	KindArc  = "arc"
)

// Document is the persisted form of a set of maps and the figures using
// them.
type Document struct {
	Version int            `yaml:"version"`
	Name    string         `yaml:"name,omitempty"`
	Maps    []MapRecord    `yaml:"maps"`
	Figures []FigureRecord `yaml:"figures,omitempty"`
}

// MapRecord is one map: vertices in order and edges by vertex index.
type MapRecord struct {
	ID       string        `yaml:"id"`
	Epsilon  float64       `yaml:"epsilon,omitempty"`
	Vertices []PointRecord `yaml:"vertices,flow"`
	Edges    []EdgeRecord  `yaml:"edges"`
}

// PointRecord is a point written as a two element flow sequence.
type PointRecord [2]float64

// EdgeRecord is one edge. Curve is only read from version 1 documents and
// is cleared by normalization.
type EdgeRecord struct {
	V1     int          `yaml:"v1"`
	V2     int          `yaml:"v2"`
	Kind   string       `yaml:"kind,omitempty"`
	Center *PointRecord `yaml:"center,omitempty,flow"`
	Convex bool         `yaml:"convex,omitempty"`
	Curve  *bool        `yaml:"curve,omitempty"`
}

// FigureRecord places a referenced map. Transforms are affine
// [a b c d e f] rows mapping (x, y) to (ax+by+c, dx+ey+f).
type FigureRecord struct {
	Name       string      `yaml:"name"`
	Map        string      `yaml:"map"`
	Params     string      `yaml:"params,omitempty"`
	Placements [][]float64 `yaml:"placements,omitempty,flow"`
}
