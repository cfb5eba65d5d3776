// SPDX-License-Identifier: MIT

package design_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/design"
	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

const twoStars = `
name: two-stars
features:
  - kind: star
    n: 8
    d: 3
    s: 2
    placements:
      - translate: [0, 0]
      - translate: [3, 0]
`

func TestParse_Fields(t *testing.T) {
	src := `
name: full
epsilon: 1e-6
cleanse:
  split: true
  merge_collinear: true
  sensitivity: 1e-5
features:
  - kind: Connect_Rosette
    n: 10
    q: 0.25
    k: -1
    s: 3
    rotation: 0.5
    half_turn: true
    placements:
      - {translate: [1, 2], rotate: 90, scale: 2}
`
	d, err := design.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "full", d.Name)
	assert.Equal(t, 1e-6, d.Epsilon)
	assert.True(t, d.Cleanse.Options().Has(planar.CleanseSplit|planar.MergeCollinear))
	assert.False(t, d.Cleanse.Options().Has(planar.RemoveIsolated))
	require.Len(t, d.Features, 1)

	p, err := d.Features[0].Params()
	require.NoError(t, err)
	assert.Equal(t, figure.ConnectRosette, p.Kind)
	assert.Equal(t, 10, p.N)
	assert.Equal(t, 3, p.S)
	assert.Equal(t, -1.0, p.K)
	assert.True(t, p.HalfTurn)

	tr, err := d.Features[0].Placements[0].Transform()
	require.NoError(t, err)
	got := tr.Apply(geometry.Pt(1, 0))
	assert.InDelta(t, 1.0, got.X, 1e-12)
	assert.InDelta(t, 4.0, got.Y, 1e-12)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", "name: x\ncolour: red\n"},
		{"bad type", "features: 3\n"},
		{"not yaml", "features: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := design.Parse(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, design.ErrInvalidDesign)
		})
	}
}

func TestBuild(t *testing.T) {
	d, err := design.Parse(strings.NewReader(twoStars))
	require.NoError(t, err)
	proto, err := d.Build()
	require.NoError(t, err)
	require.Equal(t, 1, proto.Len())

	m := proto.Map()
	assert.Equal(t, 48, len(m.Vertices()))
	assert.Equal(t, 64, len(m.Edges()))
	assert.NoError(t, m.Verify())
	assert.Equal(t, 2, m.Stats().Components)
}

func TestBuild_DefaultPlacementAndCleanse(t *testing.T) {
	src := `
cleanse:
  split: true
features:
  - kind: star
    n: 8
    d: 3
    s: 2
  - kind: star
    n: 8
    d: 3
    s: 2
    placements:
      - translate: [1.5, 0]
`
	d, err := design.Parse(strings.NewReader(src))
	require.NoError(t, err)
	proto, err := d.Build()
	require.NoError(t, err)

	m := proto.Map()
	assert.NoError(t, m.Verify())
	// Two overlapping stars meet in two crossings once split.
	assert.Equal(t, 50, len(m.Vertices()))
	assert.Equal(t, 68, len(m.Edges()))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    design.Design
		want error
	}{
		{"no features", design.Design{}, design.ErrNoFeatures},
		{"unknown kind", design.Design{Features: []design.Feature{{Kind: "hexagram", N: 6}}}, design.ErrUnknownKind},
		{"negative epsilon", design.Design{Epsilon: -1, Features: []design.Feature{{Kind: "star", N: 6}}}, design.ErrInvalidDesign},
		{"negative sensitivity", design.Design{
			Cleanse:  design.Cleanse{Sensitivity: -1},
			Features: []design.Feature{{Kind: "star", N: 6}},
		}, design.ErrInvalidDesign},
		{"short translate", design.Design{Features: []design.Feature{{
			Kind: "star", N: 6, Placements: []design.Placement{{Translate: []float64{1}}},
		}}}, design.ErrInvalidDesign},
		{"negative scale", design.Design{Features: []design.Feature{{
			Kind: "star", N: 6, Placements: []design.Placement{{Scale: -2}},
		}}}, design.ErrInvalidDesign},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.d.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnknownKind_WrapsFigureError(t *testing.T) {
	_, err := design.Feature{Kind: "hexagram"}.Params()
	assert.ErrorIs(t, err, design.ErrUnknownKind)
	assert.ErrorIs(t, err, figure.ErrUnknownKind)
}

func TestPlacement_Order(t *testing.T) {
	pl := design.Placement{Translate: []float64{10, 0}, Rotate: 90, Scale: 2}
	tr, err := pl.Transform()
	require.NoError(t, err)
	// (1,0) scaled to (2,0), rotated to (0,2), then moved to (10,2).
	got := tr.Apply(geometry.Pt(1, 0))
	assert.InDelta(t, 10.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)

	id, err := design.Placement{}.Transform()
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoStars), 0o600))

	d, err := design.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "two-stars", d.Name)
	require.Len(t, d.Features[0].Placements, 2)
	assert.Equal(t, []float64{3, 0}, d.Features[0].Placements[1].Translate)

	_, err = design.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestContext_Defaults(t *testing.T) {
	ctx, err := (&design.Design{}).Context()
	require.NoError(t, err)
	assert.Equal(t, planar.DefaultEpsilon, ctx.Epsilon())
	assert.Equal(t, figure.DefaultSensitivity, ctx.Sensitivity())
	assert.False(t, math.IsNaN(ctx.Reach()))
}
