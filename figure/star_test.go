package figure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
)

func TestStar_Counts(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		d            float64
		s            int
		unitV, unitE int
		figV, figE   int
	}{
		{"8/3 s2", 8, 3, 2, 5, 4, 24, 32},
		{"8/3 closed", 8, 3, 6, 7, 6, 32, 48},
		{"8/2 s1", 8, 2, 1, 3, 2, 16, 16},
		{"12/4 closed", 12, 4, 6, 9, 8, 60, 96},
		{"5/2 pentagram", 5, 2, 2, 5, 4, 15, 20},
		{"7/2.5 fractional", 7, 2.5, 3, 7, 6, 28, 42},
		{"12/6 spokes", 12, 6, 6, 2, 1, 13, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := figure.NewStar(nil, tc.n, tc.d, tc.s)
			unit := f.Unit()
			assert.Equal(t, tc.unitV, unit.VertexCount(), "unit vertices")
			assert.Equal(t, tc.unitE, unit.EdgeCount(), "unit edges")
			require.NotNil(t, figure.Tip(unit))

			m := f.FigureMap()
			assert.Equal(t, tc.figV, m.VertexCount(), "figure vertices")
			assert.Equal(t, tc.figE, m.EdgeCount(), "figure edges")
			assert.NoError(t, m.Verify())
			assertRotationInvariant(t, m, tc.n)
		})
	}
}

func TestStar_EndToEnd(t *testing.T) {
	m := figure.NewStar(nil, 8, 3.0, 2).FigureMap()
	require.NoError(t, m.Verify())
	assert.Greater(t, m.VertexCount(), 8)
	assert.Greater(t, m.EdgeCount(), 8)

	// Every tip keeps degree 2, every crossing degree 4.
	stats := m.Stats()
	assert.Equal(t, 1, stats.Components)
	assert.Equal(t, 4, stats.MaxDegree)
	for i := 0; i < 8; i++ {
		tip := m.FindVertex(geometry.Arc(float64(i) / 8))
		require.NotNil(t, tip)
		assert.Equal(t, 2, tip.Degree())
	}
}

func TestStar_ArmFollowsChord(t *testing.T) {
	// Every unit vertex above the axis lies on the chord from the tip to
	// Arc(d/n).
	unit := figure.NewStar(nil, 10, 3, 3).Unit()
	b := geometry.Arc(3.0 / 10)
	for _, v := range unit.Vertices() {
		if v.Pos.Y <= 0 {
			continue
		}
		assert.True(t, geometry.Collinear(geometry.Pt(1, 0), b, v.Pos, 1e-9), "%v off the chord", v)
	}
}

func TestStar_ClampingMatchesClampedParams(t *testing.T) {
	wild := figure.NewStar(nil, 12, 20, 7)
	tame := figure.NewStar(nil, 12, 6, 6)
	assert.Equal(t, tame.Params(), wild.Params())
	assertSameVertexSet(t, tame.FigureMap(), wild.FigureMap(), geometry.Identity())

	wild = figure.NewStar(nil, 12, 4, 40)
	tame = figure.NewStar(nil, 12, 4, 6)
	assertSameVertexSet(t, tame.FigureMap(), wild.FigureMap(), geometry.Identity())
}

func TestStar_Rotation(t *testing.T) {
	p := figure.StarParams(8, 3, 2)
	p.Rotation = 90
	unit := figure.BuildUnit(nil, p)
	assert.Nil(t, figure.Tip(unit))
	assert.NotNil(t, unit.FindVertex(geometry.Pt(0, 1)))

	plain := figure.NewStar(nil, 8, 3, 2).FigureMap()
	rotated := figure.New(nil, p).FigureMap()
	assertSameVertexSet(t, plain, rotated, geometry.Rotation(math.Pi/2))
}
