package figure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
)

func TestRosette_Counts(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		q, k         float64
		s            int
		unitV, unitE int
		figV, figE   int
	}{
		{"8 q.3 s2", 8, 0.3, 0, 2, 5, 4, 24, 32},
		{"8 petals only", 8, 0, 0, 1, 3, 2, 16, 16},
		{"10 bent neck", 10, 1, 2, 4, 9, 8, 50, 80},
		{"8 blunt", 8, -3, -3, 4, 7, 6, 32, 48},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := figure.NewRosette(nil, tc.n, tc.q, tc.s, tc.k)
			unit := f.Unit()
			assert.Equal(t, tc.unitV, unit.VertexCount(), "unit vertices")
			assert.Equal(t, tc.unitE, unit.EdgeCount(), "unit edges")

			m := f.FigureMap()
			assert.Equal(t, tc.figV, m.VertexCount(), "figure vertices")
			assert.Equal(t, tc.figE, m.EdgeCount(), "figure edges")
			assert.NoError(t, m.Verify())
			assertRotationInvariant(t, m, tc.n)
		})
	}
}

func TestRosette_StaysInsideUnitCircle(t *testing.T) {
	for _, q := range []float64{-3, -1, 0, 1, 3} {
		unit := figure.NewRosette(nil, 6, q, 1, 0).Unit()
		for _, v := range unit.Vertices() {
			assert.LessOrEqual(t, geometry.Len(v.Pos), 1+1e-9, "q=%v vertex %v", q, v)
		}
	}
}

func TestRosette_TipSharpensWithQ(t *testing.T) {
	// The first crossing moves towards the centre as q grows.
	prev := math.Inf(1)
	for _, q := range []float64{-3, -1.5, 0, 1.5, 3} {
		unit := figure.NewRosette(nil, 8, q, 1, 0).Unit()
		var r float64
		for _, v := range unit.Vertices() {
			if v.Pos.Y > 0 {
				r = geometry.Len(v.Pos)
			}
		}
		require.Greater(t, r, 0.0)
		assert.Less(t, r, prev, "q=%v", q)
		prev = r
	}
}

func TestRosette_SelfCrossingsAreCleansed(t *testing.T) {
	// A long straight neck on a hexagonal rosette runs into the petals of
	// the neighbouring copies; the figure map splits those crossings.
	f := figure.NewRosette(nil, 6, 0, 3, 0)
	assert.Equal(t, 7, f.Unit().VertexCount())

	m := f.FigureMap()
	assert.NoError(t, m.Verify())
	assert.Greater(t, m.EdgeCount(), 36)
	assertRotationInvariant(t, m, 6)
}
