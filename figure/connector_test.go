package figure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

func connectRosette(n int, q float64, s int) figure.Params {
	p := figure.RosetteParams(n, q, s, 0)
	p.Kind = figure.ConnectRosette
	return p
}

func TestConnectScale_Rosette(t *testing.T) {
	f := figure.NewRosette(nil, 8, 0.3, 2, 0)
	scale := f.ComputeConnectScale()
	assert.Greater(t, scale, 0.0)
	assert.InDelta(t, 0.3567443860, scale, 1e-8)
	assert.Equal(t, figure.ConnectScale(f.Unit(), 8), scale)
}

func TestConnect_AdjacentEndpointsCoincide(t *testing.T) {
	f := figure.New(nil, connectRosette(8, 0.3, 2))
	unit := f.Unit()
	assert.Equal(t, 7, unit.VertexCount())
	assert.Equal(t, 6, unit.EdgeCount())

	// The upper endpoint lies on the boundary edge midpoint; the lower one,
	// carried to the next copy, lands on it.
	top, bottom := outerEnds(unit)
	assert.InDelta(t, math.Cos(math.Pi/8), geometry.Len(top), 1e-9)
	assert.InDelta(t, math.Pi/8, geometry.Angle(top), 1e-9)
	next := geometry.Rotate(bottom, 2*math.Pi/8)
	assert.True(t, geometry.Near(top, next, unit.Epsilon()), "%v vs %v", top, next)

	m := f.FigureMap()
	require.NoError(t, m.Verify())
	assert.Equal(t, 32, m.VertexCount())
	assert.Equal(t, 48, m.EdgeCount())
	meet := m.FindVertex(top)
	require.NotNil(t, meet)
	assert.Equal(t, 2, meet.Degree())
}

func TestConnect_Star(t *testing.T) {
	p := figure.StarParams(8, 2, 2)
	p.Kind = figure.ConnectStar
	f := figure.New(nil, p)
	assert.InDelta(t, 0.5, f.ComputeConnectScale(), 1e-9)

	m := f.FigureMap()
	require.NoError(t, m.Verify())
	assert.Equal(t, 32, m.VertexCount())
	assert.Equal(t, 48, m.EdgeCount())
	assertRotationInvariant(t, m, 8)
}

func TestConnectScale_FallsBackToOne(t *testing.T) {
	// The arms of [8/3] leave the tip parallel to the connecting axis.
	assert.Equal(t, 1.0, figure.NewStar(nil, 8, 3, 2).ComputeConnectScale())
	// Spokes run along the x axis.
	assert.Equal(t, 1.0, figure.NewStar(nil, 12, 6, 6).ComputeConnectScale())

	// Without a usable scale the tip sits on a boundary corner and nothing
	// is extended.
	p := figure.StarParams(8, 3, 2)
	p.Kind = figure.ConnectStar
	unit := figure.BuildUnit(nil, p)
	assert.Equal(t, 5, unit.VertexCount())
	assert.Equal(t, 4, unit.EdgeCount())
}

func TestExtend(t *testing.T) {
	boundary := geometry.RegularPolygon(8, 1, 0)
	tests := []struct {
		name         string
		p            figure.Params
		unitV, unitE int
		figV, figE   int
	}{
		{"star ends on boundary", withKind(figure.StarParams(8, 2, 2), figure.ExtendedStar, 0.7), 7, 6, 40, 48},
		{"star 8/3", withKind(figure.StarParams(8, 3, 2), figure.ExtendedStar, 0.8), 7, 6, 40, 48},
		{"rosette crosses neighbour first", withKind(figure.RosetteParams(8, 0.3, 2, 0), figure.ExtendedRosette, 0.3), 9, 8, 48, 64},
		{"rosette ends on boundary", withKind(figure.RosetteParams(8, 0.3, 2, 0), figure.ExtendedRosette, 0.5), 7, 6, 40, 48},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := figure.New(nil, tc.p)
			unit := f.Unit()
			assert.Equal(t, tc.unitV, unit.VertexCount(), "unit vertices")
			assert.Equal(t, tc.unitE, unit.EdgeCount(), "unit edges")

			top, _ := outerEnds(unit)
			assert.True(t, geometry.Collinear(boundary[0], boundary[1], top, 1e-9), "endpoint %v off the boundary", top)

			m := f.FigureMap()
			assert.NoError(t, m.Verify())
			assert.Equal(t, tc.figV, m.VertexCount(), "figure vertices")
			assert.Equal(t, tc.figE, m.EdgeCount(), "figure edges")
			assertRotationInvariant(t, m, 8)
		})
	}
}

func TestExtend_TipOnBoundaryIsNoop(t *testing.T) {
	p := withKind(figure.RosetteParams(8, 0.3, 2, 0), figure.ExtendedRosette, 1)
	unit := figure.BuildUnit(nil, p)
	assert.Equal(t, 5, unit.VertexCount())
	assert.Equal(t, 4, unit.EdgeCount())
}

func TestExtend_Preconditions(t *testing.T) {
	noTip := planar.NewMap()
	noTip.InsertLine(geometry.Pt(0, 0), geometry.Pt(0.5, 0))
	assert.PanicsWithValue(t, "figure: unit has no tip vertex at (1, 0)", func() {
		figure.Extend(nil, noTip, 8, 1)
	})

	upOnly := planar.NewMap()
	upOnly.InsertLine(geometry.Pt(1, 0), geometry.Pt(0.5, 0.5))
	assert.PanicsWithValue(t, "figure: tip vertex has no neighbour below the x axis", func() {
		figure.ConnectScale(upOnly, 8)
	})
}

func TestRotateHalf_EqualsRotatedFigure(t *testing.T) {
	tests := []struct {
		name string
		p    figure.Params
	}{
		{"star", figure.StarParams(8, 3, 2)},
		{"spokes", figure.StarParams(6, 3, 3)},
		{"connect rosette", connectRosette(8, 0.3, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.p.N
			unit := figure.BuildUnit(nil, tc.p)
			half := figure.RotateHalf(unit, n)

			full := planar.NewMap()
			full.MergeSimpleMany(unit, figure.Rotations(n))
			turned := planar.NewMap()
			turned.MergeSimpleMany(half, figure.Rotations(n))

			assertSameVertexSet(t, full, turned, geometry.Rotation(-math.Pi/float64(n)))
		})
	}
}

func TestHalfTurn_RecentresOnMeetingPoint(t *testing.T) {
	p := connectRosette(8, 0.3, 2)
	p.HalfTurn = true
	unit := figure.New(nil, p).Unit()
	assert.Equal(t, 6, unit.VertexCount())
	assert.Equal(t, 6, unit.EdgeCount())

	tip := figure.Tip(unit)
	require.NotNil(t, tip, "the meeting point becomes the new tip")
	for _, v := range unit.Vertices() {
		assert.LessOrEqual(t, v.Pos.X, 1+1e-12)
	}
}

func TestScaleToUnit(t *testing.T) {
	m := planar.NewMap()
	m.InsertLine(geometry.Pt(0, 0), geometry.Pt(0.25, 0.5))
	m.InsertLine(geometry.Pt(0.5, 0), geometry.Pt(0.25, 0.5))
	figure.ScaleToUnit(m)
	assert.NotNil(t, m.FindVertex(geometry.Pt(1, 0)))
	assert.NotNil(t, m.FindVertex(geometry.Pt(0.5, 1)))

	left := planar.NewMap()
	left.InsertLine(geometry.Pt(-1, 0), geometry.Pt(0, 0))
	figure.ScaleToUnit(left)
	assert.NotNil(t, left.FindVertex(geometry.Pt(-1, 0)), "nothing right of the origin: untouched")
}

func withKind(p figure.Params, k figure.Kind, scale float64) figure.Params {
	p.Kind = k
	p.Scale = scale
	return p
}
