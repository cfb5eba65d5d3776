package planar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

func TestVerify_Valid(t *testing.T) {
	tests := []struct {
		name string
		m    *planar.Map
	}{
		{"empty", planar.NewMap()},
		{"square", square()},
		{"square+triangle", func() *planar.Map { m := square(); m.MergeMap(triangle()); return m }()},
		{"cleansed cross", func() *planar.Map { m := cross(); m.Cleanse(planar.SplitCrossings, 0); return m }()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.m.Verify())
			assert.NotPanics(t, tc.m.MustVerify)
		})
	}
}

func TestVerify_CoincidentVertices(t *testing.T) {
	m := planar.NewMap()
	m.InsertVertex(geometry.Pt(0, 0))
	v := m.InsertVertex(geometry.Pt(1, 0))
	// Moving a vertex by hand bypasses InsertVertex dedup.
	v.Pos = geometry.Pt(0, 1e-9)

	err := m.Verify()
	require.Error(t, err)
	assert.True(t, errors.Is(err, planar.ErrCoincidentVertices))
	assert.False(t, errors.Is(err, planar.ErrCrossingEdges))
}

func TestVerify_Crossing(t *testing.T) {
	err := cross().Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, planar.ErrCrossingEdges)
	assert.Contains(t, err.Error(), "(1, 1)")
}

func TestVerify_ForeignVertexAfterRemoval(t *testing.T) {
	m := square()
	e := m.Edges()[0]
	v := e.V1
	m.RemoveVertex(v)

	assert.False(t, m.Contains(v))
	assert.Nil(t, m.FindEdge(v, e.V2))
	assert.NoError(t, m.Verify())
}

func TestMustVerify_Panics(t *testing.T) {
	m := cross()
	assert.PanicsWithValue(t, "planar: invariant violated: "+m.Verify().Error(), m.MustVerify)
}
