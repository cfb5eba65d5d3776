package figure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// assertRotationInvariant checks that every vertex of m has a partner in m
// after rotation by 2π/n.
func assertRotationInvariant(t *testing.T, m *planar.Map, n int) {
	t.Helper()
	step := 2 * math.Pi / float64(n)
	for _, v := range m.Vertices() {
		p := geometry.Rotate(v.Pos, step)
		assert.NotNil(t, m.FindVertex(p), "no image of %v under rotation by 2π/%d", v, n)
	}
}

// assertSameVertexSet checks that every vertex of a, moved by tr, is a vertex
// of b and that both maps have the same size.
func assertSameVertexSet(t *testing.T, a, b *planar.Map, tr geometry.Transform) {
	t.Helper()
	assert.Equal(t, a.VertexCount(), b.VertexCount())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, v := range a.Vertices() {
		assert.NotNil(t, b.FindVertex(tr.Apply(v.Pos)), "no image of %v", v)
	}
}

// outerEnds returns the vertices farthest from the origin above and below
// the x axis: the extended endpoints of an extended unit.
func outerEnds(m *planar.Map) (upper, lower geometry.Point) {
	var ru, rl float64
	for _, v := range m.Vertices() {
		r := geometry.Len(v.Pos)
		switch {
		case v.Pos.Y > 0 && r > ru:
			upper, ru = v.Pos, r
		case v.Pos.Y < 0 && r > rl:
			lower, rl = v.Pos, r
		}
	}
	return upper, lower
}
