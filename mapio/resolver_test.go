package mapio_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/mapio"
)

func TestWriter_SharesMaps(t *testing.T) {
	f := figure.NewStar(nil, 8, 3, 2)
	w := mapio.NewWriter("two stars")
	id1 := w.AddFigure("left", f.String(), f.FigureMap(), geometry.Translation(-2, 0))
	id2 := w.AddFigure("right", f.String(), f.FigureMap(), geometry.Translation(2, 0), geometry.Rotation(0.1))
	assert.Equal(t, id1, id2)

	doc := w.Document()
	assert.Len(t, doc.Maps, 1)
	require.Len(t, doc.Figures, 2)
	assert.Equal(t, "star[8/3]2", doc.Figures[0].Params)
	assert.Len(t, doc.Figures[1].Placements, 2)

	r, err := mapio.NewResolver(roundTrip(t, doc))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id1}, r.IDs())

	figs, err := r.Figures()
	require.NoError(t, err)
	require.Len(t, figs, 2)
	assert.Same(t, figs[0].Map, figs[1].Map, "one shared map at runtime")
	assert.Equal(t, 24, figs[0].Map.VertexCount())
	assert.True(t, figs[1].Placements[0].Near(geometry.Translation(2, 0), 1e-12))

	m, err := r.Assemble()
	require.NoError(t, err)
	assert.Equal(t, 3*24, m.VertexCount())
	assert.Equal(t, 3*32, m.EdgeCount())
}

func TestResolver_Errors(t *testing.T) {
	id := uuid.NewString()
	rec := mapio.MapRecord{ID: id, Vertices: []mapio.PointRecord{{0, 0}, {1, 0}}, Edges: []mapio.EdgeRecord{{V1: 0, V2: 1, Kind: mapio.KindLine}}}

	_, err := mapio.NewResolver(&mapio.Document{Maps: []mapio.MapRecord{rec, rec}})
	assert.ErrorIs(t, err, mapio.ErrDuplicateID)

	bad := rec
	bad.ID = "not-a-uuid"
	_, err = mapio.NewResolver(&mapio.Document{Maps: []mapio.MapRecord{bad}})
	assert.ErrorIs(t, err, mapio.ErrInvalidDocument)

	r, err := mapio.NewResolver(&mapio.Document{
		Maps:    []mapio.MapRecord{rec},
		Figures: []mapio.FigureRecord{{Name: "ghost", Map: uuid.NewString()}},
	})
	require.NoError(t, err)
	_, err = r.Figures()
	assert.ErrorIs(t, err, mapio.ErrUnknownMap)
	_, err = r.Map(uuid.New())
	assert.ErrorIs(t, err, mapio.ErrUnknownMap)

	r, err = mapio.NewResolver(&mapio.Document{
		Maps:    []mapio.MapRecord{rec},
		Figures: []mapio.FigureRecord{{Name: "short", Map: id, Placements: [][]float64{{1, 0, 0}}}},
	})
	require.NoError(t, err)
	_, err = r.Figures()
	assert.ErrorIs(t, err, mapio.ErrInvalidDocument)
}

func TestResolver_RepairOption(t *testing.T) {
	rec := crossRecord()
	doc := &mapio.Document{Maps: []mapio.MapRecord{rec}}

	r, err := mapio.NewResolver(doc)
	require.NoError(t, err)
	_, err = r.Map(uuid.MustParse(rec.ID))
	assert.ErrorIs(t, err, mapio.ErrInvalidMap)

	r, err = mapio.NewResolver(doc, mapio.WithRepair(1e-9))
	require.NoError(t, err)
	m, err := r.Map(uuid.MustParse(rec.ID))
	require.NoError(t, err)
	assert.NoError(t, m.Verify())
	again, _ := r.Map(uuid.MustParse(rec.ID))
	assert.Same(t, m, again)
}

func TestDecode_DocumentFromText(t *testing.T) {
	src := `
version: 2
name: hand written
maps:
  - id: 3d0c2f5e-2c1a-4b8e-9a3c-8f7e6d5c4b3a
    vertices: [[0, 0], [1, 0], [0, 1]]
    edges:
      - {v1: 0, v2: 1}
      - {v1: 1, v2: 2, kind: arc, center: [0, 0], convex: true}
      - {v1: 2, v2: 0, kind: line}
figures:
  - name: quarter
    map: 3d0c2f5e-2c1a-4b8e-9a3c-8f7e6d5c4b3a
    placements: [[1, 0, 0, 0, 1, 0], [-1, 0, 0, 0, -1, 0]]
`
	doc, err := mapio.Decode(strings.NewReader(src))
	require.NoError(t, err)
	r, err := mapio.NewResolver(doc)
	require.NoError(t, err)
	m, err := r.Assemble()
	require.NoError(t, err)
	// Two quarter discs sharing the origin.
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 6, m.EdgeCount())
	assert.Equal(t, 2, m.Stats().Arcs)
	assert.NoError(t, m.Verify())
}
