// SPDX-License-Identifier: MIT
//
// File: png.go
// Role: raster rendering of planar maps.
//
// Every edge is stroked as a chain of quads with square caps, filled by one
// anti-aliasing rasterizer pass. Arcs are flattened into chords of at most
// arcStep radians.

package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// raster maps map coordinates to pixel coordinates.
type raster struct {
	minX, maxY float64
	scale      float64
	ox, oy     float64
}

func newRaster(fr frame, width, height int) raster {
	v := fr.view
	scale := math.Min(float64(width)/v.Width(), float64(height)/v.Height())
	return raster{
		minX:  v.Min.X,
		maxY:  v.Max.Y,
		scale: scale,
		ox:    (float64(width) - v.Width()*scale) / 2,
		oy:    (float64(height) - v.Height()*scale) / 2,
	}
}

func (r raster) pixel(p geometry.Point) geometry.Point {
	return geometry.Pt(r.ox+(p.X-r.minX)*r.scale, r.oy+(r.maxY-p.Y)*r.scale)
}

// Render draws m into a new width x height RGBA image.
func Render(m *planar.Map, width, height int, opts ...Option) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	style := newStyle(opts)
	fr := newFrame(m, style)
	rs := newRaster(fr, width, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if visible(style.Background) {
		xdraw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, xdraw.Src)
	}

	half := math.Max(style.StrokeWidth*fr.extent*rs.scale, 1) / 2
	z := vector.NewRasterizer(width, height)
	z.DrawOp = xdraw.Over
	for _, e := range m.Edges() {
		pts := polyline(e)
		for i := 1; i < len(pts); i++ {
			strokeSegment(z, rs.pixel(pts[i-1]), rs.pixel(pts[i]), half)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(style.Stroke), image.Point{})
	return img, nil
}

// WritePNG renders m and encodes it as PNG to w.
func WritePNG(w io.Writer, m *planar.Map, width, height int, opts ...Option) error {
	img, err := Render(m, width, height, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	planar.Logger().Debug("export: png written", "width", width, "height", height, "edges", m.EdgeCount())
	return nil
}

// polyline returns the points of e from V1 to V2, flattening arcs.
func polyline(e *planar.Edge) []geometry.Point {
	if !e.IsArc() {
		return []geometry.Point{e.V1.Pos, e.V2.Pos}
	}
	sw := e.Sweep()
	steps := max(2, int(math.Ceil(math.Abs(sw.Delta)/arcStep)))
	pts := make([]geometry.Point, 0, steps+1)
	pts = append(pts, e.V1.Pos)
	for i := 1; i < steps; i++ {
		a := sw.Start + sw.Delta*float64(i)/float64(steps)
		pts = append(pts, e.Center.Plus(geometry.Polar(sw.Radius, a)))
	}
	return append(pts, e.V2.Pos)
}

// strokeSegment adds the quad covering a-b widened by half on each side
// and extended by half past both ends. The winding is the same for every
// segment, so overlaps accumulate instead of cancelling.
func strokeSegment(z *vector.Rasterizer, a, b geometry.Point, half float64) {
	d := b.Minus(a)
	l := geometry.Len(d)
	if l == 0 {
		d = geometry.Pt(1, 0)
	} else {
		d = d.Times(1 / l)
	}
	along := d.Times(half)
	across := geometry.Pt(-d.Y, d.X).Times(half)
	a = a.Minus(along)
	b = b.Plus(along)

	p0, p1 := a.Plus(across), b.Plus(across)
	p2, p3 := b.Minus(across), a.Minus(across)
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}
