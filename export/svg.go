// SPDX-License-Identifier: MIT
//
// File: svg.go
// Role: SVG serialization of planar maps through svgo.
//
// Output layout:
//
//	<svg width=".." height=".." viewBox="0 0 W H">  W, H in frame units
//	<rect .../>                                    optional background
//	<g style="stroke:...">
//	<line .../> | <path d="M.. A.."/>              one per edge, in edge order
//	</g>
//	</svg>
//
// svgo takes integer coordinates, so map coordinates are mapped into a frame
// of svgResolution units along the longer side, y pointing down. The flip
// turns a counter-clockwise map arc into sweep-flag 0.

package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// svgResolution is the number of frame units along the longer side of the
// viewBox.
const svgResolution = 10000

// errWriter remembers the first write error and drops everything after it;
// svgo itself does not report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func onezero(b bool) int {
	if b {
		return 1
	}
	return 0
}

// svgFrame returns the raster mapping of fr into integer frame units and
// the frame size.
func svgFrame(fr frame) (raster, int, int) {
	k := svgResolution / math.Max(fr.view.Width(), fr.view.Height())
	w := max(1, int(math.Round(fr.view.Width()*k)))
	h := max(1, int(math.Round(fr.view.Height()*k)))
	return newRaster(fr, w, h), w, h
}

// unit rounds a map point to frame units.
func (r raster) unit(p geometry.Point) (int, int) {
	q := r.pixel(p)
	return int(math.Round(q.X)), int(math.Round(q.Y))
}

// WriteSVG writes m to w as a standalone SVG document. The document is
// Style.Size pixels along its longer side.
func WriteSVG(w io.Writer, m *planar.Map, opts ...Option) error {
	style := newStyle(opts)
	fr := newFrame(m, style)
	rs, fw, fh := svgFrame(fr)

	out := &errWriter{w: w}
	canvas := svg.New(out)
	dw := max(1, fw*style.Size/max(fw, fh))
	dh := max(1, fh*style.Size/max(fw, fh))
	canvas.Startview(dw, dh, 0, 0, fw, fh)

	if visible(style.Background) {
		canvas.Rect(0, 0, fw, fh, fmt.Sprintf("fill:%s;fill-opacity:%g", hexColor(style.Background), opacity(style.Background)))
	}

	width := max(1, int(math.Round(style.StrokeWidth*fr.extent*rs.scale)))
	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-opacity:%g;stroke-width:%d;stroke-linecap:round;fill:none",
		hexColor(style.Stroke), opacity(style.Stroke), width))
	for _, e := range m.Edges() {
		x1, y1 := rs.unit(e.V1.Pos)
		x2, y2 := rs.unit(e.V2.Pos)
		if !e.IsArc() {
			canvas.Line(x1, y1, x2, y2)
			continue
		}
		sw := e.Sweep()
		r := int(math.Round(sw.Radius * rs.scale))
		large := math.Abs(sw.Delta) > math.Pi
		canvas.Path(fmt.Sprintf("M%d,%d A%d,%d 0 %d,%d %d,%d",
			x1, y1, r, r, onezero(large), onezero(sw.Delta < 0), x2, y2))
	}
	canvas.Gend()
	canvas.End()

	if out.err != nil {
		return fmt.Errorf("export: write svg: %w", out.err)
	}
	planar.Logger().Debug("export: svg written", "vertices", m.VertexCount(), "edges", m.EdgeCount())
	return nil
}
