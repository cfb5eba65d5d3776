// SPDX-License-Identifier: MIT
//
// File: style.go
// Role: rendering options and the shared view frame.
//
// Defaults:
//   - stroke      = black
//   - background  = white
//   - strokeWidth = 0.01 of the larger map extent
//   - margin      = 0.05 of the larger map extent
//   - size        = 800 pixels along the longer side (SVG only)

package export

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/girih/planar"
)

const (
	defaultStrokeWidth = 0.01
	defaultMargin      = 0.05
	defaultSize        = 800
	// arcStep is the largest angle covered by one chord of a flattened arc.
	arcStep = math.Pi / 32
)

// Style holds the rendering settings. Widths and margins are fractions of
// the larger side of the map bounds.
type Style struct {
	Stroke      color.Color
	Background  color.Color
	StrokeWidth float64
	Margin      float64
	// Size is the displayed SVG size in pixels along the longer side.
	Size int
}

// Option configures a Style.
type Option func(*Style)

// WithStroke sets the edge color.
func WithStroke(c color.Color) Option {
	return func(s *Style) { s.Stroke = c }
}

// WithBackground sets the background color. A nil or fully transparent
// color leaves the background unpainted.
func WithBackground(c color.Color) Option {
	return func(s *Style) { s.Background = c }
}

// WithStrokeWidth sets the relative stroke width. Panics unless w > 0.
func WithStrokeWidth(w float64) Option {
	if !(w > 0) {
		panic("export: WithStrokeWidth requires w > 0")
	}
	return func(s *Style) { s.StrokeWidth = w }
}

// WithMargin sets the relative margin around the map. Panics on negative
// values.
func WithMargin(m float64) Option {
	if !(m >= 0) {
		panic("export: WithMargin requires m >= 0")
	}
	return func(s *Style) { s.Margin = m }
}

// WithSize sets the displayed SVG size. Panics unless px > 0.
func WithSize(px int) Option {
	if px <= 0 {
		panic("export: WithSize requires px > 0")
	}
	return func(s *Style) { s.Size = px }
}

func newStyle(opts []Option) Style {
	s := Style{
		Stroke:      color.Black,
		Background:  color.White,
		StrokeWidth: defaultStrokeWidth,
		Margin:      defaultMargin,
		Size:        defaultSize,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.Stroke == nil {
		s.Stroke = color.Black
	}
	return s
}

// frame is the map-space rectangle being rendered and its reference extent.
type frame struct {
	view   geom.Rect
	extent float64
}

// newFrame pads the bounds of m by the style margin. Degenerate bounds get
// a unit extent so that a single point or segment stays visible.
func newFrame(m *planar.Map, s Style) frame {
	b := m.Bounds()
	extent := math.Max(b.Width(), b.Height())
	if extent <= m.Epsilon() {
		extent = 1
	}
	pad := s.Margin * extent
	b.Min.X -= pad
	b.Min.Y -= pad
	b.Max.X += pad
	b.Max.Y += pad
	if b.Width() <= 0 {
		b.Min.X -= extent / 2
		b.Max.X += extent / 2
	}
	if b.Height() <= 0 {
		b.Min.Y -= extent / 2
		b.Max.Y += extent / 2
	}
	return frame{view: b, extent: extent}
}

// visible reports whether c paints anything.
func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

// hexColor formats c as #rrggbb, dropping alpha.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// opacity returns the alpha of c in [0, 1].
func opacity(c color.Color) float64 {
	return float64(color.NRGBAModel.Convert(c).(color.NRGBA).A) / 255
}
