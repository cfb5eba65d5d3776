// SPDX-License-Identifier: MIT

// Package export renders planar maps as SVG documents and PNG images.
//
// Both renderers frame the map bounds plus a margin and flip the y axis so
// that map "up" is image "up". Straight edges become lines; arcs become SVG
// elliptical-arc commands or, in raster output, short chords.
//
//	f, _ := os.Create("star.svg")
//	defer f.Close()
//	err := export.WriteSVG(f, fig.FigureMap(), export.WithStrokeWidth(0.004))
package export
