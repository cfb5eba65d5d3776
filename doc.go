// Package girih builds islamic star patterns as planar maps: n-fold stars
// and rosettes, their extended and connected variants, and whole designs
// assembled from placed copies of them.
//
// 🚀 What is girih?
//
//	A small, deterministic geometry engine that brings together:
//		• Planar maps: positional vertex dedup, line and arc edges, merge,
//		  cleanse (crossing / T-junction repair) and invariant checks
//		• Figures: Star [n/d]s, Rosette(n, q, s, k), extended rays and
//		  the connect scale that joins neighbouring tiles
//		• Prototypes: many figures, many placements, one master map
//		• I/O: YAML designs in, SVG / PNG / YAML map documents out
//
// Under the hood, everything is organized in these subpackages:
//
//	geometry/   points, affine transforms, tolerant intersections
//	planar/     Map, Vertex, Edge; merge, cleanse, verify, logging
//	figure/     Kind, Params, unit builders, connector, Figure cache
//	prototype/  features and placements assembled into one map
//	mapio/      versioned YAML map documents with shared-map references
//	design/     YAML design files turned into prototypes
//	export/     SVG and PNG renderers
//	cmd/girih   the command line front end
//
// Quick example:
//
//	f := figure.NewStar(nil, 8, 3, 2) // the classic [8/3]2 octagram
//	m := f.FigureMap()                // 24 vertices, 32 edges
//	_ = export.WriteSVG(os.Stdout, m)
//
//	go install github.com/katalvlaran/girih/cmd/girih@latest
package girih
