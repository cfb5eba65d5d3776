// SPDX-License-Identifier: MIT

// Package design loads YAML design documents and turns them into
// prototypes.
//
// A design names the figures to build and where to place them:
//
//	name: octagons
//	epsilon: 1e-7
//	cleanse:
//	  split: true
//	  sensitivity: 1e-6
//	features:
//	  - kind: connect-rosette
//	    n: 8
//	    q: 0.3
//	    s: 2
//	    placements:
//	      - translate: [0, 0]
//	      - translate: [2, 0]
//	        rotate: 22.5
//
// Angles are in degrees. A placement scales, then rotates, then translates.
// Figure parameters follow figure.Params and are clamped the same way.
package design
