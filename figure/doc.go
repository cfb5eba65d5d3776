// SPDX-License-Identifier: MIT

// Package figure builds n-fold symmetric islamic star and rosette figures on
// top of the planar engine.
//
// A figure is described by one tagged Params value: its Kind selects the
// construction (Star, Rosette) and the post-processing (Extended*, Connect*),
// the remaining fields carry the kind-specific parameters. Out-of-range
// parameters are clamped, never rejected, so every Params renders something.
//
// Construction happens in two stages:
//
//  1. BuildUnit produces the unit map: one fundamental wedge of the figure
//     with its canonical tip vertex at (1, 0), symmetric about the x axis.
//  2. Figure.FigureMap replicates the unit under the n rotations by 2π/n
//     and merges the copies into one deduplicated map.
//
// Star [n/d]s joins every d-th corner of a regular n-gon and keeps s
// crossings per arm; d = n/2 degenerates into straight spokes. Rosette
// (n, q, s, k) grows petals whose tip angle is controlled by q and whose
// neck bends by k.
//
// The Extended and Connect variants grow the free rays at the tip outward
// until they meet the boundary n-gon, or the mirrored rays of the
// neighbouring copy. Connect variants choose the scale at which the rays of
// adjacent copies meet exactly on the boundary (ConnectScale).
//
// Construction parameters that do not depend on a single figure (epsilon,
// cleanse sensitivity, extension reach) live in a Context passed to every
// builder.
package figure
