// SPDX-License-Identifier: MIT

// Package prototype assembles figures into one pattern map.
//
// A Prototype holds features: a figure plus the affine placements at which
// copies of its figure map appear, typically one per tile of a tiling. Map
// merges every placed copy of every feature into one master map with
// MergeSimpleMany and optionally cleanses the result where copies overlap.
//
// Features are addressed by a uuid assigned on AddFeature. The master map is
// cached and rebuilt after any mutation of the prototype; a change to a
// figure made through its own setters needs an explicit Invalidate.
package prototype
