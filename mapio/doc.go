// SPDX-License-Identifier: MIT

// Package mapio reads and writes planar maps as YAML documents.
//
// A Document is a table of maps and a list of figures. A map record is an
// ordered vertex list plus an edge list whose endpoints are vertex indices;
// arc edges carry their center and convexity. Every map record has a uuid,
// and figures refer to maps by that id, so a map shared by several figures
// is written once and, through a Resolver, loaded once.
//
// Older document versions are rewritten into the current layout by a
// per-version normalizer before anything else looks at them:
//
//	version 1: edges mark arcs with a boolean `curve` field
//	version 2: edges carry `kind: line|arc` (current)
//
// Loading verifies every map. A map that fails verification is rejected
// with ErrInvalidMap unless WithRepair allows a cleanse first.
package mapio
