// SPDX-License-Identifier: MIT
//
// File: version.go
// Role: per-version normalizers rewriting older documents into the current
//       layout.
//
// Contract:
//   - A normalizer takes a document of its own version and returns it in
//     the next version's layout; normalize chains them up to
//     CurrentVersion.
//   - After normalize, every edge kind is KindLine or KindArc and Curve is
//     nil.

package mapio

import (
	"fmt"
)

type normalizer func(*Document) error

// normalizers maps a version to the step that lifts it by one.
var normalizers = map[int]normalizer{
	1: normalizeV1,
}

// normalize brings doc up to CurrentVersion in place.
func normalize(doc *Document) error {
	if doc.Version < 1 || doc.Version > CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	for doc.Version < CurrentVersion {
		step, ok := normalizers[doc.Version]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
		}
		if err := step(doc); err != nil {
			return fmt.Errorf("normalize v%d: %w", doc.Version, err)
		}
	}
	return checkKinds(doc)
}

// normalizeV1 turns the version 1 `curve` flag into an edge kind.
func normalizeV1(doc *Document) error {
	for i := range doc.Maps {
		for j := range doc.Maps[i].Edges {
			e := &doc.Maps[i].Edges[j]
			if e.Kind != "" {
				return fmt.Errorf("%w: map %d edge %d: kind is not a version 1 field", ErrInvalidDocument, i, j)
			}
			e.Kind = KindLine
			if e.Curve != nil && *e.Curve {
				e.Kind = KindArc
			}
			e.Curve = nil
		}
	}
	doc.Version = 2
	return nil
}

// checkKinds validates the current layout: kinds are known, arcs have a
// center, the version 1 field is gone.
func checkKinds(doc *Document) error {
	for i := range doc.Maps {
		for j := range doc.Maps[i].Edges {
			e := &doc.Maps[i].Edges[j]
			if e.Curve != nil {
				return fmt.Errorf("%w: map %d edge %d: curve is a version 1 field", ErrInvalidDocument, i, j)
			}
			switch e.Kind {
			case "":
				e.Kind = KindLine
			case KindLine:
			case KindArc:
				if e.Center == nil {
					return fmt.Errorf("%w: map %d edge %d: arc without center", ErrInvalidDocument, i, j)
				}
			default:
				return fmt.Errorf("%w: map %d edge %d: unknown kind %q", ErrInvalidDocument, i, j, e.Kind)
			}
		}
	}
	return nil
}
