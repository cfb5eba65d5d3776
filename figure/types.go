// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: figure kinds and the tagged construction parameters.
//
// Clamp policy:
//   - n ∈ [MinN, MaxN].
//   - Star: d ∈ [1, n/2], snapped to the nearest integer within dSnap;
//     s ∈ [1, ⌊n/2⌋].
//   - Rosette: q, k ∈ [-3, 3]; s ∈ [1, ⌊n/2⌋].
//   - Scale ≤ 0 or NaN becomes 1; NaN rotation becomes 0.

package figure

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the construction and post-processing of a figure.
type Kind int

const (
	// Star is the classic [n/d]s star.
	Star Kind = iota
	// Rosette is the petal and neck construction.
	Rosette
	// ExtendedStar is a Star whose tip rays run out to the boundary n-gon.
	ExtendedStar
	// ExtendedRosette is a Rosette whose tip rays run out to the boundary n-gon.
	ExtendedRosette
	// ConnectStar is an ExtendedStar scaled so that neighbouring rays meet.
	ConnectStar
	// ConnectRosette is an ExtendedRosette scaled so that neighbouring rays meet.
	ConnectRosette
)

var kindNames = [...]string{
	Star:            "star",
	Rosette:         "rosette",
	ExtendedStar:    "extended-star",
	ExtendedRosette: "extended-rosette",
	ConnectStar:     "connect-star",
	ConnectRosette:  "connect-rosette",
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Star, Rosette, ExtendedStar, ExtendedRosette, ConnectStar, ConnectRosette}
}

// String returns the canonical lower-case name, e.g. "connect-rosette".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the canonical names and their common spellings
// ("ExtendedStar", "extended_star", "Extended Star").
func ParseKind(s string) (Kind, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds() {
		if strings.ReplaceAll(k.String(), "-", "") == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= Star && k <= ConnectRosette }

// Base returns the underlying construction, Star or Rosette.
func (k Kind) Base() Kind {
	switch k {
	case Star, ExtendedStar, ConnectStar:
		return Star
	case Rosette, ExtendedRosette, ConnectRosette:
		return Rosette
	}
	return k
}

// Extended reports whether the tip rays are extended to the boundary. This
// holds for the Connect kinds as well.
func (k Kind) Extended() bool {
	switch k {
	case ExtendedStar, ExtendedRosette, ConnectStar, ConnectRosette:
		return true
	}
	return false
}

// Connected reports whether the scale is chosen so that the rays of
// neighbouring copies meet.
func (k Kind) Connected() bool { return k == ConnectStar || k == ConnectRosette }

// Parameter bounds.
const (
	MinN = 3
	MaxN = 64

	// MinQK and MaxQK bound the rosette tip and neck parameters.
	MinQK = -3.0
	MaxQK = 3.0

	// dSnap is the distance under which a star density snaps to an integer.
	dSnap = 0.01
)

// Params is the complete description of a figure. Which of D, Q and K are
// read depends on Kind.Base().
type Params struct {
	Kind Kind

	// N is the symmetry order.
	N int
	// D is the star density: every D-th corner is joined. Star only.
	D float64
	// Q controls the rosette tip angle: -3 is blunt, 3 is needle sharp.
	Q float64
	// K bends the rosette neck: positive values turn it counter-clockwise.
	K float64
	// S is the number of crossings kept per arm.
	S int

	// Rotation is applied to the finished unit, in degrees.
	Rotation float64
	// Scale is applied to the unit. Connect kinds compute their own.
	Scale float64
	// HalfTurn re-centres the unit on the midpoint between two tips
	// (RotateHalf followed by ScaleToUnit).
	HalfTurn bool
}

// StarParams returns the parameters of Star(n, d, s).
func StarParams(n int, d float64, s int) Params {
	return Params{Kind: Star, N: n, D: d, S: s, Scale: 1}
}

// RosetteParams returns the parameters of Rosette(n, q, s, k).
func RosetteParams(n int, q float64, s int, k float64) Params {
	return Params{Kind: Rosette, N: n, Q: q, K: k, S: s, Scale: 1}
}

// Clamp returns p with every field moved to its nearest legal value.
func (p Params) Clamp() Params {
	p.N = clampInt(p.N, MinN, MaxN)
	p.S = clampInt(p.S, 1, p.N/2)

	switch p.Kind.Base() {
	case Star:
		p.D = clampFloat(p.D, 1, float64(p.N)/2)
		if r := math.Round(p.D); math.Abs(p.D-r) < dSnap {
			p.D = r
		}
	case Rosette:
		p.Q = clampFloat(p.Q, MinQK, MaxQK)
		p.K = clampFloat(p.K, MinQK, MaxQK)
	}

	if math.IsNaN(p.Scale) || p.Scale <= 0 {
		p.Scale = 1
	}
	if math.IsNaN(p.Rotation) || math.IsInf(p.Rotation, 0) {
		p.Rotation = 0
	}
	return p
}

// String renders p in the usual notation, e.g. "star[8/3]2" or
// "connect-rosette(8, q=0.3, s=2, k=0)".
func (p Params) String() string {
	if p.Kind.Base() == Star {
		return fmt.Sprintf("%s[%d/%g]%d", p.Kind, p.N, p.D, p.S)
	}
	return fmt.Sprintf("%s(%d, q=%g, s=%d, k=%g)", p.Kind, p.N, p.Q, p.S, p.K)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat maps NaN to lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
