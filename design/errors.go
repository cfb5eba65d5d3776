// SPDX-License-Identifier: MIT

package design

import "errors"

var (
	// ErrUnknownKind is returned for a feature whose kind names no figure.
	ErrUnknownKind = errors.New("design: unknown figure kind")
	// ErrNoFeatures is returned when a design has nothing to build.
	ErrNoFeatures = errors.New("design: no features")
	// ErrInvalidDesign is returned for malformed documents and values.
	ErrInvalidDesign = errors.New("design: invalid design")
)
