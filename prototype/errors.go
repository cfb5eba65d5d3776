// SPDX-License-Identifier: MIT

package prototype

import "errors"

var (
	// ErrNilFigure is returned when a feature is added without a figure.
	ErrNilFigure = errors.New("prototype: nil figure")
	// ErrFeatureNotFound is returned for ids that name no feature.
	ErrFeatureNotFound = errors.New("prototype: feature not found")
)
