// SPDX-License-Identifier: MIT

package export

import "errors"

// ErrInvalidSize is returned when a raster is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("export: image size must be positive")
