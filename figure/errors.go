// SPDX-License-Identifier: MIT

package figure

import "errors"

// ErrUnknownKind is returned by ParseKind for names that match no Kind.
var ErrUnknownKind = errors.New("figure: unknown figure kind")
