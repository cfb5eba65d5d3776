// SPDX-License-Identifier: MIT

package mapio

import "errors"

var (
	// ErrUnsupportedVersion is returned for document versions without a
	// normalizer.
	ErrUnsupportedVersion = errors.New("mapio: unsupported document version")
	// ErrInvalidDocument is returned for structurally broken documents:
	// bad ids, dangling vertex indices, unknown edge kinds.
	ErrInvalidDocument = errors.New("mapio: invalid document")
	// ErrInvalidMap is returned when a loaded map fails verification and
	// no repair was allowed or the repair did not help.
	ErrInvalidMap = errors.New("mapio: invalid map")
	// ErrUnknownMap is returned when a figure refers to a map id that is not
	// in the document.
	ErrUnknownMap = errors.New("mapio: unknown map id")
	// ErrDuplicateID is returned when two map records share an id.
	ErrDuplicateID = errors.New("mapio: duplicate map id")
)
