// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: YAML encoding and decoding of documents.

package mapio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes doc as YAML. A zero Version is written as CurrentVersion.
func Encode(w io.Writer, doc *Document) error {
	out := *doc
	if out.Version == 0 {
		out.Version = CurrentVersion
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("mapio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("mapio: encode: %w", err)
	}
	return nil
}

// Decode reads one YAML document and normalizes it to CurrentVersion.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := normalize(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
