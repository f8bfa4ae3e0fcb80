// SPDX-License-Identifier: MIT
//
// File: codec.go — canonical JSON encoding of snapshots.

package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/weftworks/patterngraph/core"
)

// EncodeJSON exports the graph and marshals it as canonical JSON: blocks in
// insertion order, map keys sorted (encoding/json), no indentation. Equal
// graphs produce byte-equal output.
func EncodeJSON(g *core.PatternGraph) ([]byte, error) {
	data, err := json.Marshal(Export(g))
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}

	return data, nil
}

// DecodeJSON unmarshals snapshot JSON and imports it. Malformed JSON or
// snapshot content (unknown kinds, duplicate ids) fails with a wrapped
// ErrBadSnapshot where applicable.
func DecodeJSON(data []byte) (*core.PatternGraph, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return Import(&s)
}
