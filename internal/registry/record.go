// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     registry
// Description: Model records and their JSON representation
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package registry

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	liberrors "github.com/msto63/libmgr/internal/errors"
)

// Record describes one managed data model and the directory backing it.
// Path is the last known location on disk; the registry does not verify it.
type Record struct {
	Name string
	Path string

	// Extra keeps fields this version does not know about so that a
	// load/save cycle writes them back unchanged.
	Extra map[string]json.RawMessage
}

// Validate reports a SerializationError if name or path cannot be stored
// in JSON unchanged. Invalid UTF-8 would otherwise be replaced with U+FFFD
// and the stored path would no longer point at the directory.
func (r Record) Validate() error {
	if !utf8.ValidString(r.Name) {
		return liberrors.Serialization("", fmt.Errorf("model name %q is not valid UTF-8", r.Name))
	}
	if !utf8.ValidString(r.Path) {
		return liberrors.Serialization("", fmt.Errorf("path %q of model %q is not valid UTF-8", r.Path, r.Name))
	}
	return nil
}

// MarshalJSON writes name and path plus any preserved extra fields
func (r Record) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["name"] = r.Name
	out["path"] = r.Path
	return json.Marshal(out)
}

// UnmarshalJSON reads name and path and stashes every other field in Extra
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var rec Record
	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &rec.Name); err != nil {
			return err
		}
		delete(fields, "name")
	}
	if raw, ok := fields["path"]; ok {
		if err := json.Unmarshal(raw, &rec.Path); err != nil {
			return err
		}
		delete(fields, "path")
	}
	if len(fields) > 0 {
		rec.Extra = fields
	}

	*r = rec
	return nil
}
