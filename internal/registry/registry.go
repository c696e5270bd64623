// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     registry
// Description: In-memory mapping from model name to record
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"

	liberrors "github.com/msto63/libmgr/internal/errors"
)

// Registry maps model names to records. A fresh Registry is built for every
// invocation; it is not safe for concurrent use.
type Registry struct {
	models map[string]Record
}

// New creates an empty registry
func New() *Registry {
	return &Registry{models: make(map[string]Record)}
}

// Get returns the record registered under name
func (r *Registry) Get(name string) (Record, bool) {
	rec, ok := r.models[name]
	return rec, ok
}

// Put registers rec under its name, replacing any previous record
func (r *Registry) Put(rec Record) {
	r.models[rec.Name] = rec
}

// Update applies fn to the record registered under name.
// It reports false and leaves the registry untouched if name is absent.
func (r *Registry) Update(name string, fn func(*Record)) bool {
	rec, ok := r.models[name]
	if !ok {
		return false
	}
	fn(&rec)
	r.models[name] = rec
	return true
}

// Remove deletes name and returns the record it held
func (r *Registry) Remove(name string) (Record, bool) {
	rec, ok := r.models[name]
	if ok {
		delete(r.models, name)
	}
	return rec, ok
}

// Len returns the number of registered models
func (r *Registry) Len() int {
	return len(r.models)
}

// Records returns all records sorted by name
func (r *Registry) Records() []Record {
	out := make([]Record, 0, len(r.models))
	for _, rec := range r.models {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MarshalJSON encodes the registry as an object keyed by model name
func (r *Registry) MarshalJSON() ([]byte, error) {
	for key := range r.models {
		if !utf8.ValidString(key) {
			return nil, liberrors.Serialization("", fmt.Errorf("model name %q is not valid UTF-8", key))
		}
	}
	return json.Marshal(r.models)
}

// UnmarshalJSON decodes an object keyed by model name. The key is
// authoritative; a record without a name takes its key.
func (r *Registry) UnmarshalJSON(data []byte) error {
	models := make(map[string]Record)
	if err := json.Unmarshal(data, &models); err != nil {
		return err
	}
	if models == nil {
		models = make(map[string]Record)
	}
	for key, rec := range models {
		if rec.Name == "" {
			rec.Name = key
			models[key] = rec
		}
	}
	r.models = models
	return nil
}
