// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     registry
// Description: Load and save of the registry JSON file
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	liberrors "github.com/msto63/libmgr/internal/errors"
)

// DefaultPath is used when no registry file is configured
const DefaultPath = "config.json"

// Store reads and writes the registry file at a fixed path.
// Writes truncate the file in place; there is no locking between processes.
type Store struct {
	path string
}

// NewStore creates a Store for the given file
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the registry file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry, creating an empty file if none exists.
// Empty or whitespace-only contents yield an empty registry.
func (s *Store) Load() (*Registry, error) {
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, liberrors.IO("open", s.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, liberrors.IO("read", s.path, err)
	}

	reg := New()
	if len(bytes.TrimSpace(data)) == 0 {
		return reg, nil
	}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, liberrors.Parse(s.path, err)
	}
	return reg, nil
}

// Save writes the full registry, replacing the previous contents
func (s *Store) Save(reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		var lerr *liberrors.Error
		if errors.As(err, &lerr) {
			return err
		}
		return liberrors.Serialization(s.path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return liberrors.IO("write", s.path, err)
	}
	return nil
}
