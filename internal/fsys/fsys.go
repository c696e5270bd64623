// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     fsys
// Description: Filesystem actions performed on model directories
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package fsys

import (
	"context"
	"io/fs"
	"os"
)

// FileSystem is the set of directory actions the handlers need.
// A cancelled context prevents an action from starting; an action that has
// started always runs to completion.
type FileSystem interface {
	Rename(ctx context.Context, oldpath, newpath string) error
	RemoveAll(ctx context.Context, path string) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// OS performs actions on the host filesystem
type OS struct{}

var _ FileSystem = OS{}

// Rename moves oldpath to newpath with a single rename(2)
func (OS) Rename(ctx context.Context, oldpath, newpath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(oldpath, newpath)
}

// RemoveAll deletes path and everything below it. A missing path is not an error.
func (OS) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// Stat returns file info for path
func (OS) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}
