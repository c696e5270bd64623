// Package fsystest provides an in-memory FileSystem for handler tests.
package fsystest

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/msto63/libmgr/internal/fsys"
)

// MemFS tracks a set of directories by slash-separated path.
// Set RenameErr or RemoveErr to make the next calls fail.
type MemFS struct {
	mu   sync.Mutex
	dirs map[string]struct{}

	RenameErr error
	RemoveErr error

	// Calls records every action in order, e.g. "rename /a /b"
	Calls []string
}

var _ fsys.FileSystem = (*MemFS)(nil)

// New creates a MemFS holding the given directories
func New(dirs ...string) *MemFS {
	m := &MemFS{dirs: make(map[string]struct{})}
	for _, d := range dirs {
		m.Mkdir(d)
	}
	return m
}

// Mkdir adds a directory
func (m *MemFS) Mkdir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path.Clean(p)] = struct{}{}
}

// Exists reports whether p is a known directory
func (m *MemFS) Exists(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.dirs[path.Clean(p)]
	return ok
}

func (m *MemFS) Rename(ctx context.Context, oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "rename "+oldpath+" "+newpath)

	if err := ctx.Err(); err != nil {
		return err
	}
	if m.RenameErr != nil {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: m.RenameErr}
	}

	src, dst := path.Clean(oldpath), path.Clean(newpath)
	if _, ok := m.dirs[src]; !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if _, ok := m.dirs[dst]; ok {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrExist}
	}

	var moved []string
	for d := range m.dirs {
		if d == src || strings.HasPrefix(d, src+"/") {
			moved = append(moved, d)
		}
	}
	for _, d := range moved {
		delete(m.dirs, d)
	}
	for _, d := range moved {
		m.dirs[dst+strings.TrimPrefix(d, src)] = struct{}{}
	}
	return nil
}

func (m *MemFS) RemoveAll(ctx context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "remove "+p)

	if err := ctx.Err(); err != nil {
		return err
	}
	if m.RemoveErr != nil {
		return &fs.PathError{Op: "unlinkat", Path: p, Err: m.RemoveErr}
	}

	target := path.Clean(p)
	for d := range m.dirs {
		if d == target || strings.HasPrefix(d, target+"/") {
			delete(m.dirs, d)
		}
	}
	return nil
}

func (m *MemFS) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "stat "+p)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := m.dirs[path.Clean(p)]; !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return dirInfo{name: path.Base(p)}, nil
}

type dirInfo struct {
	name string
}

func (d dirInfo) Name() string       { return d.name }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() fs.FileMode  { return fs.ModeDir | 0755 }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return true }
func (d dirInfo) Sys() any           { return nil }
