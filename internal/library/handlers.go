// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     library
// Description: Show, move, delete and add handlers
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package library

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	liberrors "github.com/msto63/libmgr/internal/errors"
	"github.com/msto63/libmgr/internal/fsys"
	"github.com/msto63/libmgr/internal/registry"
	"github.com/msto63/libmgr/internal/ui"
)

// Result reports what a handler did. Found is false when the model name was
// not registered; that is a normal outcome, not an error.
type Result struct {
	Found  bool
	Record registry.Record
}

// handler holds what every operation needs for one invocation.
// The registry is only mutated after the filesystem action succeeded.
type handler struct {
	reg *registry.Registry
	fs  fsys.FileSystem
	out *ui.Printer
	log *logrus.Entry
}

func (h *handler) show(name string) Result {
	rec, ok := h.reg.Get(name)
	if !ok {
		h.log.WithField("model", name).Warn("model not found")
		h.out.NotFound(name)
		return Result{}
	}
	h.out.ModelDetails(rec)
	return Result{Found: true, Record: rec}
}

func (h *handler) move(ctx context.Context, name, dest string) (Result, error) {
	rec, ok := h.reg.Get(name)
	if !ok {
		h.log.WithField("model", name).Warn("model not found")
		h.out.NotFound(name)
		return Result{}, nil
	}

	moved := rec
	moved.Path = dest
	if err := moved.Validate(); err != nil {
		return Result{}, err
	}

	h.log.WithFields(logrus.Fields{"model": name, "from": rec.Path, "to": dest}).Debug("renaming model directory")
	if err := h.fs.Rename(ctx, rec.Path, dest); err != nil {
		return Result{}, liberrors.Filesystem("rename", rec.Path, err)
	}

	h.reg.Update(name, func(r *registry.Record) { r.Path = dest })
	rec, _ = h.reg.Get(name)
	h.out.Moved(name, dest)
	return Result{Found: true, Record: rec}, nil
}

func (h *handler) delete(ctx context.Context, name string) (Result, error) {
	rec, ok := h.reg.Get(name)
	if !ok {
		h.log.WithField("model", name).Warn("model not found")
		h.out.NotFound(name)
		return Result{}, nil
	}

	h.log.WithFields(logrus.Fields{"model": name, "path": rec.Path}).Debug("removing model directory")
	if err := h.fs.RemoveAll(ctx, rec.Path); err != nil {
		return Result{}, liberrors.Filesystem("remove", rec.Path, err)
	}

	h.reg.Remove(name)
	h.out.Deleted(name)
	return Result{Found: true, Record: rec}, nil
}

func (h *handler) add(ctx context.Context, name, path string) (Result, error) {
	if existing, ok := h.reg.Get(name); ok {
		return Result{}, fmt.Errorf("%w: %q at %s", liberrors.ErrAlreadyExists, name, existing.Path)
	}

	rec := registry.Record{Name: name, Path: path}
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}

	info, err := h.fs.Stat(ctx, path)
	if err != nil {
		return Result{}, liberrors.Filesystem("stat", path, err)
	}
	if !info.IsDir() {
		return Result{}, liberrors.Filesystem("stat", path, fmt.Errorf("not a directory"))
	}

	h.reg.Put(rec)
	h.log.WithFields(logrus.Fields{"model": name, "path": path}).Debug("registered model")
	h.out.Added(name, path)
	return Result{Found: true, Record: rec}, nil
}

func (h *handler) list(format string) error {
	return h.out.Records(h.reg.Records(), format)
}
