// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     library
// Description: Load, dispatch and persist for one invocation
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
	"github.com/msto63/libmgr/internal/logging"
	"github.com/msto63/libmgr/internal/registry"
	"github.com/msto63/libmgr/internal/ui"
)

// Manager runs commands against one registry file. Two processes sharing a
// registry file are not coordinated; the last save wins.
type Manager struct {
	store *registry.Store
	fs    fsys.FileSystem
	out   *ui.Printer
	log   *logrus.Entry
}

// Option configures a Manager
type Option func(*Manager)

// WithFileSystem replaces the host filesystem
func WithFileSystem(fs fsys.FileSystem) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithLogger sets the logger
func WithLogger(log *logrus.Entry) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a Manager writing results to out
func NewManager(store *registry.Store, out *ui.Printer, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		fs:    fsys.OS{},
		out:   out,
		log:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute loads the registry, runs cmd and, for mutating commands, saves the
// registry. The save happens even when the model was not found. Any error
// aborts before the save.
func (m *Manager) Execute(ctx context.Context, cmd Command) (Result, error) {
	log := m.log.WithFields(logrus.Fields{"op": cmd.Op.String(), "registry": m.store.Path()})

	reg, err := m.store.Load()
	if err != nil {
		return Result{}, err
	}
	log.WithField("models", reg.Len()).Debug("registry loaded")

	h := &handler{reg: reg, fs: m.fs, out: m.out, log: log}

	var res Result
	switch cmd.Op {
	case OpShow:
		res = h.show(cmd.Model)
	case OpMove:
		res, err = h.move(ctx, cmd.Model, cmd.Dest)
	case OpDelete:
		res, err = h.delete(ctx, cmd.Model)
	case OpAdd:
		res, err = h.add(ctx, cmd.Model, cmd.Path)
	case OpList:
		err = h.list(cmd.Format)
	default:
		return Result{}, fmt.Errorf("unsupported operation %d", cmd.Op)
	}
	if err != nil {
		log.WithError(err).WithField("kind", liberrors.KindOf(err)).Debug("operation failed, registry not saved")
		return Result{}, err
	}

	if cmd.Op.Mutating() {
		if err := m.store.Save(reg); err != nil {
			return Result{}, err
		}
		log.WithField("models", reg.Len()).Debug("registry saved")
	}
	return res, nil
}
