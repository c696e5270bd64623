// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     errors
// Description: Error kinds for registry persistence and filesystem actions
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Kind classifies an error for reporting and matching
type Kind string

const (
	KindUnknown       Kind = "UNKNOWN"
	KindIO            Kind = "IO_ERROR"
	KindParse         Kind = "PARSE_ERROR"
	KindSerialization Kind = "SERIALIZATION_ERROR"
	KindFilesystem    Kind = "FILESYSTEM_ERROR"
)

// Sentinel errors, one per kind. Use errors.Is to match.
var (
	ErrIO            = errors.New("registry file i/o failed")
	ErrParse         = errors.New("registry file is not valid JSON")
	ErrSerialization = errors.New("registry could not be encoded")
	ErrFilesystem    = errors.New("filesystem action failed")

	// ErrAlreadyExists is returned when a model name is registered twice
	ErrAlreadyExists = errors.New("model already registered")

	// ErrUnknownCommand is returned when a subcommand cannot be decoded
	ErrUnknownCommand = errors.New("unknown command")
)

// Error carries the kind, the failed operation and the path it touched
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	// *fs.PathError and *os.LinkError already name the operation and path
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(e.Err, &pathErr) || errors.As(e.Err, &linkErr) {
		return e.Err.Error()
	}

	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that belongs to the error's kind
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(kind Kind) error {
	switch kind {
	case KindIO:
		return ErrIO
	case KindParse:
		return ErrParse
	case KindSerialization:
		return ErrSerialization
	case KindFilesystem:
		return ErrFilesystem
	default:
		return nil
	}
}

// IO wraps a registry file open/read/write failure
func IO(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// Parse wraps a JSON decoding failure of the registry file
func Parse(path string, err error) error {
	return &Error{Kind: KindParse, Op: "parse", Path: path, Err: err}
}

// Serialization wraps a JSON encoding failure
func Serialization(path string, err error) error {
	return &Error{Kind: KindSerialization, Op: "encode", Path: path, Err: err}
}

// Filesystem wraps a rename/remove/stat failure on a model directory
func Filesystem(op, path string, err error) error {
	return &Error{Kind: KindFilesystem, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in the chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
