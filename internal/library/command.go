// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     library
// Description: Decoded subcommands
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package library

import (
	"fmt"

	liberrors "github.com/msto63/libmgr/internal/errors"
)

// Op identifies the operation a Command performs
type Op int

const (
	OpShow Op = iota
	OpMove
	OpDelete
	OpAdd
	OpList
)

// String returns the subcommand name of the operation
func (o Op) String() string {
	switch o {
	case OpShow:
		return "show"
	case OpMove:
		return "move"
	case OpDelete:
		return "delete"
	case OpAdd:
		return "add"
	case OpList:
		return "list"
	default:
		return "unknown"
	}
}

// Mutating reports whether the registry is saved after the operation
func (o Op) Mutating() bool {
	switch o {
	case OpMove, OpDelete, OpAdd:
		return true
	default:
		return false
	}
}

// Command is one decoded invocation. Only the fields of its Op are set:
// Model for show/move/delete/add, Dest for move, Path for add, Format for list.
type Command struct {
	Op     Op
	Model  string
	Dest   string
	Path   string
	Format string
}

// Show returns the command that prints the details of one model
func Show(model string) Command {
	return Command{Op: OpShow, Model: model}
}

// Move returns the command that relocates a model directory to dest
func Move(model, dest string) Command {
	return Command{Op: OpMove, Model: model, Dest: dest}
}

// Delete returns the command that removes a model directory and its entry
func Delete(model string) Command {
	return Command{Op: OpDelete, Model: model}
}

// Add returns the command that registers an existing directory as model
func Add(model, path string) Command {
	return Command{Op: OpAdd, Model: model, Path: path}
}

// List returns the command that prints all models in the given format
func List(format string) Command {
	return Command{Op: OpList, Format: format}
}

// Parse decodes a subcommand name and its positional arguments
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, liberrors.ErrUnknownCommand
	}

	name, rest := args[0], args[1:]
	want := map[string]int{"show": 1, "move": 2, "delete": 1, "add": 2, "list": 0}
	n, ok := want[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", liberrors.ErrUnknownCommand, name)
	}
	if len(rest) != n {
		return Command{}, fmt.Errorf("%s expects %d argument(s), got %d", name, n, len(rest))
	}

	switch name {
	case "show":
		return Show(rest[0]), nil
	case "move":
		return Move(rest[0], rest[1]), nil
	case "delete":
		return Delete(rest[0]), nil
	case "add":
		return Add(rest[0], rest[1]), nil
	default:
		return List(""), nil
	}
}
