// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     ui
// Description: Printer for user-facing command results
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/msto63/libmgr/internal/registry"
)

// Output formats for record listings
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Printer writes command results to an output stream
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a printer. Styling follows the terminal capabilities
// of w unless plain is set.
func NewPrinter(w io.Writer, plain bool) *Printer {
	styles := PlainStyles()
	if !plain {
		styles = NewStyles(lipgloss.NewRenderer(w))
	}
	return &Printer{w: w, styles: styles}
}

// ModelDetails prints the detail block for one record
func (p *Printer) ModelDetails(rec registry.Record) {
	fmt.Fprintln(p.w, p.styles.Heading.Render("Model Details:"))
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("Name:"), rec.Name)
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("Path:"), rec.Path)
}

// Error reports a failed command
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.styles.Error.Render("Error:"), err)
}

// NotFound reports a name that is not registered
func (p *Printer) NotFound(name string) {
	fmt.Fprintf(p.w, "Model '%s' not found.\n", name)
}

// Moved confirms a completed move
func (p *Printer) Moved(name, dest string) {
	fmt.Fprintf(p.w, "Moved '%s' to '%s'\n", name, dest)
}

// Deleted confirms a completed delete
func (p *Printer) Deleted(name string) {
	fmt.Fprintf(p.w, "Deleted '%s'\n", name)
}

// Added confirms a new registration
func (p *Printer) Added(name, path string) {
	fmt.Fprintf(p.w, "Added '%s' at '%s'\n", name, path)
}

// InvalidCommand prints the usage hint for an unknown subcommand
func (p *Printer) InvalidCommand() {
	fmt.Fprintln(p.w, "Invalid command. Use --help for more information.")
}

// listEntry is the serialized form of a record in list output
type listEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Records prints a listing in the requested format
func (p *Printer) Records(records []registry.Record, format string) error {
	entries := make([]listEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, listEntry{Name: rec.Name, Path: rec.Path})
	}

	switch strings.ToLower(format) {
	case "", FormatTable:
		p.table(entries)
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(p.w, string(data))
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

func (p *Printer) table(entries []listEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, p.styles.Muted.Render("No models registered."))
		return
	}

	width := len("MODEL")
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	fmt.Fprintf(p.w, "%-*s  %s\n", width, "MODEL", "PATH")
	fmt.Fprintln(p.w, strings.Repeat("-", width+2+len("PATH")))
	for _, e := range entries {
		fmt.Fprintf(p.w, "%-*s  %s\n", width, e.Name, e.Path)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "Total: %d model(s)\n", len(entries))
}
