// ============================================================================
// libmgr - Data model library manager
// ============================================================================
//
// Package:     ui
// Description: Styles for command output
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - brass and copper accents
var (
	ColorBrass  = lipgloss.Color("#B5A642")
	ColorCopper = lipgloss.Color("#B87333")
	ColorMuted  = lipgloss.Color("#6B7280")
	ColorError  = lipgloss.Color("#EF4444")
)

// Styles bundles the styles bound to one renderer
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles for the given renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().
			Foreground(ColorBrass).
			Bold(true).
			Underline(true),
		Label: r.NewStyle().
			Foreground(ColorCopper),
		Muted: r.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
	}
}

// PlainStyles renders text unchanged
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Heading: s, Label: s, Muted: s, Error: s}
}
