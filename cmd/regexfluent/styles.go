// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders command output; colors are dropped on non-terminal writers.
type styles struct {
	match   lipgloss.Style
	noMatch lipgloss.Style
	name    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		match:   r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		noMatch: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		name:    r.NewStyle().Foreground(lipgloss.Color("205")).Width(14),
	}
}

// verdict renders a match result label.
func (s styles) verdict(ok bool) string {
	if ok {
		return s.match.Render("MATCH")
	}

	return s.noMatch.Render("NO MATCH")
}
