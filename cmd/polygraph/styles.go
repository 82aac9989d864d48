// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorTeal    = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorSlate   = lipgloss.Color("#2C4A54")
)

// styles are the text-report styles, bound to the color profile of one
// output. Plain writers (files, buffers) get unstyled text.
type styles struct {
	title  lipgloss.Style
	warn   lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorTeal),
		warn:   r.NewStyle().Foreground(colorWarning),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		label:  r.NewStyle().Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		border: r.NewStyle().Foreground(colorSlate),
		yes:    r.NewStyle().Foreground(colorTeal),
		no:     r.NewStyle().Foreground(colorError),
	}
}

// table returns a bordered table with a left-aligned label column and
// right-aligned value columns.
func (s styles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case col == 0:
				return s.label
			default:
				return s.cell
			}
		})
}

// flag renders a condition outcome.
func (s styles) flag(ok bool) string {
	if ok {
		return s.yes.Render("true")
	}

	return s.no.Render("false")
}
