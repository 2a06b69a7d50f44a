// Package ux renders ohmnet results for the terminal.
package ux

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorCopper  = lipgloss.Color("#D9822B") // headings
	ColorAmber   = lipgloss.Color("#F4D03F") // progress, warnings
	ColorGreen   = lipgloss.Color("#2ECC71") // results
	ColorRed     = lipgloss.Color("#E74C3C") // errors
	ColorSteel   = lipgloss.Color("#5D6D7E") // muted text, rules
	ColorMagenta = lipgloss.Color("#C061CB") // section titles
)

// Styles holds the lipgloss styles bound to one output renderer.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Result  lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles builds the styles for w. Color is used only when w is a terminal
// that supports it, so buffers and pipes receive plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorCopper),
		Section: r.NewStyle().Foreground(ColorMagenta),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(ColorSteel),
		Success: r.NewStyle().Foreground(ColorGreen),
		Warning: r.NewStyle().Foreground(ColorAmber),
		Error:   r.NewStyle().Foreground(ColorRed),
		Result:  r.NewStyle().Bold(true).Foreground(ColorGreen),
		Failure: r.NewStyle().Bold(true).Foreground(ColorRed),
	}
}
