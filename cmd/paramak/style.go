package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#636363")
	colorAccent  = lipgloss.Color("#FFD700")
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).MarginTop(1)
	styleHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	styleHidden = lipgloss.NewStyle().Foreground(colorAccent).Padding(0, 1)
)

// newTable returns a bordered table with styled headers. Rows for which
// muted returns true are dimmed.
func newTable(muted func(row int) bool, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case muted != nil && muted(row):
				return styleMuted
			}
			return styleCell
		})
}
