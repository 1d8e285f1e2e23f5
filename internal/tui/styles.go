package tui

import "github.com/charmbracelet/lipgloss"

// Style palette for GridView, adapted from the teacher's viz style
// sheet: cold tiles stay dim, hot tiles glow, and fire gets the loudest
// color in the set.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

	cellSpace  = lipgloss.NewStyle().Foreground(lipgloss.Color("#222233"))
	cellCold   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4488cc"))
	cellNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	cellWarm   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	cellHot    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8800")).Bold(true)
	cellFire   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)

	keyHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

// cellStyleFor picks a cell's color from its temperature, in Kelvin,
// against the tuning's own reference points (T20C, PlasmaBurnMinTemp).
func cellStyleFor(temperature, t20c, plasmaBurnMinTemp float32) lipgloss.Style {
	switch {
	case temperature >= plasmaBurnMinTemp:
		return cellFire
	case temperature >= t20c*1.5:
		return cellHot
	case temperature >= t20c*1.1:
		return cellWarm
	case temperature <= t20c*0.5:
		return cellCold
	default:
		return cellNormal
	}
}
