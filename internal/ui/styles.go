package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Base palette at full theme intensity.
const (
	colorGreen = "#00FF41"
	colorCyan  = "#00D9FF"
	colorPink  = "#FF2E88"
	colorGray  = "#6B7280"
	colorFaint = "#3B4252"
)

// Styles carries every lipgloss style used by the pages. Rebuilt whenever the
// theme intensity setting changes.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Accent    lipgloss.Style
	Cyan      lipgloss.Style
	Danger    lipgloss.Style
	Dim       lipgloss.Style
	Done      lipgloss.Style
	Cursor    lipgloss.Style
	Badge     lipgloss.Style
	Countdown lipgloss.Style
	Card      lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for a theme intensity in [0,100]; lower
// intensity fades the neon accents toward gray.
func NewStyles(intensity int) Styles {
	green := lipgloss.Color(fade(colorGreen, intensity))
	cyan := lipgloss.Color(fade(colorCyan, intensity))
	pink := lipgloss.Color(fade(colorPink, intensity))
	gray := lipgloss.Color(colorGray)
	faint := lipgloss.Color(colorFaint)

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(green).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(gray),
		Tab:       lipgloss.NewStyle().Foreground(gray).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(green).Bold(true).Padding(0, 1).Underline(true),
		Accent:    lipgloss.NewStyle().Foreground(green),
		Cyan:      lipgloss.NewStyle().Foreground(cyan),
		Danger:    lipgloss.NewStyle().Foreground(pink),
		Dim:       lipgloss.NewStyle().Foreground(faint),
		Done:      lipgloss.NewStyle().Foreground(faint).Strikethrough(true),
		Cursor:    lipgloss.NewStyle().Foreground(green).Bold(true),
		Badge:     lipgloss.NewStyle().Foreground(cyan).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(cyan).Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(faint).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(faint),
	}
}

// fade blends a hex color toward mid-gray as intensity drops.
func fade(hex string, intensity int) string {
	if intensity >= 100 {
		return hex
	}
	if intensity < 0 {
		intensity = 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	const grayPoint = 0x55
	blend := func(c int) int {
		return grayPoint + (c-grayPoint)*intensity/100
	}
	return fmt.Sprintf("#%02X%02X%02X", blend(r), blend(g), blend(b))
}
