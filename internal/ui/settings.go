package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/service"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

const (
	settingGlow = iota
	settingTimeFormat
	settingExport
	settingReset
	settingRows
)

// settingsModel is the overlay for theme, clock format, export and the
// factory reset.
type settingsModel struct {
	states service.StateServiceI
	export func() (string, error)

	cursor     int
	confirming bool
	status     string
}

func newSettingsModel(states service.StateServiceI, export func() (string, error)) settingsModel {
	return settingsModel{states: states, export: export}
}

func (m *settingsModel) Update(msg tea.KeyMsg) tea.Cmd {
	if m.confirming {
		switch msg.String() {
		case "y":
			m.states.Reset(context.Background())
			m.status = "Protocol reset to factory state."
		}
		m.confirming = false
		return nil
	}
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < settingRows-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		m.activate()
	}
	return nil
}

func (m *settingsModel) adjust(delta int) {
	settings := m.states.State().Settings
	switch m.cursor {
	case settingGlow:
		glow := settings.ThemeIntensity + delta*5
		if glow < 0 {
			glow = 0
		}
		if glow > 100 {
			glow = 100
		}
		m.states.Dispatch(context.Background(), service.UpdateGlow{Value: glow})
	case settingTimeFormat:
		m.toggleTimeFormat(settings.TimeFormat)
	}
}

func (m *settingsModel) activate() {
	switch m.cursor {
	case settingTimeFormat:
		m.toggleTimeFormat(m.states.State().Settings.TimeFormat)
	case settingExport:
		path, err := m.export()
		if err != nil {
			m.status = "Export failed: " + err.Error()
			return
		}
		m.status = "Exported to " + path
	case settingReset:
		m.confirming = true
	}
}

func (m *settingsModel) toggleTimeFormat(current entity.TimeFormat) {
	next := entity.TimeFormat12h
	if current == entity.TimeFormat12h {
		next = entity.TimeFormat24h
	}
	m.states.Dispatch(context.Background(), service.UpdateTimeFormat{Format: next})
}

func (m *settingsModel) View(styles Styles, _ int) string {
	settings := m.states.State().Settings

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("SETTINGS"))
	sb.WriteString("\n\n")
	sb.WriteString(m.row(styles, settingGlow, "Glow intensity", fmt.Sprintf("%d%%  ←/→", settings.ThemeIntensity)))
	sb.WriteString(m.row(styles, settingTimeFormat, "Clock format", string(settings.TimeFormat)))
	sb.WriteString(m.row(styles, settingExport, "Export snapshot", ""))
	sb.WriteString(m.row(styles, settingReset, "Factory reset", styles.Danger.Render("destroys all logs")))
	sb.WriteString("\n")
	if m.confirming {
		sb.WriteString(styles.Danger.Render("Reset everything? y/n"))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(styles.Badge.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("esc: close  enter: select"))
	return styles.Card.Render(sb.String())
}

func (m *settingsModel) row(styles Styles, index int, label, value string) string {
	cursor := "  "
	if m.cursor == index {
		cursor = styles.Cursor.Render("> ")
	}
	return fmt.Sprintf("%s%-18s %s\n", cursor, label, value)
}
