package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/service"
)

const (
	rowSleepHours = iota
	rowSleepQuality
	rowEnergy
	rowMood
	rowProtein
	rowHydration
	rowCaffeine
	rowNoAlcohol
	rowNoNicotine
	rowCleanPMO
	rowSave
	captureRows
)

// captureModel is the daily wellness form. It edits the capture service's
// scratch buffer; nothing reaches the aggregate until the save row commits.
type captureModel struct {
	capture service.CaptureServiceI

	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
}

func newCaptureModel(capture service.CaptureServiceI) captureModel {
	input := textinput.New()
	input.CharLimit = 5
	input.Width = 6
	return captureModel{capture: capture, input: input}
}

// ensure seeds the buffer when the tab gains focus.
func (m *captureModel) ensure() {
	if m.capture.Buffer() == nil {
		m.capture.Begin()
		m.cursor = 0
		m.saved = false
	}
}

// leave discards an uncommitted buffer when the tab loses focus.
func (m *captureModel) leave() {
	m.capture.Abandon()
	m.editing = false
	m.input.Blur()
}

func (m *captureModel) Editing() bool {
	return m.editing
}

func (m *captureModel) Update(msg tea.KeyMsg) tea.Cmd {
	m.ensure()
	if m.editing {
		return m.updateEdit(msg)
	}
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < captureRows-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case " ":
		m.toggle()
	case "enter":
		switch m.cursor {
		case rowSleepHours:
			m.input.SetValue(fmt.Sprintf("%g", m.capture.Buffer().SleepHours))
			m.input.CursorEnd()
			m.input.Focus()
			m.editing = true
		case rowSave:
			m.capture.Commit(context.Background())
			m.saved = true
		default:
			m.toggle()
		}
	}
	return nil
}

func (m *captureModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.capture.SetSleepHours(parseFloatField(m.input.Value()))
		m.editing = false
		m.input.Blur()
		return nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *captureModel) adjust(delta int) {
	buffer := m.capture.Buffer()
	switch m.cursor {
	case rowSleepHours:
		m.capture.SetSleepHours(buffer.SleepHours + float64(delta)*0.5)
	case rowSleepQuality:
		m.capture.SetSleepQuality(buffer.SleepQuality + delta)
	case rowEnergy:
		m.capture.SetEnergy(buffer.Energy + delta)
	case rowMood:
		m.capture.SetMood(buffer.Mood + delta)
	}
}

func (m *captureModel) toggle() {
	switch m.cursor {
	case rowProtein:
		m.capture.ToggleProteinHit()
	case rowHydration:
		m.capture.ToggleHydration()
	case rowCaffeine:
		m.capture.ToggleCaffeineCutoff()
	case rowNoAlcohol:
		m.capture.ToggleNoAlcohol()
	case rowNoNicotine:
		m.capture.ToggleNoNicotine()
	case rowCleanPMO:
		m.capture.ToggleCleanPMO()
	}
}

func (m *captureModel) View(styles Styles, _ int) string {
	m.ensure()
	buffer := m.capture.Buffer()

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("DAILY CAPTURE"))
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("  %s · shift %s", buffer.Date, buffer.Shift)))
	sb.WriteString("\n\n")

	sleep := fmt.Sprintf("%g h", buffer.SleepHours)
	if m.editing {
		sleep = m.input.View()
	}
	sb.WriteString(m.row(styles, rowSleepHours, "Sleep hours", sleep))
	sb.WriteString(m.row(styles, rowSleepQuality, "Sleep quality", meter(styles, buffer.SleepQuality)))
	sb.WriteString(m.row(styles, rowEnergy, "Energy", meter(styles, buffer.Energy)))
	sb.WriteString(m.row(styles, rowMood, "Mood", meter(styles, buffer.Mood)))
	sb.WriteString("\n")
	sb.WriteString(m.row(styles, rowProtein, "Protein target hit", checkbox(buffer.ProteinHit)))
	sb.WriteString(m.row(styles, rowHydration, "Hydration on track", checkbox(buffer.Hydration)))
	sb.WriteString(m.row(styles, rowCaffeine, "Caffeine cutoff kept", checkbox(buffer.CaffeineCutoff)))
	sb.WriteString(m.row(styles, rowNoAlcohol, "No alcohol", checkbox(buffer.Habits.NoAlcohol)))
	sb.WriteString(m.row(styles, rowNoNicotine, "No nicotine", checkbox(buffer.Habits.NoNicotine)))
	sb.WriteString(m.row(styles, rowCleanPMO, "Clean PMO", checkbox(buffer.Habits.CleanPMO)))
	sb.WriteString("\n")

	save := "[ SAVE LOG ]"
	if m.cursor == rowSave {
		save = styles.Cursor.Render("> ") + styles.Accent.Render(save)
	} else {
		save = "  " + save
	}
	sb.WriteString(save + "\n")
	if m.saved {
		sb.WriteString(styles.Badge.Render("Log saved.") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("←/→: adjust  space: toggle  enter: edit/save"))
	return sb.String()
}

func (m *captureModel) row(styles Styles, index int, label, value string) string {
	cursor := "  "
	if m.cursor == index {
		cursor = styles.Cursor.Render("> ")
	}
	return fmt.Sprintf("%s%-22s %s\n", cursor, label, value)
}

// meter renders a 1-10 metric bar. Loaded snapshots skip import validation,
// so a persisted out-of-range value is drawn pinned to the scale instead of
// breaking the render.
func meter(styles Styles, v int) string {
	filled := v
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return styles.Accent.Render(strings.Repeat("■", filled)) +
		styles.Dim.Render(strings.Repeat("□", 10-filled)) +
		fmt.Sprintf(" %2d", v)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
