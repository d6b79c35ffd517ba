package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/content"
	"github.com/manojv472/Shift-protocol/internal/service"
)

// shiftsModel is the architect view: browse any shift's template without
// touching the live shift selection.
type shiftsModel struct {
	states   service.StateServiceI
	selected int
}

func newShiftsModel(states service.StateServiceI) shiftsModel {
	return shiftsModel{states: states}
}

func (m *shiftsModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h", "up", "k":
		m.selected = (m.selected + len(shiftCycle) - 1) % len(shiftCycle)
	case "right", "l", "down", "j":
		m.selected = (m.selected + 1) % len(shiftCycle)
	}
	return nil
}

func (m *shiftsModel) View(styles Styles, _ int) string {
	state := m.states.State()
	shift := shiftCycle[m.selected]

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("SHIFT ARCHITECT"))
	sb.WriteString("\n\n")
	for i, s := range shiftCycle {
		label := fmt.Sprintf(" %s ", s)
		if i == m.selected {
			sb.WriteString(styles.ActiveTab.Render(label))
		} else {
			sb.WriteString(styles.Tab.Render(label))
		}
	}
	if shift == state.CurrentShift {
		sb.WriteString(styles.Badge.Render("  LIVE"))
	}
	sb.WriteString("\n\n")

	for _, item := range content.Schedule(shift) {
		sb.WriteString(styles.Cyan.Render(FormatClock(item.Time, state.Settings.TimeFormat)))
		sb.WriteString("  " + item.Activity)
		if item.Duration != "-" {
			sb.WriteString(styles.Dim.Render("  (" + item.Duration + ")"))
		}
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("       " + item.Notes))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("←/→: browse templates"))
	return sb.String()
}
