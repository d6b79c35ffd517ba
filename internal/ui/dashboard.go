package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/content"
	"github.com/manojv472/Shift-protocol/internal/service"
	"github.com/manojv472/Shift-protocol/pkg/entity"
)

var shiftCycle = []entity.ShiftType{entity.ShiftA, entity.ShiftB, entity.ShiftC, entity.ShiftOff}

// dashboardModel renders today's protocol: completion bar, the active shift's
// template, and per-item completion toggles.
type dashboardModel struct {
	states service.StateServiceI
	bar    progress.Model
	cursor int
}

func newDashboardModel(states service.StateServiceI) dashboardModel {
	bar := progress.New(progress.WithSolidFill(colorGreen), progress.WithoutPercentage())
	return dashboardModel{states: states, bar: bar}
}

func (m *dashboardModel) schedule() []entity.ScheduleItem {
	return content.Schedule(m.states.State().CurrentShift)
}

func (m *dashboardModel) Update(msg tea.KeyMsg) tea.Cmd {
	schedule := m.schedule()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(schedule)-1 {
			m.cursor++
		}
	case " ", "enter":
		if len(schedule) > 0 {
			m.states.ToggleTask(context.Background(), m.cursor)
		}
	case "left", "h":
		m.cycleShift(-1)
	case "right", "l":
		m.cycleShift(1)
	}
	return nil
}

func (m *dashboardModel) cycleShift(delta int) {
	current := m.states.State().CurrentShift
	for i, s := range shiftCycle {
		if s == current {
			next := shiftCycle[(i+delta+len(shiftCycle))%len(shiftCycle)]
			m.states.Dispatch(context.Background(), service.UpdateShift{Shift: next})
			m.cursor = 0
			return
		}
	}
}

func (m *dashboardModel) View(styles Styles, width int) string {
	state := m.states.State()
	today := m.states.Today()
	schedule := m.schedule()
	completed := state.CompletedTasks[today]
	rate := service.CompletionRate(completed, schedule)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("LIVE: %s", state.CurrentShift)))
	sb.WriteString(styles.Subtitle.Render("  ←/→ switch shift"))
	sb.WriteString("\n\n")

	m.bar.Width = min(width-14, 48)
	sb.WriteString(styles.Badge.Render("READINESS "))
	sb.WriteString(m.bar.ViewAs(float64(rate) / 100))
	sb.WriteString(styles.Accent.Render(fmt.Sprintf(" %d%%", rate)))
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("  %d/%d ops", len(completed), len(schedule))))
	sb.WriteString("\n\n")

	if len(schedule) == 0 {
		sb.WriteString(styles.Dim.Render("Protocol reset. Sacred rest cycle initiated."))
		return sb.String()
	}

	done := make(map[int]bool, len(completed))
	for _, idx := range completed {
		done[idx] = true
	}
	for i, item := range schedule {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.Cursor.Render("> ")
		}
		clock := FormatClock(item.Time, state.Settings.TimeFormat)
		if done[i] {
			sb.WriteString(cursor + styles.Done.Render(fmt.Sprintf("[x] %s  %s", clock, item.Activity)))
		} else {
			sb.WriteString(cursor + fmt.Sprintf("[ ] %s  %s", clock, item.Activity))
			if item.Duration != "-" {
				sb.WriteString(styles.Dim.Render("  (" + item.Duration + ")"))
			}
		}
		sb.WriteString("\n")
		if i == m.cursor && !done[i] && item.Notes != "" {
			sb.WriteString(styles.Subtitle.Render("      " + item.Notes))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("space: toggle  ↑/↓: move"))
	return sb.String()
}
