package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/content"
	"github.com/manojv472/Shift-protocol/internal/service"
)

type editField int

const (
	editNone editField = iota
	editWeight
	editReps
)

// trainingModel drives the training tab: a workout list while idle, the set
// grid of the active session otherwise. The shared rest countdown renders
// whenever it is armed.
type trainingModel struct {
	training service.TrainingServiceI

	cursor           int
	showWarmup       bool
	showConditioning bool

	exercise int
	set      int
	editing  editField
	input    textinput.Model
}

func newTrainingModel(training service.TrainingServiceI) trainingModel {
	input := textinput.New()
	input.CharLimit = 6
	input.Width = 8
	return trainingModel{training: training, input: input}
}

func (m *trainingModel) Editing() bool {
	return m.editing != editNone
}

func (m *trainingModel) Update(msg tea.KeyMsg) tea.Cmd {
	if m.editing != editNone {
		return m.updateEdit(msg)
	}
	if !m.training.Active() {
		m.updateList(msg)
		return nil
	}
	m.updateSession(msg)
	return nil
}

func (m *trainingModel) updateList(msg tea.KeyMsg) {
	workouts := content.Workouts()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(workouts)-1 {
			m.cursor++
		}
	case "w":
		m.showWarmup = !m.showWarmup
		m.showConditioning = false
	case "c":
		m.showConditioning = !m.showConditioning
		m.showWarmup = false
	case "enter", " ":
		if err := m.training.Start(workouts[m.cursor].ID); err == nil {
			m.exercise, m.set = 0, 0
			m.showWarmup = false
			m.showConditioning = false
		}
	}
}

func (m *trainingModel) updateSession(msg tea.KeyMsg) {
	session := m.training.Session()
	switch msg.String() {
	case "up", "k":
		m.moveSet(-1, session)
	case "down", "j":
		m.moveSet(1, session)
	case " ":
		m.training.ToggleSetCompletion(m.exercise, m.set)
	case "e":
		m.startEdit(editWeight, session)
	case "r":
		m.startEdit(editReps, session)
	case "f":
		m.training.Finish(context.Background())
	case "c":
		m.training.Cancel()
	}
}

// moveSet walks the flattened set grid across exercise boundaries.
func (m *trainingModel) moveSet(delta int, session *service.TrainingSession) {
	set := m.set + delta
	exercise := m.exercise
	for {
		if set < 0 {
			exercise--
			if exercise < 0 {
				return
			}
			set = len(session.Progress[exercise].Sets) - 1
			continue
		}
		if set >= len(session.Progress[exercise].Sets) {
			exercise++
			if exercise >= len(session.Progress) {
				return
			}
			set = 0
			continue
		}
		break
	}
	m.exercise, m.set = exercise, set
}

func (m *trainingModel) startEdit(field editField, session *service.TrainingSession) {
	entry := session.Progress[m.exercise].Sets[m.set]
	m.editing = field
	if field == editWeight {
		m.input.SetValue(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", entry.Weight), "0"), "."))
	} else {
		m.input.SetValue(fmt.Sprintf("%d", entry.Reps))
	}
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *trainingModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		if m.editing == editWeight {
			m.training.UpdateSetWeight(m.exercise, m.set, parseFloatField(value))
		} else {
			m.training.UpdateSetReps(m.exercise, m.set, parseIntField(value))
		}
		m.editing = editNone
		m.input.Blur()
		return nil
	case "esc":
		m.editing = editNone
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *trainingModel) View(styles Styles, width int) string {
	if !m.training.Active() {
		return m.viewList(styles)
	}
	return m.viewSession(styles, width)
}

func (m *trainingModel) viewList(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("TRAINING PROTOCOLS"))
	sb.WriteString("\n\n")
	for i, workout := range content.Workouts() {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.Cursor.Render("> ")
		}
		sb.WriteString(cursor + styles.Accent.Render(workout.Name))
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("    " + workout.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if m.showWarmup {
		var card strings.Builder
		card.WriteString(styles.Badge.Render("WARM-UP"))
		for i, step := range content.WarmupSteps() {
			card.WriteString("\n" + styles.Accent.Render(fmt.Sprintf("%d. ", i+1)) + step)
		}
		sb.WriteString(styles.Card.Render(card.String()))
		sb.WriteString("\n")
	}
	if m.showConditioning {
		var card strings.Builder
		card.WriteString(styles.Badge.Render("CONDITIONING"))
		card.WriteString("\n" + styles.Subtitle.Render(content.ConditioningNote))
		for _, block := range content.ConditioningBlocks() {
			card.WriteString("\n" + styles.Danger.Render(block.Name) + styles.Subtitle.Render("  "+block.Prescription))
		}
		sb.WriteString(styles.Card.Render(card.String()))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter: start  w: warm-up  c: conditioning  ↑/↓: move"))
	return sb.String()
}

func (m *trainingModel) viewSession(styles Styles, width int) string {
	session := m.training.Session()
	workout, ok := content.Workout(session.WorkoutID)
	if !ok {
		return styles.Danger.Render("unknown workout: " + session.WorkoutID)
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("ACTIVE: " + workout.Name))
	sb.WriteString("\n")
	if rest := m.training.RestRemaining(); rest > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Countdown.Render("REST " + FormatCountdown(rest)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for i, progress := range session.Progress {
		ex := workout.Exercises[i]
		sb.WriteString(styles.Accent.Render(ex.Name))
		sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("  %s reps · RPE %s · rest %s", ex.Reps, ex.RPE, ex.Rest)))
		sb.WriteString("\n")
		for j, set := range progress.Sets {
			cursor := "  "
			if i == m.exercise && j == m.set {
				cursor = styles.Cursor.Render("> ")
			}
			check := "[ ]"
			if set.Completed {
				check = styles.Accent.Render("[x]")
			}
			line := fmt.Sprintf("%s%s set %d  %gkg x %d", cursor, check, j+1, set.Weight, set.Reps)
			if i == m.exercise && j == m.set && m.editing != editNone {
				label := "weight"
				if m.editing == editReps {
					label = "reps"
				}
				line += "  " + styles.Badge.Render(label+":") + " " + m.input.View()
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("space: done  e: weight  r: reps  f: finish  c: cancel"))
	return sb.String()
}
