package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/service"
)

type tab int

const (
	tabDashboard tab = iota
	tabShifts
	tabTrain
	tabTrack
	tabLibrary
	tabCount
)

var tabLabels = []string{"1 LIVE", "2 SHIFTS", "3 TRAIN", "4 TRACK", "5 LIBRARY"}

// restTickMsg is the 1 Hz heartbeat of the rest countdown. Exactly one tick
// chain runs while the countdown is armed; the chain dies when it hits zero
// or the session ends.
type restTickMsg time.Time

func restTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return restTickMsg(t)
	})
}

// Model is the root program model. It owns tab routing, the settings overlay
// and the rest countdown; each tab is its own page model.
type Model struct {
	states   service.StateServiceI
	training service.TrainingServiceI

	styles    Styles
	intensity int
	width     int
	height    int

	active       tab
	showSettings bool
	resting      bool

	dashboard dashboardModel
	shifts    shiftsModel
	train     trainingModel
	track     captureModel
	library   libraryModel
	settings  settingsModel
}

// NewModel wires the page models to the services. The export closure writes
// the raw snapshot somewhere and reports the path.
func NewModel(
	states service.StateServiceI,
	capture service.CaptureServiceI,
	training service.TrainingServiceI,
	export func() (string, error),
) Model {
	intensity := states.State().Settings.ThemeIntensity
	styles := NewStyles(intensity)
	return Model{
		states:    states,
		training:  training,
		styles:    styles,
		intensity: intensity,
		width:     80,
		height:    24,
		dashboard: newDashboardModel(states),
		shifts:    newShiftsModel(states),
		train:     newTrainingModel(training),
		track:     newCaptureModel(capture),
		library:   newLibraryModel(styles),
		settings:  newSettingsModel(states, export),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.library.resize(m.width, m.height, m.styles)
		return m, nil
	case restTickMsg:
		if m.training.TickRest() > 0 && m.training.Active() {
			return m, restTick()
		}
		m.resting = false
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showSettings {
		if msg.String() == "esc" {
			m.showSettings = false
			return m, nil
		}
		cmd := m.settings.Update(msg)
		m.refreshStyles()
		return m, cmd
	}

	if !m.pageEditing() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "s":
			m.settings.status = ""
			m.showSettings = true
			return m, nil
		case "1", "2", "3", "4", "5":
			m.switchTab(tab(msg.String()[0] - '1'))
			return m, nil
		case "tab":
			m.switchTab((m.active + 1) % tabCount)
			return m, nil
		case "shift+tab":
			m.switchTab((m.active + tabCount - 1) % tabCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case tabDashboard:
		cmd = m.dashboard.Update(msg)
	case tabShifts:
		cmd = m.shifts.Update(msg)
	case tabTrain:
		cmd = m.train.Update(msg)
	case tabTrack:
		cmd = m.track.Update(msg)
	case tabLibrary:
		cmd = m.library.Update(msg)
	}
	m.refreshStyles()

	cmds := []tea.Cmd{cmd}
	if tick := m.armRest(); tick != nil {
		cmds = append(cmds, tick)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) pageEditing() bool {
	switch m.active {
	case tabTrain:
		return m.train.Editing()
	case tabTrack:
		return m.track.Editing()
	}
	return false
}

func (m *Model) switchTab(to tab) {
	if to == m.active {
		return
	}
	if m.active == tabTrack {
		m.track.leave()
	}
	m.active = to
	if to == tabTrack {
		m.track.ensure()
	}
}

// armRest starts the tick chain when a page action armed the countdown and no
// chain is running yet.
func (m *Model) armRest() tea.Cmd {
	if m.resting || m.training.RestRemaining() <= 0 {
		return nil
	}
	m.resting = true
	return restTick()
}

// refreshStyles rebuilds the style set when the glow setting changed.
func (m *Model) refreshStyles() {
	intensity := m.states.State().Settings.ThemeIntensity
	if intensity == m.intensity {
		return
	}
	m.intensity = intensity
	m.styles = NewStyles(intensity)
	m.library.refresh(m.styles)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")
	if m.showSettings {
		sb.WriteString(m.settings.View(m.styles, m.width))
	} else {
		switch m.active {
		case tabDashboard:
			sb.WriteString(m.dashboard.View(m.styles, m.width))
		case tabShifts:
			sb.WriteString(m.shifts.View(m.styles, m.width))
		case tabTrain:
			sb.WriteString(m.train.View(m.styles, m.width))
		case tabTrack:
			sb.WriteString(m.track.View(m.styles, m.width))
		case tabLibrary:
			sb.WriteString(m.library.View(m.styles, m.width))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("s: settings  q: quit"))
	return sb.String()
}

func (m Model) viewTabs() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("SHIFT PROTOCOL"))
	sb.WriteString("  ")
	for i, label := range tabLabels {
		if tab(i) == m.active {
			sb.WriteString(m.styles.ActiveTab.Render(label))
		} else {
			sb.WriteString(m.styles.Tab.Render(label))
		}
	}
	return sb.String()
}
