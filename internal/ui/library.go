package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manojv472/Shift-protocol/internal/content"
)

// libraryModel scrolls the static protocol reference text.
type libraryModel struct {
	view viewport.Model
}

func newLibraryModel(styles Styles) libraryModel {
	view := viewport.New(80, 20)
	view.SetContent(renderLibrary(styles))
	return libraryModel{view: view}
}

// resize fits the viewport to the window and re-renders the catalog text.
func (m *libraryModel) resize(width, height int, styles Styles) {
	m.view.Width = width
	m.view.Height = max(height-6, 5)
	m.view.SetContent(renderLibrary(styles))
}

func (m *libraryModel) refresh(styles Styles) {
	m.view.SetContent(renderLibrary(styles))
}

func (m *libraryModel) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return cmd
}

func (m *libraryModel) View(styles Styles, _ int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("PROTOCOL LIBRARY"))
	sb.WriteString("\n\n")
	sb.WriteString(m.view.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("↑/↓: scroll"))
	return sb.String()
}

// renderLibrary styles the catalog's lightweight markup: "###" headings and
// "*" bullets.
func renderLibrary(styles Styles) string {
	var sb strings.Builder
	for _, section := range content.LibrarySections() {
		sb.WriteString(styles.Badge.Render(section.Title))
		sb.WriteString("\n")
		for _, line := range strings.Split(strings.TrimSpace(section.Content), "\n") {
			switch {
			case strings.HasPrefix(line, "### "):
				sb.WriteString(styles.Accent.Render(strings.TrimPrefix(line, "### ")))
			case strings.HasPrefix(line, "* "):
				sb.WriteString(styles.Cyan.Render("• ") + strings.TrimPrefix(line, "* "))
			default:
				sb.WriteString(line)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
