package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type overwriteModel struct {
	path      string
	isDir     bool
	input     textinput.Model
	confirmed bool
	cancelled bool
	invalid   bool
	quitting  bool
}

func newOverwriteModel(path string, isDir bool) overwriteModel {
	ti := textinput.New()
	ti.Placeholder = "y/n"
	ti.Focus()
	ti.CharLimit = 3
	ti.Width = 8

	return overwriteModel{
		path:  path,
		isDir: isDir,
		input: ti,
	}
}

func (m overwriteModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m overwriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			answer, ok := ParseYesNo(m.input.Value())
			if !ok {
				m.invalid = true
				m.input.SetValue("")
				return m, nil
			}
			m.confirmed = answer
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m overwriteModel) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("228")).
		Bold(true)
	instructionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	what := "directory"
	if !m.isDir {
		what = "existing entry (not a directory)"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s Destination already exists", glyphWarn)))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Delete %s %s and clone again?", what, m.path)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.invalid {
		b.WriteString(instructionStyle.Render("please answer y or n"))
	} else {
		b.WriteString(instructionStyle.Render("y: delete and clone | n: cancel | esc: cancel"))
	}
	return b.String()
}

// RunOverwritePrompt asks whether the occupied destination may be deleted.
// The prompt renders on stderr so stdout stays clean for the path line.
func RunOverwritePrompt(path string, isDir bool) (bool, error) {
	p := tea.NewProgram(
		newOverwriteModel(path, isDir),
		tea.WithOutput(os.Stderr),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run overwrite prompt: %w", err)
	}

	final, ok := finalModel.(overwriteModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}

	if final.cancelled {
		return false, nil
	}
	return final.confirmed, nil
}

// ParseYesNo maps y/yes/n/no (any case) to a decision; the second result
// reports whether the input was one of those.
func ParseYesNo(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
