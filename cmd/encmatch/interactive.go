package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/objc-abi/encoding"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	encStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input   textinput.Model
	matched map[string]bool
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "{CGPoint=dd}"
	ti.Prompt = "encoding> "
	ti.Focus()

	return &interactiveModel{
		input:   ti,
		matched: map[string]bool{},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.rematch()
	return m, cmd
}

func (m *interactiveModel) rematch() {
	s := m.input.Value()
	for name := range m.matched {
		delete(m.matched, name)
	}
	if s == "" {
		return
	}
	for _, e := range catalog {
		if encoding.Matches(s, e.enc) {
			m.matched[e.name] = true
		}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("encmatch"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	s := m.input.Value()
	if s != "" && len(m.matched) == 0 {
		b.WriteString(missStyle.Render("no known type shape"))
		b.WriteString("\n\n")
	}

	for _, e := range catalog {
		enc := encoding.String(e.enc)
		var line string
		if m.matched[e.name] {
			line = matchStyle.Render(fmt.Sprintf("%-20s %s", e.name, enc))
		} else {
			line = nameStyle.Render(fmt.Sprintf("%-20s", e.name)) + " " + encStyle.Render(enc)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type an encoding string · esc to quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	if !isTTY() {
		return fmt.Errorf("interactive mode needs a terminal")
	}

	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
