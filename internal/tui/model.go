// Package tui runs the portfolio terminal in a real terminal: the same
// interpreter the web widget uses, fronted by a Bubble Tea input loop with
// persisted up/down history recall.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/zach-dev/internal/history"
	"github.com/Zachkp/zach-dev/internal/terminal"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	listStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const promptPrefix = "visitor@zach-dev:~$ "

// Model is the Bubble Tea model for the terminal session.
type Model struct {
	input   textinput.Model
	interp  *terminal.Interpreter
	hist    *history.List
	effects *Effects
	lines   []string
	width   int
	height  int
	quit    bool
}

// New wires a session model. The interpreter must have been built with the
// Effects returned by NewEffects so clear/close reach this model.
func New(interp *terminal.Interpreter, hist *history.List, effects *Effects) Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(promptPrefix)
	input.CharLimit = 0
	input.Focus()

	return Model{
		input:   input,
		interp:  interp,
		hist:    hist,
		effects: effects,
		lines: []string{
			mutedStyle.Render("Welcome! Type 'help' to see what this terminal can do."),
			"",
		},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quit = true
			return m, tea.Quit
		case tea.KeyUp:
			if recalled := m.hist.Previous(); recalled != "" {
				m.input.SetValue(recalled)
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyDown:
			m.input.SetValue(m.hist.Next())
			m.input.CursorEnd()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > len(promptPrefix)+4 {
			m.input.Width = m.width - len(promptPrefix) - 4
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	res := m.interp.Execute(line)
	if res == nil {
		m.lines = append(m.lines, promptStyle.Render(promptPrefix))
		return m, nil
	}
	m.hist.Add(line)

	m.lines = append(m.lines, promptStyle.Render(promptPrefix)+strings.TrimSpace(line))
	if res.Text != "" {
		m.lines = append(m.lines, renderResult(res), "")
	}

	if m.effects.takeClear() {
		m.lines = nil
	}
	if m.effects.takeClose() {
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quit {
		return ""
	}
	lines := m.lines
	if m.height > 0 {
		visible := m.height - 2
		if visible < 0 {
			visible = 0
		}
		if len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	return b.String()
}

// Transcript returns the rendered scrollback, newest last.
func (m Model) Transcript() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// InputValue exposes the current input line.
func (m Model) InputValue() string {
	return m.input.Value()
}

func renderResult(res *terminal.Result) string {
	switch res.Kind {
	case terminal.KindError:
		return errorStyle.Render(res.Text)
	case terminal.KindSuccess:
		return successStyle.Render(res.Text)
	case terminal.KindList:
		return listStyle.Render(res.Text)
	case terminal.KindHelp:
		return helpStyle.Render(res.Text)
	default:
		return res.Text
	}
}

// Run starts the interactive session and blocks until it exits.
func Run(interp *terminal.Interpreter, hist *history.List, effects *Effects) error {
	_, err := tea.NewProgram(New(interp, hist, effects), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("terminal session: %w", err)
	}
	return nil
}
