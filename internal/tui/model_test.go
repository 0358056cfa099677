package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev/internal/history"
	"github.com/Zachkp/zach-dev/internal/terminal"
)

func newTestModel() Model {
	effects := NewEffects("https://example.com")
	interp := terminal.New(effects, terminal.Profile{
		Name:   "Test",
		Whoami: "Test — developer.",
		Files: map[string]string{
			"about.txt": "about content",
		},
	})
	hist := history.Load(nil, "h", history.DefaultMax)
	return New(interp, hist, effects)
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func TestSubmitAppendsToTranscript(t *testing.T) {
	m := newTestModel()

	m = typeLine(t, m, "whoami")
	m, _ = pressKey(t, m, tea.KeyEnter)

	transcript := strings.Join(m.Transcript(), "\n")
	assert.Contains(t, transcript, "whoami")
	assert.Contains(t, transcript, "Test — developer.")
	assert.Equal(t, "", m.InputValue(), "input resets after submit")
}

func TestHistoryRecallKeys(t *testing.T) {
	m := newTestModel()

	m = typeLine(t, m, "whoami")
	m, _ = pressKey(t, m, tea.KeyEnter)
	m = typeLine(t, m, "ls")
	m, _ = pressKey(t, m, tea.KeyEnter)

	m, _ = pressKey(t, m, tea.KeyUp)
	assert.Equal(t, "ls", m.InputValue())

	m, _ = pressKey(t, m, tea.KeyUp)
	assert.Equal(t, "whoami", m.InputValue())

	m, _ = pressKey(t, m, tea.KeyDown)
	assert.Equal(t, "ls", m.InputValue())

	m, _ = pressKey(t, m, tea.KeyDown)
	assert.Equal(t, "", m.InputValue(), "past newest returns to blank input")
}

func TestClearCommandWipesTranscript(t *testing.T) {
	m := newTestModel()

	m = typeLine(t, m, "whoami")
	m, _ = pressKey(t, m, tea.KeyEnter)
	require.NotEmpty(t, m.Transcript())

	m = typeLine(t, m, "clear")
	m, _ = pressKey(t, m, tea.KeyEnter)
	assert.Empty(t, m.Transcript())
}

func TestExitCommandQuits(t *testing.T) {
	m := newTestModel()

	m = typeLine(t, m, "exit")
	_, cmd := pressKey(t, m, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuitShorthandQuits(t *testing.T) {
	m := newTestModel()

	m = typeLine(t, m, ":q")
	_, cmd := pressKey(t, m, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBlankSubmitRendersPromptOnly(t *testing.T) {
	m := newTestModel()
	before := len(m.Transcript())

	m, _ = pressKey(t, m, tea.KeyEnter)

	assert.Equal(t, before+1, len(m.Transcript()), "just an empty prompt line")
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := pressKey(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
