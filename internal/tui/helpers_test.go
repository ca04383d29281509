package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/cantieri/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

const testDate = "2025-03-10"

func testNow() time.Time {
	return time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, st *store.Store, p Persister) MainModel {
	t.Helper()
	if st == nil {
		st = store.New()
	}
	return NewMainModel(context.Background(), st, p, Options{ReportsDir: t.TempDir(), Now: testNow})
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func send(t *testing.T, m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(MainModel)
	if !ok {
		t.Fatalf("Update returned %T, want MainModel", next)
	}
	return out, cmd
}

// press sends keys in order and returns the command of the last one.
func press(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = send(t, m, keyMsg(k))
	}
	return m, cmd
}

// typeText fills the focused text input.
func typeText(t *testing.T, m MainModel, text string) MainModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	if got := m.input.Value(); got != text {
		t.Fatalf("input value = %q, want %q", got, text)
	}
	return m
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m MainModel, cmd tea.Cmd) MainModel {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	m, _ = send(t, m, cmd())
	return m
}
