package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/cantieri/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryRespectsTabs(t *testing.T) {
	r := NewHandlerRegistry()
	calls := ""
	r.Register(KeyBinding{Key: "a", Tabs: []int{config.TabSites}, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		calls += "sites"
		return m, nil, true
	}})
	m := newTestModel(t, nil, nil)
	if _, _, handled := r.Handle(m, "a"); handled {
		t.Fatalf("binding should not apply to the program tab")
	}
	m.tab = config.TabSites
	if _, _, handled := r.Handle(m, "a"); !handled || calls != "sites" {
		t.Fatalf("expected sites handler, handled=%v calls=%q", handled, calls)
	}
}

func TestHandlerRegistryPriorityAndFallthrough(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	r.Register(KeyBinding{Key: "x", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		order = append(order, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "x", Priority: 10, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		order = append(order, "high")
		return m, nil, false
	}})
	m := newTestModel(t, nil, nil)
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected low priority handler to take the key")
	}
	if strings.Join(order, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", order)
	}
}

func TestHelpForTab(t *testing.T) {
	r := defaultRegistry()
	program := r.HelpForTab(config.TabProgram)
	if !strings.HasPrefix(program, "[[]Giorno prec.") {
		t.Fatalf("tab-specific bindings should come first: %q", program)
	}
	if !strings.Contains(program, "[a]Nuovo lavoro") || strings.Contains(program, "Importa") {
		t.Fatalf("unexpected program help: %q", program)
	}
	if !strings.Contains(program, "[q]Esci") {
		t.Fatalf("expected global bindings in help: %q", program)
	}
	personnel := r.HelpForTab(config.TabPersonnel)
	for _, want := range []string{"[a]Aggiungi", "[i]Importa", "[o]Esporta"} {
		if !strings.Contains(personnel, want) {
			t.Fatalf("expected %q in personnel help: %q", want, personnel)
		}
	}
	if strings.Contains(personnel, "Assegna") {
		t.Fatalf("job bindings leaked into personnel help: %q", personnel)
	}
}

func TestGetBindingsForTab(t *testing.T) {
	r := defaultRegistry()
	for _, b := range r.GetBindingsForTab(config.TabFleet) {
		if !b.AppliesToTab(config.TabFleet) {
			t.Fatalf("binding %q does not apply to fleet", b.Key)
		}
		if b.Key == "[" {
			t.Fatalf("program binding returned for fleet")
		}
	}
}
