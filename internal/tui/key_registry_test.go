package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpForView(t *testing.T) {
	r := defaultKeyRegistry()
	timerHelp := r.HelpForView(ViewTimer)
	if !strings.HasPrefix(timerHelp, "[space]start/pause") {
		t.Fatalf("expected toggle first, got %q", timerHelp)
	}
	if strings.Contains(timerHelp, "[s]") || strings.Contains(timerHelp, "[enter]") {
		t.Fatalf("unexpected binding in timer help: %q", timerHelp)
	}
	settingsHelp := r.HelpForView(ViewSettings)
	for _, want := range []string{"[↑/↓]select", "[enter]apply", "[esc]close"} {
		if !strings.Contains(settingsHelp, want) {
			t.Fatalf("expected %q in %q", want, settingsHelp)
		}
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	handler := func(name string, handled bool) KeyHandler {
		return func(m Model, key string) (Model, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, handled
		}
	}
	r.Register(KeyBinding{Key: "x", Handler: handler("low", true), Priority: 1})
	r.Register(KeyBinding{Key: "x", Handler: handler("high", false), Priority: 5})

	_, _, handled := r.Handle(Model{}, "x")
	if !handled {
		t.Fatalf("expected key handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, handled := r.Handle(Model{}, "y"); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestBindingAppliesToView(t *testing.T) {
	b := KeyBinding{ViewModes: []int{ViewSettings}}
	if b.AppliesToView(ViewTimer) || !b.AppliesToView(ViewSettings) {
		t.Fatalf("view filtering broken")
	}
	if !(KeyBinding{}).AppliesToView(ViewTimer) {
		t.Fatalf("binding without views applies everywhere")
	}
}
