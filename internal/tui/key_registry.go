package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// View contexts a binding can apply to.
const (
	ViewTimer = iota
	ViewSettings
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string // shown in help instead of Key when set
	Handler     KeyHandler
	Description string
	ViewModes   []int
	Priority    int
}

func (b KeyBinding) AppliesToView(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToView(m.viewMode()) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForView(mode int) string {
	bindings := r.GetBindingsForView(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		label := b.Key
		if b.Label != "" {
			label = b.Label
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	timer := []int{ViewTimer}
	settings := []int{ViewSettings}

	r.Register(KeyBinding{Key: "ctrl+c", Handler: Model.handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: Model.handleQuit, Description: "quit", ViewModes: timer, Priority: 10})

	r.Register(KeyBinding{Key: " ", Label: "space", Handler: Model.handleToggle, Description: "start/pause", ViewModes: timer, Priority: 50})
	r.Register(KeyBinding{Key: "s", Handler: Model.handleToggle, ViewModes: timer, Priority: 50})
	r.Register(KeyBinding{Key: "r", Handler: Model.handleReset, Description: "reset", ViewModes: timer, Priority: 40})
	r.Register(KeyBinding{Key: "1", Label: "1-3", Handler: Model.handleSelectMode, Description: "mode", ViewModes: timer, Priority: 30})
	r.Register(KeyBinding{Key: "2", Handler: Model.handleSelectMode, ViewModes: timer, Priority: 30})
	r.Register(KeyBinding{Key: "3", Handler: Model.handleSelectMode, ViewModes: timer, Priority: 30})
	r.Register(KeyBinding{Key: "tab", Handler: Model.handleCycleMode, Description: "next mode", ViewModes: timer, Priority: 30})
	r.Register(KeyBinding{Key: "o", Handler: Model.handleOpenSettings, Description: "colors", ViewModes: timer, Priority: 20})
	r.Register(KeyBinding{Key: "e", Handler: Model.handleExportReport, Description: "report", ViewModes: timer, Priority: 20})

	r.Register(KeyBinding{Key: "up", Label: "↑/↓", Handler: Model.handleSettingsMove, Description: "select", ViewModes: settings, Priority: 50})
	r.Register(KeyBinding{Key: "k", Handler: Model.handleSettingsMove, ViewModes: settings, Priority: 50})
	r.Register(KeyBinding{Key: "down", Handler: Model.handleSettingsMove, ViewModes: settings, Priority: 50})
	r.Register(KeyBinding{Key: "j", Handler: Model.handleSettingsMove, ViewModes: settings, Priority: 50})
	r.Register(KeyBinding{Key: "left", Label: "←/→", Handler: Model.handleSettingsColumn, Description: "palette", ViewModes: settings, Priority: 40})
	r.Register(KeyBinding{Key: "right", Handler: Model.handleSettingsColumn, ViewModes: settings, Priority: 40})
	r.Register(KeyBinding{Key: "h", Handler: Model.handleSettingsColumn, ViewModes: settings, Priority: 40})
	r.Register(KeyBinding{Key: "l", Handler: Model.handleSettingsColumn, ViewModes: settings, Priority: 40})
	r.Register(KeyBinding{Key: "tab", Handler: Model.handleSettingsColumn, ViewModes: settings, Priority: 40})
	r.Register(KeyBinding{Key: "enter", Handler: Model.handleSettingsApply, Description: "apply", ViewModes: settings, Priority: 30})
	r.Register(KeyBinding{Key: "esc", Handler: Model.handleCloseSettings, Description: "close", ViewModes: settings, Priority: 20})
	r.Register(KeyBinding{Key: "o", Handler: Model.handleCloseSettings, ViewModes: settings, Priority: 20})
	return r
}
