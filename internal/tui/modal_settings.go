package tui

import (
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	columnBackground = iota
	columnText
)

// SettingsModal is the color picker: one cursor per palette and the
// palette that currently has focus.
type SettingsModal struct {
	Open       bool
	column     int
	bgCursor   int
	textCursor int
}

func newSettingsModal(a models.Appearance) SettingsModal {
	return SettingsModal{
		bgCursor:   config.SwatchIndex(config.BackgroundPalette, a.BgColor),
		textCursor: config.SwatchIndex(config.TextPalette, a.TextColor),
	}
}

func (s SettingsModal) palette() []config.Swatch {
	if s.column == columnText {
		return config.TextPalette
	}
	return config.BackgroundPalette
}

func (s *SettingsModal) cursor() *int {
	if s.column == columnText {
		return &s.textCursor
	}
	return &s.bgCursor
}

func (m Model) handleOpenSettings(key string) (Model, tea.Cmd, bool) {
	m.settings = newSettingsModal(m.appearance)
	m.settings.Open = true
	return m, nil, true
}

func (m Model) handleCloseSettings(key string) (Model, tea.Cmd, bool) {
	m.settings.Open = false
	return m, nil, true
}

func (m Model) handleSettingsMove(key string) (Model, tea.Cmd, bool) {
	cur := m.settings.cursor()
	switch key {
	case "up", "k":
		if *cur > 0 {
			*cur--
		}
	case "down", "j":
		if *cur < len(m.settings.palette())-1 {
			*cur++
		}
	}
	return m, nil, true
}

func (m Model) handleSettingsColumn(key string) (Model, tea.Cmd, bool) {
	switch key {
	case "left", "h":
		m.settings.column = columnBackground
	case "right", "l":
		m.settings.column = columnText
	case "tab":
		m.settings.column = 1 - m.settings.column
	}
	return m, nil, true
}

func (m Model) handleSettingsApply(key string) (Model, tea.Cmd, bool) {
	swatch := m.settings.palette()[*m.settings.cursor()]
	next := m.appearance
	var err error
	if m.settings.column == columnText {
		err = m.engine.SetTextColor(swatch.Key)
		next.TextColor = swatch.Key
	} else {
		err = m.engine.SetBgColor(swatch.Key)
		next.BgColor = swatch.Key
	}
	if err != nil {
		m.setStatusError("Error updating colors", err)
		return m, nil, true
	}
	m.applyAppearance(next)
	return m, nil, true
}
