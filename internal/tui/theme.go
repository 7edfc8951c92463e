package tui

import (
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Base       lipgloss.Style
	Clock      lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Dim        lipgloss.Style
	Focused    lipgloss.Style
	Modal      lipgloss.Style
}

// ResolveTheme builds the styles for a color pair. Unknown keys use the
// default swatches.
func ResolveTheme(a models.Appearance) Theme {
	bgSwatch, ok := config.LookupSwatch(config.BackgroundPalette, a.BgColor)
	if !ok {
		bgSwatch, _ = config.LookupSwatch(config.BackgroundPalette, config.DefaultBgColor)
	}
	textSwatch, ok := config.LookupSwatch(config.TextPalette, a.TextColor)
	if !ok {
		textSwatch, _ = config.LookupSwatch(config.TextPalette, config.DefaultTextColor)
	}
	bg, fg := lipgloss.Color(bgSwatch.Hex), lipgloss.Color(textSwatch.Hex)
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Theme{
		Background: bg,
		Text:       fg,
		Base:       base,
		Clock:      base.Bold(true),
		TabActive:  lipgloss.NewStyle().Foreground(bg).Background(fg).Bold(true).Padding(0, 2),
		TabIdle:    base.Padding(0, 2),
		Dim:        base.Faint(true),
		Focused:    base.Bold(true).Underline(true),
		Modal: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fg).
			BorderBackground(bg).
			Padding(0, 1),
	}
}
