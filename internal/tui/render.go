package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Five-row block glyphs for the clock face.
var bigGlyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

func renderBigClock(text string) string {
	var rows [5]strings.Builder
	for i, r := range text {
		glyph, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString("  ")
			}
			// Cells are doubled horizontally to keep the digits square.
			for _, c := range glyph[row] {
				rows[row].WriteString(strings.Repeat(string(c), 2))
			}
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

func truncateLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(label) <= width {
		return label
	}
	return ansi.Truncate(label, width, config.TruncationSuffix)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	t := m.theme
	parts := []string{
		m.renderTabs(),
		"",
		t.Clock.Render(renderBigClock(FormatTimeRemaining(m.state.RemainingSeconds))),
		"",
		t.Base.Render(m.progress.ViewAs(m.state.Progress())),
		"",
		t.Base.Render(m.renderStatus()),
	}
	if m.settings.Open {
		parts = append(parts, "", m.renderSettings())
	}
	parts = append(parts, "", t.Dim.Render(truncateLabel(m.keys.HelpForView(m.viewMode()), m.width)))

	content := t.Base.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, mode := range models.Modes {
		style := m.theme.TabIdle
		if mode == m.state.Mode {
			style = m.theme.TabActive
		}
		if m.width < config.CompactModeThreshold {
			style = style.Padding(0, 1)
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus() string {
	status := fmt.Sprintf("%s · %s", FormatRunState(m.state), FormatSessionCount(m.todayFocus))
	if m.Message != "" {
		status = m.Message
	}
	width := config.MaxStatusWidth
	if m.width < width {
		width = m.width
	}
	return truncateLabel(status, width)
}

func (m Model) renderSettings() string {
	t := m.theme
	column := func(title string, palette []config.Swatch, cursor int, selected string, focused bool) string {
		var b strings.Builder
		header := t.Base.Render(title)
		if focused {
			header = t.Focused.Render(title)
		}
		b.WriteString(header + "\n")
		for i, s := range palette {
			prefix := "  "
			if i == cursor {
				prefix = "> "
			}
			label := s.Label
			if s.Key == selected {
				label += " *"
			}
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(s.Hex)).Render("  ")
			b.WriteString("\n" + t.Base.Render(prefix) + swatch + t.Base.Render(" "+label))
		}
		return b.String()
	}
	bg := column("Background", config.BackgroundPalette, m.settings.bgCursor, m.appearance.BgColor, m.settings.column == columnBackground)
	fg := column("Text", config.TextPalette, m.settings.textCursor, m.appearance.TextColor, m.settings.column == columnText)
	title := t.Base.Bold(true).Render("Colors") + t.Dim.Render("  v"+versionLabel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, bg, t.Base.Render("    "), fg)
	return t.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
