package tui

import (
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is the periodic countdown tick. Gen identifies the run that
// scheduled it; ticks from a stopped run are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}
