package tui

import (
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.state.Running {
		return m, nil
	}
	next, err := m.engine.Tick(m.state)
	if err == nil && next.Running && next.RemainingSeconds == 0 {
		next, err = m.engine.Expire(next)
	}
	if err != nil {
		m.setStatusError("Error saving timer", err)
	}
	m.state = next
	if next.Running {
		return m, tickCmd(m.tickGen)
	}
	m.tickGen++
	if next.Expired() {
		if m.err == nil {
			m.Message = completionMessage(next.Mode)
		}
		m.refreshStats()
	}
	return m, nil
}

// apply installs the result of an engine operation. Any transition out
// of running invalidates the pending tick; a transition into running
// schedules a fresh one.
func (m Model) apply(next models.TimerState, err error, context string) (Model, tea.Cmd, bool) {
	wasRunning := m.state.Running
	m.state = next
	if err != nil {
		m.setStatusError(context, err)
	}
	m.tickGen++
	if next.Running && !wasRunning {
		return m, tickCmd(m.tickGen), true
	}
	if wasRunning && next.Expired() {
		if err == nil {
			m.Message = completionMessage(next.Mode)
		}
		m.refreshStats()
	}
	return m, nil, true
}

func (m Model) handleQuit(key string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func (m Model) handleToggle(key string) (Model, tea.Cmd, bool) {
	next, err := m.engine.Toggle(m.state)
	return m.apply(next, err, "Error saving timer")
}

func (m Model) handleReset(key string) (Model, tea.Cmd, bool) {
	next, err := m.engine.Reset(m.state)
	return m.apply(next, err, "Error resetting timer")
}

func (m Model) handleSelectMode(key string) (Model, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(models.Modes) {
		return m, nil, false
	}
	return m.switchMode(models.Modes[idx])
}

func (m Model) handleCycleMode(key string) (Model, tea.Cmd, bool) {
	idx := 0
	for i, mode := range models.Modes {
		if mode == m.state.Mode {
			idx = (i + 1) % len(models.Modes)
			break
		}
	}
	return m.switchMode(models.Modes[idx])
}

func (m Model) switchMode(mode models.Mode) (Model, tea.Cmd, bool) {
	next, err := m.engine.SwitchMode(m.state, mode)
	return m.apply(next, err, "Error switching mode")
}

func (m Model) handleExportReport(key string) (Model, tea.Cmd, bool) {
	if m.history == nil {
		m.Message = "No session history available"
		return m, nil, true
	}
	path, err := GeneratePDFReport(m.ctx, m.history, m.now(), m.reportsDir)
	if err != nil {
		m.setStatusError("Error exporting report", err)
		return m, nil, true
	}
	m.Message = "Report saved to " + path
	return m, nil, true
}
