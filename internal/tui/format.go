package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining renders seconds as mm:ss.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatRunState returns a human-readable timer status.
func FormatRunState(s models.TimerState) string {
	switch {
	case s.Running:
		return "running"
	case s.Expired():
		return "done"
	case s.RemainingSeconds == s.Mode.Seconds():
		return "ready"
	default:
		return "paused"
	}
}

// StatusLine is the one-line summary printed when no terminal is attached.
func StatusLine(s models.TimerState) string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("%s %s %s", s.Mode, FormatTimeRemaining(s.RemainingSeconds), state)
}

// FormatSessionCount formats the completed focus count for the footer.
func FormatSessionCount(n int) string {
	switch n {
	case 0:
		return "No focus sessions yet today"
	case 1:
		return "1 focus session today"
	default:
		return fmt.Sprintf("%d focus sessions today", n)
	}
}
