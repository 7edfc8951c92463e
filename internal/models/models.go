package models

import (
	"strings"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
)

// Mode enumerates the three fixed-length timer phases.
type Mode string

const (
	ModeFocus      Mode = "FOCUS"
	ModeShortBreak Mode = "SHORT_BREAK"
	ModeLongBreak  Mode = "LONG_BREAK"
)

// Modes lists the phases in the order they are shown.
var Modes = []Mode{ModeShortBreak, ModeFocus, ModeLongBreak}

// ParseMode accepts a stored mode name, with or without JSON quotes.
func ParseMode(raw string) (Mode, bool) {
	m := Mode(strings.Trim(strings.TrimSpace(raw), `"`))
	if !m.Valid() {
		return "", false
	}
	return m, true
}

func (m Mode) Valid() bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Seconds returns the configured length of the phase.
func (m Mode) Seconds() int {
	switch m {
	case ModeShortBreak:
		return config.ShortBreakSeconds
	case ModeLongBreak:
		return config.LongBreakSeconds
	default:
		return config.FocusSeconds
	}
}

func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	case ModeFocus:
		return "Focus"
	}
	return string(m)
}

// TimerState is the engine's full state. StartEpochMillis and
// TotalDurationSeconds are set exactly when Running is true.
type TimerState struct {
	Mode                 Mode
	RemainingSeconds     int
	Running              bool
	StartEpochMillis     *int64
	TotalDurationSeconds *int
}

// Idle returns a stopped state holding the full duration of mode.
func Idle(mode Mode) TimerState {
	return TimerState{Mode: mode, RemainingSeconds: mode.Seconds()}
}

// Anchored reports whether both wall-clock anchors are present.
func (s TimerState) Anchored() bool {
	return s.StartEpochMillis != nil && s.TotalDurationSeconds != nil
}

// Expired reports a stopped state with no time left.
func (s TimerState) Expired() bool {
	return !s.Running && s.RemainingSeconds == 0
}

// Progress returns the fraction of the current interval already spent.
func (s TimerState) Progress() float64 {
	total := s.Mode.Seconds()
	if total <= 0 {
		return 0
	}
	done := float64(total-s.RemainingSeconds) / float64(total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

// Snapshot is what survives a restart. Nil fields were absent or unreadable.
type Snapshot struct {
	Mode                 Mode
	RemainingSeconds     *int
	Running              bool
	StartEpochMillis     *int64
	TotalDurationSeconds *int
}

// Appearance holds the chosen palette keys.
type Appearance struct {
	BgColor   string
	TextColor string
}

// DefaultAppearance returns the default color pair.
func DefaultAppearance() Appearance {
	return Appearance{BgColor: config.DefaultBgColor, TextColor: config.DefaultTextColor}
}

// Session records one interval that ran to completion.
type Session struct {
	ID              string
	Mode            Mode
	DurationSeconds int
	StartedAt       time.Time
	CompletedAt     time.Time
}
