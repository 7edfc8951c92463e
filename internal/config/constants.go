package config

import "time"

// Interval durations in seconds.
const (
	FocusSeconds      = 1500
	ShortBreakSeconds = 300
	LongBreakSeconds  = 600
)

// Timer cadence.
const (
	TickInterval = time.Second
)

// Completion signal.
const (
	BeepPulses      = 3
	BeepSpacing     = 500 * time.Millisecond
	BeepLength      = 150 * time.Millisecond
	BeepFrequencyHz = 880.0
	BeepSampleRate  = 44100
)

// Persisted keys. The names match the ones the browser widget used so an
// exported snapshot reads the same on either side.
const (
	KeyTimeLeft      = "pomodoroTimeLeft"
	KeyMode          = "pomodoroMode"
	KeyBgColor       = "pomodoroBgColor"
	KeyTextColor     = "pomodoroTextColor"
	KeyIsRunning     = "pomodoroIsRunning"
	KeyStartTime     = "pomodoroStartTime"
	KeyTotalDuration = "pomodoroTotalDuration"
)

// Database/application settings.
const (
	AppName        = "pomodoro"
	DBFileName     = "pomodoro.db"
	ConfigFileName = "config.yaml"
)
