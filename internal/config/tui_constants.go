package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the interval progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest progress bar rendered.
	MinProgressWidth = 10

	// CompactModeThreshold drops the mode tabs' padding below this width.
	CompactModeThreshold = 50

	// MaxStatusWidth caps the status line before truncation.
	MaxStatusWidth = 60

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
