package util

import (
	"strconv"
	"strings"
)

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}


// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ParseStoredInt reads an integer written as a plain or JSON-quoted number.
// Fractional values are truncated.
func ParseStoredInt(raw string) (int64, bool) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != f || f > 1e15 || f < -1e15 {
		return 0, false
	}
	return int64(f), true
}

// ParseStoredBool reads "true"/"false" (optionally quoted); anything else is false.
func ParseStoredBool(raw string) bool {
	v, err := strconv.ParseBool(strings.Trim(strings.TrimSpace(raw), `"`))
	return err == nil && v
}
