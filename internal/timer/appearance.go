package timer

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
)

// Appearance returns the stored color pair; unknown keys fall back to
// the defaults individually.
func (e *Engine) Appearance() models.Appearance {
	a := models.DefaultAppearance()
	if key, ok := e.storedKey(config.KeyBgColor); ok {
		if _, known := config.LookupSwatch(config.BackgroundPalette, key); known {
			a.BgColor = key
		}
	}
	if key, ok := e.storedKey(config.KeyTextColor); ok {
		if _, known := config.LookupSwatch(config.TextPalette, key); known {
			a.TextColor = key
		}
	}
	return a
}

func (e *Engine) SetBgColor(key string) error {
	if _, ok := config.LookupSwatch(config.BackgroundPalette, key); !ok {
		return fmt.Errorf("background %q: %w", key, ErrUnknownColor)
	}
	return e.set(config.KeyBgColor, key)
}

func (e *Engine) SetTextColor(key string) error {
	if _, ok := config.LookupSwatch(config.TextPalette, key); !ok {
		return fmt.Errorf("text %q: %w", key, ErrUnknownColor)
	}
	return e.set(config.KeyTextColor, key)
}

func (e *Engine) storedKey(key string) (string, bool) {
	raw, ok := e.store.GetSetting(e.ctx, key)
	if !ok {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(raw), `"`), true
}
