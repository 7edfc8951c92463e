package config

import "testing"

func TestDefaultsExistInPalettes(t *testing.T) {
	if _, ok := LookupSwatch(BackgroundPalette, DefaultBgColor); !ok {
		t.Fatalf("default background %q missing from palette", DefaultBgColor)
	}
	if _, ok := LookupSwatch(TextPalette, DefaultTextColor); !ok {
		t.Fatalf("default text color %q missing from palette", DefaultTextColor)
	}
}

func TestLookupSwatchUnknown(t *testing.T) {
	if _, ok := LookupSwatch(BackgroundPalette, "nope"); ok {
		t.Fatalf("expected unknown key to miss")
	}
}

func TestSwatchIndex(t *testing.T) {
	if got := SwatchIndex(TextPalette, "black"); got != len(TextPalette)-1 {
		t.Fatalf("expected black at end, got %d", got)
	}
	if got := SwatchIndex(TextPalette, "missing"); got != 0 {
		t.Fatalf("expected 0 for unknown key, got %d", got)
	}
}
