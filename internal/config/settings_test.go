package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	data := []byte("sound: false\nvolume: -1\ntone_hz: 440\ndata_dir: /tmp/pomo\nalt_screen: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.Sound {
		t.Fatalf("expected sound disabled")
	}
	if got.Volume != -1 {
		t.Fatalf("expected volume -1, got %v", got.Volume)
	}
	if got.ToneHz != 440 {
		t.Fatalf("expected tone 440, got %v", got.ToneHz)
	}
	if got.DataDir != "/tmp/pomo" {
		t.Fatalf("unexpected data dir %q", got.DataDir)
	}
	if got.AltScreen {
		t.Fatalf("expected alt screen disabled")
	}
}

func TestLoadSettingsOutOfRangeKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("volume: 9\ntone_hz: 50000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.Volume != 0 || got.ToneHz != BeepFrequencyHz {
		t.Fatalf("expected defaults for out-of-range values, got %+v", got)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("sound: [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got != DefaultSettings() {
		t.Fatalf("expected defaults alongside error")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	want := DefaultSettings()
	want.Sound = false
	want.ReportsDir = "/tmp/reports"
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
