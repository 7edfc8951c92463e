package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DataDir("pomodoro"); got != filepath.Join("/xdg/data", "pomodoro") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := ConfigDir("pomodoro"); got != filepath.Join("/xdg/config", "pomodoro") {
		t.Fatalf("unexpected config dir %q", got)
	}
}

func TestReportsDirUppercasesApp(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/docs")
	if got := ReportsDir("pomodoro"); got != filepath.Join("/docs", "POMODORO") {
		t.Fatalf("unexpected reports dir %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected value %q", got)
	}
}
