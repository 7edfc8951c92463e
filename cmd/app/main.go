package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/database"
	"github.com/akyairhashvil/pomodoro/internal/notify"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	"github.com/akyairhashvil/pomodoro/internal/tui"
	"github.com/akyairhashvil/pomodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// notifier is a completion signal whose pending pulses can be awaited.
type notifier interface {
	timer.Notifier
	Wait()
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closeLog, err := setupLogging(os.Getenv("POMODORO_LOG"))
	if err != nil {
		return err
	}
	defer closeLog()

	settings := loadSettings(configPath())

	// 1. Initialize Database
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = util.DataDir(config.AppName)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, config.DBFileName)
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		if errors.Is(err, database.ErrDatabaseCorrupted) {
			return fmt.Errorf("%w: move %s aside to start fresh", err, dbPath)
		}
		return err
	}
	defer db.Close()

	// 2. Non-interactive: print the current state and exit
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		bell := notify.NewBell(ctx, os.Stderr)
		engine := timer.New(ctx, db, timer.WithNotifier(bell), timer.WithRecorder(db))
		err := printStatus(os.Stdout, engine)
		bell.Wait()
		return err
	}

	// 3. Interactive timer
	n := newNotifier(ctx, settings)
	engine := timer.New(ctx, db, timer.WithNotifier(n), timer.WithRecorder(db))
	reportsDir := settings.ReportsDir
	if reportsDir == "" {
		reportsDir = util.ReportsDir(config.AppName)
	}
	model := tui.NewModel(ctx, engine, tui.WithHistory(db), tui.WithReportsDir(reportsDir))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func configPath() string {
	if path := strings.TrimSpace(os.Getenv("POMODORO_CONFIG")); path != "" {
		return path
	}
	return filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
}

// loadSettings reads the user file, writing one with the defaults when
// none exists yet. Errors are logged and defaults used.
func loadSettings(path string) config.Settings {
	settings, err := config.LoadSettings(path)
	if err != nil {
		util.LogError("load settings", err)
		return settings
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		util.LogError("write default settings", config.SaveSettings(path, settings))
	}
	return settings
}

// setupLogging sends the standard logger to path, or discards it when
// path is empty so nothing is written over the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func newNotifier(ctx context.Context, settings config.Settings) notifier {
	if settings.Sound {
		s, err := notify.NewSpeaker(ctx, settings.ToneHz, settings.Volume)
		if err == nil {
			return s
		}
		util.LogError("audio unavailable, using terminal bell", err)
	}
	return notify.NewBell(ctx, os.Stderr)
}

func printStatus(w io.Writer, engine *timer.Engine) error {
	state, err := engine.Initialize()
	util.LogError("restore timer", err)
	_, werr := fmt.Fprintln(w, tui.StatusLine(state))
	return werr
}
