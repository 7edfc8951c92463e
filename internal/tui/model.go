package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/database"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	"github.com/akyairhashvil/pomodoro/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// History is the read side of the completed-session log.
type History interface {
	GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error)
	CountSessions(ctx context.Context, mode models.Mode, since time.Time) (int, error)
}

type Option func(*Model)

// WithHistory enables the daily focus count and the PDF report.
func WithHistory(h History) Option {
	return func(m *Model) { m.history = h }
}

// WithReportsDir sets where exported reports are written.
func WithReportsDir(dir string) Option {
	return func(m *Model) { m.reportsDir = dir }
}

// WithNow overrides the clock used to pick "today".
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model is the root bubbletea model.
type Model struct {
	ctx        context.Context
	engine     *timer.Engine
	history    History
	state      models.TimerState
	appearance models.Appearance
	theme      Theme
	settings   SettingsModal
	keys       *HandlerRegistry
	progress   progress.Model
	tickGen    int
	todayFocus int
	reportsDir string
	now        func() time.Time
	Message    string
	err        error
	width      int
	height     int
}

func NewModel(ctx context.Context, engine *timer.Engine, opts ...Option) Model {
	m := Model{
		ctx:    ctx,
		engine: engine,
		keys:   defaultKeyRegistry(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	state, expired, err := engine.Resume()
	m.state = state
	if err != nil {
		m.setStatusError("Error restoring timer", err)
	} else if expired {
		m.Message = completionMessage(state.Mode)
	}
	m.applyAppearance(engine.Appearance())
	m.settings = newSettingsModal(m.appearance)
	m.refreshStats()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state.Running {
		return tickCmd(m.tickGen)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		m.Message = ""
		m.err = nil
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

// State returns the current timer state.
func (m Model) State() models.TimerState {
	return m.state
}

// Appearance returns the active color pair.
func (m Model) Appearance() models.Appearance {
	return m.appearance
}

// TodayFocusCount is the number of focus intervals completed today.
func (m Model) TodayFocusCount() int {
	return m.todayFocus
}

func completionMessage(mode models.Mode) string {
	return fmt.Sprintf("%s complete", mode.Label())
}

func (m Model) viewMode() int {
	if m.settings.Open {
		return ViewSettings
	}
	return ViewTimer
}

func (m *Model) setStatusError(context string, err error) {
	m.err = err
	m.Message = fmt.Sprintf("%s: %v", context, err)
	util.LogError(context, err)
}

func (m *Model) applyAppearance(a models.Appearance) {
	m.appearance = a
	m.theme = ResolveTheme(a)
	width := config.ProgressWidth
	if m.progress.Width > 0 {
		width = m.progress.Width
	}
	m.progress = progress.New(
		progress.WithSolidFill(string(m.theme.Text)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	m.progress.EmptyColor = string(m.theme.Text)
}

func (m *Model) refreshStats() {
	if m.history == nil {
		return
	}
	dayStart, _ := database.DayBounds(m.now())
	count, err := m.history.CountSessions(m.ctx, models.ModeFocus, dayStart)
	if err != nil {
		util.LogError("count today's sessions", err)
		return
	}
	m.todayFocus = count
}
