// Package timer implements the countdown state machine behind the
// Pomodoro widget: wall-clock anchoring, mode switching, persistence of
// every transition and the completion signal.
package timer

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/util"
	"github.com/google/uuid"
)

// Engine owns no state of its own; each operation takes the current
// TimerState and returns the next one after writing it through the Store.
// A non-nil error only reports a failed write: the returned state is
// always the valid successor.
type Engine struct {
	ctx      context.Context
	store    Store
	clock    Clock
	notifier Notifier
	recorder Recorder
}

// Option configures an Engine.
type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New returns an Engine persisting through store.
func New(ctx context.Context, store Store, opts ...Option) *Engine {
	e := &Engine{ctx: ctx, store: store, clock: SystemClock}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize restores the state persisted by a previous run. A run that
// reached zero while the program was closed expires here.
func (e *Engine) Initialize() (models.TimerState, error) {
	state, _, err := e.Resume()
	return state, err
}

// Resume is Initialize that also reports whether a run which ended while
// the program was closed was expired on the way.
func (e *Engine) Resume() (models.TimerState, bool, error) {
	state := Restore(LoadSnapshot(e.ctx, e.store), e.clock.Now())
	if state.Running && state.RemainingSeconds == 0 {
		next, err := e.Expire(state)
		return next, true, err
	}
	return state, false, nil
}

// Tick advances a running countdown by one second. The result never
// exceeds what the anchor allows, so a process that was suspended
// catches up on its next tick.
func (e *Engine) Tick(s models.TimerState) (models.TimerState, error) {
	if !s.Running || s.RemainingSeconds <= 0 {
		return s, nil
	}
	next := s
	next.RemainingSeconds = min(s.RemainingSeconds-1, e.anchoredRemaining(s))
	if next.RemainingSeconds <= 0 {
		next.RemainingSeconds = 0
		return e.Expire(next)
	}
	return next, e.set(config.KeyTimeLeft, strconv.Itoa(next.RemainingSeconds))
}

// Toggle starts or pauses. Starting anchors the run at now with the
// current remaining time; pausing drops the anchor. Pausing a run whose
// anchor has already run out expires it instead.
func (e *Engine) Toggle(s models.TimerState) (models.TimerState, error) {
	if s.Running {
		remaining := e.anchoredRemaining(s)
		if remaining <= 0 {
			s.RemainingSeconds = 0
			return e.Expire(s)
		}
		next := models.TimerState{Mode: s.Mode, RemainingSeconds: remaining}
		return next, e.persist(next)
	}
	if s.RemainingSeconds <= 0 {
		return s, nil
	}
	next := models.TimerState{
		Mode:                 s.Mode,
		RemainingSeconds:     s.RemainingSeconds,
		Running:              true,
		StartEpochMillis:     util.Ptr(e.clock.Now().UnixMilli()),
		TotalDurationSeconds: util.Ptr(s.RemainingSeconds),
	}
	return next, e.persist(next)
}

// Reset stops the timer and restores the full length of the current mode.
func (e *Engine) Reset(s models.TimerState) (models.TimerState, error) {
	next := models.Idle(s.Mode)
	return next, e.persist(next)
}

// SwitchMode stops the timer and loads the full length of mode.
func (e *Engine) SwitchMode(s models.TimerState, mode models.Mode) (models.TimerState, error) {
	if !mode.Valid() {
		return s, ErrUnknownMode
	}
	next := models.Idle(mode)
	return next, e.persist(next)
}

// Expire ends a running interval: the completion signal fires, the
// session is recorded and the timer stops at zero. Calling it on a
// stopped state does nothing.
func (e *Engine) Expire(s models.TimerState) (models.TimerState, error) {
	if !s.Running {
		return s, nil
	}
	now := e.clock.Now()
	next := models.TimerState{Mode: s.Mode}
	if e.notifier != nil {
		e.notifier.Notify(s.Mode)
	}
	var errs []error
	if e.recorder != nil {
		duration := s.Mode.Seconds()
		session := models.Session{
			ID:              uuid.NewString(),
			Mode:            s.Mode,
			DurationSeconds: duration,
			StartedAt:       now.Add(-time.Duration(duration) * time.Second),
			CompletedAt:     now,
		}
		if err := e.recorder.RecordSession(e.ctx, session); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, e.persist(next))
	return next, errors.Join(errs...)
}

func (e *Engine) anchoredRemaining(s models.TimerState) int {
	if !s.Anchored() {
		return s.RemainingSeconds
	}
	return min(s.RemainingSeconds, Remaining(*s.StartEpochMillis, *s.TotalDurationSeconds, e.clock.Now()))
}
