package testutil

import (
	"sync"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/util"
	"github.com/google/uuid"
)

// StateBuilder provides fluent API for creating test timer states.
type StateBuilder struct {
	state models.TimerState
}

func NewState() *StateBuilder {
	return &StateBuilder{state: models.Idle(models.ModeFocus)}
}

func (b *StateBuilder) WithMode(mode models.Mode) *StateBuilder {
	b.state.Mode = mode
	b.state.RemainingSeconds = mode.Seconds()
	return b
}

func (b *StateBuilder) WithRemaining(seconds int) *StateBuilder {
	b.state.RemainingSeconds = seconds
	return b
}

// Running anchors the state at start with the current remaining time.
func (b *StateBuilder) Running(start time.Time) *StateBuilder {
	b.state.Running = true
	b.state.StartEpochMillis = util.Ptr(start.UnixMilli())
	b.state.TotalDurationSeconds = util.Ptr(b.state.RemainingSeconds)
	return b
}

func (b *StateBuilder) Build() models.TimerState {
	return b.state
}

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	now := time.Now()
	return &SessionBuilder{
		session: models.Session{
			ID:              uuid.NewString(),
			Mode:            models.ModeFocus,
			DurationSeconds: models.ModeFocus.Seconds(),
			StartedAt:       now.Add(-25 * time.Minute),
			CompletedAt:     now,
		},
	}
}

func (b *SessionBuilder) WithMode(mode models.Mode) *SessionBuilder {
	b.session.Mode = mode
	b.session.DurationSeconds = mode.Seconds()
	b.session.StartedAt = b.session.CompletedAt.Add(-time.Duration(mode.Seconds()) * time.Second)
	return b
}

func (b *SessionBuilder) CompletedAt(at time.Time) *SessionBuilder {
	b.session.CompletedAt = at
	b.session.StartedAt = at.Add(-time.Duration(b.session.DurationSeconds) * time.Second)
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}

// FakeClock is a settable Clock for deterministic tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// CountingNotifier counts completion signals per mode.
type CountingNotifier struct {
	mu    sync.Mutex
	Calls []models.Mode
}

func (n *CountingNotifier) Notify(mode models.Mode) {
	n.mu.Lock()
	n.Calls = append(n.Calls, mode)
	n.mu.Unlock()
}

func (n *CountingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Calls)
}
