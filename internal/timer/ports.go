package timer

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// Store is the key/value persistence port.
//
//go:generate mockgen -source=ports.go -destination=mock_store_test.go -package=timer
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Recorder keeps the history of completed intervals.
type Recorder interface {
	RecordSession(ctx context.Context, session models.Session) error
}

// Notifier emits the completion signal. Implementations must not block.
type Notifier interface {
	Notify(mode models.Mode)
}

// Clock provides the wall-clock reading used for anchoring.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
