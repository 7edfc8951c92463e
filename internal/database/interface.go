package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// SettingsRepository defines key/value persistence operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// SessionRepository defines completed-interval history operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.Session) error
	GetSessionsBetween(ctx context.Context, from, to time.Time) ([]models.Session, error)
	GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error)
	CountSessions(ctx context.Context, mode models.Mode, since time.Time) (int, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	SessionRepository
}

var (
	_ Repository = (*Database)(nil)
	_ Repository = (*MemoryStore)(nil)
)
