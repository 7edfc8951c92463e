package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// MemoryStore is an in-process Repository for tests.
type MemoryStore struct {
	mu       sync.Mutex
	settings map[string]string
	sessions []models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: make(map[string]string)}
}

func (m *MemoryStore) GetSetting(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.settings[key]
	return v, ok
}

func (m *MemoryStore) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.settings[key] = value
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) DeleteSetting(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.settings, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) RecordSession(_ context.Context, s models.Session) error {
	m.mu.Lock()
	m.sessions = append(m.sessions, s)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) GetSessionsBetween(_ context.Context, from, to time.Time) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, s := range m.sessions {
		if !s.CompletedAt.Before(from) && s.CompletedAt.Before(to) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error) {
	from, to := DayBounds(day)
	return m.GetSessionsBetween(ctx, from, to)
}

func (m *MemoryStore) CountSessions(_ context.Context, mode models.Mode, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, s := range m.sessions {
		if s.Mode == mode && !s.CompletedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// Snapshot returns a copy of the stored settings.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.settings))
	for k, v := range m.settings {
		out[k] = v
	}
	return out
}
