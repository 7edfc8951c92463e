package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// RecordSession appends a completed interval to the history.
func (d *Database) RecordSession(ctx context.Context, s models.Session) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (id, mode, duration_seconds, started_at_ms, completed_at_ms) VALUES (?, ?, ?, ?, ?)",
		s.ID, string(s.Mode), s.DurationSeconds, s.StartedAt.UnixMilli(), s.CompletedAt.UnixMilli())
	return wrapSessionErr("record", s.ID, err)
}

// GetSessionsBetween returns sessions completed in [from, to), oldest first.
func (d *Database) GetSessionsBetween(ctx context.Context, from, to time.Time) ([]models.Session, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, mode, duration_seconds, started_at_ms, completed_at_ms
		FROM sessions
		WHERE completed_at_ms >= ? AND completed_at_ms < ?
		ORDER BY completed_at_ms ASC`, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var mode string
		var startedMs, completedMs int64
		if err := rows.Scan(&s.ID, &mode, &s.DurationSeconds, &startedMs, &completedMs); err != nil {
			return nil, wrapSessionErr("list", "", err)
		}
		s.Mode = models.Mode(mode)
		s.StartedAt = time.UnixMilli(startedMs)
		s.CompletedAt = time.UnixMilli(completedMs)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	return sessions, nil
}

// GetSessionsForDay returns the sessions completed on day's local calendar date.
func (d *Database) GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error) {
	from, to := DayBounds(day)
	return d.GetSessionsBetween(ctx, from, to)
}

// CountSessions counts sessions of mode completed at or after since.
func (d *Database) CountSessions(ctx context.Context, mode models.Mode, since time.Time) (int, error) {
	var count int
	err := d.DB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sessions WHERE mode = ? AND completed_at_ms >= ?",
		string(mode), since.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, wrapSessionErr("count", "", err)
	}
	return count, nil
}

// DayBounds returns local midnight of day and of the following day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	y, m, dd := day.Date()
	from := time.Date(y, m, dd, 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}
