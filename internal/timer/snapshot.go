package timer

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/util"
)

// LoadSnapshot reads the persisted timer entries. Missing or unreadable
// entries are left nil; an unknown mode falls back to Focus.
func LoadSnapshot(ctx context.Context, store Store) models.Snapshot {
	snap := models.Snapshot{Mode: models.ModeFocus}
	if raw, ok := store.GetSetting(ctx, config.KeyMode); ok {
		if mode, ok := models.ParseMode(raw); ok {
			snap.Mode = mode
		}
	}
	if v, ok := readInt(ctx, store, config.KeyTimeLeft); ok {
		snap.RemainingSeconds = util.Ptr(int(v))
	}
	if raw, ok := store.GetSetting(ctx, config.KeyIsRunning); ok {
		snap.Running = util.ParseStoredBool(raw)
	}
	if v, ok := readInt(ctx, store, config.KeyStartTime); ok && v > 0 {
		snap.StartEpochMillis = util.Ptr(v)
	}
	if v, ok := readInt(ctx, store, config.KeyTotalDuration); ok {
		snap.TotalDurationSeconds = util.Ptr(int(v))
	}
	return snap
}

func readInt(ctx context.Context, store Store, key string) (int64, bool) {
	raw, ok := store.GetSetting(ctx, key)
	if !ok {
		return 0, false
	}
	return util.ParseStoredInt(raw)
}

// Restore rebuilds the timer state from a snapshot at time now. A run with
// both anchors is recomputed from the wall clock; otherwise the stored
// remaining time (or the mode's full length) is used.
func Restore(snap models.Snapshot, now time.Time) models.TimerState {
	mode := snap.Mode
	if !mode.Valid() {
		mode = models.ModeFocus
	}
	state := models.Idle(mode)
	if snap.StartEpochMillis != nil && snap.TotalDurationSeconds != nil && *snap.TotalDurationSeconds > 0 {
		start, total := *snap.StartEpochMillis, *snap.TotalDurationSeconds
		state.Running = true
		state.RemainingSeconds = Remaining(start, total, now)
		state.StartEpochMillis = util.Ptr(start)
		state.TotalDurationSeconds = util.Ptr(total)
		return state
	}
	if snap.RemainingSeconds != nil {
		state.RemainingSeconds = max(*snap.RemainingSeconds, 0)
	}
	return state
}

// Remaining returns total minus the whole seconds elapsed since
// startMillis, clamped to [0, total].
func Remaining(startMillis int64, total int, now time.Time) int {
	elapsed := (now.UnixMilli() - startMillis) / 1000
	return util.Clamp(total-int(elapsed), 0, max(total, 0))
}

func (e *Engine) persist(s models.TimerState) error {
	errs := []error{
		e.set(config.KeyTimeLeft, strconv.Itoa(s.RemainingSeconds)),
		e.set(config.KeyMode, string(s.Mode)),
		e.set(config.KeyIsRunning, strconv.FormatBool(s.Running)),
	}
	if s.Anchored() {
		errs = append(errs,
			e.set(config.KeyStartTime, strconv.FormatInt(*s.StartEpochMillis, 10)),
			e.set(config.KeyTotalDuration, strconv.Itoa(*s.TotalDurationSeconds)),
		)
	} else {
		errs = append(errs,
			e.delete(config.KeyStartTime),
			e.delete(config.KeyTotalDuration),
		)
	}
	return errors.Join(errs...)
}

func (e *Engine) set(key, value string) error {
	if err := e.store.SetSetting(e.ctx, key, value); err != nil {
		return &PersistError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (e *Engine) delete(key string) error {
	if err := e.store.DeleteSetting(e.ctx, key); err != nil {
		return &PersistError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
