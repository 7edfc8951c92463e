// Package notify emits the completion signal: a short run of pulses,
// played through the audio speaker or the terminal bell.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
)

// Pulse calls emit n times, waiting spacing between calls. It returns
// early when ctx is cancelled and reports how many pulses were emitted.
func Pulse(ctx context.Context, n int, spacing time.Duration, emit func()) int {
	emitted := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			t := time.NewTimer(spacing)
			select {
			case <-ctx.Done():
				t.Stop()
				return emitted
			case <-t.C:
			}
		}
		if ctx.Err() != nil {
			return emitted
		}
		emit()
		emitted++
	}
	return emitted
}

// Bell rings the terminal bell once per pulse.
type Bell struct {
	ctx     context.Context
	mu      sync.Mutex
	w       io.Writer
	pulses  int
	spacing time.Duration
	wg      sync.WaitGroup
}

func NewBell(ctx context.Context, w io.Writer) *Bell {
	return &Bell{ctx: ctx, w: w, pulses: config.BeepPulses, spacing: config.BeepSpacing}
}

// Notify rings in the background and returns immediately.
func (b *Bell) Notify(models.Mode) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		Pulse(b.ctx, b.pulses, b.spacing, func() {
			b.mu.Lock()
			fmt.Fprint(b.w, "\a")
			b.mu.Unlock()
		})
	}()
}

// Wait blocks until all pending pulse runs have finished.
func (b *Bell) Wait() {
	b.wg.Wait()
}
