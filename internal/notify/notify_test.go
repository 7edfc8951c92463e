package notify

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/faiface/beep"
)

func TestPulseCountAndSpacing(t *testing.T) {
	var stamps []time.Time
	start := time.Now()
	n := Pulse(context.Background(), 3, 20*time.Millisecond, func() {
		stamps = append(stamps, time.Now())
	})
	if n != 3 || len(stamps) != 3 {
		t.Fatalf("expected 3 pulses, got %d", n)
	}
	if !stamps[0].Before(start.Add(15 * time.Millisecond)) {
		t.Fatalf("first pulse must be immediate")
	}
	if stamps[2].Sub(stamps[0]) < 40*time.Millisecond {
		t.Fatalf("pulses emitted too close together: %v", stamps[2].Sub(stamps[0]))
	}
}

func TestPulseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	n := Pulse(ctx, 3, time.Hour, func() {
		count++
		cancel()
	})
	if n != 1 || count != 1 {
		t.Fatalf("expected cancellation after first pulse, got %d", n)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBellRingsThreeTimes(t *testing.T) {
	out := &syncBuffer{}
	bell := NewBell(context.Background(), out)
	bell.spacing = time.Millisecond
	bell.Notify(models.ModeFocus)
	bell.Wait()
	if got := strings.Count(out.String(), "\a"); got != config.BeepPulses {
		t.Fatalf("expected %d bells, got %d", config.BeepPulses, got)
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	tone := Tone(sr, 440, 100*time.Millisecond)
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != sr.N(100*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", sr.N(100*time.Millisecond), total)
	}
}

func TestSpeakerNotifyPlaysPulses(t *testing.T) {
	var mu sync.Mutex
	played := 0
	s := &Speaker{
		ctx:        context.Background(),
		sampleRate: beep.SampleRate(8000),
		frequency:  880,
		play: func(beep.Streamer) {
			mu.Lock()
			played++
			mu.Unlock()
		},
	}
	s.Notify(models.ModeShortBreak)
	s.Wait()
	mu.Lock()
	defer mu.Unlock()
	if played != config.BeepPulses {
		t.Fatalf("expected %d pulses, got %d", config.BeepPulses, played)
	}
}
