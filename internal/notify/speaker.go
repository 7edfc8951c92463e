package notify

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Speaker plays a generated sine tone per pulse.
type Speaker struct {
	ctx        context.Context
	sampleRate beep.SampleRate
	frequency  float64
	volume     float64
	play       func(beep.Streamer)
	wg         sync.WaitGroup
}

var speakerOnce sync.Once
var speakerErr error

// NewSpeaker initializes the audio device. volume is beep's base-2
// logarithmic gain (0 is unchanged).
func NewSpeaker(ctx context.Context, frequency, volume float64) (*Speaker, error) {
	sr := beep.SampleRate(config.BeepSampleRate)
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sr, sr.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}
	return &Speaker{
		ctx:        ctx,
		sampleRate: sr,
		frequency:  frequency,
		volume:     volume,
		play:       func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Notify plays the pulses in the background. Focus completion is pitched
// higher than break completion.
func (s *Speaker) Notify(mode models.Mode) {
	freq := s.frequency
	if mode != models.ModeFocus {
		freq *= 0.75
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		Pulse(s.ctx, config.BeepPulses, config.BeepSpacing, func() {
			s.play(s.pulse(freq))
		})
	}()
}

// Wait blocks until all pending pulse runs have finished.
func (s *Speaker) Wait() {
	s.wg.Wait()
}

func (s *Speaker) pulse(freq float64) beep.Streamer {
	return &effects.Volume{
		Streamer: Tone(s.sampleRate, freq, config.BeepLength),
		Base:     2,
		Volume:   s.volume,
		Silent:   false,
	}
}

// Tone returns a sine wave of the given frequency lasting d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			v := 0.3 * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
