// internal/audio/audio.go
package audio

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-missile-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Service turns simulation events into short synthesized cues. If the
// speaker cannot be opened it stays in silent mode; the game never fails
// because of audio.
type Service struct {
	muted bool
	ready bool
}

// New opens the speaker unless muted.
func New(muted bool) *Service {
	s := &Service{muted: muted}
	if muted {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(60*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init failed, running silent: %v", err)
		return s
	}
	s.ready = true
	return s
}

// Attach subscribes the service to the simulation events it voices.
func (s *Service) Attach(d *event.Dispatcher) {
	for _, t := range []event.Type{
		event.InterceptorFired,
		event.MissileDestroyed,
		event.GroundImpact,
		event.WaveBonusAwarded,
	} {
		d.Subscribe(t, s)
	}
}

// OnEvent maps each event to a cue: high blip for launches, mid pop for
// kills, low thud for impacts (lower and longer when a structure is
// lost), a longer chime for the wave bonus.
func (s *Service) OnEvent(e event.Event) {
	switch e.Type {
	case event.InterceptorFired:
		s.play(880, 70*time.Millisecond, 0.20)
	case event.MissileDestroyed:
		s.play(520, 110*time.Millisecond, 0.25)
	case event.GroundImpact:
		if d, ok := e.Data.(event.ImpactData); ok && d.Major {
			s.play(80, 320*time.Millisecond, 0.40)
		} else {
			s.play(130, 180*time.Millisecond, 0.30)
		}
	case event.WaveBonusAwarded:
		s.play(660, 400*time.Millisecond, 0.25)
	}
}

func (s *Service) play(freq float64, dur time.Duration, vol float64) {
	if !s.ready || s.muted {
		return
	}
	speaker.Play(&tone{
		freq:  freq,
		vol:   vol,
		total: sampleRate.N(dur),
	})
}

// tone is a sine burst with a linear decay envelope.
type tone struct {
	freq  float64
	vol   float64
	total int
	pos   int
	phase float64
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.phase) * t.vol * env
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(sampleRate)
		if t.phase >= 1 {
			t.phase--
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
