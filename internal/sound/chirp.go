// Package sound plays short tones for frame controller events.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names an event that has a tone.
type Cue uint8

const (
	CueTrailsOn Cue = iota
	CueTrailsOff
	CueQuit
)

const noteLength = 60 * time.Millisecond

// Two notes per cue: rising for on, falling for off, a low double for quit.
var cueNotes = map[Cue][2]float64{
	CueTrailsOn:  {660, 880},
	CueTrailsOff: {880, 660},
	CueQuit:      {330, 220},
}

// Tone builds the streamer for a cue. It does not need the speaker.
func Tone(c Cue) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %g Hz: %w", freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(noteLength), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.8}, nil
}

// Chirper plays cues through the system speaker. A Chirper that failed to
// initialize stays silent.
type Chirper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChirper returns a silent chirper; call Initialize to open the speaker.
func NewChirper() *Chirper {
	return &Chirper{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. The error is informational; callers carry on without sound.
func (c *Chirper) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the tone for c. It returns immediately.
func (c *Chirper) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	s, err := Tone(cue)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (c *Chirper) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
