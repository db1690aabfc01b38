package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a sound effect; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Sound][]note{
	SoundAte:       {{880, 40 * time.Millisecond}, {1320, 60 * time.Millisecond}},
	SoundSpeedUp:   {{1568, 30 * time.Millisecond}},
	SoundDeath:     {{330, 120 * time.Millisecond}, {247, 120 * time.Millisecond}, {165, 240 * time.Millisecond}},
	SoundPoison:    {{220, 80 * time.Millisecond}, {0, 30 * time.Millisecond}, {208, 200 * time.Millisecond}},
	SoundHighScore: {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 80 * time.Millisecond}, {1047, 160 * time.Millisecond}},
	SoundStart:     {{440, 60 * time.Millisecond}, {0, 40 * time.Millisecond}, {660, 90 * time.Millisecond}},
}

// Beep plays sound effects through the system speaker.
type Beep struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewBeep initializes the speaker. It fails when no output device exists.
func NewBeep() (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	b := &Beep{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beep) Play(s Sound) {
	notes, ok := melodies[s]
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	speaker.Lock()
	b.mixer.Add(melody(notes))
	speaker.Unlock()
}

func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	speaker.Clear()
	speaker.Close()
}

// melody renders notes into one streamer at a quiet volume.
func melody(notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), &square{freq: n.freq}))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.85}
}

// square is an endless square wave.
type square struct {
	freq  float64
	phase float64
}

func (g *square) Stream(samples [][2]float64) (int, bool) {
	step := g.freq / float64(sampleRate)
	for i := range samples {
		v := -1.0
		if g.phase < 0.5 {
			v = 1.0
		}
		samples[i][0], samples[i][1] = v, v
		g.phase += step
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (*square) Err() error { return nil }
