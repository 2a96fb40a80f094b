// Package audio plays short synthesized cues for game events.
// Sound is optional: when no output device is available the player stays
// silent and the game runs as usual.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart  Cue = iota // Run started
	CueHop               // Any grid step
	CueBest              // New best row
	CueCrash             // Hit by a car
	CueTimeUp            // Clock ran out
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueHop:
		return "hop"
	case CueBest:
		return "best"
	case CueCrash:
		return "crash"
	case CueTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to its cue.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventRunStarted:
		return CueStart, true
	case core.EventMoved:
		return CueHop, true
	case core.EventNewBest:
		return CueBest, true
	case core.EventCrashed:
		return CueCrash, true
	case core.EventTimeUp:
		return CueTimeUp, true
	default:
		return 0, false
	}
}

// note is one tone in a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
	wave func(sr beep.SampleRate, freq float64) (beep.Streamer, error)
}

var cueNotes = map[Cue][]note{
	CueStart: {
		{523.25, 60 * time.Millisecond, generators.SquareTone},
		{659.25, 60 * time.Millisecond, generators.SquareTone},
		{783.99, 90 * time.Millisecond, generators.SquareTone},
	},
	CueHop: {
		{440, 25 * time.Millisecond, generators.TriangleTone},
	},
	CueBest: {
		{880, 30 * time.Millisecond, generators.TriangleTone},
		{1318.51, 40 * time.Millisecond, generators.TriangleTone},
	},
	CueCrash: {
		{110, 120 * time.Millisecond, generators.SawtoothTone},
		{0, 30 * time.Millisecond, nil},
		{82.41, 200 * time.Millisecond, generators.SawtoothTone},
	},
	CueTimeUp: {
		{659.25, 120 * time.Millisecond, generators.SineTone},
		{523.25, 120 * time.Millisecond, generators.SineTone},
		{392, 240 * time.Millisecond, generators.SineTone},
	},
}

// Build synthesizes a cue at the given volume (0 mutes, 1 is full scale).
func Build(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		tone, err := n.wave(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %s: %w", c, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// handled as silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
