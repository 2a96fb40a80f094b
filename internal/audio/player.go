package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Player owns the speaker for the lifetime of the process.
// Init and Close are the acquire and release hooks; every other method is
// a no-op until Init succeeds.
type Player struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
}

// NewPlayer creates a player. volume is clamped to [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{volume: core.ClampF(volume, 0, 1)}
}

// Init opens the output device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker. A nil player is disabled.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue. It returns immediately.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Build(c, SampleRate, p.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// HandleEvents plays the cue for each event. A new best row replaces the
// plain hop sound of the same step.
func (p *Player) HandleEvents(events []core.Event) {
	for _, c := range cuesFor(events) {
		p.Play(c)
	}
}

func cuesFor(events []core.Event) []Cue {
	best := false
	for _, e := range events {
		if e.Kind == core.EventNewBest {
			best = true
		}
	}

	var out []Cue
	for _, e := range events {
		if e.Kind == core.EventMoved && best {
			continue
		}
		if c, ok := CueFor(e.Kind); ok {
			out = append(out, c)
		}
	}
	return out
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
