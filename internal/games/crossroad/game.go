// Package crossroad implements a "cross the road" arcade game: hop upward
// lane by lane, dodge the traffic and get as far as possible before the
// clock runs out.
package crossroad

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/registry"
)

// Variant selects the lane layout.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantClassic  Variant = "classic"
)

// classicLanes is the short board from the first release of the game.
const classicLanes = 12

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets where config fallbacks are reported. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to the arcade platform's game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	session *Session
	rng     *core.SeededRNG
}

// New creates the standard Crossroad game.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates the 12-lane classic board.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "crossroad_classic"
	}
	return "crossroad"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Crossroad (Classic)"
	}
	return "Crossroad"
}

// Reset loads the configuration and builds a new session on the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, skipped, err := config.LoadCrossroad(configPath)
	for _, f := range skipped {
		logger.Warn("config fallback", "path", f.Path, "error", f.Err)
	}
	if err != nil {
		logger.Warn("config fallback", "path", configPath, "error", err)
		cfg = config.Embedded()
	}
	if difficultyPreset != "" {
		config.ApplyCrossroadPreset(&cfg, difficultyPreset)
	}
	if g.variant == VariantClassic {
		cfg.World.LaneCount = classicLanes
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a new session from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.CrossroadConfig) {
	g.runtime = runtime
	g.rng = core.NewRNG(runtime.Seed)
	g.session = NewSession(cfg, g.rng)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in, g.runtime.FrameTime())
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.Paused(),
		Playing:  g.session.State() == StatePlaying,
	}
}

// Session exposes the running session for the platform's status line.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot captures the state needed for determinism checks.
type Snapshot struct {
	Tick      uint64
	State     State
	Reason    EndReason
	Score     int
	Row       int
	PlayerX   float64
	PlayerY   float64
	Remaining float64
	CarXs     []float64 // Every car's X, lane by lane
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	box := s.PlayerBox()

	snap := Snapshot{
		Tick:      s.tick,
		State:     s.State(),
		Reason:    s.Reason(),
		Score:     s.Score(),
		Row:       s.Row(),
		PlayerX:   box.X,
		PlayerY:   box.Y,
		Remaining: s.Remaining(),
	}
	for i := 0; i < s.world.LaneCount(); i++ {
		ln, _ := s.world.Lane(i)
		for _, car := range ln.Cars() {
			snap.CarXs = append(snap.CarXs, car.Box.X)
		}
	}
	return snap
}

// Register the game with the registry
func init() {
	registry.Register("crossroad", func() registry.Game {
		return New()
	})
	registry.Register("crossroad_classic", func() registry.Game {
		return NewClassic()
	})
}
