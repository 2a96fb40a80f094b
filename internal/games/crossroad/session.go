package crossroad

import (
	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/timer"
)

// State is the session's screen.
type State int

const (
	StateHome State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records why the last run finished.
type EndReason int

const (
	EndNone EndReason = iota
	EndCrash
	EndTimeUp
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndCrash:
		return "crash"
	case EndTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// Session composes the clock, world and player under the
// home -> playing -> game over state machine. It is owned by the caller;
// there is no package-level game state.
type Session struct {
	cfg        config.CrossroadConfig
	rng        core.RNG
	difficulty *config.DifficultyManager

	world  *World
	player *Player
	clock  *timer.Countdown
	camera Camera

	state  State
	reason EndReason
	paused bool
	debug  bool
	runs   int
	tick   uint64
}

// NewSession builds a session on the home screen. The world and player are
// already generated so the camera has something to frame.
func NewSession(cfg config.CrossroadConfig, rng core.RNG) *Session {
	cfg.Normalize()

	s := &Session{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      timer.New(cfg.Round.Duration),
		camera:     NewCamera(),
		state:      StateHome,
	}
	s.build()
	s.clock.Start(cfg.Round.Duration)
	return s
}

// build generates a fresh world and player from the session RNG.
func (s *Session) build() {
	s.world = NewWorld(s.cfg, s.rng)
	s.world.Init(s.cfg.World.Width, s.cfg.World.Tile)

	s.player = NewPlayer(s.cfg.Player)
	s.player.Init(s.spawnPoint(), s.cfg.World.Tile)

	s.camera.Follow(s.player.Box())
}

func (s *Session) spawnPoint() core.Vec2 {
	return core.Vec2{X: s.cfg.World.Width*0.5 - s.cfg.World.Tile*0.5, Y: 0}
}

// Reset starts a new run: new world, new player, full clock.
func (s *Session) Reset() {
	s.build()
	s.clock.Reset(s.cfg.Round.Duration)
	s.state = StatePlaying
	s.reason = EndNone
	s.paused = false
	s.runs++
}

// Step advances the session by dt seconds and returns what happened.
func (s *Session) Step(in Controls, dt float64) []core.Event {
	s.tick++

	if in.Has(core.ActionDebug) {
		s.debug = !s.debug
	}

	switch s.state {
	case StateHome:
		if in.Has(core.ActionConfirm) {
			return s.start()
		}
	case StatePlaying:
		return s.stepPlaying(in, dt)
	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			return s.start()
		}
	}

	s.camera.Follow(s.player.Box())
	return nil
}

func (s *Session) start() []core.Event {
	s.Reset()
	return []core.Event{{Kind: core.EventRunStarted}}
}

// stepPlaying runs one frame of play: clock, world, player, then the two
// independent game-over checks against the player's new position.
func (s *Session) stepPlaying(in Controls, dt float64) []core.Event {
	if in.Has(core.ActionRestart) {
		return s.start()
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return nil
	}

	var events []core.Event
	best := s.player.MaxRow()
	mult := s.difficulty.Multiplier(best)

	s.clock.Update(dt)
	s.world.Update(dt, mult)
	move := s.player.Update(in, dt, s.cfg.World.Tile, s.MaxPlayableRow(), Span{Min: 0, Max: s.cfg.World.Width})
	s.camera.Follow(s.player.Box())

	if move != MoveNone {
		events = append(events, s.event(core.EventMoved))
	}
	if s.player.MaxRow() > best {
		events = append(events, s.event(core.EventNewBest))
	}

	hit := s.world.CheckCollisionInset(s.player.Box(), s.cfg.Player.HitboxInset)
	switch {
	case hit && !s.player.Invulnerable():
		s.end(EndCrash)
		events = append(events, s.event(core.EventCrashed))
	case s.clock.IsOver():
		s.end(EndTimeUp)
		events = append(events, s.event(core.EventTimeUp))
	}

	return events
}

func (s *Session) end(reason EndReason) {
	s.state = StateGameOver
	s.reason = reason
}

func (s *Session) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Score: s.player.Score(), Elapsed: s.clock.Elapsed()}
}

// MaxPlayableRow is the highest row the player can stand on.
func (s *Session) MaxPlayableRow() int {
	return s.world.LaneCount() - 1
}

// Difficulty returns the current speed multiplier.
func (s *Session) Difficulty() float64 {
	return s.difficulty.Multiplier(s.player.MaxRow())
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Reason returns why the last run ended.
func (s *Session) Reason() EndReason { return s.reason }

// Paused reports whether play is paused.
func (s *Session) Paused() bool { return s.paused }

// Debug reports whether the hitbox overlay is on.
func (s *Session) Debug() bool { return s.debug }

// Runs returns how many runs were started.
func (s *Session) Runs() int { return s.runs }

// Score returns the current run's score.
func (s *Session) Score() int { return s.player.Score() }

// Remaining returns the seconds left on the clock.
func (s *Session) Remaining() float64 { return s.clock.Remaining() }

// PlayerBox returns the player's current box.
func (s *Session) PlayerBox() core.RectF { return s.player.Box() }

// Row returns the player's current row.
func (s *Session) Row() int { return s.player.Row() }

// Camera returns the camera framing the player.
func (s *Session) Camera() Camera { return s.camera }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.CrossroadConfig { return s.cfg }
