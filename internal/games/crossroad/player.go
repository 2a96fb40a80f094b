package crossroad

import (
	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Controls is the input the player reads each tick.
type Controls interface {
	Has(a core.Action) bool
}

// Span is a closed horizontal interval in world pixels.
type Span struct {
	Min, Max float64
}

// Move is the grid step taken during an update.
type Move int

const (
	MoveNone Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "none"
	}
}

// movePriority is the order in which held directions are considered. Only
// the first held direction is looked at, even when it turns out to be blocked.
var movePriority = [...]struct {
	action core.Action
	move   Move
}{
	{core.ActionUp, MoveUp},
	{core.ActionDown, MoveDown},
	{core.ActionLeft, MoveLeft},
	{core.ActionRight, MoveRight},
}

// Player is the grid-stepping token. Score is not stored: it is the best row.
type Player struct {
	box      core.RectF
	row      int
	maxRow   int
	cooldown float64 // Seconds until the next step is allowed
	invuln   float64 // Seconds of collision immunity left

	moveCooldown    float64
	invulnerability float64
}

// NewPlayer creates a player with the given timing settings. Init must be
// called before use.
func NewPlayer(cfg config.CrossroadPlayer) *Player {
	return &Player{
		moveCooldown:    cfg.MoveCooldown,
		invulnerability: cfg.Invulnerability,
	}
}

// Init places the player at start on row 0 with a fresh grace period.
func (p *Player) Init(start core.Vec2, size float64) {
	p.box = core.NewRectF(start.X, start.Y, size, size)
	p.row = 0
	p.maxRow = 0
	p.cooldown = 0
	p.invuln = p.invulnerability
}

// Update advances the timers and takes at most one grid step.
// maxRow is the highest row the world offers; bounds limits the box horizontally.
func (p *Player) Update(in Controls, dt, tile float64, maxRow int, bounds Span) Move {
	if dt > 0 {
		p.cooldown = decay(p.cooldown, dt)
		p.invuln = decay(p.invuln, dt)
	}

	move := MoveNone
	if p.cooldown <= 0 {
		move = p.step(in, tile, maxRow, bounds)
		if move != MoveNone {
			p.cooldown = p.moveCooldown
		}
	}

	p.clampX(bounds)
	p.row = core.Clamp(p.row, 0, core.Max(maxRow, 0))
	return move
}

// step applies the highest-priority held direction if it is legal.
// Up is refused on the last lane: the row is clamped to maxRow, and moving
// the box without the row would leave the two out of step. A refused step
// returns MoveNone, so the cooldown is not started.
func (p *Player) step(in Controls, tile float64, maxRow int, bounds Span) Move {
	for _, d := range movePriority {
		if !in.Has(d.action) {
			continue
		}

		switch d.move {
		case MoveUp:
			if p.row >= maxRow {
				return MoveNone
			}
			p.row++
			p.box.Y -= tile
			if p.row > p.maxRow {
				p.maxRow = p.row
			}
		case MoveDown:
			if p.row <= 0 {
				return MoveNone
			}
			p.row--
			p.box.Y += tile
		case MoveLeft, MoveRight:
			x := p.box.X - tile
			if d.move == MoveRight {
				x = p.box.X + tile
			}
			x = core.ClampF(x, bounds.Min, bounds.Max-p.box.W)
			if x == p.box.X {
				return MoveNone
			}
			p.box.X = x
		}
		return d.move
	}
	return MoveNone
}

// clampX keeps the box inside bounds. If the box is wider than the span it
// is pinned to the left edge.
func (p *Player) clampX(bounds Span) {
	if p.box.Right() > bounds.Max {
		p.box.X = bounds.Max - p.box.W
	}
	if p.box.X < bounds.Min {
		p.box.X = bounds.Min
	}
}

func decay(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}

// Box returns the player's drawn box.
func (p *Player) Box() core.RectF {
	return p.box
}

// Row returns the current row.
func (p *Player) Row() int {
	return p.row
}

// MaxRow returns the best row reached this run.
func (p *Player) MaxRow() int {
	return p.maxRow
}

// Score returns the run score, which is always the best row reached.
func (p *Player) Score() int {
	return p.maxRow
}

// Invulnerable reports whether the post-reset grace period is still running.
func (p *Player) Invulnerable() bool {
	return p.invuln > 0
}

// Cooldown returns the seconds left before the next step is accepted.
func (p *Player) Cooldown() float64 {
	return p.cooldown
}
