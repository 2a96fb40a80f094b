package crossroad

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Visual characters for rendering
const (
	GrassChar     = '░'
	SpawnChar     = '▒'
	LaneMarkChar  = '·'
	CarChar       = '█'
	HeadlightChar = '▓'
	PlayerChar    = '█'
	EyeChar       = 'o'
	HitboxChar    = '+'
)

const (
	hudRows    = 1
	minScreenW = 30
	minScreenH = 10
	// Below this many playfield rows each lane gets one row instead of two.
	tallLaneRows = 16
)

var carColors = [...]core.Color{core.ColorRed, core.ColorBlue, core.ColorMagenta}

// layout maps world pixels onto screen cells for one frame.
type layout struct {
	view core.RectF
	top  int     // First playfield row
	sx   float64 // Cells per pixel, horizontal
	sy   float64 // Cells per pixel, vertical
}

func (g *Game) layout(dst *core.Screen) layout {
	cfg := g.session.cfg
	rows := dst.Height() - hudRows

	rowsPerLane := 2
	if rows < tallLaneRows {
		rowsPerLane = 1
	}
	cellH := cfg.World.Tile / float64(rowsPerLane)

	view := g.session.camera.Viewport(cfg.World.Width, float64(rows)*cellH, cfg.World.Width)
	// Snap to whole cells so lane bands land on row boundaries.
	view.Y = math.Floor(view.Y/cellH) * cellH

	return layout{
		view: view,
		top:  hudRows,
		sx:   float64(dst.Width()) / view.W,
		sy:   1 / cellH,
	}
}

// cellRect converts a world box to the screen cells it covers.
func (l layout) cellRect(b core.RectF) core.Rect {
	const eps = 1e-6
	x0 := int(math.Floor((b.X-l.view.X)*l.sx + eps))
	x1 := int(math.Ceil((b.Right()-l.view.X)*l.sx - eps))
	y0 := l.top + int(math.Floor((b.Y-l.view.Y)*l.sy+eps))
	y1 := l.top + int(math.Ceil((b.Bottom()-l.view.Y)*l.sy-eps))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	if g.session.State() == StateHome {
		g.drawHome(dst)
		return
	}

	l := g.layout(dst)
	g.drawLanes(dst, l)
	g.drawCars(dst, l)
	g.drawPlayer(dst, l)
	if g.session.Debug() {
		g.drawHitboxes(dst, l)
	}
	g.drawHUD(dst)

	switch {
	case g.session.State() == StateGameOver:
		g.drawGameOver(dst)
	case g.session.Paused():
		drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHome(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "C R O S S R O A D", core.ColorOrange)
	dst.DrawTextCentered(mid-2,
		fmt.Sprintf("Get as far as you can in %.0fs", g.session.cfg.Round.Duration), core.ColorWhite)
	dst.DrawTextCentered(mid, "[ENTER] play  |  WASD/arrows move  |  [H] hitboxes", core.ColorGray)

	// A strip of scenery under the title
	y := mid + 3
	dst.DrawHLine(0, y, dst.Width(), GrassChar, core.ColorGreen)
	for x := 0; x < dst.Width(); x += 3 {
		dst.SetColor(x, y+1, LaneMarkChar, core.ColorDarkGray)
	}
	dst.DrawHLine(0, y+2, dst.Width(), GrassChar, core.ColorGreen)
	dst.DrawRect(core.NewRect(dst.Width()/4, y+1, 5, 1), CarChar, core.ColorRed)
	dst.DrawRect(core.NewRect(dst.Width()*2/3, y+1, 6, 1), CarChar, core.ColorBlue)
}

func (g *Game) drawLanes(dst *core.Screen, l layout) {
	w := g.session.world
	for _, ln := range w.LanesIn(l.view.Y, l.view.Bottom()) {
		r := l.cellRect(core.NewRectF(0, ln.YTop, w.Width(), w.Tile()))
		switch {
		case ln.Index == 0:
			dst.DrawRect(r, SpawnChar, core.ColorBrightGreen)
		case !ln.IsRoad:
			dst.DrawRect(r, GrassChar, core.ColorGreen)
		default:
			for x := r.X; x < r.Right(); x += 3 {
				dst.SetColor(x, r.Y, LaneMarkChar, core.ColorDarkGray)
			}
		}
	}
}

func (g *Game) drawCars(dst *core.Screen, l layout) {
	w := g.session.world
	for _, ln := range w.LanesIn(l.view.Y, l.view.Bottom()) {
		if !ln.IsRoad {
			continue
		}
		for _, car := range ln.Cars() {
			if !car.Active {
				continue
			}
			r := l.cellRect(car.Box)
			dst.DrawRect(r, CarChar, carColors[car.Variant%len(carColors)])

			front := r.Right() - 1
			if car.Dir < 0 {
				front = r.X
			}
			for y := r.Y; y < r.Bottom(); y++ {
				dst.SetColor(front, y, HeadlightChar, core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout) {
	p := g.session.player
	// Blink during the grace period
	if p.Invulnerable() && (g.session.tick/4)%2 == 1 {
		return
	}

	r := l.cellRect(p.Box())
	dst.DrawRect(r, PlayerChar, core.ColorOrange)
	if r.W >= 3 {
		dst.SetColor(r.X+1, r.Y, EyeChar, core.ColorWhite)
		dst.SetColor(r.Right()-2, r.Y, EyeChar, core.ColorWhite)
	}
}

func (g *Game) drawHitboxes(dst *core.Screen, l layout) {
	w := g.session.world
	for _, ln := range w.LanesIn(l.view.Y, l.view.Bottom()) {
		for _, car := range ln.Cars() {
			if car.Active {
				drawCorners(dst, l.cellRect(car.Box), core.ColorRed)
			}
		}
	}
	inset := g.session.player.Box().Inset(g.session.cfg.Player.HitboxInset)
	drawCorners(dst, l.cellRect(inset), core.ColorBrightGreen)
}

func drawCorners(dst *core.Screen, r core.Rect, c core.Color) {
	dst.SetColor(r.X, r.Y, HitboxChar, c)
	dst.SetColor(r.Right()-1, r.Y, HitboxChar, c)
	dst.SetColor(r.X, r.Bottom()-1, HitboxChar, c)
	dst.SetColor(r.Right()-1, r.Bottom()-1, HitboxChar, c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" Time: %02d  |  Points: %d", int(s.Remaining()), s.Score())
	dst.DrawTextColor(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("Row %d  Speed x%.2f ", s.Row(), s.Difficulty())
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	headline := "Time's up!"
	if g.session.Reason() == EndCrash {
		headline = "Hit by a car!"
	}
	drawCenteredMessage(dst, core.ColorRed,
		"Game Over!",
		headline,
		fmt.Sprintf("Distance (rows): %d", g.session.Score()),
		"[ENTER] or [R] to restart",
	)
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title and gets the accent color.
func drawCenteredMessage(dst *core.Screen, accent core.Color, lines ...string) {
	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len([]rune(line)))
	}
	boxW += 4
	boxH := len(lines) + 2
	if len(lines) > 1 {
		boxH++ // Blank line under the title
	}

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	y := box.Y + 1
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = accent
		}
		x := box.X + (boxW-len([]rune(line)))/2
		dst.DrawTextColor(x, y, line, c)
		y++
		if i == 0 && len(lines) > 1 {
			y++
		}
	}
}
