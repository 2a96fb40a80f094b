package crossroad

import "github.com/vovakirdan/tui-crossroad/internal/core"

// Camera frames the world around the player. It follows instantly, keeping
// the target at a fixed anchor inside the viewport, so the player can never
// scroll off screen.
type Camera struct {
	Target  core.Vec2
	AnchorX float64 // Fraction of viewport width left of the target
	AnchorY float64 // Fraction of viewport height above the target
}

// NewCamera returns a camera that keeps the target centred horizontally and
// in the lower third of the screen, leaving more road visible ahead.
func NewCamera() Camera {
	return Camera{AnchorX: 0.5, AnchorY: 0.65}
}

// Follow moves the camera target to the centre of box.
func (c *Camera) Follow(box core.RectF) {
	c.Target = box.Center()
}

// Viewport returns the world rectangle of size w x h seen by the camera.
// Horizontally it never shows past [0, worldWidth] when the view is narrower
// than the world, and centres the world when it is wider.
func (c Camera) Viewport(w, h, worldWidth float64) core.RectF {
	x := c.Target.X - c.AnchorX*w
	if w >= worldWidth {
		x = (worldWidth - w) * 0.5
	} else {
		x = core.ClampF(x, 0, worldWidth-w)
	}
	return core.NewRectF(x, c.Target.Y-c.AnchorY*h, w, h)
}
