package render

import "github.com/opd-ai/go-orbit/pkg/physics"

// DefaultVelocityLead is how far, in seconds of travel, the view shifts
// ahead of a moving target.
const DefaultVelocityLead = 0.02

// Camera maps world coordinates to screen coordinates for a view of
// Width x Height pixels: screen = world - Target + Offset.
type Camera struct {
	Target physics.Vector2D
	Offset physics.Vector2D
	Width  float64
	Height float64
	Lead   float64
}

// NewCamera creates a camera centred on the world origin.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Offset: physics.Vector2D{X: width / 2, Y: height / 2},
		Width:  width,
		Height: height,
		Lead:   DefaultVelocityLead,
	}
}

// Resize changes the screen size, keeping the current target.
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}

// Follow centres the view on position, shifted ahead along velocity.
func (c *Camera) Follow(position, velocity physics.Vector2D) {
	c.Target = position
	c.Offset = physics.Vector2D{
		X: c.Width/2 - velocity.X*c.Lead,
		Y: c.Height/2 - velocity.Y*c.Lead,
	}
}

// ToScreen converts a world position to screen coordinates.
func (c *Camera) ToScreen(world physics.Vector2D) physics.Vector2D {
	return world.Sub(c.Target).Add(c.Offset)
}

// ToWorld converts a screen position to world coordinates.
func (c *Camera) ToWorld(screen physics.Vector2D) physics.Vector2D {
	return screen.Sub(c.Offset).Add(c.Target)
}

// Viewport returns the visible area in world coordinates.
func (c *Camera) Viewport() physics.Rect {
	return physics.RectFromBounds(
		c.ToWorld(physics.Vector2D{}),
		c.ToWorld(physics.Vector2D{X: c.Width, Y: c.Height}),
	)
}

// Visible reports whether any part of a world-space rect is on screen.
func (c *Camera) Visible(area physics.Rect) bool {
	return c.Viewport().Intersects(area)
}
