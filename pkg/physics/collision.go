// pkg/physics/collision.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Body is the kinematic state shared by every circular simulated object.
type Body struct {
	Position Vector2D
	Velocity Vector2D
	Radius   float64
}

// Collider returns the body's collision circle
func (b *Body) Collider() Circle {
	return Circle{Center: b.Position, Radius: b.Radius}
}

// Overlaps reports whether two bodies are in contact
func (b *Body) Overlaps(other *Body) bool {
	return b.Collider().Collides(other.Collider())
}

// ResolveCollision separates two overlapping bodies and exchanges their
// velocity components along the line of centres.
//
// Both bodies are rotated into a frame where they share a horizontal line,
// pushed apart symmetrically until they just touch, and rotated back. The
// rotated x velocities are then swapped, which is a 1-D elastic collision
// between equal masses. Coincident centres fall back to a zero bearing so
// the pair separates along the x axis instead of producing NaN.
func ResolveCollision(a, b *Body) {
	delta := a.Position.Sub(b.Position)
	angle := 0.0
	if delta.LengthSquared() >= Epsilon*Epsilon {
		angle = -math.Atan2(delta.Y, delta.X)
	}

	posA := a.Position.Rotate(angle)
	posB := b.Position.Rotate(angle)

	overlap := (a.Radius + b.Radius - math.Abs(posA.X-posB.X)) / 2
	posA.X += overlap
	posB.X -= overlap

	a.Position = posA.Rotate(-angle)
	b.Position = posB.Rotate(-angle)

	velA := a.Velocity.Rotate(angle)
	velB := b.Velocity.Rotate(angle)
	velA.X, velB.X = velB.X, velA.X

	a.Velocity = velA.Rotate(-angle)
	b.Velocity = velB.Rotate(-angle)
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromBounds builds a rect from its minimum and maximum corners
func RectFromBounds(min, max Vector2D) Rect {
	return Rect{
		Center: Vector2D{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		Width:  max.X - min.X,
		Height: max.Y - min.Y,
	}
}

// Min returns the corner with the smallest coordinates
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the corner with the largest coordinates
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Intersects reports whether two rects overlap
func (r Rect) Intersects(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}

// ClosestPoint returns the point inside the rect nearest to p
func (r Rect) ClosestPoint(p Vector2D) Vector2D {
	min, max := r.Min(), r.Max()
	return Vector2D{
		X: Clamp(p.X, min.X, max.X),
		Y: Clamp(p.Y, min.Y, max.Y),
	}
}

// IntersectsCircle reports whether the circle strictly overlaps the rect.
// Touching edges do not count, matching Circle.Collides.
func (r Rect) IntersectsCircle(c Circle) bool {
	closest := r.ClosestPoint(c.Center)
	return closest.DistanceSquared(c.Center) < c.Radius*c.Radius
}
