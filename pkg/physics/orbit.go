package physics

import "math"

// OrbitParams tunes the orbit-assist steering behaviour
type OrbitParams struct {
	MaxTurnRate      float64 // radians per second
	RadialCorrection float64 // gain on the chord-vs-arc drift correction
}

// DefaultOrbitParams returns the steering tuning used by the arcade player
func DefaultOrbitParams() OrbitParams {
	return OrbitParams{
		MaxTurnRate:      6,
		RadialCorrection: 1,
	}
}

// OrbitHeading returns the tangential heading around anchor that keeps the
// current sense of rotation. A body moving exactly radially circles
// counter-clockwise.
func OrbitHeading(position, velocity, anchor Vector2D) float64 {
	radial := position.Sub(anchor)
	if radial.Cross(velocity) < 0 {
		return radial.Angle() - math.Pi/2
	}
	return radial.Angle() + math.Pi/2
}

// OrbitSteer rotates velocity toward the tangential heading around anchor,
// turning at most MaxTurnRate*dt, then adds an inward component that cancels
// the outward drift of moving along a tangent instead of the arc.
//
// Speed is preserved by the rotation; only the radial correction changes it.
// A body sitting on the anchor or standing still is returned unchanged.
func OrbitSteer(position, velocity, anchor Vector2D, deltaTime float64, params OrbitParams) Vector2D {
	radial := position.Sub(anchor)
	dist := radial.Length()
	if dist < Epsilon || velocity.Length() < Epsilon {
		return velocity
	}

	heading := OrbitHeading(position, velocity, anchor)
	turn := WrapAngle(heading - velocity.Angle())
	maxTurn := params.MaxTurnRate * deltaTime
	turn = Clamp(turn, -maxTurn, maxTurn)
	velocity = velocity.Rotate(turn)

	if deltaTime <= 0 || params.RadialCorrection == 0 {
		return velocity
	}

	tangential := math.Abs(velocity.Dot(FromAngle(heading, 1)))
	ratio := math.Min(1, tangential*deltaTime/dist)
	drift := dist * (1 - math.Cos(math.Asin(ratio)))
	inward := radial.Scale(-1 / dist)

	return velocity.Add(inward.Scale(params.RadialCorrection * drift / deltaTime))
}
