package physics

import "math"

// ThrustParams tunes the speed-dependent thrust model
type ThrustParams struct {
	Deceleration float64 // fractional speed lost per second with no thrust
	Power        float64 // acceleration added per second while thrusting
	MinSpeed     float64 // speed floor before dividing
	StallNudge   float64 // downward velocity forced on a stationary body
}

// DefaultThrustParams returns the tuning used by the arcade player
func DefaultThrustParams() ThrustParams {
	return ThrustParams{
		Deceleration: 0.5,
		Power:        200,
		MinSpeed:     Epsilon,
		StallNudge:   0.01,
	}
}

// ApplyThrust scales velocity by 1 + (thrust*Power/speed - Deceleration)*dt.
//
// Dividing the thrust term by the current speed turns it into a constant
// linear acceleration along the heading, so slow bodies are not starved.
// A stationary body has no heading; it is nudged toward -y first.
func ApplyThrust(velocity Vector2D, deltaTime, thrustInput float64, params ThrustParams) Vector2D {
	floor := math.Max(params.MinSpeed, Epsilon)
	speed := velocity.Length()
	if speed < floor {
		velocity.Y = -params.StallNudge
		speed = floor
	}

	factor := 1 + (-params.Deceleration+thrustInput*params.Power/speed)*deltaTime
	return velocity.Scale(factor)
}
