package physics

import (
	"math"
	"testing"
)

func TestOrbitHeading(t *testing.T) {
	anchor := Vector2D{}
	position := Vector2D{X: 10, Y: 0}
	tests := []struct {
		name     string
		velocity Vector2D
		expected float64
	}{
		{"counter_clockwise", Vector2D{X: 0, Y: 5}, math.Pi / 2},
		{"clockwise", Vector2D{X: 0, Y: -5}, -math.Pi / 2},
		{"radial_defaults_counter_clockwise", Vector2D{X: 5, Y: 0}, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrbitHeading(position, tt.velocity, anchor); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("OrbitHeading() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOrbitSteer_TurnIsClamped(t *testing.T) {
	params := OrbitParams{MaxTurnRate: 6, RadialCorrection: 0}
	const dt = 0.01

	got := OrbitSteer(Vector2D{X: 10, Y: 0}, Vector2D{X: 5, Y: 0}, Vector2D{}, dt, params)

	if math.Abs(got.Angle()-0.06) > 1e-9 {
		t.Errorf("heading after steer = %v, want 0.06", got.Angle())
	}
	if math.Abs(got.Length()-5) > 1e-9 {
		t.Errorf("speed after steer = %v, want 5", got.Length())
	}
}

func TestOrbitSteer_NoOvershoot(t *testing.T) {
	params := OrbitParams{MaxTurnRate: 6, RadialCorrection: 0}

	got := OrbitSteer(Vector2D{X: 10, Y: 0}, Vector2D{X: 5, Y: 1}, Vector2D{}, 10, params)

	if math.Abs(got.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("heading = %v, want exactly tangential π/2", got.Angle())
	}
}

func TestOrbitSteer_RadialCorrectionPullsInward(t *testing.T) {
	params := DefaultOrbitParams()
	const dt = 0.01

	got := OrbitSteer(Vector2D{X: 10, Y: 0}, Vector2D{X: 0, Y: 50}, Vector2D{}, dt, params)

	if got.X >= 0 {
		t.Errorf("velocity %v has no inward component", got)
	}
	// One tangential step of s = 0.5 drifts d(1-cos(asin(s/d))) outward
	drift := 10 * (1 - math.Cos(math.Asin(0.05)))
	if math.Abs(-got.X*dt-drift) > 1e-9 {
		t.Errorf("inward step = %v, want %v", -got.X*dt, drift)
	}
}

func TestOrbitSteer_DegenerateInputs(t *testing.T) {
	params := DefaultOrbitParams()
	tests := []struct {
		name     string
		position Vector2D
		velocity Vector2D
		dt       float64
	}{
		{"on_anchor", Vector2D{}, Vector2D{X: 3, Y: 1}, 0.016},
		{"stationary", Vector2D{X: 10, Y: 0}, Vector2D{}, 0.016},
		{"huge_step", Vector2D{X: 10, Y: 0}, Vector2D{X: 0, Y: 500}, 5},
		{"zero_step", Vector2D{X: 10, Y: 0}, Vector2D{X: 1, Y: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrbitSteer(tt.position, tt.velocity, Vector2D{}, tt.dt, params)
			if !got.IsFinite() {
				t.Fatalf("OrbitSteer() = %v, want finite", got)
			}
		})
	}

	unchanged := OrbitSteer(Vector2D{}, Vector2D{X: 3, Y: 1}, Vector2D{}, 0.016, params)
	if unchanged != (Vector2D{X: 3, Y: 1}) {
		t.Errorf("steer on anchor changed velocity to %v", unchanged)
	}
}
