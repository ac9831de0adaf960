// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add", Vector2D{X: 1, Y: 2}.Add(Vector2D{X: 3, Y: 4}), Vector2D{X: 4, Y: 6}},
		{"sub", Vector2D{X: 5, Y: 7}.Sub(Vector2D{X: 2, Y: 3}), Vector2D{X: 3, Y: 4}},
		{"scale", Vector2D{X: 1.5, Y: -2}.Scale(2), Vector2D{X: 3, Y: -4}},
		{"scale_by_zero", Vector2D{X: 9, Y: 9}.Scale(0), Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_LengthAndDistance(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, want 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, want 25", v.LengthSquared())
	}
	if d := v.Distance(Vector2D{}); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
	if d := v.DistanceSquared(Vector2D{X: 3, Y: 1}); d != 9 {
		t.Errorf("DistanceSquared() = %v, want 9", d)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected Vector2D
	}{
		{"unit_vector_unchanged", Vector2D{X: 1, Y: 0}, Vector2D{X: 1, Y: 0}},
		{"regular_vector", Vector2D{X: 3, Y: 4}, Vector2D{X: 0.6, Y: 0.8}},
		{"zero_vector", Vector2D{}, Vector2D{X: 1, Y: 0}},
		{"below_epsilon", Vector2D{X: 0, Y: Epsilon / 2}, Vector2D{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if math.Abs(result.X-tt.expected.X) > 1e-9 || math.Abs(result.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Normalize() = %v, want %v", result, tt.expected)
			}
			if math.Abs(result.Length()-1) > 1e-9 {
				t.Errorf("Normalize() length = %v, want 1", result.Length())
			}
		})
	}
}

func TestVector2D_DotAndCross(t *testing.T) {
	x := Vector2D{X: 1, Y: 0}
	y := Vector2D{X: 0, Y: 1}

	if x.Dot(y) != 0 {
		t.Errorf("Dot of perpendicular vectors = %v, want 0", x.Dot(y))
	}
	if x.Cross(y) != 1 {
		t.Errorf("x.Cross(y) = %v, want 1", x.Cross(y))
	}
	if y.Cross(x) != -1 {
		t.Errorf("y.Cross(x) = %v, want -1", y.Cross(x))
	}
}

func TestVector2D_RotateAndAngle(t *testing.T) {
	v := Vector2D{X: 2, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-2) > 1e-9 {
		t.Errorf("Rotate(π/2) = %v, want (0, 2)", v)
	}
	if math.Abs(v.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("Angle() = %v, want π/2", v.Angle())
	}

	back := v.Rotate(-math.Pi / 2)
	if math.Abs(back.X-2) > 1e-9 || math.Abs(back.Y) > 1e-9 {
		t.Errorf("Rotate round trip = %v, want (2, 0)", back)
	}

	f := FromAngle(math.Pi, 3)
	if math.Abs(f.X+3) > 1e-9 || math.Abs(f.Y) > 1e-9 {
		t.Errorf("FromAngle(π, 3) = %v, want (-3, 0)", f)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"pi_stays_pi", math.Pi, math.Pi},
		{"minus_pi_becomes_pi", -math.Pi, math.Pi},
		{"three_halves_pi", 3 * math.Pi / 2, -math.Pi / 2},
		{"minus_three_halves_pi", -3 * math.Pi / 2, math.Pi / 2},
		{"many_turns", 4*math.Pi + 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAngle(tt.angle); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("WrapAngle(%v) = %v, want %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestVector2D_IsFinite(t *testing.T) {
	if !(Vector2D{X: 1, Y: -1}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vector2D{X: math.NaN()}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if (Vector2D{Y: math.Inf(1)}).IsFinite() {
		t.Error("infinite vector reported as finite")
	}
}
