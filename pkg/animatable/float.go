package animatable

import "math"

// Float is a scalar animatable value.
type Float float32

// Add returns f + other.
func (f Float) Add(other Float) Float { return f + other }

// Sub returns f - other.
func (f Float) Sub(other Float) Float { return f - other }

// Mul returns f scaled by factor.
func (f Float) Mul(factor float32) Float { return f * Float(factor) }

// Magnitude returns the absolute value of f.
func (f Float) Magnitude() float32 {
	return float32(math.Abs(float64(f)))
}

// Interpolate returns f blended toward target by t.
func (f Float) Interpolate(target Float, t float32) Float {
	return f + (target-f)*Float(t)
}
