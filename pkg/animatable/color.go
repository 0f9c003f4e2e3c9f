package animatable

import "math"

// Color is an RGBA color with normalized components in [0, 1].
//
// Arithmetic is unclamped so that colors behave as a vector space during
// animation; construction clamps, and ToRGBA clamps on the way out.
type Color struct {
	// R is the red component (0.0-1.0).
	R float32
	// G is the green component (0.0-1.0).
	G float32
	// B is the blue component (0.0-1.0).
	B float32
	// A is the alpha component (0.0-1.0).
	A float32
}

// NewColor creates a color from normalized components, clamping each into [0, 1].
func NewColor(r, g, b, a float32) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ToRGBA returns the color as 8-bit components, clamping each channel.
func (c Color) ToRGBA() (r, g, b, a uint8) {
	return uint8(clamp01(c.R) * 255),
		uint8(clamp01(c.G) * 255),
		uint8(clamp01(c.B) * 255),
		uint8(clamp01(c.A) * 255)
}

// Add returns the channel-wise sum of the two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Sub returns the channel-wise difference of the two colors.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// Mul returns the color with every channel scaled by factor.
func (c Color) Mul(factor float32) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor, c.A * factor}
}

// Magnitude returns the Euclidean length over all four channels.
func (c Color) Magnitude() float32 {
	sum := c.R*c.R + c.G*c.G + c.B*c.B + c.A*c.A
	return float32(math.Sqrt(float64(sum)))
}

// Interpolate blends each channel toward target by t.
func (c Color) Interpolate(target Color, t float32) Color {
	return Color{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
		A: c.A + (target.A-c.A)*t,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
