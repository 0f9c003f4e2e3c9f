package animatable

import "math"

// Transform is a 2D transformation with translation, uniform scale, and
// rotation in radians.
//
// Rotation interpolates along the shortest angular path, so animating from
// 350 degrees to 10 degrees sweeps through 0 rather than back through 180.
type Transform struct {
	// X is the horizontal translation component.
	X float32
	// Y is the vertical translation component.
	Y float32
	// Scale is the uniform scale factor.
	Scale float32
	// Rotation is the rotation in radians.
	Rotation float32
}

// NewTransform creates a transform with the given components.
func NewTransform(x, y, scale, rotation float32) Transform {
	return Transform{X: x, Y: y, Scale: scale, Rotation: rotation}
}

// IdentityTransform returns the identity transform: no translation, unit
// scale, no rotation.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Add returns the component-wise sum of the two transforms.
func (tr Transform) Add(other Transform) Transform {
	return Transform{
		X:        tr.X + other.X,
		Y:        tr.Y + other.Y,
		Scale:    tr.Scale + other.Scale,
		Rotation: tr.Rotation + other.Rotation,
	}
}

// Sub returns the component-wise difference of the two transforms.
func (tr Transform) Sub(other Transform) Transform {
	return Transform{
		X:        tr.X - other.X,
		Y:        tr.Y - other.Y,
		Scale:    tr.Scale - other.Scale,
		Rotation: tr.Rotation - other.Rotation,
	}
}

// Mul returns the transform with every component scaled by factor.
func (tr Transform) Mul(factor float32) Transform {
	return Transform{
		X:        tr.X * factor,
		Y:        tr.Y * factor,
		Scale:    tr.Scale * factor,
		Rotation: tr.Rotation * factor,
	}
}

// Magnitude returns the Euclidean length over all four components.
func (tr Transform) Magnitude() float32 {
	sum := tr.X*tr.X + tr.Y*tr.Y + tr.Scale*tr.Scale + tr.Rotation*tr.Rotation
	return float32(math.Sqrt(float64(sum)))
}

// Interpolate blends toward target by t. Translation and scale interpolate
// linearly; rotation takes the shortest angular path.
func (tr Transform) Interpolate(target Transform, t float32) Transform {
	return Transform{
		X:        tr.X + (target.X-tr.X)*t,
		Y:        tr.Y + (target.Y-tr.Y)*t,
		Scale:    tr.Scale + (target.Scale-tr.Scale)*t,
		Rotation: tr.Rotation + shortestAngle(target.Rotation-tr.Rotation)*t,
	}
}

// shortestAngle wraps an angular difference into (-pi, pi].
func shortestAngle(delta float32) float32 {
	const twoPi = 2 * math.Pi
	d := math.Mod(float64(delta), twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return float32(d)
}
