// Package animatable defines the value contract the motion engine animates over,
// along with ready-made value types for the common cases.
//
// # The contract
//
// Any type whose values form a vector space can be animated: it needs addition,
// subtraction, scalar multiplication, a magnitude, and interpolation. The
// [Animatable] constraint captures exactly that. The zero value of the type is
// its additive zero.
//
//	type Point struct{ X, Y float32 }
//
//	func (p Point) Add(o Point) Point              { return Point{p.X + o.X, p.Y + o.Y} }
//	func (p Point) Sub(o Point) Point              { return Point{p.X - o.X, p.Y - o.Y} }
//	func (p Point) Mul(s float32) Point            { return Point{p.X * s, p.Y * s} }
//	func (p Point) Magnitude() float32             { return float32(math.Hypot(float64(p.X), float64(p.Y))) }
//	func (p Point) Interpolate(o Point, t float32) Point {
//		return p.Add(o.Sub(p).Mul(t))
//	}
//
// # Built-in value types
//
//   - [Float]: a single scalar.
//   - [Transform]: 2D translation, uniform scale, and rotation, with
//     shortest-path rotation interpolation.
//   - [Color]: normalized RGBA.
package animatable

// Animatable constrains a value type the engine can animate.
//
// Implementations must satisfy the interpolation identities
// a.Interpolate(b, 0) == a and a.Interpolate(b, 1) == b, and Add/Sub/Mul must
// form a vector space closed under interpolation. Magnitude reports the
// distance from the zero value and drives completion detection.
type Animatable[T any] interface {
	// Add returns the component-wise sum of the value and other.
	Add(other T) T
	// Sub returns the component-wise difference of the value and other.
	Sub(other T) T
	// Mul returns the value scaled by factor.
	Mul(factor float32) T
	// Magnitude returns the distance of the value from zero.
	Magnitude() float32
	// Interpolate returns the value blended toward target by t in [0, 1].
	Interpolate(target T, t float32) T
}

// Lerp interpolates between two values of any animatable type. It is the
// free-function form of Interpolate, convenient for batch helpers.
func Lerp[T Animatable[T]](a, b T, t float32) T {
	return a.Interpolate(b, t)
}
