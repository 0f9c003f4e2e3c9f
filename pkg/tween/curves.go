package tween

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns an easing function matching CSS cubic-bezier(). The
// parameters define the two control points (x1,y1) and (x2,y2); the curve
// runs from (0,0) to (1,1). The result follows the (t, b, c, d) easing
// convention so it can be used anywhere an ease.TweenFunc is accepted.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := float64(t / d)
		return b + c*float32(bezierSolve(x1, y1, x2, y2, p))
	}
}

// Standard CSS curves.
var (
	// EaseCurve is the CSS ease curve.
	EaseCurve = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseInCurve is the CSS ease-in curve.
	EaseInCurve = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOutCurve is the CSS ease-out curve.
	EaseOutCurve = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOutCurve is the CSS ease-in-out curve.
	EaseInOutCurve = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

func bezierSolve(x1, y1, x2, y2, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	u := t
	// Newton-Raphson converges quickly for most inputs.
	for i := 0; i < 8; i++ {
		x := bezierSample(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			return bezierSample(y1, y2, clampUnit(u))
		}
		dx := bezierDerivative(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	// Bisection fallback guarantees a stable solution in [0,1].
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for i := 0; i < 12; i++ {
		x := bezierSample(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return bezierSample(y1, y2, u)
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
