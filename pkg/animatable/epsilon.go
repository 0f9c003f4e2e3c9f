package animatable

// Epsilon thresholds for completion detection.
//
// An animation is considered settled when both the remaining distance to the
// target and the velocity magnitude fall below the epsilon in effect. Tighter
// values mean longer settle times but less visible snap; looser values settle
// sooner. These constants give one sensible default per value class; override
// per animation via the config's epsilon field when a call site needs
// different precision.
const (
	// DefaultEpsilon is the engine-wide default completion threshold.
	DefaultEpsilon float32 = 0.01

	// FloatEpsilon suits plain scalar animations.
	FloatEpsilon float32 = 0.001

	// ColorEpsilon is tight because small channel differences are visible.
	ColorEpsilon float32 = 0.0001

	// TransformEpsilon tolerates sub-pixel differences in translation,
	// scale, and rotation.
	TransformEpsilon float32 = 0.005

	// PageTransitionEpsilon suits large whole-surface movements where small
	// residual differences are imperceptible.
	PageTransitionEpsilon float32 = 0.01

	// HighPrecisionEpsilon is for visualizations that need maximum precision.
	HighPrecisionEpsilon float32 = 0.00001
)

// EpsilonHint selects an epsilon for a class of animation.
type EpsilonHint int

const (
	// HintDefault selects DefaultEpsilon.
	HintDefault EpsilonHint = iota
	// HintFloat selects FloatEpsilon.
	HintFloat
	// HintColor selects ColorEpsilon.
	HintColor
	// HintTransform selects TransformEpsilon.
	HintTransform
	// HintPageTransition selects PageTransitionEpsilon.
	HintPageTransition
	// HintHighPrecision selects HighPrecisionEpsilon.
	HintHighPrecision
)

// EpsilonFor returns the epsilon constant for the given hint.
func EpsilonFor(hint EpsilonHint) float32 {
	switch hint {
	case HintFloat:
		return FloatEpsilon
	case HintColor:
		return ColorEpsilon
	case HintTransform:
		return TransformEpsilon
	case HintPageTransition:
		return PageTransitionEpsilon
	case HintHighPrecision:
		return HighPrecisionEpsilon
	default:
		return DefaultEpsilon
	}
}
