// Package presets provides named spring and tween configurations, both as
// constants and loadable from a yaml file.
package presets

import (
	"github.com/tanema/gween/ease"

	"github.com/go-drift/motion/pkg/spring"
)

// Well-known spring feels. Stiffness/damping pairs follow the conventional
// spring-preset vocabulary used across animation libraries.
var (
	// Gentle settles softly with little overshoot.
	Gentle = spring.Spring{Stiffness: 120, Damping: 14, Mass: 1}
	// Wobbly overshoots visibly before settling.
	Wobbly = spring.Spring{Stiffness: 180, Damping: 12, Mass: 1}
	// Stiff snaps quickly with minimal bounce.
	Stiff = spring.Spring{Stiffness: 210, Damping: 20, Mass: 1}
	// Slow approaches the target gradually without overshoot.
	Slow = spring.Spring{Stiffness: 280, Damping: 60, Mass: 1}
	// Molasses is heavily damped and very gradual.
	Molasses = spring.Spring{Stiffness: 280, Damping: 120, Mass: 1}
)

// easings maps yaml-friendly names to easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
}

// EasingByName returns the easing function registered under name.
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}
