package presets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/spring"
	"github.com/go-drift/motion/pkg/tween"
)

// FileName is the preset file LoadOptional looks for.
const FileName = "motion.yaml"

// Library holds named spring and tween presets loaded from a file.
type Library struct {
	springs map[string]spring.Spring
	tweens  map[string]tween.Tween
}

// Spring returns the spring preset registered under name.
func (l *Library) Spring(name string) (spring.Spring, bool) {
	s, ok := l.springs[name]
	return s, ok
}

// Tween returns the tween preset registered under name.
func (l *Library) Tween(name string) (tween.Tween, bool) {
	tw, ok := l.tweens[name]
	return tw, ok
}

// springParams is the yaml shape of one spring preset.
type springParams struct {
	Stiffness float32 `yaml:"stiffness"`
	Damping   float32 `yaml:"damping"`
	Mass      float32 `yaml:"mass,omitempty"`
	Velocity  float32 `yaml:"velocity,omitempty"`
}

// tweenParams is the yaml shape of one tween preset.
type tweenParams struct {
	Duration string `yaml:"duration"`
	Easing   string `yaml:"easing,omitempty"`
}

// fileSchema is the yaml shape of a preset file:
//
//	springs:
//	  hero:
//	    stiffness: 180
//	    damping: 12
//	tweens:
//	  fade:
//	    duration: 250ms
//	    easing: out-cubic
type fileSchema struct {
	Springs map[string]springParams `yaml:"springs"`
	Tweens  map[string]tweenParams  `yaml:"tweens"`
}

// Parse builds a library from yaml preset data. Springs default to mass 1
// when unspecified; tweens default to linear easing and the package default
// duration. Unknown easing names are an error.
func Parse(data []byte) (*Library, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	lib := &Library{
		springs: make(map[string]spring.Spring, len(schema.Springs)),
		tweens:  make(map[string]tween.Tween, len(schema.Tweens)),
	}

	for name, p := range schema.Springs {
		s := spring.Spring{
			Stiffness: p.Stiffness,
			Damping:   p.Damping,
			Mass:      p.Mass,
			Velocity:  p.Velocity,
		}
		if s.Mass == 0 {
			s.Mass = 1
		}
		lib.springs[name] = s
	}

	for name, p := range schema.Tweens {
		tw := tween.Default()
		if p.Duration != "" {
			d, err := time.ParseDuration(p.Duration)
			if err != nil {
				return nil, fmt.Errorf("tween preset %q: %w", name, err)
			}
			tw.Duration = d
		}
		if p.Easing != "" {
			fn, ok := EasingByName(p.Easing)
			if !ok {
				return nil, fmt.Errorf("tween preset %q: unknown easing %q", name, p.Easing)
			}
			tw.Easing = fn
		}
		lib.tweens[name] = tw
	}

	return lib, nil
}

// Load reads and parses a preset file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return Parse(data)
}

// LoadOptional reads motion.yaml from dir if present. A missing file yields
// an empty library, not an error.
func LoadOptional(dir string) (*Library, error) {
	lib, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Library{
				springs: map[string]spring.Spring{},
				tweens:  map[string]tween.Tween{},
			}, nil
		}
		return nil, err
	}
	return lib, nil
}
