package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Strategy names the teleport targeting strategy.
type Strategy string

const (
	// StrategyDirect traces a single straight segment from the aim origin.
	StrategyDirect Strategy = "direct"
	// StrategyBallistic simulates a projectile launched along the aim.
	StrategyBallistic Strategy = "ballistic"
)

// Settings contains every tunable of the locomotion controller. The core only reads it.
type Settings struct {
	Teleport struct {
		// Strategy is either "direct" or "ballistic".
		Strategy Strategy
		// MaxDistance is the length of the direct strategy's segment.
		MaxDistance float32
		// LaunchSpeed is the initial speed of the ballistic projectile.
		LaunchSpeed float32
		// SimulationHorizon is the number of seconds the projectile is simulated for.
		SimulationHorizon float32
		// SimulationFrequency is the number of simulation sub-steps per second.
		SimulationFrequency float32
		// GravityZ is the vertical acceleration applied to the projectile.
		GravityZ float32
		// ProjectileRadius is the collision radius of the projectile.
		ProjectileRadius float32
		// ProjectionExtent is the half-size of the box used to snap hits onto walkable surfaces.
		ProjectionExtent Vector
	}
	Transition struct {
		// FadeDuration is the length of each of the fade out and fade in, in seconds.
		FadeDuration float32
		FadeColour   Colour
	}
	Vignette struct {
		// Enabled mirrors whether a blinker material is assigned.
		Enabled bool
		// RadiusVsVelocity maps speed to the visible radius fraction. No keys disables the vignette.
		RadiusVsVelocity []CurveKey
	}
	Character struct {
		// WalkSpeed is the speed reached at full throttle.
		WalkSpeed float32
		// HalfHeight is the capsule half-height; teleports place the capsule centre this far above the floor.
		HalfHeight float32
		Radius     float32
	}
	Debug struct {
		LogTeleport bool
		LogVignette bool
		LogMovement bool
	}
}

// Vector is a TOML friendly three component vector.
type Vector struct {
	X, Y, Z float32
}

// Vec3 converts the vector to an mgl32.Vec3.
func (v Vector) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Colour is a linear RGBA colour.
type Colour struct {
	R, G, B, A float32
}

// Vec4 converts the colour to an mgl32.Vec4.
func (c Colour) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// CurveKey is a single key of a float curve.
type CurveKey struct {
	Time  float32
	Value float32
}

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Teleport.Strategy = StrategyBallistic
	s.Teleport.MaxDistance = 1000
	s.Teleport.LaunchSpeed = 800
	s.Teleport.SimulationHorizon = 1
	s.Teleport.SimulationFrequency = 20
	s.Teleport.GravityZ = -980
	s.Teleport.ProjectileRadius = 10
	s.Teleport.ProjectionExtent = Vector{X: 100, Y: 100, Z: 100}

	s.Transition.FadeDuration = 1
	s.Transition.FadeColour = Colour{A: 1}

	s.Vignette.Enabled = true
	s.Vignette.RadiusVsVelocity = []CurveKey{
		{Time: 0, Value: 1},
		{Time: 150, Value: 0.8},
		{Time: 600, Value: 0.5},
	}

	s.Character.WalkSpeed = 600
	s.Character.HalfHeight = 88
	s.Character.Radius = 34
	return s
}

// Validate checks that the settings can drive the controller.
func (s Settings) Validate() error {
	switch s.Teleport.Strategy {
	case StrategyDirect:
		if s.Teleport.MaxDistance <= 0 {
			return errors.New("teleport max distance must be positive")
		}
	case StrategyBallistic:
		if s.Teleport.LaunchSpeed <= 0 {
			return errors.New("teleport launch speed must be positive")
		}
		if s.Teleport.SimulationHorizon <= 0 {
			return errors.New("teleport simulation horizon must be positive")
		}
		if s.Teleport.SimulationFrequency <= 0 {
			return errors.New("teleport simulation frequency must be positive")
		}
		if s.Teleport.ProjectileRadius <= 0 {
			return errors.New("teleport projectile radius must be positive")
		}
	default:
		return fmt.Errorf("unknown teleport strategy %q", s.Teleport.Strategy)
	}
	e := s.Teleport.ProjectionExtent
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return errors.New("teleport projection extent must not be negative")
	}
	if s.Transition.FadeDuration < 0 {
		return errors.New("fade duration must not be negative")
	}
	if s.Character.WalkSpeed < 0 {
		return errors.New("walk speed must not be negative")
	}
	if s.Character.HalfHeight < 0 {
		return errors.New("capsule half height must not be negative")
	}
	if s.Character.Radius < 0 {
		return errors.New("capsule radius must not be negative")
	}
	return nil
}

// SortedCurveKeys returns the radius curve keys ordered by time.
func (s Settings) SortedCurveKeys() []CurveKey {
	keys := make([]CurveKey, len(s.Vignette.RadiusVsVelocity))
	copy(keys, s.Vignette.RadiusVsVelocity)
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Time < keys[j].Time })
	return keys
}

// isYAML reports whether path names a YAML file. Every other file is read as TOML.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Encode encodes s in the format matching the extension of path.
func Encode(path string, s Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

func decode(path string, data []byte, s *Settings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}
	return toml.Unmarshal(data, s)
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := Encode(path, Default())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load reads the settings file at path, as YAML when the extension says so and as TOML
// otherwise. If it does not exist yet, the defaults are written to it and returned.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := Default()
	if err = decode(path, data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}
