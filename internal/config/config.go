// Package config provides YAML-based configuration loading for the
// moonlander simulation and its presets.
package config

// LanderConfig contains all tunable parameters of the simulation.
type LanderConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Landing LandingConfig `yaml:"landing"`
	Terrain TerrainConfig `yaml:"terrain"`
	Vehicle VehicleConfig `yaml:"vehicle"`
}

// PhysicsConfig defines the per-tick force model.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	ThrustPower float64 `yaml:"thrust_power"` // Acceleration along heading while thrusting
	RotateSpeed float64 `yaml:"rotate_speed"` // Degrees of rotation per tick
}

// LandingConfig defines the touchdown safety thresholds.
type LandingConfig struct {
	MaxAngle float64 `yaml:"max_angle"` // Max tilt from upright in degrees
	MaxVY    float64 `yaml:"max_vy"`    // Max vertical speed at impact
	MaxVX    float64 `yaml:"max_vx"`    // Max horizontal speed at impact
}

// TerrainConfig defines the surface generator parameters.
type TerrainConfig struct {
	Step      int     `yaml:"step"`      // Horizontal distance between terrain points
	PadWidth  float64 `yaml:"pad_width"` // Width of the flat landing pad
	Roughness float64 `yaml:"roughness"` // Initial midpoint displacement scale
	Decay     float64 `yaml:"decay"`     // Roughness multiplier per recursion level
}

// VehicleConfig defines the lander's initial state and geometry.
type VehicleConfig struct {
	Fuel       int     `yaml:"fuel"`        // Initial fuel units (one unit per thrust tick)
	LegOffset  float64 `yaml:"leg_offset"`  // Distance from center to leg tips
	StartDrift float64 `yaml:"start_drift"` // Max initial horizontal speed either way
	StartVY    float64 `yaml:"start_vy"`    // Initial descent rate
}

// Preset represents a named mission profile.
type Preset string

const (
	PresetCadet     Preset = "cadet"     // Generous fuel, forgiving tolerances
	PresetPilot     Preset = "pilot"     // The standard mission
	PresetCommander Preset = "commander" // Tight fuel and strict touchdown limits
)

// ApplyPreset adjusts fuel and landing tolerances for a mission profile.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *LanderConfig, preset Preset) {
	switch preset {
	case PresetCadet:
		cfg.Vehicle.Fuel = 750
		cfg.Landing.MaxAngle = 25
		cfg.Landing.MaxVY = 3.0
		cfg.Landing.MaxVX = 1.8
	case PresetCommander:
		cfg.Vehicle.Fuel = 300
		cfg.Landing.MaxAngle = 10
		cfg.Landing.MaxVY = 1.5
		cfg.Landing.MaxVX = 0.8
	}
}
