package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the standard mission parameters. Kept in sync
// with defaults/lander.yaml, which is the canonical copy shipped to users.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:     0.05,
			ThrustPower: 0.15,
			RotateSpeed: 3.0,
		},
		Landing: LandingConfig{
			MaxAngle: 15.0,
			MaxVY:    2.0,
			MaxVX:    1.2,
		},
		Terrain: TerrainConfig{
			Step:      10,
			PadWidth:  80.0,
			Roughness: 180.0,
			Decay:     0.6,
		},
		Vehicle: VehicleConfig{
			Fuel:       500,
			LegOffset:  8.0,
			StartDrift: 0.75,
			StartVY:    0.5,
		},
	}
}
