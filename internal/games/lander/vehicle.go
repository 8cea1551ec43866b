package lander

import (
	"math"
	"math/rand"

	"github.com/vperelygin/moonlander/internal/config"
)

// Status is the vehicle's flight status. Exactly one status holds at any
// time; Landed and Crashed are terminal.
type Status int

const (
	StatusActive Status = iota
	StatusLanded
	StatusCrashed
)

// String returns the storage/display name of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusLanded:
		return "landed"
	case StatusCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Inputs is the per-tick control bundle from the platform layer.
type Inputs struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// Vehicle is the lander's mutable flight state. Position and velocity are
// in world units per tick; Angle is in degrees, 0 = upright, clockwise
// positive, and accumulates unbounded - it is wrapped only when read for
// display or landing evaluation. Once the status turns terminal the vehicle
// is frozen.
type Vehicle struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Fuel   int
	Status Status
}

// NewVehicle creates a vehicle at the given start position with a small
// random horizontal drift and a fixed initial descent rate.
func NewVehicle(rng *rand.Rand, startX, startY float64, cfg config.VehicleConfig) *Vehicle {
	return &Vehicle{
		X:      startX,
		Y:      startY,
		VX:     (rng.Float64()*2 - 1) * cfg.StartDrift,
		VY:     cfg.StartVY,
		Fuel:   cfg.Fuel,
		Status: StatusActive,
	}
}

// Step advances the vehicle by one tick: rotation, thrust, gravity,
// integration, horizontal wrap, then the ground check. Returns a non-nil
// Outcome at the tick the flight terminates; a no-op on non-active vehicles.
func (v *Vehicle) Step(t *Terrain, in Inputs, cfg config.LanderConfig) *Outcome {
	if v.Status != StatusActive {
		return nil
	}

	if in.RotateLeft {
		v.Angle -= cfg.Physics.RotateSpeed
	}
	if in.RotateRight {
		v.Angle += cfg.Physics.RotateSpeed
	}

	// Thrust acts along the heading; angle 0 points up.
	if in.Thrust && v.Fuel > 0 {
		rad := (v.Angle - 90) * math.Pi / 180
		v.VX += cfg.Physics.ThrustPower * math.Cos(rad)
		v.VY += cfg.Physics.ThrustPower * math.Sin(rad)
		v.Fuel--
	}

	v.VY += cfg.Physics.Gravity

	v.X += v.VX
	v.Y += v.VY

	// Toroidal horizontal topology: leaving one edge re-enters the other.
	if v.X < 0 {
		v.X += t.Width()
	} else if v.X > t.Width() {
		v.X -= t.Width()
	}

	groundY := t.HeightAt(v.X)
	if v.Y+cfg.Vehicle.LegOffset >= groundY {
		o := classify(v, t, groundY, cfg)
		return &o
	}
	return nil
}
