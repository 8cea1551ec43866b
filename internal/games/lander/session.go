package lander

import (
	"math/rand"

	"github.com/vperelygin/moonlander/internal/config"
)

// World dimensions in simulation units. Rendering scales these to whatever
// terminal size is available, so the physics never depends on cell counts.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// Session owns one flight: the terrain, the vehicle, and the random source
// that produced both. Reset replaces terrain and vehicle together, so a tick
// can never observe an old vehicle against a new surface.
type Session struct {
	cfg     config.LanderConfig
	rng     *rand.Rand
	terrain *Terrain
	vehicle *Vehicle
	outcome *Outcome
	ticks   uint64
}

// NewSession creates a session and generates its first flight.
func NewSession(seed int64, cfg config.LanderConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset discards the current flight and generates a fresh terrain and
// vehicle from the given seed.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.terrain = GenerateTerrain(s.rng, WorldW, WorldH, s.cfg.Terrain)
	s.vehicle = NewVehicle(s.rng, WorldW/2, 50, s.cfg.Vehicle)
	s.outcome = nil
	s.ticks = 0
}

// Tick advances the flight by one frame. Returns a non-nil Outcome exactly
// once, at the terminating tick; afterwards the session is frozen until
// Reset.
func (s *Session) Tick(in Inputs) *Outcome {
	if s.vehicle.Status != StatusActive {
		return nil
	}
	s.ticks++
	if o := s.vehicle.Step(s.terrain, in, s.cfg); o != nil {
		s.outcome = o
		return o
	}
	return nil
}

// Terrain returns the current flight's surface profile.
func (s *Session) Terrain() *Terrain {
	return s.terrain
}

// Vehicle returns the current flight's vehicle state.
func (s *Session) Vehicle() *Vehicle {
	return s.vehicle
}

// Outcome returns the flight outcome, or nil while still airborne.
func (s *Session) Outcome() *Outcome {
	return s.outcome
}

// Ticks returns the number of simulation ticks flown this flight.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Altitude returns the vehicle's height above the surface directly below
// it, measured from the legs. Used by the HUD.
func (s *Session) Altitude() float64 {
	return s.terrain.HeightAt(s.vehicle.X) - (s.vehicle.Y + s.cfg.Vehicle.LegOffset)
}
