package lander

// Snapshot captures the complete flight state for determinism testing.
type Snapshot struct {
	Tick     uint64
	X, Y     float64
	VX, VY   float64
	Angle    float64
	Fuel     int
	Status   Status
	Score    int
	PadLeft  float64
	PadRight float64
	PadY     float64
}

// Snapshot returns the current flight snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	v := s.Vehicle()
	padLeft, padRight := s.Terrain().PadBounds()

	snap := Snapshot{
		Tick:     s.Ticks(),
		X:        v.X,
		Y:        v.Y,
		VX:       v.VX,
		VY:       v.VY,
		Angle:    v.Angle,
		Fuel:     v.Fuel,
		Status:   v.Status,
		PadLeft:  padLeft,
		PadRight: padRight,
		PadY:     s.Terrain().PadY(),
	}
	if o := s.Outcome(); o != nil && o.Kind == OutcomeLanded {
		snap.Score = o.Score
	}
	return snap
}
