package lander

import (
	"fmt"
	"math"

	"github.com/vperelygin/moonlander/internal/config"
	"github.com/vperelygin/moonlander/internal/core"
)

// OutcomeKind tags how a flight ended.
type OutcomeKind int

const (
	OutcomeLanded OutcomeKind = iota
	OutcomeCrashedOffPad
	OutcomeCrashedTilted
	OutcomeCrashedTooFast
)

// String returns the storage name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashedOffPad:
		return "crashed_off_pad"
	case OutcomeCrashedTilted:
		return "crashed_tilted"
	case OutcomeCrashedTooFast:
		return "crashed_too_fast"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of the tick a flight terminates on.
// Score is set only for landings; Speed carries the measured vertical
// impact speed for too-fast crashes.
type Outcome struct {
	Kind  OutcomeKind
	Score int
	Speed float64
}

// Message returns the banner text shown by the presentation layer.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeLanded:
		return fmt.Sprintf("THE EAGLE HAS LANDED! SCORE %d", o.Score)
	case OutcomeCrashedOffPad:
		return "CRASHED - MISSED THE LANDING PAD"
	case OutcomeCrashedTilted:
		return "CRASHED - TIPPED OVER ON TOUCHDOWN"
	case OutcomeCrashedTooFast:
		return fmt.Sprintf("CRASHED - CAME IN TOO FAST (%.1f)", o.Speed)
	default:
		return ""
	}
}

// classify decides the landing outcome at the first tick the lander's legs
// reach the ground. Conditions are checked in player-intuitive precedence:
// wrong place beats wrong attitude beats wrong speed. The vehicle is snapped
// onto the surface either way; velocity is zeroed only on a good landing.
func classify(v *Vehicle, t *Terrain, groundY float64, cfg config.LanderConfig) Outcome {
	// Impact speed must be captured before velocity is zeroed, or the
	// landing speed bonus collapses to a constant.
	impactVY := v.VY

	padLeft, padRight := t.PadBounds()
	onPad := v.X >= padLeft && v.X <= padRight
	tilt := core.AngleFromUpright(v.Angle)

	v.Y = groundY - cfg.Vehicle.LegOffset

	switch {
	case !onPad:
		v.Status = StatusCrashed
		return Outcome{Kind: OutcomeCrashedOffPad}
	case tilt > cfg.Landing.MaxAngle:
		v.Status = StatusCrashed
		return Outcome{Kind: OutcomeCrashedTilted}
	case math.Abs(impactVY) > cfg.Landing.MaxVY || math.Abs(v.VX) > cfg.Landing.MaxVX:
		v.Status = StatusCrashed
		return Outcome{Kind: OutcomeCrashedTooFast, Speed: math.Abs(impactVY)}
	default:
		v.Status = StatusLanded
		v.VX = 0
		v.VY = 0
		bonus := int(math.Round((cfg.Landing.MaxVY - math.Abs(impactVY)) * 100))
		return Outcome{Kind: OutcomeLanded, Score: v.Fuel + bonus}
	}
}
