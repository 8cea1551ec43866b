package lander

import (
	"math"
	"strings"
	"testing"

	"github.com/vperelygin/moonlander/internal/config"
)

func TestClassifyLanding(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)
	v := &Vehicle{X: 340, Y: 492.3, VX: 0.2, VY: 1.0, Angle: 5, Fuel: 120, Status: StatusActive}

	o := classify(v, terrain, 500, cfg)

	if o.Kind != OutcomeLanded {
		t.Fatalf("kind = %v, want landed", o.Kind)
	}
	// Score is remaining fuel plus a softness bonus scaled off the
	// vertical speed margin: (2.0 - 1.0) * 100 = 100.
	if want := 120 + 100; o.Score != want {
		t.Errorf("score = %d, want %d", o.Score, want)
	}
	if v.Status != StatusLanded {
		t.Errorf("status = %v, want landed", v.Status)
	}
	if v.VX != 0 || v.VY != 0 {
		t.Errorf("velocity (%v, %v) not zeroed after landing", v.VX, v.VY)
	}
	if want := 500 - cfg.Vehicle.LegOffset; v.Y != want {
		t.Errorf("Y = %v, want snapped to %v", v.Y, want)
	}
}

func TestClassifyPerfectTouchdownScore(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)
	v := &Vehicle{X: 340, Y: 492, VY: 0, Fuel: 50, Status: StatusActive}

	o := classify(v, terrain, 500, cfg)

	if o.Kind != OutcomeLanded {
		t.Fatalf("kind = %v, want landed", o.Kind)
	}
	// Zero impact speed earns the full bonus.
	if want := 50 + 200; o.Score != want {
		t.Errorf("score = %d, want %d", o.Score, want)
	}
}

func TestClassifyOffPad(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)

	// Off the pad trumps every other failure: tilted AND too fast here.
	v := &Vehicle{X: 100, Y: 492, VX: 2.0, VY: 5.0, Angle: 90, Fuel: 80, Status: StatusActive}
	o := classify(v, terrain, 500, cfg)

	if o.Kind != OutcomeCrashedOffPad {
		t.Fatalf("kind = %v, want crashed_off_pad", o.Kind)
	}
	if v.Status != StatusCrashed {
		t.Errorf("status = %v, want crashed", v.Status)
	}
	// Crashes keep their velocity; only landings zero it.
	if v.VX != 2.0 || v.VY != 5.0 {
		t.Errorf("velocity (%v, %v) changed on crash", v.VX, v.VY)
	}
	if want := 500 - cfg.Vehicle.LegOffset; v.Y != want {
		t.Errorf("Y = %v, want snapped to %v", v.Y, want)
	}
}

func TestClassifyTilted(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)

	// On the pad and slow, but way past the tilt limit. Tilt is judged
	// from the nearest upright, so 170 degrees reads as a 170 tilt.
	v := &Vehicle{X: 340, Y: 492, VY: 0.5, Angle: 170, Fuel: 80, Status: StatusActive}
	o := classify(v, terrain, 500, cfg)

	if o.Kind != OutcomeCrashedTilted {
		t.Fatalf("kind = %v, want crashed_tilted", o.Kind)
	}

	// Tilted beats too fast when both hold on the pad.
	v = &Vehicle{X: 340, Y: 492, VY: 5.0, Angle: 45, Fuel: 80, Status: StatusActive}
	o = classify(v, terrain, 500, cfg)
	if o.Kind != OutcomeCrashedTilted {
		t.Errorf("kind = %v, want crashed_tilted over too fast", o.Kind)
	}
}

func TestClassifyTiltWraparound(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)

	// 350 degrees is only 10 from upright and lands fine.
	v := &Vehicle{X: 340, Y: 492, VY: 0.5, Angle: 350, Fuel: 80, Status: StatusActive}
	o := classify(v, terrain, 500, cfg)
	if o.Kind != OutcomeLanded {
		t.Errorf("kind = %v for angle 350, want landed", o.Kind)
	}

	// Several full turns later is still upright.
	v = &Vehicle{X: 340, Y: 492, VY: 0.5, Angle: 720 + 5, Fuel: 80, Status: StatusActive}
	o = classify(v, terrain, 500, cfg)
	if o.Kind != OutcomeLanded {
		t.Errorf("kind = %v for angle 725, want landed", o.Kind)
	}
}

func TestClassifyTooFast(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)

	// Vertical overspeed.
	v := &Vehicle{X: 340, Y: 492, VY: 5.0, Angle: 0, Fuel: 80, Status: StatusActive}
	o := classify(v, terrain, 500, cfg)
	if o.Kind != OutcomeCrashedTooFast {
		t.Fatalf("kind = %v, want crashed_too_fast", o.Kind)
	}
	if o.Speed != 5.0 {
		t.Errorf("speed = %v, want measured impact speed 5.0", o.Speed)
	}

	// Horizontal overspeed alone also counts.
	v = &Vehicle{X: 340, Y: 492, VX: 2.0, VY: 0.5, Fuel: 80, Status: StatusActive}
	o = classify(v, terrain, 500, cfg)
	if o.Kind != OutcomeCrashedTooFast {
		t.Errorf("kind = %v for horizontal overspeed, want crashed_too_fast", o.Kind)
	}
}

func TestClassifyPadBoundariesInclusive(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)
	left, right := terrain.PadBounds()

	for _, x := range []float64{left, right} {
		v := &Vehicle{X: x, Y: 492, VY: 0.5, Fuel: 80, Status: StatusActive}
		if o := classify(v, terrain, 500, cfg); o.Kind != OutcomeLanded {
			t.Errorf("x=%v: kind = %v, want landed on pad edge", x, o.Kind)
		}
	}

	v := &Vehicle{X: left - 0.01, Y: 492, VY: 0.5, Fuel: 80, Status: StatusActive}
	if o := classify(v, terrain, 500, cfg); o.Kind != OutcomeCrashedOffPad {
		t.Errorf("kind = %v just left of pad, want crashed_off_pad", o.Kind)
	}
}

func TestStepLandingThroughTick(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain := flatTerrain(500)
	v := &Vehicle{X: 340, Y: 491, VY: 1.0, Fuel: 60, Status: StatusActive}

	o := v.Step(terrain, Inputs{}, cfg)
	if o == nil {
		t.Fatal("expected outcome on ground contact")
	}
	if o.Kind != OutcomeLanded {
		t.Fatalf("kind = %v, want landed", o.Kind)
	}

	// Gravity still applied on the final tick, so the impact speed the
	// bonus sees is 1.05, not the pre-tick 1.0.
	wantBonus := int(math.Round((cfg.Landing.MaxVY - 1.05) * 100))
	if want := 60 + wantBonus; o.Score != want {
		t.Errorf("score = %d, want %d", o.Score, want)
	}
}

func TestOutcomeMessages(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Outcome{Kind: OutcomeLanded, Score: 320}, "SCORE 320"},
		{Outcome{Kind: OutcomeCrashedOffPad}, "MISSED"},
		{Outcome{Kind: OutcomeCrashedTilted}, "TIPPED"},
		{Outcome{Kind: OutcomeCrashedTooFast, Speed: 3.2}, "TOO FAST (3.2)"},
	}

	for _, tc := range tests {
		if msg := tc.outcome.Message(); !strings.Contains(msg, tc.want) {
			t.Errorf("message %q does not contain %q", msg, tc.want)
		}
	}
}

func TestOutcomeKindStrings(t *testing.T) {
	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeLanded, "landed"},
		{OutcomeCrashedOffPad, "crashed_off_pad"},
		{OutcomeCrashedTilted, "crashed_tilted"},
		{OutcomeCrashedTooFast, "crashed_too_fast"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
