// Package lander implements a classic lunar lander simulation.
// A physics-driven module descends toward procedurally generated terrain
// and must touch down on the flat landing pad, upright and slow.
package lander

import (
	"fmt"
	"math"
	"time"

	"github.com/vperelygin/moonlander/internal/config"
	"github.com/vperelygin/moonlander/internal/core"
)

// Visual characters for rendering
const (
	TerrainChar = '█'
	PadChar     = '▀'
	FlameChar   = '✦'
	DebrisChar  = '✱'
)

// Package-level settings applied by the CLI before game creation.
var (
	configPath string
	preset     config.Preset
)

// SetConfigPath sets a custom YAML config path for the next New call.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects a mission preset for the next New call.
func SetPreset(p string) {
	preset = config.Preset(p)
}

// Game drives one lander session and renders it. It implements core.Game.
type Game struct {
	session   *Session
	cfg       core.RuntimeConfig
	lcfg      config.LanderConfig
	paused    bool
	thrusting bool // Last tick fired the engine; drives the flame sprite
}

// New creates a new lander game instance, loading configuration and
// applying the selected mission preset.
func New() *Game {
	lcfg, err := config.LoadLander(configPath)
	if err != nil {
		lcfg = config.DefaultLanderConfig()
	}
	config.ApplyPreset(&lcfg, preset)
	return &Game{lcfg: lcfg}
}

// NewWithConfig creates a game with explicit simulation parameters.
// Used by tests and the SSH server, which skip the file search.
func NewWithConfig(lcfg config.LanderConfig) *Game {
	return &Game{lcfg: lcfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moonlander"
}

// Reset initializes or restarts the flight.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false
	g.thrusting = false

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if g.session == nil {
		g.session = NewSession(seed, g.lcfg)
	} else {
		g.session.Reset(seed)
	}
}

// Step advances the flight by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.Vehicle().Status != StatusActive {
		return core.StepResult{State: g.State()}
	}

	inputs := Inputs{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
	}
	g.thrusting = inputs.Thrust && g.session.Vehicle().Fuel > 0

	g.session.Tick(inputs)
	return core.StepResult{State: g.State()}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	v := g.session.Vehicle()
	st := core.GameState{
		GameOver: v.Status != StatusActive,
		Landed:   v.Status == StatusLanded,
		FuelLeft: v.Fuel,
		Ticks:    int(g.session.Ticks()),
		Paused:   g.paused,
	}
	if o := g.session.Outcome(); o != nil {
		st.Message = o.Message()
		st.Outcome = o.Kind.String()
		if o.Kind == OutcomeLanded {
			st.Score = o.Score
		}
	}
	return st
}

// Session exposes the underlying simulation for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}

// Render draws the current flight to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 8 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	g.drawTerrain(dst)
	g.drawLander(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if o := g.session.Outcome(); o != nil {
		g.drawCenteredMessage(dst, o.Message(), "Press R for a new flight  |  Q to quit")
	}
}

// drawTerrain fills each screen column from the surface down, with the
// landing pad picked out in white.
func (g *Game) drawTerrain(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	t := g.session.Terrain()
	padLeft, padRight := t.PadBounds()

	for px := 0; px < w; px++ {
		worldX := (float64(px) + 0.5) * WorldW / float64(w)
		groundY := t.HeightAt(worldX)
		cy := int(groundY * float64(h) / WorldH)
		cy = core.Clamp(cy, 0, h-1)

		onPad := worldX >= padLeft && worldX <= padRight
		if onPad {
			dst.SetColored(px, cy, PadChar, core.ColorBrightWhite)
		} else {
			dst.SetColored(px, cy, TerrainChar, core.ColorGreen)
		}
		for y := cy + 1; y < h; y++ {
			dst.SetColored(px, y, TerrainChar, core.ColorGreen)
		}
	}
}

// landerGlyphs maps heading octants to sprites, starting upright and going
// clockwise.
var landerGlyphs = [8]rune{'▲', '◥', '►', '◢', '▼', '◣', '◄', '◤'}

// drawLander draws the module sprite, thrust flame, and crash debris.
func (g *Game) drawLander(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	v := g.session.Vehicle()

	sx := int(v.X * float64(w) / WorldW)
	sy := int(v.Y * float64(h) / WorldH)
	sx = core.Clamp(sx, 0, w-1)
	sy = core.Clamp(sy, 0, h-1)

	if v.Status == StatusCrashed {
		dst.SetColored(sx, sy, DebrisChar, core.ColorRed)
		dst.SetColored(sx-1, sy, '·', core.ColorRed)
		dst.SetColored(sx+1, sy, '·', core.ColorRed)
		return
	}

	octant := int(math.Round(core.NormalizeDeg(v.Angle)/45)) % 8
	dst.SetColored(sx, sy, landerGlyphs[octant], core.ColorBrightGreen)

	if g.thrusting && v.Status == StatusActive {
		// Flame trails opposite the heading.
		rad := (v.Angle - 90) * math.Pi / 180
		fx := sx - int(math.Round(math.Cos(rad)))
		fy := sy - int(math.Round(math.Sin(rad)))
		dst.SetColored(fx, fy, FlameChar, core.ColorBrightYellow)
	}
}

// drawHUD draws the flight instruments in the top-left corner.
func (g *Game) drawHUD(dst *core.Screen) {
	v := g.session.Vehicle()

	displayAngle := core.NormalizeDeg(v.Angle)
	if displayAngle > 180 {
		displayAngle -= 360
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("ALT %5.0f", g.session.Altitude()), core.ColorGreen)
	dst.DrawTextColored(1, 1, fmt.Sprintf("VX  %+5.2f", v.VX), core.ColorGreen)
	dst.DrawTextColored(1, 2, fmt.Sprintf("VY  %+5.2f", v.VY), core.ColorGreen)
	dst.DrawTextColored(1, 3, fmt.Sprintf("FUEL %4d", v.Fuel), fuelColor(v.Fuel))
	dst.DrawTextColored(1, 4, fmt.Sprintf("ANG %+4.0f", displayAngle), core.ColorGreen)

	hint := "←/→ rotate  space thrust"
	dst.DrawTextColored(dst.Width()-len([]rune(hint))-1, 0, hint, core.ColorGray)
}

// fuelColor shifts the fuel readout toward red as the tank empties.
func fuelColor(fuel int) core.Color {
	switch {
	case fuel <= 50:
		return core.ColorRed
	case fuel <= 150:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorGray)
}
