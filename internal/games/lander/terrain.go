package lander

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vperelygin/moonlander/internal/config"
	"github.com/vperelygin/moonlander/internal/core"
)

// Point is a vertex of the terrain polyline, in world units.
// Y grows downward, matching screen coordinates.
type Point struct {
	X, Y float64
}

// Terrain is an immutable, x-ordered polyline approximating a jagged lunar
// surface with one flat segment marking the landing pad. Created once per
// flight; never mutated afterwards.
type Terrain struct {
	points   []Point
	padX     float64
	padY     float64
	padWidth float64
	width    float64
	height   float64
}

// GenerateTerrain synthesizes a surface profile via recursive midpoint
// displacement. The output is a pure function of the random source: reseed
// and regenerate to get a new terrain.
func GenerateTerrain(rng *rand.Rand, width, height float64, cfg config.TerrainConfig) *Terrain {
	t := &Terrain{
		padWidth: cfg.PadWidth,
		width:    width,
		height:   height,
	}

	// Pad sits in the middle horizontal band, on the lower part of the screen.
	t.padX = width*0.20 + rng.Float64()*width*0.50
	t.padY = height*0.55 + rng.Float64()*height*0.25

	step := cfg.Step
	if step <= 0 {
		step = 10
	}
	segments := int(width) / step
	heights := make([]float64, segments+1)

	// Seed both endpoints near pad height with small jitter, then displace.
	heights[0] = t.padY + (rng.Float64()*2-1)*40
	heights[segments] = t.padY + (rng.Float64()*2-1)*40

	minY := height * 0.45
	maxY := height - 20
	displace(rng, heights, 0, segments, cfg.Roughness, cfg.Decay, minY, maxY)

	t.points = make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		x := float64(i * step)
		y := t.padY
		if x < t.padX || x > t.padX+t.padWidth {
			if h := math.Round(heights[i]); h > 0 && !math.IsNaN(h) {
				y = h
			}
		}
		t.points = append(t.points, Point{X: x, Y: y})
	}

	return t
}

// displace sets the midpoint of [lo, hi] to the endpoint average plus a
// random offset scaled by roughness, then recurses on both halves with the
// roughness decayed. The self-similar decay produces natural jaggedness
// that flattens at fine scale.
func displace(rng *rand.Rand, heights []float64, lo, hi int, roughness, decay, minY, maxY float64) {
	if hi-lo <= 1 {
		return
	}
	mid := (lo + hi) / 2
	h := (heights[lo]+heights[hi])/2 + (rng.Float64()*2-1)*roughness
	heights[mid] = core.ClampF(h, minY, maxY)

	displace(rng, heights, lo, mid, roughness*decay, decay, minY, maxY)
	displace(rng, heights, mid, hi, roughness*decay, decay, minY, maxY)
}

// HeightAt returns the surface height at x via linear interpolation between
// the two bracketing terrain points. X outside the domain clamps to the
// nearest boundary point; degenerate terrain yields the bottom of the world
// as a safe sentinel.
func (t *Terrain) HeightAt(x float64) float64 {
	if len(t.points) < 2 {
		return t.height
	}
	if x <= t.points[0].X {
		return t.points[0].Y
	}
	last := t.points[len(t.points)-1]
	if x >= last.X {
		return last.Y
	}

	// First point strictly right of x; the bracket is [i-1, i].
	i := sort.Search(len(t.points), func(i int) bool {
		return t.points[i].X > x
	})
	p0, p1 := t.points[i-1], t.points[i]
	frac := (x - p0.X) / (p1.X - p0.X)
	return core.Lerp(p0.Y, p1.Y, frac)
}

// PadBounds returns the left and right x-coordinates of the landing pad.
func (t *Terrain) PadBounds() (left, right float64) {
	return t.padX, t.padX + t.padWidth
}

// PadY returns the constant height of the landing pad surface.
func (t *Terrain) PadY() float64 {
	return t.padY
}

// Width returns the horizontal extent of the world.
func (t *Terrain) Width() float64 {
	return t.width
}

// Height returns the vertical extent of the world.
func (t *Terrain) Height() float64 {
	return t.height
}

// Points returns the terrain polyline. Callers must not modify it.
func (t *Terrain) Points() []Point {
	return t.points
}
