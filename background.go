package blackhole

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// nebulaNoise is the seeded simplex field behind the galaxy haze. The seed
// is part of the look; it never changes at runtime, so the background is as
// deterministic as the hash-noise layers.
var nebulaNoise = opensimplex.NewNormalized(421)

// starLayer describes one of the stacked point grids making up the
// starfield. Smaller cells give more, dimmer stars.
type starLayer struct {
	scale     float64 // grid cells per screen unit
	threshold float64 // hash promotion threshold; higher means sparser
	gain      float64 // peak brightness contribution
}

var starLayers = [3]starLayer{
	{scale: 22, threshold: 0.976, gain: 0.085},
	{scale: 47, threshold: 0.968, gain: 0.055},
	{scale: 91, threshold: 0.955, gain: 0.035},
}

// twinkleCycles is the whole number of twinkle oscillations per loop.
const twinkleCycles = 3

// backgroundColor shades the starfield, nebula haze, dust lanes, and inflow
// fog at the unwarped centered coordinate p. bend is the lens bend term from
// the warp stage (zero in artistic mode) and drives the fog just outside the
// photon sphere. The whole layer is deliberately dim: it must never compete
// with the disk.
func backgroundColor(p Vec2, cyclePhase, bend float64, ramp *Ramp) Color {
	out := starfield(p, cyclePhase)

	// Galaxy haze: a broad simplex density field, thinned by a soft
	// threshold, tinted from the cool end of the ramp.
	density := nebulaOctaves(p.X*0.9+31.0, p.Y*0.9-12.0, 3)
	haze := smoothstep(0.52, 0.88, density)
	haze *= haze
	if haze > 0 {
		tintPos := 0.2 + 0.25*nebulaOctaves(p.X*0.4, p.Y*0.4, 2)
		tint := ramp.Sample(tintPos)

		// Dust lanes: stretched low-octave noise carving dark streaks
		// through the haze.
		dust := fbm2(Vec2{p.X*3.1 + p.Y*0.8, p.Y*9.5})
		lane := 1 - 0.65*smoothstep(0.55, 0.75, dust)

		out = out.Add(tint.Scale(0.055 * haze * lane))
	}

	// Inflow fog: faint matter streaming toward the hole, visible where the
	// lens bend is strong (just outside the photon sphere).
	if bend > 0 {
		s, c := math.Sincos(TwoPi * cyclePhase)
		streak := fbm2(Vec2{p.X*6 + 0.4*c, p.Y*6 + 0.4*s})
		out = out.Add(ramp.Sample(0.55).Scale(0.28 * bend * streak))
	}

	return out
}

// starfield stacks the point-grid layers. Each grid cell rolls one hash to
// decide whether it holds a star; promoted cells get jittered position, size,
// brightness, and twinkle phase from further hashes of the same cell.
func starfield(p Vec2, cyclePhase float64) Color {
	var out Color
	for li, layer := range starLayers {
		q := p.Scale(layer.scale)
		// Per-layer lattice offset so the grids never line up.
		q.X += float64(li) * 37.7
		q.Y -= float64(li) * 51.3

		cellX := math.Floor(q.X)
		cellY := math.Floor(q.Y)

		h := hash21(cellX, cellY)
		if h < layer.threshold {
			continue
		}

		// Jitter the star inside the cell, keeping it away from the edges
		// so it never pops when the neighboring cell is evaluated.
		cx := cellX + 0.25 + 0.5*hash21(cellX+13.1, cellY+71.7)
		cy := cellY + 0.25 + 0.5*hash21(cellX+41.3, cellY+29.9)
		dx := q.X - cx
		dy := q.Y - cy
		d := math.Sqrt(dx*dx + dy*dy)

		size := 0.06 + 0.08*hash21(cellX+5.2, cellY+97.3)
		spot := smoothstep(size, 0, d)
		if spot <= 0 {
			continue
		}

		twinklePhase := hash21(cellX+61.7, cellY+7.9)
		twinkle := 0.7 + 0.3*math.Sin(TwoPi*(cyclePhase*twinkleCycles+twinklePhase))

		// Slight blue-white temperature variation per star.
		warmth := hash21(cellX+88.1, cellY+17.5)
		tint := Color{0.75 + 0.25*warmth, 0.8 + 0.15*warmth, 1.0}

		out = out.Add(tint.Scale(layer.gain * spot * spot * twinkle * (0.4 + 0.6*h)))
	}
	return out
}

// nebulaOctaves layers the simplex field at doubling frequency, matching the
// usual octave accumulation but over the seeded simplex source.
func nebulaOctaves(x, y float64, octaves int) float64 {
	total := 0.0
	amp := 1.0
	norm := 0.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		total += nebulaNoise.Eval2(x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return total / norm
}
