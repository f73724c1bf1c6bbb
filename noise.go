package blackhole

import "math"

// The noise kernel is fully deterministic: the same input coordinate always
// produces the same output, with no seed and no hidden state. Every animated
// effect above it inherits loop seamlessness from this property, so the
// kernel must never be swapped for a stateful RNG.

// hash21 maps a 2D lattice point to a pseudo-random scalar in [0, 1).
// The classic sin-dot-fract construction; cheap and stable across platforms
// at the magnitudes the shading layers feed it.
func hash21(x, y float64) float64 {
	return fract(math.Sin(x*127.1+y*311.7) * 43758.5453123)
}

// valueNoise is smoothed bilinear lattice noise in [0, 1). Lattice values
// come from hash21; interpolation uses a quintic fade so first and second
// derivatives vanish at cell boundaries (no visible grid creasing).
func valueNoise(p Vec2) float64 {
	ix := math.Floor(p.X)
	iy := math.Floor(p.Y)
	fx := p.X - ix
	fy := p.Y - iy

	// Quintic fade: 6t^5 - 15t^4 + 10t^3.
	ux := fx * fx * fx * (fx*(fx*6-15) + 10)
	uy := fy * fy * fy * (fy*(fy*6-15) + 10)

	a := hash21(ix, iy)
	b := hash21(ix+1, iy)
	c := hash21(ix, iy+1)
	d := hash21(ix+1, iy+1)

	return lerp(lerp(a, b, ux), lerp(c, d, ux), uy)
}

// fbmGain is the per-octave amplitude falloff. Paired with the frequency
// doubling below it gives the slightly-rough spectrum the disk turbulence
// is tuned around; changing it rebalances every layer.
const fbmGain = 0.47

// fbm sums octaves of valueNoise with doubling frequency and fbmGain
// amplitude falloff, normalized back into [0, 1). Use 3-6 octaves for
// primary structure; prefer fbm2 where detail would be invisible anyway.
func fbm(p Vec2, octaves int) float64 {
	sum := 0.0
	amp := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise(p) * amp
		norm += amp
		amp *= fbmGain
		p = Vec2{p.X*2.0 + 17.3, p.Y*2.0 + 9.1}
	}
	return sum / norm
}

// fbm2 is the cheap two-octave variant for ambient layers (haze, fog,
// large-scale background shading) where per-pixel cost matters more than
// fine detail.
func fbm2(p Vec2) float64 {
	return (valueNoise(p) + valueNoise(Vec2{p.X*2.0 + 17.3, p.Y*2.0 + 9.1})*fbmGain) / (1 + fbmGain)
}

// ringNoise samples fbm on a circle so the result is continuous across the
// atan2 seam at angle = ±pi. The angle enters through sin/cos, which also
// makes any phase offset of the form 2*pi*k (integer k) loop-exact.
func ringNoise(radius, angle, phase float64, angularFreq float64, octaves int) float64 {
	s, c := math.Sincos(angle + phase)
	p := Vec2{
		c*angularFreq + radius*7.0,
		s*angularFreq - radius*5.0,
	}
	return fbm(p, octaves)
}
