package blackhole

import "math"

// Color is an RGB color with components in [0, 1]. Alpha is not carried:
// every shaded pixel is fully opaque and compositing happens additively in
// linear space before tone mapping.
type Color struct {
	R, G, B float64
}

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns c with every component multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp linearly interpolates between c and o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		lerp(c.R, o.R, t),
		lerp(c.G, o.G, t),
		lerp(c.B, o.B, t),
	}
}

// Clamped returns c with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// MaxComponent returns the largest of the three channels.
func (c Color) MaxComponent() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// Luminance returns the Rec. 709 relative luminance of c.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Vec2 is a 2D vector used for screen coordinates and noise-domain points.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotated returns v rotated by the given angle in radians.
func (v Vec2) Rotated(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp returns x limited to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clamp01 returns x limited to [0, 1].
func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

// smoothstep returns the Hermite interpolation of x between edge0 and edge1:
// 0 below edge0, 1 above edge1, smooth in between. Edges may be reversed to
// produce a falling step.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// fract returns the fractional part of x, always in [0, 1).
func fract(x float64) float64 {
	return x - math.Floor(x)
}
