package blackhole

import "math"

// filmicCurve is the rational filmic approximation used per channel:
// (c*(6.2c+0.5)) / (c*(6.2c+1.7)+0.06). Maps 0 to 0, rolls highlights off
// toward 1, and never divides by zero.
func filmicCurve(c float64) float64 {
	c = math.Max(c, 0)
	return (c * (6.2*c + 0.5)) / (c*(6.2*c+1.7) + 0.06)
}

// tonemap applies the filmic curve per channel and clamps to [0, 1]. Callers
// scale by Exposure first; the mandatory order is linear accumulation, then
// exposure, then this curve, then clamp. Tone-mapping any earlier would
// double-compress highlights.
func tonemap(c Color) Color {
	return Color{
		filmicCurve(c.R),
		filmicCurve(c.G),
		filmicCurve(c.B),
	}.Clamped()
}
