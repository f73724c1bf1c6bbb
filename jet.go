package blackhole

import "math"

// Jet tuning.
const (
	jetConeSharpness = 8    // exponent on |sin(angle)|; higher = narrower cone
	jetGain          = 0.55 // base emission at JetIntensity 1
)

// jetLayer shades the two relativistic jets: emission confined to narrow
// cones around the polar axis, fading in outside the disk's inner edge and
// out past the emission fade radius, modulated by outward-flowing turbulence
// and scaled linearly by JetIntensity so the parameter response is monotone.
func jetLayer(radius, angle, flow float64, params Params, ramp *Ramp) Color {
	intensity := math.Max(params.JetIntensity, 0)
	if intensity == 0 {
		return Color{}
	}

	// |sin(angle)|^n peaks at the poles and sharpens the cone hard.
	cone := math.Pow(math.Abs(math.Sin(angle)), jetConeSharpness)
	if cone < 1e-4 {
		return Color{}
	}

	radial := smoothstep(ISCORadius*0.9, DiskOuterRadius*0.85, radius) *
		(1 - smoothstep(0.95, EmissionFadeEnd+0.1, radius))
	if radial <= 0 {
		return Color{}
	}

	// Turbulence streams along the axis; the flow phase pushes it outward.
	turb := 0.55 + 0.6*ringNoise(radius*4.2, angle, flow, 5, 3)

	// Reuse the disk's Doppler bias so the jet brightens on the same side
	// the disk does.
	bias := 0.6 + 0.4*dopplerBlend(angle)

	return ramp.Sample(0.55).Scale(cone * radial * turb * bias * intensity * jetGain)
}
