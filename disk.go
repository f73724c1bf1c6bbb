package blackhole

import "math"

// Accretion disk tuning. The three turbulence weights are deliberately
// ordered: the large-scale spiral dominates and the finer layers only add
// texture on top of it.
const (
	diskTurbWeight1 = 0.62
	diskTurbWeight2 = 0.28
	diskTurbWeight3 = 0.10
	diskGain        = 2.1
	spiralWind      = 4.5 // radians of angular shear per screen unit of radius
	hotSpotPower    = 4.5
	hotSpotGain     = 1.8
	rimWidth        = 0.028
	rimGain         = 0.85
	edgeJitter      = 0.045 // fbm displacement of the band edges
)

// Doppler tints: the approaching side of the disk leans warm and bright,
// the receding side cool and dim.
var (
	diskWarmTint = Color{1.28, 1.02, 0.82}
	diskCoolTint = Color{0.72, 0.78, 1.04}
)

// diskLayer shades the accretion disk: a jittered annular band filled with
// layered spiral turbulence, tinted by Doppler shift and the palette ramp,
// attenuated by gravitational redshift near the inner edge. The returned
// energy is unclamped; only the final tone map bounds it.
//
// Every sub-layer derives its phase from diskRotation with its own rate, so
// each one independently completes whole revolutions per loop.
func diskLayer(radius, angle, elapsed, cyclePhase float64, params Params, ramp *Ramp) Color {
	accel := params.Acceleration
	mode := params.Mode

	// Irregular band edges: low-frequency fbm nudges both boundaries so the
	// disk is not a perfect annulus.
	jitterRot := diskRotation(radius, 0.25, elapsed, cyclePhase, accel, mode)
	innerShift := (ringNoise(radius, angle, jitterRot, 3, 2) - 0.5) * edgeJitter
	outerShift := (ringNoise(radius+7.7, angle, jitterRot, 3, 2) - 0.5) * edgeJitter * 2

	band := smoothstep(PhotonSphereRadius+innerShift, ISCORadius+innerShift, radius) *
		(1 - smoothstep(DiskOuterRadius-0.12+outerShift, DiskOuterRadius+0.05+outerShift, radius))
	if band <= 1e-4 {
		return Color{}
	}

	// Spiral coordinate: angular shear proportional to radius turns the
	// turbulence into trailing arms instead of concentric rings.
	spiralAngle := angle + radius*spiralWind

	// Turbulence layers at rising frequency, fixed descending weights.
	rotBase := diskRotation(radius, 1, elapsed, cyclePhase, accel, mode)
	rotMid := diskRotation(radius, 1.3, elapsed, cyclePhase, accel, mode)
	rotFine := diskRotation(radius, 1.7, elapsed, cyclePhase, accel, mode)
	t1 := ringNoise(radius*1.4, spiralAngle, rotBase, 3, 4)
	t2 := ringNoise(radius*3.1, spiralAngle, rotMid, 7, 4)
	t3 := ringNoise(radius*6.3, spiralAngle, rotFine, 13, 3)
	turb := diskTurbWeight1*t1 + diskTurbWeight2*t2 + diskTurbWeight3*t3

	// Sharpen the contrast a touch so arms separate from the gaps.
	turb = math.Pow(turb, 1.6)

	// Sparse hot spots: high-power spikes riding the mid-frequency layer.
	hotRot := diskRotation(radius, 1.1, elapsed, cyclePhase, accel, mode)
	hot := math.Pow(ringNoise(radius*2.2, spiralAngle, hotRot, 5, 3), hotSpotPower) * hotSpotGain

	// Doppler blend across the disk; the same bias the jets reuse.
	blend := dopplerBlend(angle)
	tint := diskCoolTint.Lerp(diskWarmTint, blend)
	brightness := 0.55 + 0.75*blend

	// Gravitational redshift dims material falling toward the horizon.
	redshift := smoothstep(EventHorizonRadius, ISCORadius+0.08, radius)

	energy := band * redshift * (turb*brightness + hot)

	// Temperature proxy: hotter toward the inner edge, nudged warmer on the
	// beamed side. Drives the ramp lookup.
	temp := clamp01((DiskOuterRadius - radius) / (DiskOuterRadius - ISCORadius))
	ramped := ramp.Sample(clamp01(0.22 + 0.58*temp + 0.12*blend))

	out := ramped.Mul(tint).Scale(energy * diskGain)

	// Inner-rim highlight: a thin hot band hugging the ISCO.
	rd := (radius - ISCORadius) / rimWidth
	rim := math.Exp(-rd*rd) * rimGain * redshift
	if rim > 1e-4 {
		out = out.Add(ramp.Sample(0.9).Scale(rim * (0.6 + 0.4*blend)))
	}

	return out
}

// dopplerBlend maps the warped angle to the approaching-side bias in [0, 1]:
// 1 on the side of the disk rotating toward the viewer, 0 on the receding
// side. Shared by the disk tint and the jet brightness so the two layers
// always agree on which side is beamed.
func dopplerBlend(angle float64) float64 {
	return clamp01(0.5 + 0.5*math.Cos(angle))
}
