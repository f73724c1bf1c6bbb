package blackhole

import "math"

// holeMask is 0 at and inside the event horizon and 1 at and beyond the
// photon sphere, independent of angle. Multiplied into the background so
// nothing shows through the shadow.
func holeMask(radius float64) float64 {
	return smoothstep(EventHorizonRadius, PhotonSphereRadius, radius)
}

// lensingDarkening returns the attenuation factor for the dark band just
// outside the shadow, where real imagery shows bent light thinning out.
// Modulated by ring-aligned fbm so the band has texture rather than being a
// clean annulus. The result is in [0, 1) and scales the background down.
func lensingDarkening(radius, angle, ringRot float64) float64 {
	band := smoothstep(EventHorizonRadius*0.9, PhotonSphereRadius, radius) *
		(1 - smoothstep(PhotonSphereRadius, PhotonSphereRadius*1.9, radius))
	if band <= 0 {
		return 0
	}
	detail := 0.55 + 0.45*ringNoise(radius, angle, ringRot, 7, 3)
	return clamp01(0.7 * band * detail)
}

// Photon ring tuning.
const (
	ringWidth   = 0.018 // gaussian half-width of the bright band
	ringMinGlow = 0.5   // guaranteed glow inside the band, before beaming
	ringGain    = 0.9
	// ringBeta is the orbital speed (as a fraction of c) used by the
	// relativistic beaming formula.
	ringBeta = 0.55
)

// photonRing shades the narrow bright band at the photon sphere: base glow
// from the hot end of the ramp, turbulence-driven flicker, and a beaming
// factor favoring the approaching side. Flicker runs at its own rate through
// ringRotation so it closes the loop in whole revolutions like every other
// layer.
func photonRing(radius, angle, elapsed, cyclePhase float64, params Params, ramp *Ramp) Color {
	d := (radius - PhotonSphereRadius) / ringWidth
	band := math.Exp(-d * d)
	if band < 1e-4 {
		return Color{}
	}

	flickerRot := ringRotation(1.5, elapsed, cyclePhase, params.Acceleration, params.Mode)
	beamRot := ringRotation(1, elapsed, cyclePhase, params.Acceleration, params.Mode)

	flicker := 0.8 + 0.45*ringNoise(radius*3, angle, flickerRot, 9, 4)
	beam := beamingFactor(angle, beamRot, params.Lens)

	glow := ramp.Sample(0.82)
	return glow.Scale(band * (ringMinGlow + flicker*beam*ringGain))
}

// beamingFactor brightens the side of the ring approaching the viewer. The
// artistic variant is a biased cosine; the Schwarzschild variant uses the
// relativistic beaming formula 1/(gamma*(1-beta*cos))^3, rescaled so its
// mid-range matches the cosine variant.
func beamingFactor(angle, rotPhase float64, lens LensMode) float64 {
	cosTheta := math.Cos(angle - rotPhase)
	if lens == LensSchwarzschild {
		gamma := 1 / math.Sqrt(1-ringBeta*ringBeta)
		doppler := 1 / (gamma * (1 - ringBeta*cosTheta))
		return clamp(0.35*doppler*doppler*doppler, 0.08, 2.6)
	}
	return 0.25 + 0.75*(0.5+0.5*cosTheta)
}

// haloLayer is the soft glow enveloping the whole emitting region, pulled
// from the mid ramp. Kept faint: it rounds off the composite, nothing more.
func haloLayer(radius float64, ramp *Ramp) Color {
	d := (radius - PhotonSphereRadius) / 0.55
	return ramp.Sample(0.68).Scale(0.06 * math.Exp(-d*d))
}
