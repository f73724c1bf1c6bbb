package blackhole

import "math"

// Radius thresholds in warped screen units. These define every ring and mask
// boundary; nothing else in the pipeline hard-codes a radius.
const (
	// EventHorizonRadius is the edge of the shadow: no emission inside.
	EventHorizonRadius = 0.22
	// PhotonSphereRadius is the center of the bright photon ring and the
	// outer edge of the hole mask's transition.
	PhotonSphereRadius = 0.29
	// ISCORadius is the inner structural boundary of the accretion disk.
	ISCORadius = 0.42
	// DiskOuterRadius is where the disk band fades out.
	DiskOuterRadius = 0.85
	// Emission fades to black between these radii so the frame has no hard
	// edge.
	EmissionFadeStart = 0.92
	EmissionFadeEnd   = 1.08
)

// TwoPi is 2*pi, the full-turn constant used by every cyclic phase term.
const TwoPi = 2 * math.Pi

// Mode selects how disk and jet motion consume time.
type Mode uint8

const (
	// ModeLoop drives all motion from the cyclic phase using whole numbers
	// of revolutions per loop, so phase 0 and phase 1 shade identically.
	// Raw elapsed time is ignored entirely.
	ModeLoop Mode = iota
	// ModeContinuous drives disk, ring, and jet motion from unwrapped
	// elapsed time; only the starfield twinkle stays on the cyclic phase.
	ModeContinuous
)

// Params are the tunable shading inputs, passed immutably into Shade each
// frame. Out-of-range values are not rejected: every formula clamps or
// saturates, so extreme inputs degrade to extreme visuals rather than
// failing.
type Params struct {
	// Acceleration is a speed multiplier for disk motion, nominal [0.2, 3].
	Acceleration float64
	// Warp is the lens/swirl strength, nominal [0, 1].
	Warp float64
	// JetIntensity scales polar jet emission, nominal [0, 2].
	JetIntensity float64
	// Mode and Lens are the rendering-mode variant, fixed at setup time.
	Mode Mode
	Lens LensMode
}

// DefaultParams returns the stock cinematic tuning.
func DefaultParams() Params {
	return Params{
		Acceleration: 1.2,
		Warp:         0.85,
		JetIntensity: 1.05,
		Mode:         ModeLoop,
		Lens:         LensArtistic,
	}
}

// Motion tuning. Loop-mode revolution counts are rounded to whole numbers
// before use so the loop stays exact.
const (
	diskAngularSpeed    = 0.55
	loopDiskRevolutions = 2.0
	ringAngularSpeed    = 0.3
	loopRingRevolutions = 1.0
	jetFlowSpeed        = 0.8
	loopJetCycles       = 3.0
)

// diskRotation returns the angular phase offset for disk material at radius
// r, for a layer running at rate times the base disk rate. Division by
// sqrt(r) gives the Keplerian look: inner material orbits faster. In loop
// mode the combined rate is quantized to whole revolutions per loop, so every
// layer closes the loop on its own; scaling the returned phase instead would
// land a layer mid-cycle at the wrap.
func diskRotation(r, rate, elapsed, cyclePhase, accel float64, mode Mode) float64 {
	k := 1.0 / math.Sqrt(math.Max(r, 0.05))
	if mode == ModeContinuous {
		return diskAngularSpeed * accel * elapsed * k * rate
	}
	revs := math.Max(1, math.Round(loopDiskRevolutions*accel*k*rate))
	return TwoPi * cyclePhase * revs
}

// ringRotation returns the phase driving photon-ring flicker and the beaming
// sweep, at rate times the base ring rate. Loop mode quantizes like
// diskRotation.
func ringRotation(rate, elapsed, cyclePhase, accel float64, mode Mode) float64 {
	if mode == ModeContinuous {
		return ringAngularSpeed * accel * elapsed * rate
	}
	revs := math.Max(1, math.Round(loopRingRevolutions*accel*rate))
	return TwoPi * cyclePhase * revs
}

// jetFlow returns the phase driving jet turbulence outward along the axis.
func jetFlow(elapsed, cyclePhase float64, mode Mode) float64 {
	if mode == ModeContinuous {
		return jetFlowSpeed * elapsed
	}
	return TwoPi * cyclePhase * loopJetCycles
}

// Exposure is the fixed linear gain applied before the filmic curve.
const Exposure = 1.55

// Shade computes the final color for one pixel. uv is the normalized screen
// coordinate in [0,1]^2, resolution the output size in pixels (used only for
// aspect correction), elapsed the monotonic clock and cyclePhase its cyclic
// derivative in [0,1). Pure: no state, no side effects, and every channel of
// the result is in [0, 1].
func Shade(uv, resolution Vec2, elapsed, cyclePhase float64, params Params, ramp *Ramp) Color {
	if ramp == nil {
		ramp = FallbackRamp()
	}

	// Phase 1 names the same loop point as phase 0; folding it back makes the
	// endpoints identical to the bit, not just close.
	cyclePhase = fract(cyclePhase)

	p := centeredCoord(uv, resolution)
	radius, angle, bend := warpCoord(p, params.Warp, params.Lens)

	ringRot := ringRotation(1, elapsed, cyclePhase, params.Acceleration, params.Mode)
	flow := jetFlow(elapsed, cyclePhase, params.Mode)

	// Background is sampled at the unwarped coordinate: it is lensed
	// separately from the disk, which reads as parallax between the two.
	bg := backgroundColor(p, cyclePhase, bend, ramp)
	bg = bg.Scale(holeMask(radius) * (1 - lensingDarkening(radius, angle, ringRot)))

	disk := diskLayer(radius, angle, elapsed, cyclePhase, params, ramp)
	ring := photonRing(radius, angle, elapsed, cyclePhase, params, ramp)
	jets := jetLayer(radius, angle, flow, params, ramp)
	glow := haloLayer(radius, ramp)

	// Emission accumulates unclamped in linear space; the only clamp is the
	// tone map at the very end, which preserves highlight range.
	innerMask := smoothstep(EventHorizonRadius, EventHorizonRadius*1.25, radius)
	outerMask := 1 - smoothstep(EmissionFadeStart, EmissionFadeEnd, radius)
	emission := disk.Add(ring).Add(jets).Add(glow).Scale(innerMask * outerMask)

	return tonemap(bg.Add(emission).Scale(Exposure))
}
