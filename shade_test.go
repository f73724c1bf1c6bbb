package blackhole

import (
	"math"
	"testing"
)

var testResolution = Vec2{640, 360}

// shadeGrid runs Shade over a coarse uv grid and calls fn with each result.
func shadeGrid(t *testing.T, elapsed, cyclePhase float64, params Params, fn func(uv Vec2, c Color)) {
	t.Helper()
	ramp := FallbackRamp()
	for y := 0.0; y <= 1.0; y += 0.05 {
		for x := 0.0; x <= 1.0; x += 0.05 {
			uv := Vec2{x, y}
			fn(uv, Shade(uv, testResolution, elapsed, cyclePhase, params, ramp))
		}
	}
}

func TestShadeAlwaysInRange(t *testing.T) {
	// Every channel in [0, 1], no NaN/Inf, across parameter domains,
	// modes, and lens variants.
	paramSets := []Params{
		DefaultParams(),
		{Acceleration: 0.2, Warp: 0, JetIntensity: 0, Mode: ModeLoop, Lens: LensArtistic},
		{Acceleration: 3, Warp: 1, JetIntensity: 2, Mode: ModeContinuous, Lens: LensSchwarzschild},
		// Out of declared range: must saturate, not fail.
		{Acceleration: -4, Warp: 9, JetIntensity: 50, Mode: ModeContinuous, Lens: LensSchwarzschild},
	}
	for _, params := range paramSets {
		for _, elapsed := range []float64{0, 1.7, 123.4} {
			clk := ClockAt(elapsed, 1, DefaultLoopDuration)
			shadeGrid(t, clk.Elapsed, clk.CyclePhase, params, func(uv Vec2, c Color) {
				assertColorInRange(t, "Shade", c)
			})
		}
	}
}

func TestShadePure(t *testing.T) {
	// Identical inputs give identical outputs across repeated calls.
	ramp := FallbackRamp()
	params := DefaultParams()
	uv := Vec2{0.61, 0.44}
	a := Shade(uv, testResolution, 2.5, 0.3, params, ramp)
	for i := 0; i < 10; i++ {
		if Shade(uv, testResolution, 2.5, 0.3, params, ramp) != a {
			t.Fatal("Shade is not pure")
		}
	}
}

func TestShadeLoopSeamless(t *testing.T) {
	// In loop mode, shading at elapsed 0 and elapsed loopDuration with the
	// same cycle phase must be bit-identical: nothing may leak raw elapsed
	// time into a loop-mode frame.
	params := DefaultParams()
	params.Mode = ModeLoop
	ramp := FallbackRamp()

	for y := 0.0; y <= 1.0; y += 0.04 {
		for x := 0.0; x <= 1.0; x += 0.04 {
			uv := Vec2{x, y}
			a := Shade(uv, testResolution, 0, 0, params, ramp)
			b := Shade(uv, testResolution, DefaultLoopDuration, 0, params, ramp)
			if a != b {
				t.Fatalf("loop seam at uv=%v: %v != %v", uv, a, b)
			}
		}
	}
}

func TestShadeLoopPhaseEndpoints(t *testing.T) {
	// Phase 0 and phase 1 are the same point of the loop: every motion term
	// must land back on its starting state, bit for bit.
	params := DefaultParams()
	params.Mode = ModeLoop
	ramp := FallbackRamp()

	for y := 0.0; y <= 1.0; y += 0.04 {
		for x := 0.0; x <= 1.0; x += 0.04 {
			uv := Vec2{x, y}
			a := Shade(uv, testResolution, 0, 0, params, ramp)
			b := Shade(uv, testResolution, 0, 1, params, ramp)
			if a != b {
				t.Fatalf("loop endpoints differ at uv=%v: %v != %v", uv, a, b)
			}
		}
	}
}

func TestShadeLoopWrapContinuous(t *testing.T) {
	// Stepping across the wrap (phase just under 1 back to 0) must be as
	// smooth as any other tiny phase step. A layer whose phase is not a whole
	// number of revolutions per loop lands mid-cycle here and jumps.
	params := DefaultParams()
	params.Mode = ModeLoop
	ramp := FallbackRamp()
	const step = 1e-7

	for y := 0.0; y <= 1.0; y += 0.04 {
		for x := 0.0; x <= 1.0; x += 0.04 {
			uv := Vec2{x, y}
			a := Shade(uv, testResolution, 0, 1-step, params, ramp)
			b := Shade(uv, testResolution, 0, 0, params, ramp)
			d := math.Max(math.Abs(a.R-b.R), math.Max(math.Abs(a.G-b.G), math.Abs(a.B-b.B)))
			if d > 0.05 {
				t.Fatalf("wrap discontinuity at uv=%v: channel jump %v", uv, d)
			}
		}
	}
}

func TestShadePhaseAboveOneFoldsBack(t *testing.T) {
	// Callers feeding an unwrapped phase get the same frame as its fractional
	// part.
	params := DefaultParams()
	ramp := FallbackRamp()
	uv := Vec2{0.63, 0.42}
	if Shade(uv, testResolution, 0, 2.25, params, ramp) != Shade(uv, testResolution, 0, 0.25, params, ramp) {
		t.Error("phase 2.25 should shade like phase 0.25")
	}
}

func TestShadeContinuousUsesElapsed(t *testing.T) {
	// Continuous mode must NOT be elapsed-invariant: the disk keeps
	// turning with unwrapped time.
	params := DefaultParams()
	params.Mode = ModeContinuous
	ramp := FallbackRamp()

	differs := false
	for x := 0.1; x <= 0.9; x += 0.02 {
		uv := Vec2{x, 0.5}
		a := Shade(uv, testResolution, 0, 0, params, ramp)
		b := Shade(uv, testResolution, DefaultLoopDuration, 0, params, ramp)
		if a != b {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("continuous mode ignored elapsed time entirely")
	}
}

func TestShadeCenterIsBlack(t *testing.T) {
	// The image center maps to radius ~0, inside the event horizon: all
	// channels below 0.02.
	ramp := FallbackRamp()
	c := Shade(Vec2{0.5, 0.5}, Vec2{100, 100}, 0, 0, DefaultParams(), ramp)
	if c.R >= 0.02 || c.G >= 0.02 || c.B >= 0.02 {
		t.Errorf("center = %v, want near-black", c)
	}
}

// photonSphereUV bisects along +x from the screen center for a uv whose
// warped radius lands on the photon sphere.
func photonSphereUV(params Params) Vec2 {
	res := Vec2{100, 100}
	radiusAt := func(x float64) float64 {
		p := centeredCoord(Vec2{x, 0.5}, res)
		r, _, _ := warpCoord(p, params.Warp, params.Lens)
		return r
	}

	lo, hi := 0.5, 1.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if radiusAt(mid) < PhotonSphereRadius {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Vec2{(lo + hi) / 2, 0.5}
}

func TestShadePhotonRingGlows(t *testing.T) {
	// A pixel on the photon sphere must exceed the guaranteed minimum
	// brightness at elapsed 0.
	params := DefaultParams()
	uv := photonSphereUV(params)
	c := Shade(uv, Vec2{100, 100}, 0, 0, params, FallbackRamp())
	if c.MaxComponent() <= 0.3 {
		t.Errorf("photon ring at uv=%v: %v, want max channel > 0.3", uv, c)
	}
}

func TestShadeJetParameterMonotone(t *testing.T) {
	// Total image luminance never decreases as JetIntensity rises.
	// (The jet layer is linear in the parameter and every downstream stage
	// is monotone.)
	ramp := FallbackRamp()
	uvs := []Vec2{{0.5, 0.15}, {0.5, 0.85}, {0.52, 0.2}, {0.48, 0.78}}

	for _, uv := range uvs {
		prev := -1.0
		for ji := 0.0; ji <= 2.0; ji += 0.25 {
			params := DefaultParams()
			params.JetIntensity = ji
			lum := Shade(uv, testResolution, 0, 0, params, ramp).Luminance()
			if lum < prev-1e-12 {
				t.Fatalf("luminance decreased at uv=%v intensity %v: %v < %v", uv, ji, lum, prev)
			}
			prev = lum
		}
	}
}

func TestShadeFallbackRampEndToEnd(t *testing.T) {
	// With no source images the palette builder falls back; shading still
	// produces in-range output everywhere.
	ramp := BuildRamp(nil, 0.5, 0)
	params := DefaultParams()
	for y := 0.0; y <= 1.0; y += 0.1 {
		for x := 0.0; x <= 1.0; x += 0.1 {
			c := Shade(Vec2{x, y}, testResolution, 0.5, 0.25, params, ramp)
			assertColorInRange(t, "Shade with fallback", c)
		}
	}
}

func TestShadeNilRamp(t *testing.T) {
	// A nil ramp is misuse, but the core degrades to the fallback rather
	// than dereferencing nil.
	c := Shade(Vec2{0.7, 0.5}, testResolution, 0, 0, DefaultParams(), nil)
	assertColorInRange(t, "Shade(nil ramp)", c)
}

func TestShadeEmissionFadesAtFrame(t *testing.T) {
	// Past the outer fade radius only the background remains, which is
	// dim; corners must not show a hard emission edge.
	ramp := FallbackRamp()
	c := Shade(Vec2{0.02, 0.02}, Vec2{100, 100}, 0, 0, DefaultParams(), ramp)
	if c.Luminance() > 0.7 {
		t.Errorf("corner luminance %v, want dim background only", c.Luminance())
	}
}

func TestModeAndLensVariantsDiffer(t *testing.T) {
	// The lens variants are distinct configurations, not a blend: at a
	// fixed off-center point they produce different geometry.
	ramp := FallbackRamp()
	uv := Vec2{0.68, 0.47}

	art := DefaultParams()
	art.Lens = LensArtistic
	sch := DefaultParams()
	sch.Lens = LensSchwarzschild

	if Shade(uv, testResolution, 0, 0, art, ramp) == Shade(uv, testResolution, 0, 0, sch, ramp) {
		t.Error("lens variants shade identically at an off-center point")
	}
}
