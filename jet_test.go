package blackhole

import (
	"math"
	"testing"
)

func TestJetConfinedToPolarCones(t *testing.T) {
	params := DefaultParams()
	ramp := FallbackRamp()
	r := 0.7

	// On the disk plane (angle 0 or pi) the cone term kills the jet.
	for _, a := range []float64{0, math.Pi, -math.Pi} {
		c := jetLayer(r, a, 0, params, ramp)
		if c.MaxComponent() > 1e-3 {
			t.Errorf("jet emits on the disk plane at angle %v: %v", a, c)
		}
	}

	// At the poles it emits.
	up := jetLayer(r, math.Pi/2, 0, params, ramp)
	down := jetLayer(r, -math.Pi/2, 0, params, ramp)
	if up.MaxComponent() <= 0 || down.MaxComponent() <= 0 {
		t.Error("jet produces nothing on the polar axis")
	}
}

func TestJetMonotoneInIntensity(t *testing.T) {
	// Raising JetIntensity from 0 to 2 never decreases jet luminance at
	// any fixed position and phase.
	ramp := FallbackRamp()
	angles := []float64{math.Pi / 2, math.Pi/2 - 0.15, -math.Pi / 2}
	radii := []float64{0.55, 0.7, 0.9}

	for _, a := range angles {
		for _, r := range radii {
			prev := -1.0
			for ji := 0.0; ji <= 2.0; ji += 0.1 {
				params := DefaultParams()
				params.JetIntensity = ji
				lum := jetLayer(r, a, 1.7, params, ramp).Luminance()
				if lum < prev {
					t.Fatalf("jet luminance decreased at intensity %v (r=%v a=%v): %v < %v",
						ji, r, a, lum, prev)
				}
				prev = lum
			}
		}
	}
}

func TestJetZeroIntensityIsDark(t *testing.T) {
	params := DefaultParams()
	params.JetIntensity = 0
	c := jetLayer(0.7, math.Pi/2, 0.3, params, FallbackRamp())
	if c != (Color{}) {
		t.Errorf("jet at zero intensity = %v, want black", c)
	}
}

func TestJetNegativeIntensityClamps(t *testing.T) {
	// Out-of-range parameters saturate instead of misbehaving.
	params := DefaultParams()
	params.JetIntensity = -5
	c := jetLayer(0.7, math.Pi/2, 0.3, params, FallbackRamp())
	if c != (Color{}) {
		t.Errorf("jet at negative intensity = %v, want black", c)
	}
}

func TestJetFadesOutsideRadialBand(t *testing.T) {
	params := DefaultParams()
	ramp := FallbackRamp()

	inner := jetLayer(0.1, math.Pi/2, 0, params, ramp)
	if inner.MaxComponent() > 1e-3 {
		t.Errorf("jet emits inside the disk's inner region: %v", inner)
	}

	far := jetLayer(EmissionFadeEnd+0.2, math.Pi/2, 0, params, ramp)
	if far.MaxComponent() > 1e-3 {
		t.Errorf("jet emits beyond the fade radius: %v", far)
	}
}

func TestJetSharpCone(t *testing.T) {
	// The cone exponent keeps emission negligible 0.5 rad off-axis
	// relative to on-axis.
	params := DefaultParams()
	ramp := FallbackRamp()
	on := jetLayer(0.7, math.Pi/2, 0, params, ramp).Luminance()
	off := jetLayer(0.7, math.Pi/2-0.7, 0, params, ramp).Luminance()
	if off >= on*0.5 {
		t.Errorf("cone too wide: off-axis %v vs on-axis %v", off, on)
	}
}
