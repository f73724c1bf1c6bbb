package blackhole

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenScalarReachesTarget(t *testing.T) {
	v := 0.0
	tw := TweenScalar(&v, 1.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if v < 0.4 || v > 0.6 {
		t.Errorf("midpoint value = %v, want ~0.5", v)
	}
	if tw.Done {
		t.Error("tween finished early")
	}

	tw.Update(0.5)
	assertNearEps(t, "final value", v, 1.0, 1e-6)
	if !tw.Done {
		t.Error("tween should be done after full duration")
	}
}

func TestTweenScalarOvershootClamped(t *testing.T) {
	v := 2.0
	tw := TweenScalar(&v, 0.5, 0.25, ease.OutQuad)
	tw.Update(10)
	assertNearEps(t, "overshoot", v, 0.5, 1e-6)
	if !tw.Done {
		t.Error("tween not done after overshooting the duration")
	}
}

func TestTweenParamsEasesAllThree(t *testing.T) {
	p := DefaultParams()
	tw := TweenParams(&p, 2.0, 0.1, 0.0, 1.0, ease.Linear)

	tw.Update(1.0)
	assertNearEps(t, "acceleration", p.Acceleration, 2.0, 1e-6)
	assertNearEps(t, "warp", p.Warp, 0.1, 1e-6)
	assertNearEps(t, "jets", p.JetIntensity, 0.0, 1e-6)
	if !tw.Done {
		t.Error("all three tweens elapsed, Done should be set")
	}

	// Mode and lens are not animated.
	if p.Mode != ModeLoop || p.Lens != LensArtistic {
		t.Error("tween touched non-scalar fields")
	}
}

func TestTweenUpdateAfterDone(t *testing.T) {
	v := 0.0
	tw := TweenScalar(&v, 1.0, 0.5, ease.Linear)
	tw.Update(1)
	got := v
	tw.Update(1)
	assertNear(t, "value after done", v, got)
}
