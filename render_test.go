package blackhole

import (
	"bytes"
	"testing"
)

func TestNewRendererClampsSize(t *testing.T) {
	r := NewRenderer(0, -5)
	w, h := r.Size()
	if w != 1 || h != 1 {
		t.Errorf("Size() = (%d, %d), want (1, 1)", w, h)
	}
	if len(r.Pixels()) != 4 {
		t.Errorf("pixel buffer = %d bytes, want 4", len(r.Pixels()))
	}
}

func TestRenderFrameBufferShape(t *testing.T) {
	r := NewRenderer(32, 20)
	pix := r.RenderFrame(Clock{}, DefaultParams(), FallbackRamp())
	if len(pix) != 32*20*4 {
		t.Fatalf("buffer = %d bytes, want %d", len(pix), 32*20*4)
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			t.Fatalf("alpha at %d = %d, want 255", i, pix[i])
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	// Same clock, params, and ramp produce identical frames no matter how
	// rows were split across workers.
	clk := FrameClock(17, 30, 1, 12)
	params := DefaultParams()
	ramp := FallbackRamp()

	parallel := NewRenderer(48, 27)
	a := append([]byte(nil), parallel.RenderFrame(clk, params, ramp)...)

	serial := NewRenderer(48, 27)
	serial.workers = 1
	b := serial.RenderFrame(clk, params, ramp)

	if !bytes.Equal(a, b) {
		t.Error("parallel and serial renders differ")
	}
}

func TestRenderFrameCenterBlack(t *testing.T) {
	// Odd dimensions put a pixel center exactly at uv (0.5, 0.5), inside the
	// event horizon.
	r := NewRenderer(33, 33)
	pix := r.RenderFrame(Clock{}, DefaultParams(), FallbackRamp())
	i := (16*33 + 16) * 4
	if pix[i] > 5 || pix[i+1] > 5 || pix[i+2] > 5 {
		t.Errorf("center pixel = (%d, %d, %d), want near-black", pix[i], pix[i+1], pix[i+2])
	}
}

func TestRenderFrameNilRamp(t *testing.T) {
	r := NewRenderer(8, 8)
	pix := r.RenderFrame(Clock{}, DefaultParams(), nil)
	if len(pix) != 8*8*4 {
		t.Fatal("nil ramp render failed")
	}
}

func TestRendererImageCopies(t *testing.T) {
	r := NewRenderer(16, 16)
	r.RenderFrame(Clock{}, DefaultParams(), FallbackRamp())
	img := r.Image()

	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}

	before := r.Pixels()[0]
	img.Pix[0] = before + 1
	if r.Pixels()[0] != before {
		t.Error("Image() aliases the internal buffer")
	}
}

func TestRenderFrameLoopSeam(t *testing.T) {
	// Whole-frame version of the loop-seam property: the last frame of a
	// cycle equals the first.
	params := DefaultParams()
	params.Mode = ModeLoop
	ramp := FallbackRamp()

	r := NewRenderer(24, 24)
	a := append([]byte(nil), r.RenderFrame(Clock{Elapsed: 0, CyclePhase: 0}, params, ramp)...)
	b := r.RenderFrame(Clock{Elapsed: DefaultLoopDuration, CyclePhase: 1}, params, ramp)
	if !bytes.Equal(a, b) {
		t.Error("frame at loop end differs from frame at loop start")
	}
}
