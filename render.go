package blackhole

import (
	"image"
	"runtime"
	"sync"
)

// Renderer evaluates Shade for every pixel of a fixed-size framebuffer.
// Rows are split across one worker per CPU; since shading is a pure function
// with no cross-pixel state, the split needs no coordination beyond the
// final join. A Renderer is reusable across frames but not safe for
// concurrent RenderFrame calls on the same instance.
type Renderer struct {
	width   int
	height  int
	pix     []byte // RGBA, reused between frames
	workers int
}

// NewRenderer creates a renderer for the given output size in pixels.
// Degenerate sizes are clamped to 1x1.
func NewRenderer(width, height int) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Renderer{
		width:   width,
		height:  height,
		pix:     make([]byte, width*height*4),
		workers: runtime.NumCPU(),
	}
}

// Size returns the framebuffer dimensions.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Pixels returns the internal RGBA buffer of the most recently rendered
// frame. The slice is reused by the next RenderFrame call.
func (r *Renderer) Pixels() []byte {
	return r.pix
}

// RenderFrame shades every pixel for the given clock, parameters, and ramp,
// returning the RGBA buffer. Pixels are sampled at their centers.
func (r *Renderer) RenderFrame(clk Clock, params Params, ramp *Ramp) []byte {
	if ramp == nil {
		ramp = FallbackRamp()
	}

	resolution := Vec2{float64(r.width), float64(r.height)}
	workers := r.workers
	if workers < 1 {
		workers = 1
	}
	rowsPer := (r.height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := w * rowsPer
		if y0 >= r.height {
			break
		}
		y1 := y0 + rowsPer
		if y1 > r.height {
			y1 = r.height
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				vy := (float64(y) + 0.5) / float64(r.height)
				row := y * r.width * 4
				for x := 0; x < r.width; x++ {
					uv := Vec2{(float64(x) + 0.5) / float64(r.width), vy}
					c := Shade(uv, resolution, clk.Elapsed, clk.CyclePhase, params, ramp)
					i := row + x*4
					r.pix[i] = byte(c.R*255 + 0.5)
					r.pix[i+1] = byte(c.G*255 + 0.5)
					r.pix[i+2] = byte(c.B*255 + 0.5)
					r.pix[i+3] = 255
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return r.pix
}

// Image returns a copy of the last rendered frame as an NRGBA image,
// suitable for encoding. Shaded pixels are opaque, so premultiplied and
// straight alpha coincide here.
func (r *Renderer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.pix)
	return img
}
