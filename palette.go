package blackhole

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	_ "image/jpeg"
	_ "image/png"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// DefaultRampWidth is the sample count of a built color ramp.
const DefaultRampWidth = 256

// rampTargetLuminance is the mean luminance every built ramp is normalized
// toward, so no single reference image can saturate or darken the scene.
const rampTargetLuminance = 0.55

// Ramp is an immutable 1-D color lookup table indexed by a normalized
// position t in [0, 1]. The shading layers treat position as a temperature
// proxy: low t is cool/dim material, high t is hot/bright.
type Ramp struct {
	colors []Color
}

// NewRamp builds a Ramp from the given samples. Fewer than two samples is a
// degenerate palette; the fallback ramp is substituted so callers never see
// an unusable ramp.
func NewRamp(colors []Color) *Ramp {
	if len(colors) < 2 {
		return FallbackRamp()
	}
	cp := make([]Color, len(colors))
	copy(cp, colors)
	return &Ramp{colors: cp}
}

// Len returns the number of samples in the ramp.
func (r *Ramp) Len() int {
	return len(r.colors)
}

// At returns the sample at index i, clamping i to the valid range.
func (r *Ramp) At(i int) Color {
	if i < 0 {
		i = 0
	}
	if i >= len(r.colors) {
		i = len(r.colors) - 1
	}
	return r.colors[i]
}

// Sample returns the smoothed ramp color at position t in [0, 1]. A 5-tap
// binomial filter around the nearest sample hides quantization banding from
// narrow ramps without flattening broad gradients.
func (r *Ramp) Sample(t float64) Color {
	pos := clamp01(t) * float64(len(r.colors)-1)
	i := int(pos + 0.5)

	var out Color
	weights := [5]float64{1, 4, 6, 4, 1}
	for k := -2; k <= 2; k++ {
		out = out.Add(r.At(i + k).Scale(weights[k+2]))
	}
	return out.Scale(1.0 / 16.0)
}

// fallbackRamp is built once; the ramp is immutable so sharing is safe even
// from per-pixel fallback paths.
var fallbackRamp = buildFallbackRamp()

// FallbackRamp returns the procedural palette used when no reference images
// are available: deep space through ember orange to white heat, anchored on
// the stock disk color. Stops are blended in Lab space so the ramp has no
// hue kinks, then brightness-normalized like any built ramp.
func FallbackRamp() *Ramp {
	return fallbackRamp
}

func buildFallbackRamp() *Ramp {
	stops := []colorful.Color{
		{R: 0.02, G: 0.01, B: 0.04},
		{R: 0.34, G: 0.09, B: 0.05},
		{R: 1.0, G: 0.45, B: 0.1},
		{R: 1.0, G: 0.85, B: 0.55},
		{R: 1.0, G: 1.0, B: 1.0},
	}

	colors := make([]Color, DefaultRampWidth)
	for i := range colors {
		t := float64(i) / float64(DefaultRampWidth-1)
		seg := t * float64(len(stops)-1)
		lo := int(seg)
		if lo >= len(stops)-1 {
			lo = len(stops) - 2
		}
		c := stops[lo].BlendLab(stops[lo+1], seg-float64(lo)).Clamped()
		colors[i] = Color{c.R, c.G, c.B}
	}
	return &Ramp{colors: normalizeBrightness(colors)}
}

// BuildRamp samples a horizontal band from each reference image, averages
// the bands in Lab space, and returns the brightness-normalized result.
// bandFraction selects the vertical center of the band in [0, 1]; width is
// the sample count of the resulting ramp (DefaultRampWidth when <= 1).
// With no images it returns the fallback ramp and no error.
func BuildRamp(images []image.Image, bandFraction float64, width int) *Ramp {
	if len(images) == 0 {
		return FallbackRamp()
	}
	if width <= 1 {
		width = DefaultRampWidth
	}
	bandFraction = clamp01(bandFraction)

	// Accumulate per-column Lab components across all source images.
	sumL := make([]float64, width)
	sumA := make([]float64, width)
	sumB := make([]float64, width)
	counted := 0

	for _, src := range images {
		band := sampleBand(src, bandFraction, width)
		if band == nil {
			continue
		}
		counted++
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(band.At(x, 0))
			if !ok {
				continue
			}
			l, a, b := c.Lab()
			sumL[x] += l
			sumA[x] += a
			sumB[x] += b
		}
	}
	if counted == 0 {
		return FallbackRamp()
	}

	colors := make([]Color, width)
	inv := 1.0 / float64(counted)
	for x := 0; x < width; x++ {
		c := colorful.Lab(sumL[x]*inv, sumA[x]*inv, sumB[x]*inv).Clamped()
		colors[x] = Color{c.R, c.G, c.B}
	}
	return &Ramp{colors: normalizeBrightness(colors)}
}

// sampleBand extracts a horizontal band around the given height fraction of
// src and rescales it to width x 1 with Catmull-Rom filtering, which both
// averages the band vertically and resamples it horizontally in one pass.
func sampleBand(src image.Image, bandFraction float64, width int) *image.RGBA {
	bounds := src.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil
	}

	bandH := bounds.Dy() / 16
	if bandH < 1 {
		bandH = 1
	}
	centerY := bounds.Min.Y + int(bandFraction*float64(bounds.Dy()-1))
	y0 := centerY - bandH/2
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	y1 := y0 + bandH
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, 1))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, image.Rect(bounds.Min.X, y0, bounds.Max.X, y1), draw.Src, nil)
	return dst
}

// normalizeBrightness rescales the ramp so its mean luminance hits
// rampTargetLuminance, within a bounded gain so pathological source images
// cannot blow the scene out. Components clamp to [0, 1] afterward.
func normalizeBrightness(colors []Color) []Color {
	mean := 0.0
	for _, c := range colors {
		mean += c.Luminance()
	}
	mean /= float64(len(colors))
	if mean <= 0 {
		return colors
	}

	gain := clamp(rampTargetLuminance/mean, 0.5, 2.5)
	for i, c := range colors {
		colors[i] = c.Scale(gain).Clamped()
	}
	return colors
}

// LoadRampImages decodes every supported image file directly under dir,
// sorted by name for deterministic ramp builds. A missing directory or a
// file that fails to decode is skipped with no error: the palette builder
// degrades to the fallback ramp rather than halting the renderer.
func LoadRampImages(dir string) []image.Image {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var images []image.Image
	for _, name := range names {
		img, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "palette: skipping %s: %v\n", name, err)
			continue
		}
		images = append(images, img)
	}
	return images
}

// decodeImage opens and decodes a single image file.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// RampHolder supports atomic palette swapping: the render loop loads the
// current ramp once per frame while an asset watcher may store a freshly
// built one at any time. A ramp is never observed mid-rebuild.
type RampHolder struct {
	ptr atomic.Pointer[Ramp]
}

// NewRampHolder returns a holder seeded with ramp, or the fallback ramp if
// ramp is nil.
func NewRampHolder(ramp *Ramp) *RampHolder {
	h := &RampHolder{}
	h.Store(ramp)
	return h
}

// Load returns the current ramp. Never nil.
func (h *RampHolder) Load() *Ramp {
	return h.ptr.Load()
}

// Store replaces the current ramp. A nil ramp installs the fallback instead,
// preserving the non-empty guarantee.
func (h *RampHolder) Store(ramp *Ramp) {
	if ramp == nil {
		ramp = FallbackRamp()
	}
	h.ptr.Store(ramp)
}
