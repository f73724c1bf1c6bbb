package blackhole

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes an image to a PNG file at the given path, creating parent
// directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// FramePath returns the zero-padded PNG path for a frame index inside dir.
func FramePath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
}

// WriteGIF encodes the frames as a looping animated GIF at the given path.
// Frames are quantized to the Plan 9 palette with Floyd-Steinberg dithering,
// which holds up well on the disk's warm gradients. delay is in hundredths
// of a second per frame, matching the GIF wire format.
func WriteGIF(path string, frames []*image.NRGBA, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gif %s: no frames", path)
	}
	if delay < 1 {
		delay = 1
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
