package blackhole

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the plain JSON configuration shared by the viewer and the baker.
// Every field has a usable default; a missing config file simply yields
// DefaultConfig. Out-of-range shading values are not rejected here: the
// formulas saturate gracefully, so the config layer only normalizes the
// enumerated mode strings.
type Config struct {
	Render  RenderConfig  `json:"render"`
	Shading ShadingConfig `json:"shading"`
	Palette PaletteConfig `json:"palette"`
}

// RenderConfig controls output size, timing, and file destinations.
type RenderConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	FrameRate  int `json:"frame_rate"`
	FrameStart int `json:"frame_start"`
	FrameEnd   int `json:"frame_end"`

	// LoopSeconds is the seamless loop length; SpeedFactor scales how fast
	// the cycle phase advances relative to elapsed time.
	LoopSeconds float64 `json:"loop_seconds"`
	SpeedFactor float64 `json:"speed_factor"`

	OutputDir   string `json:"output_dir"`
	GIFPath     string `json:"gif_path"`
	PreviewPath string `json:"preview_still_path"`
}

// ShadingConfig holds the three tunable scalars and the rendering-mode
// variant, selected once at setup.
type ShadingConfig struct {
	Acceleration float64 `json:"acceleration"`
	Warp         float64 `json:"warp"`
	JetIntensity float64 `json:"jet_intensity"`
	Mode         string  `json:"mode"` // "loop" or "continuous"
	Lens         string  `json:"lens"` // "artistic" or "schwarzschild"
}

// PaletteConfig points the palette builder at reference images.
type PaletteConfig struct {
	ImagesDir    string  `json:"images_dir"`
	BandFraction float64 `json:"band_fraction"`
	Width        int     `json:"width"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Width:       1280,
			Height:      720,
			FrameRate:   30,
			FrameStart:  1,
			FrameEnd:    450,
			LoopSeconds: DefaultLoopDuration,
			SpeedFactor: 1.0,
			OutputDir:   "output/frames",
			GIFPath:     "output/blackhole_loop.gif",
			PreviewPath: "output/blackhole_preview.png",
		},
		Shading: ShadingConfig{
			Acceleration: 1.2,
			Warp:         0.85,
			JetIntensity: 1.05,
			Mode:         "loop",
			Lens:         "artistic",
		},
		Palette: PaletteConfig{
			ImagesDir:    "assets/reference",
			BandFraction: 0.5,
			Width:        DefaultRampWidth,
		},
	}
}

// LoadConfig reads a JSON config file, overlaying it on the defaults. A
// missing file is not an error: the defaults are returned unchanged. A file
// that exists but does not parse is an error, since silently ignoring a
// user's config would be worse than stopping.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// Save writes the config as indented JSON, for generating a starter file.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// normalized fills in zero-valued structural fields with defaults. Shading
// scalars are left alone: zero is a meaningful value for warp and jets.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Render.Width < 1 {
		c.Render.Width = def.Render.Width
	}
	if c.Render.Height < 1 {
		c.Render.Height = def.Render.Height
	}
	if c.Render.FrameRate < 1 {
		c.Render.FrameRate = def.Render.FrameRate
	}
	if c.Render.FrameEnd < c.Render.FrameStart {
		c.Render.FrameEnd = c.Render.FrameStart
	}
	if c.Render.LoopSeconds <= 0 {
		c.Render.LoopSeconds = def.Render.LoopSeconds
	}
	if c.Render.SpeedFactor == 0 {
		c.Render.SpeedFactor = def.Render.SpeedFactor
	}
	if c.Palette.Width <= 1 {
		c.Palette.Width = def.Palette.Width
	}
	return c
}

// Params converts the shading section to a Params value. Unknown mode or
// lens strings fall back to the defaults rather than erroring.
func (c Config) Params() Params {
	p := Params{
		Acceleration: c.Shading.Acceleration,
		Warp:         c.Shading.Warp,
		JetIntensity: c.Shading.JetIntensity,
	}
	if c.Shading.Mode == "continuous" {
		p.Mode = ModeContinuous
	}
	if c.Shading.Lens == "schwarzschild" {
		p.Lens = LensSchwarzschild
	}
	return p
}

// BuildPalette loads the configured reference images and builds the ramp,
// falling back procedurally when the directory is empty or missing.
func (c Config) BuildPalette() *Ramp {
	images := LoadRampImages(c.Palette.ImagesDir)
	return BuildRamp(images, c.Palette.BandFraction, c.Palette.Width)
}
