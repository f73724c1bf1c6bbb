// Command bake renders the configured frame range offline with a fixed
// frame-to-time mapping, so output is deterministic regardless of machine
// speed or render order. It writes a PNG sequence, an animated GIF covering
// exactly one seamless loop, and a single preview still.
//
//	bake -config config/defaults.json
//	bake -config config/defaults.json -preview   # preview still only
//	bake -write-config config/defaults.json      # emit a starter config
package main

import (
	"flag"
	"image"
	"log"

	"github.com/tanema/gween/ease"

	blackhole "github.com/Jskeen5822/Blackhole"
)

// introSeconds is the eased warp ramp-up at the start of the PNG sequence.
// The GIF is rendered in its own pass with settled parameters, so the intro
// never breaks the loop seam.
const introSeconds = 1.5

// gifScale and gifStride trade GIF fidelity for file size: half resolution
// at every third frame.
const (
	gifScale  = 2
	gifStride = 3
)

func main() {
	configPath := flag.String("config", "config/defaults.json", "path to JSON config (missing file uses defaults)")
	previewOnly := flag.Bool("preview", false, "render only the preview still")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := blackhole.DefaultConfig().Save(*writeConfig); err != nil {
			log.Fatalf("write config: %v", err)
		}
		log.Printf("wrote %s", *writeConfig)
		return
	}

	cfg, err := blackhole.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	params := cfg.Params()
	ramp := cfg.BuildPalette()

	if *previewOnly {
		renderPreview(cfg, params, ramp)
		return
	}

	bakeSequence(cfg, params, ramp)
	bakeGIF(cfg, params, ramp)
	renderPreview(cfg, params, ramp)
}

// bakeSequence renders the PNG frame range. The warp parameter eases in from
// zero over the first introSeconds for a cinematic open, then holds at the
// configured value.
func bakeSequence(cfg blackhole.Config, params blackhole.Params, ramp *blackhole.Ramp) {
	r := blackhole.NewRenderer(cfg.Render.Width, cfg.Render.Height)
	fps := float64(cfg.Render.FrameRate)
	dt := float32(1.0 / fps)

	targetWarp := params.Warp
	params.Warp = 0
	intro := blackhole.TweenScalar(&params.Warp, targetWarp, introSeconds, ease.OutCubic)

	total := cfg.Render.FrameEnd - cfg.Render.FrameStart + 1
	for frame := cfg.Render.FrameStart; frame <= cfg.Render.FrameEnd; frame++ {
		clk := blackhole.FrameClock(frame-cfg.Render.FrameStart, fps, cfg.Render.SpeedFactor, cfg.Render.LoopSeconds)
		r.RenderFrame(clk, params, ramp)

		path := blackhole.FramePath(cfg.Render.OutputDir, frame)
		if err := blackhole.WritePNG(path, r.Image()); err != nil {
			log.Fatalf("frame %d: %v", frame, err)
		}

		done := frame - cfg.Render.FrameStart + 1
		if done%30 == 0 || done == total {
			log.Printf("frames: %d/%d", done, total)
		}

		intro.Update(dt)
	}
}

// bakeGIF renders one full loop at reduced size and assembles the animated
// GIF. Parameters are held at their configured values for the whole pass so
// the first and last frames meet seamlessly.
func bakeGIF(cfg blackhole.Config, params blackhole.Params, ramp *blackhole.Ramp) {
	if cfg.Render.GIFPath == "" {
		return
	}

	r := blackhole.NewRenderer(cfg.Render.Width/gifScale, cfg.Render.Height/gifScale)
	fps := float64(cfg.Render.FrameRate)
	loopFrames := int(cfg.Render.LoopSeconds*fps + 0.5)

	var frames []*image.NRGBA
	for frame := 0; frame < loopFrames; frame += gifStride {
		clk := blackhole.FrameClock(frame, fps, cfg.Render.SpeedFactor, cfg.Render.LoopSeconds)
		r.RenderFrame(clk, params, ramp)
		frames = append(frames, r.Image())
	}

	delay := int(100*float64(gifStride)/fps + 0.5)
	if err := blackhole.WriteGIF(cfg.Render.GIFPath, frames, delay); err != nil {
		log.Fatalf("gif: %v", err)
	}
	log.Printf("gif: %s (%d frames)", cfg.Render.GIFPath, len(frames))
}

// renderPreview writes a single full-resolution still from the middle of the
// loop, where the disk is fully lit.
func renderPreview(cfg blackhole.Config, params blackhole.Params, ramp *blackhole.Ramp) {
	if cfg.Render.PreviewPath == "" {
		return
	}

	r := blackhole.NewRenderer(cfg.Render.Width, cfg.Render.Height)
	fps := float64(cfg.Render.FrameRate)
	mid := int(cfg.Render.LoopSeconds * fps / 2)
	clk := blackhole.FrameClock(mid, fps, cfg.Render.SpeedFactor, cfg.Render.LoopSeconds)

	r.RenderFrame(clk, params, ramp)
	if err := blackhole.WritePNG(cfg.Render.PreviewPath, r.Image()); err != nil {
		log.Fatalf("preview: %v", err)
	}
	log.Printf("preview: %s", cfg.Render.PreviewPath)
}
