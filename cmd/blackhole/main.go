// Command blackhole opens an interactive viewer for the procedural black
// hole renderer. The scene is shaded on the CPU every frame and blitted to
// the window; keyboard controls nudge the shading parameters with eased
// transitions.
//
//	arrows     disk acceleration (up/down), lens warp (left/right)
//	J / K      jet intensity down / up
//	Tab        toggle loop / continuous rotation
//	L          toggle artistic / schwarzschild lensing
//	R          reset parameters
//	S          save a screenshot
//	H          toggle the HUD
//	Esc        quit
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	blackhole "github.com/Jskeen5822/Blackhole"
)

// previewScale divides the configured resolution for live rendering; the
// window upscales the result. CPU shading at full 720p is too slow for
// interactive frame rates on most machines.
const previewScale = 2

// nudgeDuration is how long an eased parameter transition takes.
const nudgeDuration = 0.35

type game struct {
	cfg      blackhole.Config
	params   blackhole.Params
	targets  blackhole.Params // where the current tween is heading
	tween    *blackhole.ParamTween
	renderer *blackhole.Renderer
	ramp     *blackhole.RampHolder
	start    time.Time
	showHUD  bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.params.Mode == blackhole.ModeLoop {
			g.params.Mode = blackhole.ModeContinuous
		} else {
			g.params.Mode = blackhole.ModeLoop
		}
		g.targets.Mode = g.params.Mode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if g.params.Lens == blackhole.LensArtistic {
			g.params.Lens = blackhole.LensSchwarzschild
		} else {
			g.params.Lens = blackhole.LensArtistic
		}
		g.targets.Lens = g.params.Lens
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}

	g.handleNudges()

	if g.tween != nil && !g.tween.Done {
		g.tween.Update(1.0 / 60.0)
	}

	return nil
}

// handleNudges adjusts the parameter targets on key presses and starts an
// eased tween toward them.
func (g *game) handleNudges() {
	changed := false
	nudge := func(field *float64, delta, lo, hi float64) {
		v := *field + delta
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		*field = v
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		nudge(&g.targets.Acceleration, 0.15, 0.2, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		nudge(&g.targets.Acceleration, -0.15, 0.2, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		nudge(&g.targets.Warp, 0.05, 0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		nudge(&g.targets.Warp, -0.05, 0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		nudge(&g.targets.JetIntensity, 0.15, 0, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		nudge(&g.targets.JetIntensity, -0.15, 0, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		def := blackhole.DefaultParams()
		g.targets.Acceleration = def.Acceleration
		g.targets.Warp = def.Warp
		g.targets.JetIntensity = def.JetIntensity
		changed = true
	}

	if changed {
		g.tween = blackhole.TweenParams(&g.params,
			g.targets.Acceleration, g.targets.Warp, g.targets.JetIntensity,
			nudgeDuration, ease.OutQuad)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	elapsed := time.Since(g.start).Seconds()
	clk := blackhole.ClockAt(elapsed, g.cfg.Render.SpeedFactor, g.cfg.Render.LoopSeconds)

	pix := g.renderer.RenderFrame(clk, g.params, g.ramp.Load())
	screen.WritePixels(pix)

	if g.showHUD {
		mode := "loop"
		if g.params.Mode == blackhole.ModeContinuous {
			mode = "continuous"
		}
		lens := "artistic"
		if g.params.Lens == blackhole.LensSchwarzschild {
			lens = "schwarzschild"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %.1f\naccel %.2f  warp %.2f  jets %.2f\nmode %s  lens %s\nphase %.3f",
			ebiten.ActualFPS(),
			g.params.Acceleration, g.params.Warp, g.params.JetIntensity,
			mode, lens, clk.CyclePhase))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size()
}

// screenshot writes the current framebuffer to a timestamped PNG.
func (g *game) screenshot() {
	stamp := time.Now().Format("20060102_150405")
	path := fmt.Sprintf("output/screenshots/%s.png", stamp)
	if err := blackhole.WritePNG(path, g.renderer.Image()); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("screenshot saved: %s", path)
}

func main() {
	configPath := flag.String("config", "config/defaults.json", "path to JSON config (missing file uses defaults)")
	flag.Parse()

	cfg, err := blackhole.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	params := cfg.Params()
	g := &game{
		cfg:      cfg,
		params:   params,
		targets:  params,
		renderer: blackhole.NewRenderer(cfg.Render.Width/previewScale, cfg.Render.Height/previewScale),
		ramp:     blackhole.NewRampHolder(cfg.BuildPalette()),
		start:    time.Now(),
		showHUD:  true,
	}

	ebiten.SetWindowSize(cfg.Render.Width, cfg.Render.Height)
	ebiten.SetWindowTitle("Black Hole")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run: %v", err)
	}
}
