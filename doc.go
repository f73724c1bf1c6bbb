// Package blackhole procedurally renders a stylized black hole: event
// horizon, photon ring, accretion disk, relativistic jets, and a lensed
// starfield background, animated as a seamless loop or a continuous
// rotation.
//
// The core is [Shade], a pure per-pixel function from a normalized screen
// coordinate, an animation clock, three tunable parameters, and a color
// ramp to one RGB value. There is no cross-pixel or cross-frame state, so
// frames are independently reproducible and trivially parallel; [Renderer]
// fans the evaluation out across CPUs.
//
// # Quick start
//
//	ramp := blackhole.FallbackRamp()
//	r := blackhole.NewRenderer(640, 360)
//	clk := blackhole.ClockAt(elapsed, 1.0, blackhole.DefaultLoopDuration)
//	pix := r.RenderFrame(clk, blackhole.DefaultParams(), ramp)
//
// Palettes are built from reference images with [BuildRamp] (or the
// procedural [FallbackRamp]), and swapped atomically via [RampHolder].
// [Config] wires everything to a plain JSON file shared by the interactive
// viewer (cmd/blackhole) and the offline frame baker (cmd/bake).
//
// All animated detail derives from a deterministic hash-noise kernel; no
// stdlib RNG is involved anywhere, which is what makes loop playback
// bit-exact at the seam.
package blackhole
