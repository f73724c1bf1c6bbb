package blackhole

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParamTween animates up to 4 scalar fields toward target values, easing
// with gween. The viewer uses it to glide the shading parameters when the
// user nudges them, and the baker uses it for cinematic intro ramps. Call
// Update(dt) each frame; values are written through the field pointers.
//
// There is no global animation manager; callers drive Update themselves.
type ParamTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the eased values to
// their fields. Done is set once every tween has finished.
func (g *ParamTween) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenScalar creates a ParamTween easing a single field to the target value
// over the given duration.
func TweenScalar(field *float64, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	g := &ParamTween{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenParams creates a ParamTween easing all three shading parameters to
// the given targets simultaneously.
func TweenParams(p *Params, toAccel, toWarp, toJet float64, duration float32, fn ease.TweenFunc) *ParamTween {
	g := &ParamTween{count: 3}
	g.tweens[0] = gween.New(float32(p.Acceleration), float32(toAccel), duration, fn)
	g.tweens[1] = gween.New(float32(p.Warp), float32(toWarp), duration, fn)
	g.tweens[2] = gween.New(float32(p.JetIntensity), float32(toJet), duration, fn)
	g.fields[0] = &p.Acceleration
	g.fields[1] = &p.Warp
	g.fields[2] = &p.JetIntensity
	return g
}
