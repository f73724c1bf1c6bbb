package blackhole

import "math"

// DefaultLoopDuration is the seamless loop length in seconds when a config
// does not specify one.
const DefaultLoopDuration = 12.0

// Clock is the animation clock snapshot handed to the shading core each
// frame: monotonically increasing elapsed seconds plus the derived cyclic
// phase in [0, 1). The core reads it and nothing else about time.
type Clock struct {
	Elapsed    float64
	CyclePhase float64
}

// ClockAt derives a Clock from elapsed wall-clock (or baked) seconds.
// speedFactor scales how fast the cycle advances; loopDuration <= 0 falls
// back to DefaultLoopDuration. Negative elapsed still yields a phase in
// [0, 1) so scrubbing backward never produces an out-of-range clock.
func ClockAt(elapsed, speedFactor, loopDuration float64) Clock {
	if loopDuration <= 0 {
		loopDuration = DefaultLoopDuration
	}
	cycle := math.Mod(elapsed*speedFactor, loopDuration)
	if cycle < 0 {
		cycle += loopDuration
	}
	return Clock{Elapsed: elapsed, CyclePhase: cycle / loopDuration}
}

// FrameClock maps a frame index to a Clock using a fixed frame-to-time
// mapping, so offline renders are deterministic and seekable: the same frame
// index always produces the same clock regardless of render order or wall
// time.
func FrameClock(frame int, fps, speedFactor, loopDuration float64) Clock {
	if fps <= 0 {
		fps = 30
	}
	return ClockAt(float64(frame)/fps, speedFactor, loopDuration)
}
