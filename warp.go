package blackhole

import "math"

// LensMode selects how gravitational lensing is approximated in the
// coordinate warp. The two formulations are alternatives, never blended:
// a configuration picks one at setup time.
type LensMode uint8

const (
	// LensArtistic applies a radial push plus swirl. It is not physical but
	// reads well at every warp strength and is the cheaper of the two.
	LensArtistic LensMode = iota
	// LensSchwarzschild displaces samples by a clamped inverse-square bend
	// term scaled by the Schwarzschild radius, concentrating distortion
	// near the photon sphere.
	LensSchwarzschild
)

const (
	// lensSoftening keeps the artistic radial push finite at the center.
	lensSoftening = 0.22
	// lensPushGain scales the artistic push per unit warp strength.
	lensPushGain = 0.085
	// swirlGain is the maximum frame-dragging twist in radians at full
	// warp strength.
	swirlGain = 1.9
	// tiltAngle and the tilt scales break the perfect face-on symmetry,
	// giving the disk a slightly inclined look.
	tiltAngle  = 0.18
	tiltScaleX = 0.9
	tiltScaleY = 1.04
	// schwarzschildRadius is the R_s term of the bend formula, in the same
	// normalized screen units as the radius constants.
	schwarzschildRadius = 0.11
	// maxBend caps the Schwarzschild displacement so rays never fold over.
	maxBend = 0.85
	// centerEpsilon keeps every radius-reciprocal finite at the exact
	// image center.
	centerEpsilon = 1e-4
)

// warpCoord maps a centered screen point to the (radius, angle) pair used by
// all ring and disk logic. The returned bend term is zero in LensArtistic
// mode; in LensSchwarzschild mode it is the clamped bend strength, which the
// background layer reuses to drive the inflow fog.
//
// Step order is fixed: lens displacement, swirl (artistic mode only), tilt,
// then polar conversion. Reordering changes where the photon ring lands.
func warpCoord(p Vec2, strength float64, lens LensMode) (radius, angle, bend float64) {
	r := math.Max(p.Length(), centerEpsilon)

	switch lens {
	case LensSchwarzschild:
		bend = clamp(strength*schwarzschildRadius/(r*r), 0, maxBend)
		// Concentrate the displacement near the photon sphere; far from
		// the hole the caustic factor kills it smoothly.
		bend *= smoothstep(PhotonSphereRadius*3.2, PhotonSphereRadius*1.05, r)
		p = p.Scale(1 + bend)
	default:
		p = p.Scale(1 + lensPushGain*strength/(r*r+lensSoftening))
		// Swirl: twist grows toward the center, fading out by radius 1.2.
		twist := swirlGain * strength * smoothstep(1.2, 0.0, r)
		p = p.Rotated(twist)
	}

	p = p.Rotated(tiltAngle)
	p = Vec2{p.X * tiltScaleX, p.Y * tiltScaleY}

	radius = math.Max(p.Length(), centerEpsilon)
	angle = math.Atan2(p.Y, p.X)
	return radius, angle, bend
}

// centeredCoord converts a normalized [0,1]^2 screen coordinate to the
// centered [-1,1]^2 space the warp operates in, correcting for the output
// aspect ratio so the hole stays round on non-square targets.
func centeredCoord(uv, resolution Vec2) Vec2 {
	p := Vec2{uv.X*2 - 1, uv.Y*2 - 1}
	if resolution.Y > 0 {
		p.X *= resolution.X / resolution.Y
	}
	return p
}
