package lighting

import (
	gomath "math"

	"github.com/Faultbox/heightwalk/pkg/math"
)

// SunDirection converts an azimuth (degrees around Y, 0 = +Z) and an
// elevation above the horizon (degrees) to a unit vector pointing at the sun.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(math.Radians(azimuth))
	el := float64(math.Radians(elevation))

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Lambert returns the diffuse factor max(0, n·l) for an unnormalised surface
// normal n and a unit light direction l.
func Lambert(n, l math.Vec3) float32 {
	return max(0, n.Normalize().Dot(l))
}
