package waveguide

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromCylindrical converts a cylindrical sample (r, θ, z) to a cartesian
// point. θ is in radians and the horn axis is the z axis.
func FromCylindrical(r, theta, z float64) r3.Vec {
	return r3.Vec{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
		Z: z,
	}
}

// ProfilePoint is a single sample of a generatrix at fixed azimuth Theta.
type ProfilePoint struct {
	Z     float64 // axial position
	R     float64 // radial distance from axis
	Theta float64 // azimuth, constant along a profile
}

// Cartesian returns the point in cartesian coordinates.
func (p ProfilePoint) Cartesian() r3.Vec {
	return FromCylindrical(p.R, p.Theta, p.Z)
}

// Profile is a generatrix sampled at one azimuth, ordered by axial position.
type Profile []ProfilePoint

// Theta returns the azimuth of the profile.
func (p Profile) Theta() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[0].Theta
}

// Validate checks the profile invariants: at least two points, a single
// azimuth and finite non-negative radii. z is not required to increase since
// a clothoid tail may roll the mouth back towards the throat.
func (p Profile) Validate() error {
	const op = "validate profile"
	if len(p) < 2 {
		return configErr(op, ErrShortProfile)
	}
	theta := p[0].Theta
	for i, pt := range p {
		if !finite(pt.Z) || !finite(pt.R) || pt.R < 0 {
			return configErrf(op, ErrNonFinite, "point %d: z=%g r=%g", i, pt.Z, pt.R)
		}
		if pt.Theta != theta {
			return configErrf(op, ErrParameter, "point %d azimuth %g differs from profile azimuth %g", i, pt.Theta, theta)
		}
	}
	return nil
}

// CurveLength returns the length of the polyline through the profile points
// in the z-r plane.
func (p Profile) CurveLength() float64 {
	if len(p) < 2 {
		return 0
	}
	segments := make([]float64, len(p)-1)
	for i := range segments {
		segments[i] = math.Hypot(p[i+1].Z-p[i].Z, p[i+1].R-p[i].R)
	}
	return floats.Sum(segments)
}

// EndTangent returns the angle atan2(Δr, Δz) of the last segment of the profile.
func (p Profile) EndTangent() (float64, error) {
	if len(p) < 2 {
		return 0, configErr("end tangent", ErrShortProfile)
	}
	a, b := p[len(p)-2], p[len(p)-1]
	dz, dr := b.Z-a.Z, b.R-a.R
	if dz == 0 && dr == 0 {
		return 0, configErrf("end tangent", ErrNonFinite, "last two points coincide at z=%g", b.Z)
	}
	return math.Atan2(dr, dz), nil
}

// Last returns the last point of the profile. It panics on an empty profile.
func (p Profile) Last() ProfilePoint { return p[len(p)-1] }
