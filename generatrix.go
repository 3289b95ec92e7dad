package waveguide

import (
	"math"
)

// Generatrix computes the horn wall radius at axial position z and azimuth
// theta for a horn of total straight length `length`.
type Generatrix interface {
	RadialDistance(z, theta, length float64) (float64, error)
}

// AnglePolicy returns tan(α), the flare half-angle tangent at azimuth theta.
type AnglePolicy interface {
	TanAlpha(theta, length float64) float64
}

// MorphTarget returns the mouth radius the horn must reach at azimuth theta
// and full length. The flare angle is back-solved from it.
type MorphTarget interface {
	TargetRadius(theta, length float64) float64
}

// Termination is a radius term added to the spheroid law near the mouth.
// Distance is only defined for 0 <= z <= length.
type Termination interface {
	Distance(z, length float64) float64
}

// Spheroid holds the parameters of the generalized oblate-spheroid flare law.
type Spheroid struct {
	K         float64 // expansion factor, controls eccentricity
	RInit     float64 // throat radius
	AlphaInit float64 // throat launch half-angle (radians)
}

// Distance returns the generalized oblate-spheroid radius at z for a flare
// half-angle tangent tanAlpha.
func (s Spheroid) Distance(z, tanAlpha float64) float64 {
	kr := s.K * s.RInit
	a := kr * kr
	b := 2 * kr * z * math.Tan(s.AlphaInit)
	c := z * tanAlpha
	return math.Sqrt(a+b+c*c) + s.RInit*(1-s.K)
}

func (s Spheroid) validate() error {
	const op = "spheroid"
	switch {
	case !finite(s.K) || s.K <= 0:
		return configErrf(op, ErrParameter, "k=%g must be positive", s.K)
	case !finite(s.RInit) || s.RInit <= 0:
		return configErrf(op, ErrParameter, "throat radius %g must be positive", s.RInit)
	case !finite(s.AlphaInit) || s.AlphaInit < 0 || s.AlphaInit >= pi/2:
		return configErrf(op, ErrParameter, "throat angle %g outside [0, π/2)", s.AlphaInit)
	}
	return nil
}

// Superellipse is the flare termination s·L/q·(1 − (1 − (z·q/L)^n)^(1/n)).
type Superellipse struct {
	S float64 // termination strength
	Q float64 // termination truncation, usually just under 1
	N float64 // termination exponent
}

var _ Termination = Superellipse{}

func (t Superellipse) Distance(z, length float64) float64 {
	base := 1 - math.Pow(z*t.Q/length, t.N)
	return t.S * length / t.Q * (1 - math.Pow(base, 1/t.N))
}

func (t Superellipse) validate() error {
	const op = "superellipse"
	switch {
	case !finite(t.S) || t.S < 0:
		return configErrf(op, ErrParameter, "s=%g must be non-negative", t.S)
	case !finite(t.Q) || t.Q <= 0:
		return configErrf(op, ErrParameter, "q=%g must be positive", t.Q)
	case !finite(t.N) || t.N <= 0:
		return configErrf(op, ErrParameter, "n=%g must be positive", t.N)
	}
	return nil
}

type noTermination struct{}

func (noTermination) Distance(z, length float64) float64 { return 0 }

// Model is an immutable generatrix built from a spheroid law, exactly one
// angle rule and an optional mouth termination. Use Builder or one of the
// New* variant constructors to obtain one.
type Model struct {
	spheroid    Spheroid
	angle       AnglePolicy
	morph       MorphTarget
	termination Termination
	clothoid    *Clothoid
}

var (
	_ Generatrix         = (*Model)(nil)
	_ ClothoidTerminated = (*Model)(nil)
)

// Spheroid returns the spheroid parameters of the model.
func (m *Model) Spheroid() Spheroid { return m.spheroid }

// ClothoidTermination returns the clothoid mouth termination if the model has one.
func (m *Model) ClothoidTermination() (Clothoid, bool) {
	if m.clothoid == nil {
		return Clothoid{}, false
	}
	return *m.clothoid, true
}

// RadialDistance returns the wall radius at (z, theta) for a horn of straight
// section length `length`. Clothoid models return the spheroid law only.
func (m *Model) RadialDistance(z, theta, length float64) (float64, error) {
	const op = "radial distance"
	if !finite(length) || length <= 0 {
		return 0, configErrf(op, ErrLength, "%g", length)
	}
	if !(z >= 0 && z <= length) {
		return 0, configErrf(op, ErrOutOfRange, "z=%g length=%g", z, length)
	}
	tanAlpha, err := m.TanAlpha(theta, length)
	if err != nil {
		return 0, err
	}
	r := m.spheroid.Distance(z, tanAlpha) + m.termination.Distance(z, length)
	if !finite(r) || r < 0 {
		return 0, configErrf(op, ErrNonFinite, "r=%g at z=%g θ=%g", r, z, theta)
	}
	return r, nil
}

// TanAlpha returns the flare half-angle tangent at azimuth theta, either
// directly from the angle policy or back-solved from the morph target.
func (m *Model) TanAlpha(theta, length float64) (float64, error) {
	const op = "flare angle"
	var tanAlpha float64
	switch {
	case m.angle != nil:
		tanAlpha = m.angle.TanAlpha(theta, length)
	case m.morph != nil:
		var err error
		tanAlpha, err = m.backSolve(theta, length)
		if err != nil {
			return 0, err
		}
	default:
		// Builder rejects this, so only a zero Model reaches here.
		return 0, configErr(op, ErrNoAngleRule)
	}
	if !finite(tanAlpha) || tanAlpha < 0 {
		return 0, configErrf(op, ErrNonFinite, "tan(α)=%g at θ=%g", tanAlpha, theta)
	}
	return tanAlpha, nil
}

// backSolve inverts the spheroid law for tan(α) so the wall reaches the morph
// target at z = length. The termination term is the one at the mouth,
// Distance(length, length), whatever z is being sampled.
func (m *Model) backSolve(theta, length float64) (float64, error) {
	s := m.spheroid
	target := m.morph.TargetRadius(theta, length)
	kr := s.K * s.RInit
	d := target - m.termination.Distance(length, length) - s.RInit*(1-s.K)
	radicand := d*d - kr*kr - 2*kr*length*math.Tan(s.AlphaInit)
	if radicand < 0 || math.IsNaN(radicand) {
		return 0, configErrf("flare angle", ErrNegativeRadicand, "target %g at θ=%g gives %g", target, theta, radicand)
	}
	return math.Sqrt(radicand) / length, nil
}
