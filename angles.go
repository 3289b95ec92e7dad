package waveguide

import "math"

// ConstantAngle is the axisymmetric angle rule: a single half-angle Alpha
// (radians) at every azimuth.
type ConstantAngle struct {
	Alpha float64
}

func (c ConstantAngle) TanAlpha(theta, length float64) float64 {
	return math.Tan(c.Alpha)
}

// EllipticalAngle interpolates elliptically between the horizontal and
// vertical half-angles, producing an elliptical mouth.
type EllipticalAngle struct {
	AlphaH, AlphaV float64
}

func (e EllipticalAngle) TanAlpha(theta, length float64) float64 {
	h := math.Tan(e.AlphaH)
	v := math.Tan(e.AlphaV)
	return h * v / math.Hypot(h*math.Cos(theta), v*math.Sin(theta))
}

// RectangularAngle bounds the flare by two planar walls at half-angles AlphaH
// and AlphaV, producing a rectangular mouth.
type RectangularAngle struct {
	AlphaH, AlphaV float64
}

func (r RectangularAngle) TanAlpha(theta, length float64) float64 {
	return rectangularMin(math.Tan(r.AlphaH), math.Tan(r.AlphaV), theta)
}

// RectangularTarget is the morphing counterpart of RectangularAngle: the
// mouth is the rectangle of half-width tan(AlphaH)·L and half-height
// tan(AlphaV)·L.
type RectangularTarget struct {
	AlphaH, AlphaV float64
}

func (r RectangularTarget) TargetRadius(theta, length float64) float64 {
	return rectangularMin(math.Tan(r.AlphaH)*length, math.Tan(r.AlphaV)*length, theta)
}

// AngleFunc adapts a function to an AnglePolicy.
type AngleFunc func(theta, length float64) float64

func (f AngleFunc) TanAlpha(theta, length float64) float64 { return f(theta, length) }

// TargetFunc adapts a function to a MorphTarget.
type TargetFunc func(theta, length float64) float64

func (f TargetFunc) TargetRadius(theta, length float64) float64 { return f(theta, length) }

// rectangularMin returns min(h/|cos θ|, v/|sin θ|). Azimuths aligned with an
// axis only see the wall they face.
func rectangularMin(h, v, theta float64) float64 {
	c := math.Abs(math.Cos(theta))
	s := math.Abs(math.Sin(theta))
	switch {
	case c < axisEpsilon:
		return v / s
	case s < axisEpsilon:
		return h / c
	}
	return math.Min(h/c, v/s)
}
