package waveguide

import (
	"math"
)

// Sampler chooses the axial positions in [0, length] at which a generatrix
// is evaluated.
type Sampler interface {
	Samples(length float64) ([]float64, error)
	// ArcStep returns the step used to advance along a clothoid tail.
	ArcStep(length float64) float64
}

// Resolution samples a fixed number of equally spaced axial positions,
// including both ends.
type Resolution int

// StepLength samples axial positions at a constant increment. The last
// sample is clamped to the horn length.
type StepLength float64

var (
	_ Sampler = Resolution(0)
	_ Sampler = StepLength(0)
)

func (r Resolution) Samples(length float64) ([]float64, error) {
	const op = "resolution samples"
	if r < 2 {
		return nil, configErrf(op, ErrResolution, "got %d", int(r))
	}
	if !finite(length) || length <= 0 {
		return nil, configErrf(op, ErrLength, "%g", length)
	}
	zs := make([]float64, r)
	last := float64(r - 1)
	for i := range zs {
		zs[i] = length * float64(i) / last
	}
	zs[r-1] = length
	return zs, nil
}

func (r Resolution) ArcStep(length float64) float64 {
	return length / float64(r-1)
}

func (s StepLength) Samples(length float64) ([]float64, error) {
	const op = "step samples"
	step := float64(s)
	if !finite(step) || step <= 0 {
		return nil, configErrf(op, ErrStep, "%g", step)
	}
	if !finite(length) || length <= 0 {
		return nil, configErrf(op, ErrLength, "%g", length)
	}
	steps := math.Ceil(length/step - sampleEpsilon)
	if steps > maxSamples {
		return nil, configErrf(op, ErrStep, "step %g needs more than %d samples for length %g", step, maxSamples, length)
	}
	n := int(steps) + 1
	if n < 2 {
		n = 2
	}
	zs := make([]float64, n)
	for i := range zs {
		zs[i] = math.Min(float64(i)*step, length)
	}
	zs[n-1] = length
	return zs, nil
}

func (s StepLength) ArcStep(length float64) float64 { return float64(s) }

// GenerateProfile samples g at azimuth theta. When g is clothoid terminated
// the clothoid tail is appended, advancing by the sampler's arc step.
func GenerateProfile(g Generatrix, length, theta float64, s Sampler) (Profile, error) {
	zs, err := s.Samples(length)
	if err != nil {
		return nil, err
	}
	profile := make(Profile, len(zs))
	for i, z := range zs {
		r, err := g.RadialDistance(z, theta, length)
		if err != nil {
			return nil, err
		}
		profile[i] = ProfilePoint{Z: z, R: r, Theta: theta}
	}
	if ct, ok := g.(ClothoidTerminated); ok {
		if c, ok := ct.ClothoidTermination(); ok {
			return c.Extend(profile, s.ArcStep(length))
		}
	}
	return profile, nil
}
