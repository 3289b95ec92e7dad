package waveguide

import "math"


// Clothoid is an Euler spiral mouth termination. The curvature grows
// linearly with arc length and reaches 1/EndRadius after Length.
type Clothoid struct {
	Length    float64 // arc length of the termination
	EndRadius float64 // radius of curvature at the end of the termination
}

// ClothoidTerminated is implemented by generatrices that finish their mouth
// with a clothoid tail.
type ClothoidTerminated interface {
	ClothoidTermination() (Clothoid, bool)
}

func (c Clothoid) validate() error {
	const op = "clothoid"
	switch {
	case !finite(c.Length) || c.Length <= 0:
		return configErrf(op, ErrParameter, "termination length %g must be positive", c.Length)
	case !finite(c.EndRadius) || c.EndRadius <= 0:
		return configErrf(op, ErrParameter, "termination end radius %g must be positive", c.EndRadius)
	}
	return nil
}

// Steps returns the number of spiral points appended for a given step length.
// It returns -1 when the count exceeds maxSamples.
func (c Clothoid) Steps(step float64) int {
	n := math.Round(c.Length / step)
	if !(n <= maxSamples) {
		return -1
	}
	return int(n)
}

// TangentAngle returns the tangent angle of the spiral after arc length s,
// given the tangent angle theta0 where the spiral starts.
func (c Clothoid) TangentAngle(theta0, s float64) float64 {
	return theta0 + s*s/(2*c.Length*c.EndRadius)
}

// Extend returns a copy of p with the spiral appended. The spiral starts at
// the last point of p, tangent to its last segment, and advances by a
// constant arc length step. The azimuth is held fixed.
func (c Clothoid) Extend(p Profile, step float64) (Profile, error) {
	const op = "clothoid extend"
	if err := c.validate(); err != nil {
		return nil, err
	}
	if !finite(step) || step <= 0 {
		return nil, configErrf(op, ErrStep, "%g", step)
	}
	theta0, err := p.EndTangent()
	if err != nil {
		return nil, err
	}
	n := c.Steps(step)
	if n < 0 {
		return nil, configErrf(op, ErrStep, "step %g needs more than %d points for a %g termination", step, maxSamples, c.Length)
	}
	out := make(Profile, len(p), len(p)+n)
	copy(out, p)
	last := p.Last()
	for i := 0; i < n; i++ {
		angle := c.TangentAngle(theta0, float64(i)*step)
		last = ProfilePoint{
			Z:     last.Z + step*math.Cos(angle),
			R:     last.R + step*math.Sin(angle),
			Theta: last.Theta,
		}
		out = append(out, last)
	}
	return out, nil
}
