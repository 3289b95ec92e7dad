package waveguide

import "math"

const (
	fitMaxIterations = 200
	fitRelTolerance  = 1e-9
)

// FitCurveLength finds the straight section length whose profile at azimuth
// theta has a wall curve length of curveLength, clothoid tail included.
// The wall is never shorter than the axial distance it spans so the
// search runs by bisection over (0, curveLength].
// It returns the fitted profile and straight section length.
func FitCurveLength(g Generatrix, theta, curveLength float64, s Sampler) (Profile, float64, error) {
	const op = "fit curve length"
	if !finite(curveLength) || curveLength <= 0 {
		return nil, 0, configErrf(op, ErrLength, "curve length %g", curveLength)
	}
	tol := fitRelTolerance * curveLength
	lo, hi := 0.0, curveLength
	var length float64
	for i := 0; i < fitMaxIterations; i++ {
		length = lo + (hi-lo)/2
		p, err := GenerateProfile(g, length, theta, s)
		if err != nil {
			return nil, 0, err
		}
		got := p.CurveLength()
		if math.Abs(got-curveLength) <= tol {
			return p, length, nil
		}
		if got < curveLength {
			lo = length
		} else {
			hi = length
		}
	}
	return nil, 0, configErrf(op, ErrNoConvergence, "curve length %g at θ=%g, last straight length %g", curveLength, theta, length)
}
