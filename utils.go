package waveguide

import "math"

// MillimetresPerInch is millimetres per inch (25.4)
const MillimetresPerInch = 25.4

const (
	pi  = math.Pi
	tau = 2 * pi
	// axisEpsilon is the |cos θ| or |sin θ| under which an azimuth is
	// considered aligned with a rectangular mouth's axis.
	axisEpsilon = 1e-12
	// sampleEpsilon absorbs floating point noise when counting fixed steps.
	sampleEpsilon = 1e-9
	// maxSamples bounds the points of a single profile or clothoid tail.
	maxSamples = 1 << 20
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Azimuths returns n angles evenly spaced over [0, 2π).
func Azimuths(n int) []float64 {
	thetas := make([]float64, n)
	for i := range thetas {
		thetas[i] = tau * float64(i) / float64(n)
	}
	return thetas
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
