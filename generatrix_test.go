package waveguide_test

import (
	"errors"
	"math"
	"testing"

	waveguide "github.com/j-poil/waveguide-generator"
)

const (
	hornLength = 200.
	tol        = 1e-9
)

var (
	throat = waveguide.Spheroid{K: 1, RInit: 25.4, AlphaInit: waveguide.DtoR(1)}
	mouth  = waveguide.Superellipse{S: 0.7, Q: 0.997, N: 6}
)

func allVariants(t testing.TB) map[string]*waveguide.Model {
	alphaH, alphaV := waveguide.DtoR(45), waveguide.DtoR(30)
	tail := waveguide.Clothoid{Length: 200, EndRadius: 60}
	return map[string]*waveguide.Model{
		"axisymmetric":          mustModel(t)(waveguide.NewAxisymmetric(throat, mouth, alphaH)),
		"ellipsoidal":           mustModel(t)(waveguide.NewEllipsoidal(throat, mouth, alphaH, alphaV)),
		"rectangular":           mustModel(t)(waveguide.NewRectangular(throat, mouth, alphaH, alphaV)),
		"rectangular-morph":     mustModel(t)(waveguide.NewRectangularMorph(throat, mouth, alphaH, alphaV)),
		"axisymmetric-clothoid": mustModel(t)(waveguide.NewAxisymmetricClothoid(throat, tail, alphaH)),
		"rectangular-clothoid":  mustModel(t)(waveguide.NewRectangularClothoid(throat, tail, alphaH, alphaV)),
	}
}

func mustModel(t testing.TB) func(*waveguide.Model, error) *waveguide.Model {
	return func(m *waveguide.Model, err error) *waveguide.Model {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return m
	}
}

func TestThroatRadius(t *testing.T) {
	for name, model := range allVariants(t) {
		for _, theta := range waveguide.Azimuths(36) {
			got, err := model.RadialDistance(0, theta, hornLength)
			if err != nil {
				t.Fatalf("%s θ=%g: %s", name, theta, err)
			}
			if math.Abs(got-throat.RInit) > tol {
				t.Errorf("%s θ=%g: throat radius got %g. want %g", name, theta, got, throat.RInit)
			}
		}
	}
}

func TestRadialDistanceFiniteEverywhere(t *testing.T) {
	// Include exact axis-aligned azimuths where rectangular rules divide by cos θ or sin θ.
	thetas := append(waveguide.Azimuths(72), math.Pi/2, math.Pi, 3*math.Pi/2)
	for name, model := range allVariants(t) {
		for _, theta := range thetas {
			for _, z := range []float64{0, 1, 50, 199.99, hornLength} {
				r, err := model.RadialDistance(z, theta, hornLength)
				if err != nil {
					t.Fatalf("%s z=%g θ=%g: %s", name, z, theta, err)
				}
				if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
					t.Fatalf("%s z=%g θ=%g: bad radius %g", name, z, theta, r)
				}
			}
		}
	}
}

func TestAxisymmetricIndependentOfAzimuth(t *testing.T) {
	model := allVariants(t)["axisymmetric"]
	for _, z := range []float64{0, 12.5, 100, 187, hornLength} {
		want, err := model.RadialDistance(z, 0, hornLength)
		if err != nil {
			t.Fatal(err)
		}
		for _, theta := range waveguide.Azimuths(17) {
			got, err := model.RadialDistance(z, theta, hornLength)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("z=%g θ=%g: got %g. want %g", z, theta, got, want)
			}
		}
	}
}

func TestEllipsoidalReducesToAxisymmetric(t *testing.T) {
	for _, deg := range []float64{10, 30, 45, 60} {
		alpha := waveguide.DtoR(deg)
		ell := mustModel(t)(waveguide.NewEllipsoidal(throat, mouth, alpha, alpha))
		axi := mustModel(t)(waveguide.NewAxisymmetric(throat, mouth, alpha))
		for _, theta := range waveguide.Azimuths(24) {
			for _, z := range []float64{0, 33, 150, hornLength} {
				got, err := ell.RadialDistance(z, theta, hornLength)
				if err != nil {
					t.Fatal(err)
				}
				want, err := axi.RadialDistance(z, theta, hornLength)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(got-want) > tol*want {
					t.Errorf("α=%g° z=%g θ=%g: got %g. want %g", deg, z, theta, got, want)
				}
			}
		}
	}
}

func TestRectangularAxisAngles(t *testing.T) {
	h, v := waveguide.DtoR(45), waveguide.DtoR(30)
	rect := waveguide.RectangularAngle{AlphaH: h, AlphaV: v}
	for _, test := range []struct {
		theta float64
		want  float64
	}{
		{0, math.Tan(h)},
		{math.Pi / 2, math.Tan(v)},
		{math.Pi, math.Tan(h)},
		{3 * math.Pi / 2, math.Tan(v)},
	} {
		got := rect.TanAlpha(test.theta, hornLength)
		if math.Abs(got-test.want) > tol {
			t.Errorf("θ=%g: got tan(α)=%g. want %g", test.theta, got, test.want)
		}
	}
	// Diagonal azimuths are bound by the nearest wall.
	diag := rect.TanAlpha(math.Pi/4, hornLength)
	want := math.Tan(v) / math.Sin(math.Pi/4)
	if math.Abs(diag-want) > tol {
		t.Errorf("θ=π/4: got tan(α)=%g. want %g", diag, want)
	}
}

func TestMorphReachesTarget(t *testing.T) {
	// With the termination disabled the back-solved angle makes the spheroid
	// law reach the target exactly at the mouth.
	noTerm := waveguide.Superellipse{S: 0, Q: 1, N: 2}
	target := waveguide.RectangularTarget{AlphaH: waveguide.DtoR(45), AlphaV: waveguide.DtoR(30)}
	model, err := waveguide.NewBuilder(throat).Morph(target).Superellipse(noTerm).Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, theta := range waveguide.Azimuths(36) {
		got, err := model.RadialDistance(hornLength, theta, hornLength)
		if err != nil {
			t.Fatal(err)
		}
		want := target.TargetRadius(theta, hornLength)
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("θ=%g: mouth radius got %g. want %g", theta, got, want)
		}
	}
}

func TestMorphNegativeRadicand(t *testing.T) {
	noTerm := waveguide.Superellipse{S: 0, Q: 1, N: 2}
	tiny := waveguide.DtoR(1)
	model, err := waveguide.NewRectangularMorph(throat, noTerm, tiny, tiny)
	if err != nil {
		t.Fatal(err)
	}
	_, err = model.RadialDistance(10, 0, hornLength)
	if !errors.Is(err, waveguide.ErrNegativeRadicand) {
		t.Fatalf("got error %v. want %v", err, waveguide.ErrNegativeRadicand)
	}
	var cerr *waveguide.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v is not a *ConfigError", err)
	}
}

func TestBuilderRejects(t *testing.T) {
	angle := waveguide.ConstantAngle{Alpha: waveguide.DtoR(45)}
	target := waveguide.RectangularTarget{AlphaH: 1, AlphaV: 0.5}
	tail := waveguide.Clothoid{Length: 100, EndRadius: 40}
	for _, test := range []struct {
		name string
		b    *waveguide.Builder
		want error
	}{
		{"no angle rule", waveguide.NewBuilder(throat).Superellipse(mouth), waveguide.ErrNoAngleRule},
		{"angle and morph", waveguide.NewBuilder(throat).Angle(angle).Morph(target), waveguide.ErrAmbiguousAngleRule},
		{"two terminations", waveguide.NewBuilder(throat).Angle(angle).Superellipse(mouth).Clothoid(tail), waveguide.ErrTerminationClash},
		{"zero throat", waveguide.NewBuilder(waveguide.Spheroid{K: 1}).Angle(angle), waveguide.ErrParameter},
		{"negative k", waveguide.NewBuilder(waveguide.Spheroid{K: -1, RInit: 1}).Angle(angle), waveguide.ErrParameter},
		{"bad superellipse", waveguide.NewBuilder(throat).Angle(angle).Superellipse(waveguide.Superellipse{S: 1, Q: 0, N: 2}), waveguide.ErrParameter},
		{"bad clothoid", waveguide.NewBuilder(throat).Angle(angle).Clothoid(waveguide.Clothoid{Length: 10}), waveguide.ErrParameter},
	} {
		m, err := test.b.Build()
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v. want %v", test.name, err, test.want)
		}
		if m != nil {
			t.Errorf("%s: got non-nil model on error", test.name)
		}
	}
}

func TestZeroModelFailsFast(t *testing.T) {
	var m waveguide.Model
	_, err := m.RadialDistance(1, 0, hornLength)
	if !errors.Is(err, waveguide.ErrNoAngleRule) {
		t.Fatalf("got error %v. want %v", err, waveguide.ErrNoAngleRule)
	}
}

func TestRadialDistanceRejects(t *testing.T) {
	model := allVariants(t)["ellipsoidal"]
	for _, test := range []struct {
		z, length float64
		want      error
	}{
		{-1, hornLength, waveguide.ErrOutOfRange},
		{hornLength + 1, hornLength, waveguide.ErrOutOfRange},
		{math.NaN(), hornLength, waveguide.ErrOutOfRange},
		{0, 0, waveguide.ErrLength},
		{0, math.Inf(1), waveguide.ErrLength},
	} {
		_, err := model.RadialDistance(test.z, 0, test.length)
		if !errors.Is(err, test.want) {
			t.Errorf("z=%g length=%g: got error %v. want %v", test.z, test.length, err, test.want)
		}
	}
	// q > 1 drives the superellipse base negative near the mouth.
	bad := mustModel(t)(waveguide.NewAxisymmetric(throat, waveguide.Superellipse{S: 0.7, Q: 1.5, N: 2.5}, 1))
	_, err := bad.RadialDistance(hornLength, 0, hornLength)
	if !errors.Is(err, waveguide.ErrNonFinite) {
		t.Errorf("got error %v. want %v", err, waveguide.ErrNonFinite)
	}
}
