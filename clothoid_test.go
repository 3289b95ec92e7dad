package waveguide_test

import (
	"errors"
	"math"
	"testing"

	waveguide "github.com/j-poil/waveguide-generator"
)

// straight hides the clothoid termination of a generatrix.
type straight struct{ waveguide.Generatrix }

func TestClothoidContinuity(t *testing.T) {
	const step = 4.
	tail := waveguide.Clothoid{Length: 200, EndRadius: 60}
	model := mustModel(t)(waveguide.NewAxisymmetricClothoid(throat, tail, waveguide.DtoR(45)))
	base, err := waveguide.GenerateProfile(straight{model}, hornLength, 0, waveguide.StepLength(step))
	if err != nil {
		t.Fatal(err)
	}
	full, err := waveguide.GenerateProfile(model, hornLength, 0, waveguide.StepLength(step))
	if err != nil {
		t.Fatal(err)
	}
	nb := len(base)
	if want := nb + tail.Steps(step); len(full) != want {
		t.Fatalf("got %d points. want %d", len(full), want)
	}
	// No position discontinuity where the spiral starts.
	if full[nb-1] != base[nb-1] {
		t.Errorf("spiral start %+v does not match base end %+v", full[nb-1], base[nb-1])
	}
	theta0, err := base.EndTangent()
	if err != nil {
		t.Fatal(err)
	}
	first := math.Atan2(full[nb].R-full[nb-1].R, full[nb].Z-full[nb-1].Z)
	if math.Abs(first-theta0) > 1e-9 {
		t.Errorf("tangent discontinuity: spiral starts at %g rad, base ends at %g rad", first, theta0)
	}
	// Every spiral step advances by step along the curvature angle law.
	for i := 0; i < tail.Steps(step); i++ {
		a, b := full[nb-1+i], full[nb+i]
		if d := math.Hypot(b.Z-a.Z, b.R-a.R); math.Abs(d-step) > 1e-9 {
			t.Errorf("step %d: arc step got %g. want %g", i, d, step)
		}
		got := math.Atan2(b.R-a.R, b.Z-a.Z)
		want := tail.TangentAngle(theta0, float64(i)*step)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("step %d: curvature angle got %g. want %g", i, got, want)
		}
		if b.Theta != 0 {
			t.Errorf("step %d: azimuth changed to %g", i, b.Theta)
		}
	}
	_, err = waveguide.GenerateProfile(model, hornLength, 0, waveguide.StepLength(1e-300))
	if !errors.Is(err, waveguide.ErrStep) {
		t.Errorf("tiny step: got error %v. want %v", err, waveguide.ErrStep)
	}
}

func TestClothoidExtend(t *testing.T) {
	line := waveguide.Profile{{Z: 0, R: 1}, {Z: 1, R: 2}}
	c := waveguide.Clothoid{Length: 10, EndRadius: 5}
	if got := c.Steps(3); got != 3 {
		t.Errorf("got %d steps. want 3", got)
	}
	if got := c.Steps(1e-300); got != -1 {
		t.Errorf("got %d steps for a tiny step. want -1", got)
	}
	out, err := c.Extend(line, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("got %d points. want 5", len(out))
	}
	if len(line) != 2 {
		t.Error("Extend modified its input profile")
	}
	want := waveguide.ProfilePoint{Z: 1 + 3*math.Cos(math.Pi/4), R: 2 + 3*math.Sin(math.Pi/4)}
	if math.Abs(out[2].Z-want.Z) > tol || math.Abs(out[2].R-want.R) > tol {
		t.Errorf("first spiral point got %+v. want %+v", out[2], want)
	}

	for _, test := range []struct {
		name string
		p    waveguide.Profile
		step float64
		want error
	}{
		{"short", line[:1], 1, waveguide.ErrShortProfile},
		{"zero step", line, 0, waveguide.ErrStep},
		{"tiny step", line, 1e-300, waveguide.ErrStep},
		{"too many points", line, c.Length / (1 << 21), waveguide.ErrStep},
		{"coincident end", waveguide.Profile{{Z: 1, R: 1}, {Z: 1, R: 1}}, 1, waveguide.ErrNonFinite},
	} {
		_, err := c.Extend(test.p, test.step)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v. want %v", test.name, err, test.want)
		}
	}
}
