package waveguide_test

import (
	"errors"
	"math"
	"testing"

	waveguide "github.com/j-poil/waveguide-generator"
)

func TestFitCurveLength(t *testing.T) {
	const wall = 300.
	model := allVariants(t)["axisymmetric"]
	p, length, err := waveguide.FitCurveLength(model, 0, wall, waveguide.Resolution(50))
	if err != nil {
		t.Fatal(err)
	}
	if length <= 0 || length >= wall {
		t.Fatalf("fitted straight length %g outside (0, %g)", length, wall)
	}
	if got := p.CurveLength(); math.Abs(got-wall) > 1e-6 {
		t.Errorf("curve length got %g. want %g", got, wall)
	}
	if last := p[len(p)-1].Z; last != length {
		t.Errorf("profile ends at z=%g. want %g", last, length)
	}
}

func TestTessellatorCurveLength(t *testing.T) {
	const wall = 250.
	model := allVariants(t)["ellipsoidal"]
	tess := waveguide.Tessellator{
		AzimuthSteps: 8,
		Sampler:      waveguide.Resolution(40),
		Concurrent:   2,
		CurveLength:  wall,
	}
	profiles, err := tess.Profiles(model, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range profiles {
		if got := p.CurveLength(); math.Abs(got-wall) > 1e-6 {
			t.Errorf("profile %d: curve length got %g. want %g", i, got, wall)
		}
	}
	// The wider horizontal flare needs a shorter horn to reach the same wall length.
	horizontal, vertical := profiles[0].Last().Z, profiles[2].Last().Z
	if horizontal >= vertical {
		t.Errorf("horizontal straight length %g should be shorter than vertical %g", horizontal, vertical)
	}
	mesh, err := tess.Mesh(model, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * 8 * 39; len(mesh) != want {
		t.Errorf("got %d triangles. want %d", len(mesh), want)
	}
}

func TestFitCurveLengthRejects(t *testing.T) {
	model := allVariants(t)["axisymmetric"]
	_, _, err := waveguide.FitCurveLength(model, 0, -1, waveguide.Resolution(10))
	if !errors.Is(err, waveguide.ErrLength) {
		t.Errorf("got error %v. want %v", err, waveguide.ErrLength)
	}
	// The clothoid tail alone is longer than the requested wall.
	tail := allVariants(t)["axisymmetric-clothoid"]
	_, _, err = waveguide.FitCurveLength(tail, 0, 100, waveguide.StepLength(4))
	if !errors.Is(err, waveguide.ErrNoConvergence) {
		t.Errorf("got error %v. want %v", err, waveguide.ErrNoConvergence)
	}
}
