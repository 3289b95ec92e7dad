package main

import (
	"os"
	"path/filepath"
	"testing"

	waveguide "github.com/j-poil/waveguide-generator"
	"github.com/j-poil/waveguide-generator/internal/config"
	"go.uber.org/zap"
)

func TestRunWritesOutputs(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.AzimuthSteps = 12
	cfg.Mesh.AxialSteps = 20
	cfg.Output = config.OutputConfig{
		Dir:      filepath.Join(t.TempDir(), "exports"),
		Name:     "horn",
		STL:      true,
		ASCIISTL: true,
		CSV:      true,
		DXF:      true,
		Plot:     true,
	}
	if err := run(cfg, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"horn.stl", "horn_ascii.stl", "horn.csv", "horn.dxf", "horn_profiles.png"} {
		info, err := os.Stat(filepath.Join(cfg.Output.Dir, name))
		if err != nil {
			t.Errorf("missing output: %v", err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	info, err := os.Stat(filepath.Join(cfg.Output.Dir, "horn.stl"))
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(84 + 50*2*12*19); info.Size() != want {
		t.Errorf("got STL size %d. want %d", info.Size(), want)
	}
}

func TestRunRejectsBadVariant(t *testing.T) {
	cfg := config.Default()
	cfg.Horn.Variant = "conical"
	cfg.Output.Dir = t.TempDir()
	if err := run(cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestPlotSubset(t *testing.T) {
	profiles := make([]waveguide.Profile, 36)
	if got := len(plotSubset(profiles)); got != 8 {
		t.Errorf("got %d profiles. want 8", got)
	}
	if got := len(plotSubset(profiles[:5])); got != 5 {
		t.Errorf("got %d profiles. want 5", got)
	}
}
