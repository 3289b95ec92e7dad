// Command waveguide generates oblate spheroid waveguide meshes and profiles.
//
// Settings are read from waveguide.yaml (or the file given by -config) and
// overridden by flags. Run with -write-config to dump the resolved settings.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	waveguide "github.com/j-poil/waveguide-generator"
	"github.com/j-poil/waveguide-generator/internal/config"
	"github.com/j-poil/waveguide-generator/internal/logger"
	"github.com/j-poil/waveguide-generator/render"
	"go.uber.org/zap"
)

// maxPlotLines bounds the number of profiles drawn in the profile plot.
const maxPlotLines = 8

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Config, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if flags.WriteConfig != "" {
		if err := cfg.SaveTo(flags.WriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	model, err := cfg.Horn.Build()
	if err != nil {
		return err
	}
	tess := cfg.Mesh.Tessellator()
	if tess.Concurrent == 0 {
		tess.Concurrent = runtime.NumCPU()
	}
	log.Info("generating profiles",
		zap.String("variant", cfg.Horn.Variant),
		zap.Float64("length", cfg.Horn.Length),
		zap.Float64("curveLength", tess.CurveLength),
		zap.Int("azimuthSteps", tess.AzimuthSteps),
		zap.Int("goroutines", tess.Concurrent),
	)
	start := time.Now()
	profiles, err := tess.Profiles(model, cfg.Horn.Length)
	if err != nil {
		return err
	}
	stitcher, err := waveguide.NewStitcher(profiles)
	if err != nil {
		return err
	}
	log.Debug("profiles generated",
		zap.Int("points", len(profiles[0])),
		zap.Int("triangles", stitcher.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	out := cfg.Output
	if err = os.MkdirAll(out.Dir, 0755); err != nil {
		return err
	}
	path := func(suffix string) string {
		return filepath.Join(out.Dir, out.Name+suffix)
	}
	written := func(p string, start time.Time) {
		log.Info("wrote file", zap.String("path", p), zap.Duration("elapsed", time.Since(start)))
	}

	if out.STL {
		start, p := time.Now(), path(".stl")
		stitcher.Reset()
		if err = render.CreateSTL(p, stitcher); err != nil {
			return err
		}
		written(p, start)
	}
	if out.ASCIISTL {
		start, p := time.Now(), path("_ascii.stl")
		stitcher.Reset()
		if err = render.CreateASCIISTL(p, out.Name, stitcher); err != nil {
			return err
		}
		written(p, start)
	}
	if out.CSV {
		start, p := time.Now(), path(".csv")
		if err = render.CreateCSV(p, profiles); err != nil {
			return err
		}
		written(p, start)
	}
	if out.DXF {
		start, p := time.Now(), path(".dxf")
		if err = render.CreateDXF(p, profiles); err != nil {
			return err
		}
		written(p, start)
	}
	if out.Plot {
		start, p := time.Now(), path("_profiles.png")
		if err = render.CreateProfilePlot(p, cfg.Horn.Variant, plotSubset(profiles)); err != nil {
			return err
		}
		written(p, start)
	}
	if out.Preview {
		start, p := time.Now(), path("_preview.png")
		stitcher.Reset()
		if err = render.CreatePNG(p, stitcher, render.DefaultView()); err != nil {
			return err
		}
		written(p, start)
	}
	return nil
}

// plotSubset picks at most maxPlotLines evenly spaced profiles.
func plotSubset(profiles []waveguide.Profile) []waveguide.Profile {
	stride := (len(profiles) + maxPlotLines - 1) / maxPlotLines
	if stride <= 1 {
		return profiles
	}
	subset := make([]waveguide.Profile, 0, maxPlotLines)
	for i := 0; i < len(profiles); i += stride {
		subset = append(subset, profiles[i])
	}
	return subset
}
