package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds command-line overrides. Zero values leave the loaded config
// unchanged.
type Flags struct {
	Config      string
	WriteConfig string
	Variant     string
	Length      float64
	Azimuth     int
	Axial       int
	Step        float64
	CurveLength float64
	Concurrent  int
	Out         string
	Name        string
	Formats     string
	Debug       bool
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the resolved config to this path and exit")
	fs.StringVar(&f.Variant, "variant", "", "Horn variant: "+strings.Join(Variants(), ", "))
	fs.Float64Var(&f.Length, "length", 0, "Horn length in mm")
	fs.IntVar(&f.Azimuth, "azimuth", 0, "Number of azimuthal profiles")
	fs.IntVar(&f.Axial, "axial", 0, "Number of points per profile")
	fs.Float64Var(&f.Step, "step", 0, "Axial step length in mm, overrides -axial")
	fs.Float64Var(&f.CurveLength, "curve-length", 0, "Fit every profile to this wall length in mm")
	fs.IntVar(&f.Concurrent, "j", 0, "Number of goroutines generating profiles")
	fs.StringVar(&f.Out, "out", "", "Output directory")
	fs.StringVar(&f.Name, "name", "", "Output file base name")
	fs.StringVar(&f.Formats, "formats", "", "Comma separated outputs: stl, ascii-stl, csv, dxf, plot, preview")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f.Variant != "" {
		cfg.Horn.Variant = f.Variant
	}
	if f.Length > 0 {
		cfg.Horn.Length = f.Length
	}
	if f.Azimuth > 0 {
		cfg.Mesh.AzimuthSteps = f.Azimuth
	}
	if f.Axial > 0 {
		cfg.Mesh.AxialSteps = f.Axial
		cfg.Mesh.StepLength = 0
	}
	if f.Step > 0 {
		cfg.Mesh.StepLength = f.Step
	}
	if f.CurveLength > 0 {
		cfg.Mesh.CurveLength = f.CurveLength
	}
	if f.Concurrent > 0 {
		cfg.Mesh.Concurrent = f.Concurrent
	}
	if f.Out != "" {
		cfg.Output.Dir = f.Out
	}
	if f.Name != "" {
		cfg.Output.Name = f.Name
	}
	if f.Formats != "" {
		o := &cfg.Output
		o.STL, o.ASCIISTL, o.CSV, o.DXF, o.Plot, o.Preview = false, false, false, false, false, false
		for _, format := range strings.Split(f.Formats, ",") {
			switch strings.TrimSpace(format) {
			case "stl":
				o.STL = true
			case "ascii-stl":
				o.ASCIISTL = true
			case "csv":
				o.CSV = true
			case "dxf":
				o.DXF = true
			case "plot":
				o.Plot = true
			case "preview":
				o.Preview = true
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
		}
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	return nil
}
