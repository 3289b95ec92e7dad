// Package config handles loading and validating waveguide generation settings.
package config

import (
	"errors"
	"fmt"
	"sort"

	waveguide "github.com/j-poil/waveguide-generator"
	"github.com/j-poil/waveguide-generator/internal/logger"
)

// Horn variants accepted in HornConfig.Variant.
const (
	Axisymmetric         = "axisymmetric"
	Ellipsoidal          = "ellipsoidal"
	Rectangular          = "rectangular"
	RectangularMorph     = "rectangular-morph"
	AxisymmetricClothoid = "axisymmetric-clothoid"
	RectangularClothoid  = "rectangular-clothoid"
)

// Config holds all generation settings.
type Config struct {
	Horn    HornConfig    `yaml:"horn"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging logger.Config `yaml:"logging"`
}

// HornConfig describes the generatrix. Angles are in degrees, lengths in
// millimetres.
type HornConfig struct {
	Variant      string  `yaml:"variant"`
	Length       float64 `yaml:"length"`
	K            float64 `yaml:"k"`
	RInit        float64 `yaml:"r_init"`
	AlphaInitDeg float64 `yaml:"alpha_init_deg"`

	// Superellipse termination.
	S float64 `yaml:"s"`
	Q float64 `yaml:"q"`
	N float64 `yaml:"n"`

	// AlphaDeg is the coverage half-angle of axisymmetric variants.
	AlphaDeg  float64 `yaml:"alpha_deg"`
	AlphaHDeg float64 `yaml:"alpha_h_deg"`
	AlphaVDeg float64 `yaml:"alpha_v_deg"`

	// Clothoid termination.
	TermLength    float64 `yaml:"term_length"`
	TermEndRadius float64 `yaml:"term_end_radius"`
}

// MeshConfig holds tessellation settings.
type MeshConfig struct {
	AzimuthSteps int `yaml:"azimuth_steps"`
	// AxialSteps is the number of points per profile. Ignored if StepLength is set.
	AxialSteps int     `yaml:"axial_steps"`
	StepLength float64 `yaml:"step_length"`
	// CurveLength, if positive, fits each profile to this wall length.
	CurveLength float64 `yaml:"curve_length"`
	Concurrent  int     `yaml:"concurrent"`
}

// OutputConfig selects which files are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Name     string `yaml:"name"`
	STL      bool   `yaml:"stl"`
	ASCIISTL bool   `yaml:"ascii_stl"`
	CSV      bool   `yaml:"csv"`
	DXF      bool   `yaml:"dxf"`
	Plot     bool   `yaml:"plot"`
	Preview  bool   `yaml:"preview"`
}

// Default returns the ellipsoidal 1 inch throat horn with 45°×30° coverage.
func Default() *Config {
	return &Config{
		Horn: HornConfig{
			Variant:      Ellipsoidal,
			Length:       200,
			K:            1,
			RInit:        waveguide.MillimetresPerInch,
			AlphaInitDeg: 1,
			S:            0.7,
			Q:            0.997,
			N:            6,
			AlphaDeg:     45,
			AlphaHDeg:    45,
			AlphaVDeg:    30,

			TermLength:    200,
			TermEndRadius: 60,
		},
		Mesh: MeshConfig{
			AzimuthSteps: 36,
			AxialSteps:   50,
		},
		Output: OutputConfig{
			Dir:  "exports",
			Name: "waveguide",
			STL:  true,
			CSV:  true,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Variants returns the accepted variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builders = map[string]func(h HornConfig) (*waveguide.Model, error){
	Axisymmetric: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewAxisymmetric(h.spheroid(), h.superellipse(), waveguide.DtoR(h.AlphaDeg))
	},
	Ellipsoidal: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewEllipsoidal(h.spheroid(), h.superellipse(), waveguide.DtoR(h.AlphaHDeg), waveguide.DtoR(h.AlphaVDeg))
	},
	Rectangular: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewRectangular(h.spheroid(), h.superellipse(), waveguide.DtoR(h.AlphaHDeg), waveguide.DtoR(h.AlphaVDeg))
	},
	RectangularMorph: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewRectangularMorph(h.spheroid(), h.superellipse(), waveguide.DtoR(h.AlphaHDeg), waveguide.DtoR(h.AlphaVDeg))
	},
	AxisymmetricClothoid: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewAxisymmetricClothoid(h.spheroid(), h.clothoid(), waveguide.DtoR(h.AlphaDeg))
	},
	RectangularClothoid: func(h HornConfig) (*waveguide.Model, error) {
		return waveguide.NewRectangularClothoid(h.spheroid(), h.clothoid(), waveguide.DtoR(h.AlphaHDeg), waveguide.DtoR(h.AlphaVDeg))
	},
}

// Build returns the generatrix described by h.
func (h HornConfig) Build() (*waveguide.Model, error) {
	build, ok := builders[h.Variant]
	if !ok {
		return nil, fmt.Errorf("unknown horn variant %q, want one of %v", h.Variant, Variants())
	}
	return build(h)
}

func (h HornConfig) spheroid() waveguide.Spheroid {
	return waveguide.Spheroid{K: h.K, RInit: h.RInit, AlphaInit: waveguide.DtoR(h.AlphaInitDeg)}
}

func (h HornConfig) superellipse() waveguide.Superellipse {
	return waveguide.Superellipse{S: h.S, Q: h.Q, N: h.N}
}

func (h HornConfig) clothoid() waveguide.Clothoid {
	return waveguide.Clothoid{Length: h.TermLength, EndRadius: h.TermEndRadius}
}

// Sampler returns the axial sampler. A positive StepLength takes priority
// over AxialSteps.
func (m MeshConfig) Sampler() waveguide.Sampler {
	if m.StepLength > 0 {
		return waveguide.StepLength(m.StepLength)
	}
	return waveguide.Resolution(m.AxialSteps)
}

// Tessellator returns the tessellator described by m.
func (m MeshConfig) Tessellator() waveguide.Tessellator {
	return waveguide.Tessellator{
		AzimuthSteps: m.AzimuthSteps,
		Sampler:      m.Sampler(),
		Concurrent:   m.Concurrent,
		CurveLength:  m.CurveLength,
	}
}

// Validate checks the settings that can be checked without generating a
// mesh. Generatrix parameters are checked by Build.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Horn.Build(); err != nil {
		errs = append(errs, fmt.Errorf("horn: %w", err))
	}
	if c.Horn.Length <= 0 && c.Mesh.CurveLength <= 0 {
		errs = append(errs, errors.New("horn: length or mesh curve_length must be positive"))
	}
	if c.Mesh.AzimuthSteps < 2 {
		errs = append(errs, fmt.Errorf("mesh: azimuth_steps %d must be 2 or larger", c.Mesh.AzimuthSteps))
	}
	if c.Mesh.StepLength <= 0 && c.Mesh.AxialSteps < 2 {
		errs = append(errs, fmt.Errorf("mesh: axial_steps %d must be 2 or larger when step_length is unset", c.Mesh.AxialSteps))
	}
	if c.Mesh.Concurrent < 0 {
		errs = append(errs, fmt.Errorf("mesh: concurrent %d must not be negative", c.Mesh.Concurrent))
	}
	if c.Output.Name == "" {
		errs = append(errs, errors.New("output: name must be set"))
	}
	return errors.Join(errs...)
}
