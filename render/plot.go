package render

import (
	"errors"
	"fmt"

	waveguide "github.com/j-poil/waveguide-generator"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ProfilePlot returns a plot of wall radius against axial position with one
// line per profile.
func ProfilePlot(title string, profiles []waveguide.Profile) (*plot.Plot, error) {
	if len(profiles) == 0 {
		return nil, errors.New("no profiles to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "z"
	p.Y.Label.Text = "r"
	p.Add(plotter.NewGrid())
	for i, prof := range profiles {
		xys := make(plotter.XYs, len(prof))
		for j, pt := range prof {
			xys[j].X = pt.Z
			xys[j].Y = pt.R
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("θ=%.1f°", waveguide.RtoD(prof.Theta())), line)
	}
	p.Legend.Top = true
	return p, nil
}

// CreateProfilePlot saves a profile plot to path. The image format follows
// the file extension.
func CreateProfilePlot(path, title string, profiles []waveguide.Profile) error {
	p, err := ProfilePlot(title, profiles)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
