package render

import (
	"errors"
	"fmt"

	waveguide "github.com/j-poil/waveguide-generator"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

var layerColors = []color.ColorNumber{
	color.Red, color.Yellow, color.Green, color.Cyan, color.Blue, color.Magenta,
}

// CreateDXF writes each profile as a polyline in the z-r plane, one layer per
// azimuth. Layers are named after the azimuth in degrees.
func CreateDXF(path string, profiles []waveguide.Profile) error {
	if len(profiles) == 0 {
		return errors.New("no profiles to draw")
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	for i, p := range profiles {
		if len(p) < 2 {
			return fmt.Errorf("profile %d: %w", i, waveguide.ErrShortProfile)
		}
		name := fmt.Sprintf("theta_%03d_%.2f", i, waveguide.RtoD(p.Theta()))
		layer, err := d.AddLayer(name, layerColors[i%len(layerColors)], dxf.DefaultLineType, true)
		if err != nil {
			return fmt.Errorf("layer %s: %w", name, err)
		}
		lwp := entity.NewLwPolyline(len(p))
		for j, pt := range p {
			lwp.Vertices[j] = []float64{pt.Z, pt.R}
		}
		lwp.SetLayer(layer)
		d.AddEntity(lwp)
	}
	return d.SaveAs(path)
}
