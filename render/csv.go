package render

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	waveguide "github.com/j-poil/waveguide-generator"
)

var csvHeader = []string{"z", "r", "theta", "x", "y"}

// WriteCSV writes every profile point as a z,r,theta,x,y record. Profiles are
// written one after the other in order.
func WriteCSV(w io.Writer, profiles []waveguide.Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	record := make([]string, len(csvHeader))
	for _, p := range profiles {
		for _, pt := range p {
			c := pt.Cartesian()
			record[0] = formatFloat(pt.Z)
			record[1] = formatFloat(pt.R)
			record[2] = formatFloat(pt.Theta)
			record[3] = formatFloat(c.X)
			record[4] = formatFloat(c.Y)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateCSV writes profiles to a CSV file at path.
func CreateCSV(path string, profiles []waveguide.Profile) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err = WriteCSV(fp, profiles); err != nil {
		return err
	}
	return fp.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
