package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SaveFormats are the files SavePlot writes for every figure.
var SaveFormats = []string{"png", "svg", "pdf"}

// SavePlot writes d as name.png, name.svg and name.pdf into dir, creating
// dir if needed.
func SavePlot(d Drawer, dir, name string, width, height vg.Length) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, format := range SaveFormats {
		path := filepath.Join(dir, name+"."+format)
		if err := saveAs(d, path, format, width, height); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

func saveAs(d Drawer, path, format string, width, height vg.Length) error {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	if _, err := d.Draw(draw.New(c)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
