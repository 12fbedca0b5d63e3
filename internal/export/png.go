package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mvail/paretoscope/internal/dataset"
)

var pngPalette = []color.RGBA{
	{R: 0x5f, G: 0xff, B: 0xd7, A: 0xff},
	{R: 0xff, G: 0x87, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	{R: 0x5f, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	{R: 0x5f, G: 0x5f, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x5f, B: 0x5f, A: 0xff},
	{R: 0x00, G: 0xd7, B: 0xff, A: 0xff},
}

// WritePNG renders the generation as a PNG scatter plot, one scatter
// per series with a legend entry.
func WritePNG(path string, gen int, series []dataset.Series) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("pareto front, generation %d", gen)
	p.X.Label.Text = "f0"
	p.Y.Label.Text = "f1"

	for si, s := range series {
		pts := make(plotter.XYs, s.Len())
		for i := range s.X {
			pts[i].X = s.X[i]
			pts[i].Y = s.Y[i]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = pngPalette[si%len(pngPalette)]
		p.Add(scatter)
		p.Legend.Add(s.Name, scatter)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
