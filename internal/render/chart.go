package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"dashboard/internal/models"
)

var palette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},
	{R: 220, G: 80, B: 60, A: 255},
	{R: 0, G: 140, B: 90, A: 255},
	{R: 150, G: 100, B: 200, A: 255},
	{R: 200, G: 150, B: 30, A: 255},
	{R: 100, G: 100, B: 100, A: 255},
}

// LinePNG draws each series as a line with point glyphs and writes the chart
// as a PNG. Best-effort output for a quick look; the real chart belongs to
// the frontend.
func LinePNG(data models.ChartData, w io.Writer) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "연도"
	p.Y.Label.Text = "지표 값"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, s := range data.Series {
		points := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			points[j].X = float64(pt.Year)
			points[j].Y = pt.Value
		}
		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		c := palette[i%len(palette)]
		line.Color = c
		line.Width = vg.Points(2)
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add(s.Label, line)
	}

	wt, err := p.WriterTo(12*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
