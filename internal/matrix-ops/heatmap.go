package matrixops

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// matrixGrid adapts a mat.Matrix to plotter.GridXYZ. Rows are flipped so
// that row 0 renders at the top, matching the printed grid.
type matrixGrid struct {
	mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.Matrix.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.Matrix.Dims()
	return g.Matrix.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// SaveHeatMap renders m as a heatmap and writes it to path. The image format
// follows the path's extension.
func SaveHeatMap(m mat.Matrix, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"

	h := plotter.NewHeatMap(matrixGrid{m}, palette.Heat(12, 1))
	p.Add(h)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
