package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tidemark/coastline-tools/internal/raster"
)

// ToGray renders a plane as a grayscale image, mapping the value range
// [lo, hi] onto [0, 255]. Values outside the range saturate. Passing
// explicit bounds keeps binary edge planes readable and lets low-contrast
// intermediate planes be stretched for display.
func ToGray(p *raster.Plane, lo, hi int) (*image.Gray, error) {
	if hi <= lo {
		return nil, fmt.Errorf("invalid display bounds [%d,%d]", lo, hi)
	}
	out := image.NewGray(image.Rect(0, 0, p.Cols(), p.Rows()))
	scale := 255.0 / float64(hi-lo)
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			v := (float64(p.At(r, c)) - float64(lo)) * scale
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.SetGray(c, r, color.Gray{Y: uint8(v + 0.5)})
		}
	}
	return out, nil
}

// SavePNG writes a plane to path as a grayscale PNG using the [lo, hi]
// display bounds.
func SavePNG(path string, p *raster.Plane, lo, hi int) error {
	img, err := ToGray(p, lo, hi)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// planeGrid adapts a Plane to the plotter grid interface. Plot coordinates
// grow upward, so rows are flipped to keep the image's top row at the top of
// the chart.
type planeGrid struct {
	p *raster.Plane
}

func (g planeGrid) Dims() (int, int)   { return g.p.Cols(), g.p.Rows() }
func (g planeGrid) X(c int) float64    { return float64(c) }
func (g planeGrid) Y(r int) float64    { return float64(r) }
func (g planeGrid) Z(c, r int) float64 { return float64(g.p.At(g.p.Rows()-1-r, c)) }

// hueRamp is a fixed-size palette running from deep blue (low) to red
// (high), generated in HSV space.
type hueRamp struct {
	colors []color.Color
}

func newHueRamp(n int) hueRamp {
	colors := make([]color.Color, n)
	for i := range colors {
		t := float64(i) / float64(n-1)
		colors[i] = colorful.Hsv(240*(1-t), 0.85, 0.95)
	}
	return hueRamp{colors: colors}
}

func (h hueRamp) Colors() []color.Color { return h.colors }

// SaveHeatmap writes a heat-map plot of the plane to path. The output format
// follows the file extension (png, pdf, svg, ...).
func SaveHeatmap(path, title string, p *raster.Plane) error {
	if p.Rows() == 0 || p.Cols() == 0 {
		return fmt.Errorf("cannot plot empty plane")
	}

	pt := plot.New()
	pt.Title.Text = title
	pt.X.Label.Text = "Column"
	pt.Y.Label.Text = "Row"

	pt.Add(plotter.NewHeatMap(planeGrid{p: p}, newHueRamp(64)))

	if err := pt.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}
