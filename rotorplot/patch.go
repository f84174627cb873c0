// Package rotorplot draws 2-D patches of rotor elements on a
// gonum.org/v1/plot figure. It is purely presentational: nothing here feeds
// back into the element matrices. Both coupling variants render through the
// same routine, which takes explicit geometry instead of reaching into
// element internals.
package rotorplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jamesgarvey93/ross/element"
)

// scaleFactor fixes the drawn half-height of a coupling patch relative to
// the rotor axis, independent of the element's physical dimensions.
const scaleFactor = 0.15

// Patch adds the patch for one element to fig: a filled quadrilateral
// spanning [position, position+length] longitudinally, mirrored about the
// rotor axis, outlined with a dashed border and annotated with the element
// index. index < 0 suppresses the annotation for unnumbered elements.
func Patch(fig *plot.Plot, position, length float64, fill color.Color, index int) error {
	h := 2 * scaleFactor
	outline := plotter.XYs{
		{X: position, Y: -h},
		{X: position, Y: h},
		{X: position + length, Y: h},
		{X: position + length, Y: -h},
	}

	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return fmt.Errorf("rotorplot: %w", err)
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(1.5)
	poly.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	fig.Add(poly)

	if index < 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: position + length/2, Y: h}},
		Labels: []string{fmt.Sprintf("%d", index)},
	})
	if err != nil {
		return fmt.Errorf("rotorplot: %w", err)
	}
	fig.Add(labels)
	return nil
}

// AddElement renders an element at the given longitudinal position using its
// own length, color and node index.
func AddElement(fig *plot.Plot, e element.Element, position float64) error {
	fill, err := ParseHexColor(e.Color())
	if err != nil {
		return err
	}
	index := -1
	if nl, _, ok := e.Nodes(); ok {
		index = nl
	}
	return Patch(fig, position, e.Length(), fill, index)
}

// ParseHexColor decodes a "#rrggbb" rendering hint into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("rotorplot: bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
