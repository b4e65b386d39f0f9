// Package render rasterises frequency slices into pie chart images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"charfreq/internal/models"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoSlices is returned when there is nothing to draw
var ErrNoSlices = errors.New("no slices to render")

// chartBorder matches the accent used around the chart area
var chartBorder = drawing.Color{R: 0, G: 112, B: 192, A: 255}

// PieOptions controls the rendered chart
type PieOptions struct {
	Title  string
	Width  int
	Height int
}

// DefaultPieOptions returns the options used by the main window
func DefaultPieOptions() PieOptions {
	return PieOptions{
		Title:  "Character frequency",
		Width:  640,
		Height: 480,
	}
}

// Pie renders slices as a labelled pie chart
func Pie(slices []models.Slice, opts PieOptions) (image.Image, error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Value: float64(s.Value),
			Label: s.Label,
		})
	}

	pie := chart.PieChart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding:     chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
			StrokeColor: chartBorder,
			StrokeWidth: 3,
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pie chart: %w", err)
	}

	return img, nil
}

// Blank returns a uniform placeholder image of the given size
func Blank(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}
