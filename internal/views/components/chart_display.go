package components

import (
	"charfreq/internal/logger"
	"charfreq/internal/models"
	"charfreq/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ChartAreaWidth  = 480
	ChartAreaHeight = 360
)

// ChartDisplay shows the frequency pie chart, or a placeholder when empty
type ChartDisplay struct {
	container   *fyne.Container
	chartImage  *canvas.Image
	placeholder *widget.Label
	logger      logger.Logger
	options     render.PieOptions

	slices []models.Slice
}

// NewChartDisplay creates a new chart display component
func NewChartDisplay(log logger.Logger) *ChartDisplay {
	display := &ChartDisplay{
		logger:  log,
		options: render.DefaultPieOptions(),
	}
	display.createComponents()
	display.setupLayout()
	return display
}

func (cd *ChartDisplay) createComponents() {
	cd.chartImage = canvas.NewImageFromImage(render.Blank(cd.options.Width, cd.options.Height))
	cd.chartImage.FillMode = canvas.ImageFillContain
	cd.chartImage.ScaleMode = canvas.ImageScaleSmooth
	cd.chartImage.SetMinSize(fyne.NewSize(ChartAreaWidth, ChartAreaHeight))

	cd.placeholder = widget.NewLabel("Add entries to see character frequencies")
	cd.placeholder.Alignment = fyne.TextAlignCenter
}

func (cd *ChartDisplay) setupLayout() {
	cd.container = container.NewStack(
		cd.chartImage,
		container.NewCenter(cd.placeholder),
	)
}

// SetSlices replaces every slice of the chart
func (cd *ChartDisplay) SetSlices(slices []models.Slice) {
	cd.slices = slices

	if len(slices) == 0 {
		cd.chartImage.Image = render.Blank(cd.options.Width, cd.options.Height)
		cd.placeholder.Show()
		cd.chartImage.Refresh()
		return
	}

	img, err := render.Pie(slices, cd.options)
	if err != nil {
		cd.logger.Error("ChartDisplay", err, map[string]interface{}{
			"slices": len(slices),
		})
		img = render.Blank(cd.options.Width, cd.options.Height)
	}

	cd.chartImage.Image = img
	cd.placeholder.Hide()
	cd.chartImage.Refresh()
}

// Slices returns the slices currently drawn
func (cd *ChartDisplay) Slices() []models.Slice {
	return cd.slices
}

// HasChart reports whether a chart, rather than the placeholder, is shown
func (cd *ChartDisplay) HasChart() bool {
	return !cd.placeholder.Visible()
}

// GetContainer returns the chart display container
func (cd *ChartDisplay) GetContainer() *fyne.Container {
	return cd.container
}
