package render

import (
	"image/color"
	"testing"

	"charfreq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieRendersRequestedSize(t *testing.T) {
	slices := models.ComputeFrequencies([]string{"abc", "ABC", "aa"}).Slices()
	opts := PieOptions{Title: "test", Width: 320, Height: 240}

	img, err := Pie(slices, opts)

	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestPieSingleSlice(t *testing.T) {
	slices := []models.Slice{{Char: 'A', Label: "A(1)", Value: 1}}

	img, err := Pie(slices, DefaultPieOptions())

	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestPieWithoutSlices(t *testing.T) {
	img, err := Pie(nil, DefaultPieOptions())

	assert.ErrorIs(t, err, ErrNoSlices)
	assert.Nil(t, img)
}

func TestBlank(t *testing.T) {
	img := Blank(4, 3)

	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	r, g, b, a := img.At(2, 1).RGBA()
	wr, wg, wb, wa := color.White.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
}
