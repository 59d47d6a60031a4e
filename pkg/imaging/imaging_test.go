package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/models"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := solidImage(20, 10, color.RGBA{R: 200, G: 40, B: 10, A: 255})
	data, err := EncodePNG(src)
	require.NoError(t, err)

	img, format, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	w, h := Dimensions(img)
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
}

func TestDecodeBase64(t *testing.T) {
	data, err := EncodePNG(solidImage(4, 4, color.RGBA{A: 255}))
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(data)

	raw, err := DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, raw)

	raw, err = DecodeBase64("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, data, raw)

	_, err = DecodeBase64("not$$base64")
	assert.Error(t, err)
}

func TestCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	tile, err := Crop(src, models.Rect{X: 4, Y: 4, Width: 3, Height: 3})
	require.NoError(t, err)

	w, h := Dimensions(tile)
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, tile.RGBAAt(1, 1))
}

func TestCropOutOfBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := Crop(src, models.Rect{X: 8, Y: 8, Width: 5, Height: 5})
	assert.Error(t, err)
}
