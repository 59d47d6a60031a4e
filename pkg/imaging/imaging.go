// Package imaging wraps the raster operations the pipeline needs: decoding
// submissions, cutting tile crops, and encoding outputs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	"image/png"
	"strings"

	"golang.org/x/image/draw"

	"github.com/pixelrelay/upscaled/pkg/models"
)

// DecodeBase64 decodes a base64 image payload. Accepts both raw base64 and
// data URLs ("data:image/png;base64,...").
func DecodeBase64(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64 image: %w", err)
	}
	return data, nil
}

// Decode decodes PNG or JPEG bytes.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Dimensions returns the pixel width and height of an image.
func Dimensions(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Crop copies the rectangle r out of img into a fresh RGBA image.
// r is in img's coordinate space with origin at the bounds minimum.
func Crop(img image.Image, r models.Rect) (*image.RGBA, error) {
	b := img.Bounds()
	src := image.Rect(b.Min.X+r.X, b.Min.Y+r.Y, b.Min.X+r.X+r.Width, b.Min.Y+r.Y+r.Height)
	if !src.In(b) {
		return nil, fmt.Errorf("crop %v outside image bounds %v", src, b)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Copy(dst, image.Point{}, img, src, draw.Src, nil)
	return dst, nil
}

// EncodePNG encodes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
