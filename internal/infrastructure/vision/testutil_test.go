package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"tumorvision/internal/domain/entity"
)

// scanImage builds a w x h grayscale image whose left darkCols columns are
// black and the rest are filled with level.
func scanImage(w, h, darkCols int, level uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= darkCols {
				img.SetGray(x, y, color.Gray{Y: level})
			}
		}
	}
	return img
}

func uniformImage(w, h int, level uint8) *image.Gray {
	return scanImage(w, h, 0, level)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func uploaded(img image.Image) *entity.UploadedImage {
	b := img.Bounds()
	return &entity.UploadedImage{Image: img, Width: b.Dx(), Height: b.Dy()}
}
