package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLuma(t *testing.T) {
	require.Equal(t, uint8(0), luma(0, 0, 0))
	require.Equal(t, uint8(255), luma(255, 255, 255))
	require.Equal(t, uint8(76), luma(255, 0, 0))
	require.Equal(t, uint8(150), luma(0, 255, 0))
	require.Equal(t, uint8(29), luma(0, 0, 255))
}

func TestGrayscale_IgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 128})
	require.Equal(t, []uint8{255, 76}, Grayscale(img))
}

func TestGrayscale_SubImage(t *testing.T) {
	img := scanImage(4, 4, 2, 200)
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	require.Equal(t, []uint8{0, 200, 0, 200}, Grayscale(sub))
}

func TestGrayscale_Gray16Saturates(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 3, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 100})
	img.SetGray16(1, 0, color.Gray16{Y: 255})
	img.SetGray16(2, 0, color.Gray16{Y: 0x8000})
	require.Equal(t, []uint8{100, 255, 255}, Grayscale(img))

	rgb := toRGB(img)
	require.Equal(t, []uint8{100, 100, 100, 0xff}, rgb.Pix[0:4])
	require.Equal(t, []uint8{255, 255, 255, 0xff}, rgb.Pix[8:12])
}

func TestMeanStdDev(t *testing.T) {
	mean, std := meanStdDev([]uint8{0, 0, 200, 200})
	require.InDelta(t, 100.0, mean, 1e-9)
	require.InDelta(t, 100.0, std, 1e-9)

	mean, std = meanStdDev(nil)
	require.Zero(t, mean)
	require.Zero(t, std)
}
