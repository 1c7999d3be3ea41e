package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocessor_ShapeAndRawValues(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
		}
	}

	tensor, err := NewPreprocessor().Tensor(src)
	require.NoError(t, err)
	require.Equal(t, InputSize, tensor.Height)
	require.Equal(t, InputSize, tensor.Width)
	require.Equal(t, InputChannels, tensor.Channels)
	require.Len(t, tensor.Data, tensor.Len())

	// Alpha is dropped and nothing is normalized.
	require.Equal(t, []float32{10, 20, 30}, tensor.Data[:3])
	require.Equal(t, []float32{10, 20, 30}, tensor.Data[len(tensor.Data)-3:])
}

func TestPreprocessor_GrayBecomesThreeChannels(t *testing.T) {
	tensor, err := NewPreprocessor().Tensor(scanImage(40, 60, 0, 128))
	require.NoError(t, err)
	require.Len(t, tensor.Data, InputSize*InputSize*InputChannels)
	for _, v := range tensor.Data {
		require.Equal(t, float32(128), v)
	}
}

func TestPreprocessor_Deterministic(t *testing.T) {
	src := scanImage(90, 90, 30, 220)
	a, err := NewPreprocessor().Tensor(src)
	require.NoError(t, err)
	b, err := NewPreprocessor().Tensor(src)
	require.NoError(t, err)
	require.Equal(t, a.Data, b.Data)
}

func TestPreprocessor_SamplesPixelCentres(t *testing.T) {
	// Halving a one-pixel checkerboard picks the odd source pixels, which are
	// all white. Any averaging would produce grey.
	src := image.NewGray(image.Rect(0, 0, 300, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			if (x+y)%2 == 0 {
				src.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	tensor, err := NewPreprocessor().Tensor(src)
	require.NoError(t, err)
	for i, v := range tensor.Data {
		require.Equal(t, float32(255), v, "value %d", i)
	}
}

func TestPreprocessor_NonIntegerScale(t *testing.T) {
	// Column x holds the value x, so the output reveals which source column
	// was sampled: floor((x+0.5) * 200 / 150).
	src := image.NewGray(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(x)})
		}
	}

	tensor, err := NewPreprocessor().Tensor(src)
	require.NoError(t, err)

	column := func(x int) float32 {
		return tensor.Data[(InputSize*7+x)*InputChannels]
	}
	require.Equal(t, float32(0), column(0))
	require.Equal(t, float32(2), column(1))
	require.Equal(t, float32(3), column(2))
	require.Equal(t, float32(66), column(49))
	require.Equal(t, float32(199), column(149))
}
