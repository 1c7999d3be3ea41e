package vision

import (
	"errors"
	"image"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// Model input geometry.
const (
	InputSize     = 150
	InputChannels = 3
)

// newTensor allocates an empty model input.
func newTensor() entity.Tensor {
	return entity.Tensor{
		Data:     make([]float32, InputSize*InputSize*InputChannels),
		Height:   InputSize,
		Width:    InputSize,
		Channels: InputChannels,
	}
}

// fillTensor writes an InputSize x InputSize RGB image into t in HWC order.
// Values stay on the 0..255 scale.
func fillTensor(t entity.Tensor, rgb *image.RGBA) error {
	b := rgb.Bounds()
	if b.Dx() != InputSize || b.Dy() != InputSize {
		return errors.New("resized image has unexpected size")
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := rgb.PixOffset(b.Min.X, y)
		for x := 0; x < InputSize; x++ {
			p := rgb.Pix[off+x*4 : off+x*4+3]
			t.Data[i+0] = float32(p[0])
			t.Data[i+1] = float32(p[1])
			t.Data[i+2] = float32(p[2])
			i += InputChannels
		}
	}
	return nil
}

var _ port.Preprocessor = (*Preprocessor)(nil)
