package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// DefaultMaxPixels bounds the decoded size of an upload (40 megapixels).
const DefaultMaxPixels = 40_000_000

// Decoder decodes JPEG and PNG uploads. The result feeds both the gate and
// the classifier, so each upload is decoded exactly once.
type Decoder struct {
	// MaxPixels is the largest width*height accepted; the header is checked
	// before any pixel data is decoded.
	MaxPixels int
}

// NewDecoder creates a decoder. A non-positive maxPixels selects
// DefaultMaxPixels.
func NewDecoder(maxPixels int) *Decoder {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Decoder{MaxPixels: maxPixels}
}

// Decode parses the image and records its size and color mode.
func (d *Decoder) Decode(data []byte) (*entity.UploadedImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", entity.ErrDecode)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels (%dx%d)", entity.ErrDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(d.MaxPixels) {
		return nil, fmt.Errorf("%w: image is %dx%d, limit is %d pixels", entity.ErrDecode, cfg.Width, cfg.Height, d.MaxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels (%dx%d)", entity.ErrDecode, b.Dx(), b.Dy())
	}

	return &entity.UploadedImage{
		Image:      img,
		Format:     format,
		Width:      b.Dx(),
		Height:     b.Dy(),
		ColorModel: colorModelName(img.ColorModel()),
	}, nil
}

func colorModelName(m color.Model) string {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.RGBAModel, color.RGBA64Model:
		return "rgb"
	case color.NRGBAModel, color.NRGBA64Model:
		return "rgba"
	case color.YCbCrModel:
		return "ycbcr"
	case color.CMYKModel:
		return "cmyk"
	}
	if _, ok := m.(color.Palette); ok {
		return "paletted"
	}
	return "unknown"
}

var _ port.ImageDecoder = (*Decoder)(nil)
