package vision

import (
	"image"
	"image/color"
)

// luma is the ITU-R 601-2 transform on 8-bit channels, in 16.16 fixed point.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// clip8 maps a 16-bit gray sample to 8 bits by saturating at 255, which is
// how Pillow converts I;16 images to L. It does not rescale.
func clip8(v uint16) uint8 {
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// rgb8 returns the straight (non-premultiplied) 8-bit channels of c.
// Alpha is ignored. 16-bit gray saturates like clip8.
func rgb8(c color.Color) (r, g, b uint8) {
	if g16, ok := c.(color.Gray16); ok {
		v := clip8(g16.Y)
		return v, v, v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// Grayscale returns the single-channel 8-bit intensities of img in row-major
// order. Gray images are passed through untouched.
func Grayscale(img image.Image) []uint8 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]uint8, 0, w*h)

	if g, ok := img.(*image.Gray); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := g.PixOffset(b.Min.X, y)
			out = append(out, g.Pix[off:off+w]...)
		}
		return out
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch c := img.At(x, y).(type) {
			case color.Gray:
				out = append(out, c.Y)
			case color.Gray16:
				out = append(out, clip8(c.Y))
			default:
				out = append(out, luma(rgb8(c)))
			}
		}
	}
	return out
}

// toRGB copies img into an opaque RGBA image, dropping alpha without
// compositing.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := rgb8(img.At(x, y))
			i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
			dst.Pix[i+0] = r
			dst.Pix[i+1] = g
			dst.Pix[i+2] = bl
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}
