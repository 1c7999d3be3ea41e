package vision

import (
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"tumorvision/internal/domain/entity"
)

func TestDecoder_PNG(t *testing.T) {
	img, err := NewDecoder(0).Decode(encodePNG(t, scanImage(64, 48, 10, 200)))
	require.NoError(t, err)
	require.Equal(t, "png", img.Format)
	require.Equal(t, 64, img.Width)
	require.Equal(t, 48, img.Height)
	require.Equal(t, "gray", img.ColorModel)
}

func TestDecoder_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	img, err := NewDecoder(0).Decode(encodeJPEG(t, src))
	require.NoError(t, err)
	require.Equal(t, "jpeg", img.Format)
	require.Equal(t, 32, img.Width)
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("definitely not an image"), {0x89, 'P', 'N', 'G'}} {
		_, err := NewDecoder(0).Decode(data)
		require.ErrorIs(t, err, entity.ErrDecode)
		require.NotErrorIs(t, err, entity.ErrNotMRI)
	}
}

func TestDecoder_RejectsTruncatedPNG(t *testing.T) {
	data := encodePNG(t, scanImage(64, 64, 10, 200))
	_, err := NewDecoder(0).Decode(data[:len(data)/2])
	require.ErrorIs(t, err, entity.ErrDecode)
}

func TestDecoder_RejectsOversizedImage(t *testing.T) {
	data := encodePNG(t, scanImage(40, 30, 0, 200))

	_, err := NewDecoder(40*30 - 1).Decode(data)
	require.ErrorIs(t, err, entity.ErrDecode)
	require.Contains(t, err.Error(), "40x30")

	img, err := NewDecoder(40 * 30).Decode(data)
	require.NoError(t, err)
	require.Equal(t, 40, img.Width)
}

func TestDecoder_ChecksHeaderBeforePixels(t *testing.T) {
	// A bare header claiming 20000x20000: the size check fires before the
	// missing pixel data would fail decoding.
	_, err := NewDecoder(0).Decode(pngHeader(20000, 20000))
	require.ErrorIs(t, err, entity.ErrDecode)
	require.Contains(t, err.Error(), "limit is")
}

func TestNewDecoder_Default(t *testing.T) {
	require.Equal(t, DefaultMaxPixels, NewDecoder(0).MaxPixels)
	require.Equal(t, 10, NewDecoder(10).MaxPixels)
}

func TestColorModelName(t *testing.T) {
	require.Equal(t, "rgba", colorModelName(color.NRGBAModel))
	require.Equal(t, "paletted", colorModelName(color.Palette{color.Black, color.White}))
}

// pngHeader returns a PNG signature and an 8-bit grayscale IHDR chunk, with
// no image data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 0 // grayscale

	chunk := append([]byte("IHDR"), ihdr...)
	out := []byte("\x89PNG\r\n\x1a\n")
	out = binary.BigEndian.AppendUint32(out, uint32(len(ihdr)))
	out = append(out, chunk...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(chunk))
}
