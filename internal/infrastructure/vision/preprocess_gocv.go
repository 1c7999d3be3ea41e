//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"tumorvision/internal/domain/entity"
)

// interNearestExact is cv::INTER_NEAREST_EXACT. Plain INTER_NEAREST samples
// floor(dst*scale) and drifts by one pixel from centre sampling.
const interNearestExact gocv.InterpolationFlags = 6

// Preprocessor resizes with OpenCV exact nearest-neighbour interpolation.
type Preprocessor struct{}

// NewPreprocessor creates the OpenCV-backed preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Tensor converts img to RGB, resizes it to InputSize x InputSize and
// flattens it without normalization.
func (p *Preprocessor) Tensor(img image.Image) (entity.Tensor, error) {
	src, err := gocv.ImageToMatRGB(toRGB(img))
	if err != nil {
		return entity.Tensor{}, fmt.Errorf("image to mat: %w", err)
	}
	defer src.Close()

	if src.Empty() {
		return entity.Tensor{}, errors.New("empty image")
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(src, &resized, image.Pt(InputSize, InputSize), 0, 0, interNearestExact)

	// Mat is BGR; the model wants RGB.
	rgbMat := gocv.NewMat()
	defer rgbMat.Close()
	gocv.CvtColor(resized, &rgbMat, gocv.ColorBGRToRGB)

	data := rgbMat.ToBytes()
	if len(data) != InputSize*InputSize*InputChannels {
		return entity.Tensor{}, fmt.Errorf("unexpected mat size %d", len(data))
	}

	t := newTensor()
	for i, v := range data {
		t.Data[i] = float32(v)
	}
	return t, nil
}
