//go:build !gocv
// +build !gocv

package vision

import (
	"image"

	"golang.org/x/image/draw"

	"tumorvision/internal/domain/entity"
)

// Preprocessor resizes with nearest-neighbour sampling, in pure Go.
type Preprocessor struct{}

// NewPreprocessor creates the default preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Tensor converts img to RGB, resizes it to InputSize x InputSize and
// flattens it without normalization.
//
// Each output pixel copies the source pixel under its centre,
// src = floor((dst+0.5) * srcSize / InputSize), with no averaging.
func (p *Preprocessor) Tensor(img image.Image) (entity.Tensor, error) {
	src := toRGB(img)
	dst := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	t := newTensor()
	if err := fillTensor(t, dst); err != nil {
		return entity.Tensor{}, err
	}
	return t, nil
}
