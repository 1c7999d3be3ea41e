package port

import (
	"context"
	"image"

	"tumorvision/internal/domain/entity"
)

// ImageDecoder decodes uploaded bytes
type ImageDecoder interface {
	// Decode returns an error matching entity.ErrDecode for unreadable input
	Decode(data []byte) (*entity.UploadedImage, error)
}

// ScanGate is the cheap plausibility check run before inference
type ScanGate interface {
	// Check returns nil when the image looks like a brain MRI, otherwise an
	// error matching entity.ErrNotMRI
	Check(img *entity.UploadedImage) error
}

// Preprocessor converts an image into the model input tensor
type Preprocessor interface {
	Tensor(img image.Image) (entity.Tensor, error)
}

// Model is the opaque pre-trained classifier
type Model interface {
	// Predict returns one raw score per label, in label order
	Predict(ctx context.Context, input entity.Tensor) ([]float32, error)
}
