package onnx

import (
	"context"
	"fmt"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// Unavailable stands in for a model that failed to load, so the process can
// keep serving and report the failure per request.
type Unavailable struct {
	Err error
}

// Predict always fails with the load error.
func (u Unavailable) Predict(ctx context.Context, in entity.Tensor) ([]float32, error) {
	return nil, fmt.Errorf("%w: model unavailable: %v", entity.ErrInference, u.Err)
}

var _ port.Model = Unavailable{}
