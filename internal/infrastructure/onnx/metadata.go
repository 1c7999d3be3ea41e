package onnx

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tumorvision/internal/domain/entity"
)

// Metadata describes the tensors of an exported model. It is optional; the
// defaults match a Keras model exported with an NHWC 150x150x3 input.
type Metadata struct {
	InputName   string   `json:"input_name"`
	OutputName  string   `json:"output_name"`
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes,omitempty"`
}

// DefaultMetadata returns the tensor layout used when no metadata file exists.
func DefaultMetadata() Metadata {
	return Metadata{
		InputName:   "input",
		OutputName:  "output",
		InputShape:  []int64{1, 150, 150, 3},
		OutputShape: []int64{1, entity.NumLabels},
	}
}

// LoadMetadata reads path over the defaults. An empty path yields the defaults.
func LoadMetadata(path string) (Metadata, error) {
	md := DefaultMetadata()
	if path == "" {
		return md, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}
	if err := json.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata: %w", err)
	}
	if err := md.Validate(); err != nil {
		return Metadata{}, err
	}
	return md, nil
}

// Validate checks that the model matches the fixed input geometry and label set.
func (m Metadata) Validate() error {
	if m.InputName == "" || m.OutputName == "" {
		return errors.New("metadata: tensor names must not be empty")
	}
	if len(m.InputShape) != 4 || m.InputShape[0] != 1 || m.InputShape[1] != 150 ||
		m.InputShape[2] != 150 || m.InputShape[3] != 3 {
		return fmt.Errorf("metadata: input shape %v, want [1 150 150 3]", m.InputShape)
	}
	if elements(m.OutputShape) != entity.NumLabels {
		return fmt.Errorf("metadata: output shape %v does not hold %d scores", m.OutputShape, entity.NumLabels)
	}
	if len(m.Classes) == 0 {
		return nil
	}
	if len(m.Classes) != entity.NumLabels {
		return fmt.Errorf("metadata: %d classes, want %d", len(m.Classes), entity.NumLabels)
	}
	for i, name := range m.Classes {
		l, err := entity.ParseLabel(name)
		if err != nil || int(l) != i {
			return fmt.Errorf("metadata: class %d is %q, want %q", i, name, entity.Label(i))
		}
	}
	return nil
}

func elements(shape []int64) int64 {
	if len(shape) == 0 {
		return 0
	}
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}
