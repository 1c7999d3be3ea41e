package onnx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// Options configures Load.
type Options struct {
	ModelPath    string
	MetadataPath string
	LibraryPath  string // onnxruntime shared library; empty uses the system default
}

// Classifier runs the tumor model with onnxruntime. The session and tensors
// are created once; Predict serializes access to them.
type Classifier struct {
	mu       sync.Mutex
	session  *ort.AdvancedSession
	input    *ort.Tensor[float32]
	output   *ort.Tensor[float32]
	metadata Metadata
	logger   *slog.Logger
}

// Load initializes the runtime and opens the model at opts.ModelPath.
func Load(opts Options, logger *slog.Logger) (*Classifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	md, err := LoadMetadata(opts.MetadataPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(opts.ModelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}

	if !ort.IsInitialized() {
		if opts.LibraryPath != "" {
			ort.SetSharedLibraryPath(opts.LibraryPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(md.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(md.OutputShape...))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(opts.ModelPath,
		[]string{md.InputName}, []string{md.OutputName},
		[]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output},
		nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	logger.Info("model loaded", "path", opts.ModelPath, "input", md.InputShape, "output", md.OutputShape)

	return &Classifier{
		session:  session,
		input:    input,
		output:   output,
		metadata: md,
		logger:   logger,
	}, nil
}

// Predict runs one forward pass and returns a copy of the raw scores.
func (c *Classifier) Predict(ctx context.Context, in entity.Tensor) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, errors.New("classifier is closed")
	}

	dst := c.input.GetData()
	if len(in.Data) != len(dst) {
		return nil, fmt.Errorf("input has %d values, model expects %d", len(in.Data), len(dst))
	}
	copy(dst, in.Data)

	if err := c.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	out := c.output.GetData()
	scores := make([]float32, len(out))
	copy(scores, out)
	return scores, nil
}

// Metadata returns the tensor layout the model was opened with.
func (c *Classifier) Metadata() Metadata {
	return c.metadata
}

// Close releases the session and the runtime.
func (c *Classifier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.input != nil {
		c.input.Destroy()
		c.input = nil
	}
	if c.output != nil {
		c.output.Destroy()
		c.output = nil
	}
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	ort.DestroyEnvironment()
}

var _ port.Model = (*Classifier)(nil)
