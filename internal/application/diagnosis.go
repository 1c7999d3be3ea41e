package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// DiagnosisService runs the plausibility gate and, if it passes, the classifier.
type DiagnosisService struct {
	decoder      port.ImageDecoder
	gate         port.ScanGate
	preprocessor port.Preprocessor
	model        port.Model
	logger       *slog.Logger
}

// NewDiagnosisService wires the pipeline. The model handle is shared by all
// requests and never modified.
func NewDiagnosisService(decoder port.ImageDecoder, gate port.ScanGate, preprocessor port.Preprocessor, model port.Model, logger *slog.Logger) *DiagnosisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiagnosisService{
		decoder:      decoder,
		gate:         gate,
		preprocessor: preprocessor,
		model:        model,
		logger:       logger,
	}
}

// Diagnose has three outcomes: an accepted diagnosis with a label, a rejected
// diagnosis (nil error), or an error matching entity.ErrDecode or
// entity.ErrInference.
func (s *DiagnosisService) Diagnose(ctx context.Context, data []byte) (entity.Diagnosis, error) {
	img, err := s.decoder.Decode(data)
	if err != nil {
		if !errors.Is(err, entity.ErrDecode) {
			err = fmt.Errorf("%w: %w", entity.ErrDecode, err)
		}
		return entity.Diagnosis{}, err
	}

	if err := s.gate.Check(img); err != nil {
		if !errors.Is(err, entity.ErrNotMRI) {
			return entity.Diagnosis{}, fmt.Errorf("plausibility gate: %w", err)
		}
		s.logger.Info("scan rejected", "width", img.Width, "height", img.Height, "reason", err)
		return entity.Diagnosis{Accepted: false, Rejection: err.Error()}, nil
	}

	if s.model == nil {
		return entity.Diagnosis{}, fmt.Errorf("%w: model is not configured", entity.ErrInference)
	}

	tensor, err := s.preprocessor.Tensor(img.Image)
	if err != nil {
		return entity.Diagnosis{}, fmt.Errorf("%w: preprocess: %w", entity.ErrInference, err)
	}

	scores, err := s.model.Predict(ctx, tensor)
	if err != nil {
		if !errors.Is(err, entity.ErrInference) {
			err = fmt.Errorf("%w: %w", entity.ErrInference, err)
		}
		return entity.Diagnosis{}, err
	}

	label, err := entity.LabelFromScores(scores)
	if err != nil {
		return entity.Diagnosis{}, err
	}

	s.logger.Info("scan classified", "label", label.String(), "scores", scores)
	return entity.Diagnosis{Accepted: true, Label: label, Scores: scores}, nil
}
