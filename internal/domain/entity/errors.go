package entity

import "errors"

var (
	// ErrDecode means the uploaded bytes are not a readable JPEG or PNG image.
	ErrDecode = errors.New("image could not be decoded")

	// ErrNotMRI means the image decoded fine but failed the plausibility gate.
	ErrNotMRI = errors.New("image is not a plausible brain MRI scan")

	// ErrInference covers a missing or broken model and any failed forward pass.
	ErrInference = errors.New("inference failed")

	// ErrUnknownLabel is returned for indices or names outside the fixed label set.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrEmptyMessage is returned when a chat message has no text.
	ErrEmptyMessage = errors.New("empty chat message")
)
