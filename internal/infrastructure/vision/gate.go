package vision

import (
	"fmt"
	"math"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// Names of the gate checks, in evaluation order.
const (
	CheckAspectRatio  = "aspect_ratio"
	CheckContrast     = "contrast"
	CheckDarkFraction = "dark_fraction"
)

// RejectionError describes the first gate check an image failed.
type RejectionError struct {
	Check string
	Value float64
	Limit string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("plausibility gate failed: %s=%.4f (want %s)", e.Check, e.Value, e.Limit)
}

// Is makes every rejection match entity.ErrNotMRI.
func (e *RejectionError) Is(target error) bool {
	return target == entity.ErrNotMRI
}

// MRIGate rejects images that are unlikely to be brain MRI slices.
type MRIGate struct {
	MinAspectRatio  float64
	MaxAspectRatio  float64
	MinStdDev       float64 // on the 0..255 scale
	DarkThreshold   uint8   // pixels strictly below this are background
	MinDarkFraction float64
}

// NewMRIGate creates a gate with the reference thresholds.
func NewMRIGate() *MRIGate {
	return &MRIGate{
		MinAspectRatio:  0.8,
		MaxAspectRatio:  1.2,
		MinStdDev:       20,
		DarkThreshold:   50,
		MinDarkFraction: 0.3,
	}
}

// Check applies the checks in order and stops at the first failure.
func (g *MRIGate) Check(img *entity.UploadedImage) error {
	aspect := float64(img.Width) / float64(img.Height)
	if !(g.MinAspectRatio <= aspect && aspect <= g.MaxAspectRatio) {
		return &RejectionError{
			Check: CheckAspectRatio,
			Value: aspect,
			Limit: fmt.Sprintf("[%g, %g]", g.MinAspectRatio, g.MaxAspectRatio),
		}
	}

	pixels := Grayscale(img.Image)
	_, std := meanStdDev(pixels)
	if std < g.MinStdDev {
		return &RejectionError{
			Check: CheckContrast,
			Value: std,
			Limit: fmt.Sprintf(">= %g", g.MinStdDev),
		}
	}

	dark := 0
	for _, p := range pixels {
		if p < g.DarkThreshold {
			dark++
		}
	}
	if float64(dark) < float64(len(pixels))*g.MinDarkFraction {
		return &RejectionError{
			Check: CheckDarkFraction,
			Value: float64(dark) / float64(len(pixels)),
			Limit: fmt.Sprintf(">= %g", g.MinDarkFraction),
		}
	}

	return nil
}

// Accepts is the boolean form of Check.
func (g *MRIGate) Accepts(img *entity.UploadedImage) bool {
	return g.Check(img) == nil
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(pixels []uint8) (mean, std float64) {
	if len(pixels) == 0 {
		return 0, 0
	}
	var sum float64
	for _, p := range pixels {
		sum += float64(p)
	}
	mean = sum / float64(len(pixels))

	var sq float64
	for _, p := range pixels {
		d := float64(p) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(pixels)))
}

var _ port.ScanGate = (*MRIGate)(nil)
