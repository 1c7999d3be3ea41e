package entity

import (
	"fmt"
	"math"
	"strings"
)

// Label is a class the tumor classifier can produce. The numeric value is the
// index of the class in the model output vector.
type Label int

const (
	LabelGlioma Label = iota
	LabelMeningioma
	LabelNoTumor
	LabelPituitary
)

// NumLabels is the length of the score vector the model must return.
const NumLabels = 4

var labelNames = [NumLabels]string{
	"glioma tumor",
	"meningioma tumor",
	"no tumor",
	"pituitary tumor",
}

var labelSlugs = [NumLabels]string{
	"glioma",
	"meningioma",
	"no_tumor",
	"pituitary",
}

// Labels returns all labels in model output order.
func Labels() []Label {
	return []Label{LabelGlioma, LabelMeningioma, LabelNoTumor, LabelPituitary}
}

// String returns the display name of the label, e.g. "glioma tumor".
func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Slug returns a url-safe identifier, e.g. "no_tumor".
func (l Label) Slug() string {
	if !l.Valid() {
		return ""
	}
	return labelSlugs[l]
}

// Valid reports whether l is one of the four known classes.
func (l Label) Valid() bool {
	return l >= 0 && l < NumLabels
}

// LabelFromIndex maps a model output index to its label.
func LabelFromIndex(i int) (Label, error) {
	l := Label(i)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: index %d", ErrUnknownLabel, i)
	}
	return l, nil
}

// ParseLabel accepts either the display name or the slug, case-insensitively.
func ParseLabel(s string) (Label, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range NumLabels {
		if s == labelNames[i] || s == labelSlugs[i] {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// ArgMax returns the index of the largest score. Ties go to the first maximum.
// It returns -1 for an empty slice.
func ArgMax(scores []float32) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}

// LabelFromScores selects the label for a raw model output vector.
// The vector must hold exactly NumLabels finite values.
func LabelFromScores(scores []float32) (Label, error) {
	if len(scores) != NumLabels {
		return 0, fmt.Errorf("%w: expected %d scores, got %d", ErrInference, NumLabels, len(scores))
	}
	for i, s := range scores {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			return 0, fmt.Errorf("%w: score %d is not finite", ErrInference, i)
		}
	}
	return LabelFromIndex(ArgMax(scores))
}
