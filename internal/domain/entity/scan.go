package entity

import "image"

// UploadedImage is a decoded upload. It lives for one request only.
type UploadedImage struct {
	Image      image.Image
	Format     string // "jpeg" or "png"
	Width      int
	Height     int
	ColorModel string // e.g. "gray", "rgb", "rgba", "paletted"
}

// Tensor is a dense NHWC input for a batch of one.
type Tensor struct {
	Data     []float32
	Height   int
	Width    int
	Channels int
}

// Len returns the number of values the tensor should hold.
func (t Tensor) Len() int {
	return t.Height * t.Width * t.Channels
}

// Diagnosis is the outcome of one upload that did not fail with an error.
type Diagnosis struct {
	Accepted  bool      // plausibility gate passed and the model produced a label
	Label     Label     // valid only when Accepted
	Scores    []float32 // raw model output, in label order
	Rejection string    // which gate check failed, when not Accepted
}
