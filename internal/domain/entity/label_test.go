package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel_Order(t *testing.T) {
	got := make([]string, 0, NumLabels)
	for _, l := range Labels() {
		got = append(got, l.String())
	}
	require.Equal(t, []string{"glioma tumor", "meningioma tumor", "no tumor", "pituitary tumor"}, got)
}

func TestLabelFromIndex(t *testing.T) {
	l, err := LabelFromIndex(2)
	require.NoError(t, err)
	require.Equal(t, LabelNoTumor, l)
	require.Equal(t, "no_tumor", l.Slug())

	_, err = LabelFromIndex(4)
	require.ErrorIs(t, err, ErrUnknownLabel)
	_, err = LabelFromIndex(-1)
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want Label
	}{
		{"glioma", LabelGlioma},
		{"Meningioma Tumor", LabelMeningioma},
		{"no_tumor", LabelNoTumor},
		{" no tumor ", LabelNoTumor},
		{"pituitary", LabelPituitary},
	}
	for _, tt := range tests {
		got, err := ParseLabel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLabel("astrocytoma")
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestArgMax(t *testing.T) {
	require.Equal(t, 1, ArgMax([]float32{0.1, 0.9, 0.05, 0.05}))
	require.Equal(t, 0, ArgMax([]float32{0.5, 0.5, 0, 0}))
	require.Equal(t, 3, ArgMax([]float32{-3, -2, -1, 0}))
	require.Equal(t, -1, ArgMax(nil))
}

func TestLabelFromScores(t *testing.T) {
	l, err := LabelFromScores([]float32{0.1, 0.9, 0.05, 0.05})
	require.NoError(t, err)
	require.Equal(t, "meningioma tumor", l.String())

	l, err = LabelFromScores([]float32{0.5, 0.5, 0.0, 0.0})
	require.NoError(t, err)
	require.Equal(t, "glioma tumor", l.String())

	_, err = LabelFromScores([]float32{1, 2, 3})
	require.ErrorIs(t, err, ErrInference)

	_, err = LabelFromScores([]float32{0, float32(math.NaN()), 0, 0})
	require.ErrorIs(t, err, ErrInference)
}
