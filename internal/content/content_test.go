package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tumorvision/internal/domain/entity"
)

func TestDescription_AllLabels(t *testing.T) {
	for _, l := range entity.Labels() {
		d, err := Description(l)
		require.NoError(t, err, l.String())
		require.NotEmpty(t, d)
	}

	_, err := Description(entity.Label(9))
	require.ErrorIs(t, err, entity.ErrUnknownLabel)
}
