// SPDX-License-Identifier: MIT
package coupling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRescaleFactors(t *testing.T) {
	got, err := rescaleFactors([]float64{1, 2, -3}, 15)
	require.NoError(t, err)
	require.Equal(t, []float64{15, 7.5, -5}, got)

	_, err = rescaleFactors([]float64{1, 0}, 15)
	require.ErrorIs(t, err, ErrNumericFailure)
	require.ErrorContains(t, err, "line 1")
}
