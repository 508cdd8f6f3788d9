package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("confidence", "must be in (0, 1)", 1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence")
	assert.Contains(t, err.Error(), "1.5")

	var verr *ValidationError
	require.True(t, As(err, &verr))
	assert.Equal(t, "confidence", verr.ParamName)
}

func TestDimensionErrorAxisNames(t *testing.T) {
	rowErr := NewDimensionError("Rank", 10, 8, 0)
	assert.Contains(t, rowErr.Error(), "rows")
	assert.Contains(t, rowErr.Error(), "Expected 10, got 8")

	colErr := NewDimensionError("RankSparse", 3, 2, 1)
	assert.Contains(t, colErr.Error(), "columns")
}

func TestValueError(t *testing.T) {
	err := NewValueError("NewCSC", "row index out of range")
	assert.Contains(t, err.Error(), "NewCSC")

	var verr *ValueError
	assert.True(t, As(err, &verr))
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(ErrEmptyData, "rank.Rank")
	assert.True(t, Is(err, ErrEmptyData))
}

func TestAdvisoryMessages(t *testing.T) {
	disc := NewDiscretizationWarning("class", 5, "equal-frequency")
	assert.Contains(t, disc.Error(), "5 bins")

	deg := NewDegenerateAttributeWarning("width", "gainratio")
	assert.Contains(t, deg.Error(), "width")
	assert.Contains(t, deg.Error(), "gainratio")

	unstable := NewUnstableBoundsWarning("width", 100)
	assert.Contains(t, unstable.Error(), "100 bootstrap draws")
}
