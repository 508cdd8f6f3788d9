package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/entrank/pkg/errors"
)

func TestRankPerfectPredictor(t *testing.T) {
	table := NewTable(IntegerColumn("flag", []int{1, 1, 1, 1, 0, 0, 0, 0}))
	class := ClassLabels([]string{"a", "a", "a", "a", "b", "b", "b", "b"})

	tests := []struct {
		measure Measure
		want    float64
	}{
		{InfoGain, math.Log(2)},
		{GainRatio, 1},
		{SymUncert, 1},
	}
	for _, tt := range tests {
		t.Run(tt.measure.String(), func(t *testing.T) {
			res, err := Rank(table, class, WithMeasure(tt.measure))
			require.NoError(t, err)
			require.Len(t, res.Records, 1)
			assert.Equal(t, "flag", res.Records[0].Attribute)
			assert.InDelta(t, tt.want, res.Records[0].Importance, 1e-12)
			assert.False(t, res.HasCI)
			assert.True(t, math.IsNaN(res.Records[0].Lower))
			assert.True(t, math.IsNaN(res.Records[0].Upper))
		})
	}
}

func TestRankConstantAttributeConstantClass(t *testing.T) {
	// Both degenerate: the normalized measures divide zero by zero.
	table := NewTable(IntegerColumn("const", []int{5, 5, 5, 5}))
	class := ClassLabels([]string{"a", "a", "a", "a"})

	res, err := Rank(table, class, WithMeasure(InfoGain))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Records[0].Importance)

	for _, m := range []Measure{GainRatio, SymUncert} {
		res, err := Rank(table, class, WithMeasure(m))
		require.NoError(t, err)
		v := res.Records[0].Importance
		assert.True(t, math.IsNaN(v) || math.IsInf(v, 0), "%s should be non-finite, got %v", m, v)

		var deg *errors.DegenerateAttributeWarning
		found := false
		for _, adv := range res.Advisories {
			if errors.As(adv, &deg) {
				found = true
			}
		}
		assert.True(t, found, "expected a DegenerateAttributeWarning for %s", m)
		assert.Equal(t, "const", deg.Attribute)
	}
}

func TestRankConstantAttributeVaryingClass(t *testing.T) {
	table := NewTable(IntegerColumn("const", []int{5, 5, 5, 5}))
	class := ClassLabels([]string{"a", "a", "b", "b"})

	res, err := Rank(table, class, WithMeasure(GainRatio))
	require.NoError(t, err)
	// 0 / 0: surfaced as-is, not substituted.
	assert.True(t, math.IsNaN(res.Records[0].Importance))

	res, err = Rank(table, class, WithMeasure(SymUncert))
	require.NoError(t, err)
	// Denominator is H(C) > 0 here, so the score is a finite zero.
	assert.InDelta(t, 0, res.Records[0].Importance, 1e-12)
}

func TestRankInfoGainNonNegative(t *testing.T) {
	table := NewTable(
		CategoricalColumn("color", []string{"r", "g", "b", "r", "g", "b", "r", "g"}),
		IntegerColumn("size", []int{1, 2, 3, 1, 2, 3, 2, 1}),
		ContinuousColumn("weight", []float64{0.5, 1.25, 0.5, 2.0, 1.25, 0.5, 2.0, 2.0}),
	)
	class := ClassLabels([]string{"x", "y", "x", "y", "x", "y", "x", "y"})

	res, err := Rank(table, class)
	require.NoError(t, err)
	for _, rec := range res.Records {
		assert.GreaterOrEqual(t, rec.Importance, -1e-12, "infogain for %s", rec.Attribute)
	}
}

func TestRankColumnOrderAndNames(t *testing.T) {
	table := NewTable(
		CategoricalColumn("b", []string{"u", "v"}),
		CategoricalColumn("", []string{"u", "v"}),
		CategoricalColumn("a", []string{"u", "v"}),
	)
	res, err := Rank(table, ClassLabels([]string{"x", "y"}))
	require.NoError(t, err)

	// Input column order is preserved; unnamed columns fall back to the
	// 1-based position.
	assert.Equal(t, "b", res.Records[0].Attribute)
	assert.Equal(t, "2", res.Records[1].Attribute)
	assert.Equal(t, "a", res.Records[2].Attribute)
}

func TestRankIntegersAsContinuousEquivalence(t *testing.T) {
	// Exact-value grouping of integers yields the same frequency table as
	// using them raw, so the scores must agree.
	table := NewTable(IntegerColumn("size", []int{1, 2, 3, 1, 2, 3}))
	class := ClassLabels([]string{"x", "x", "y", "y", "x", "y"})

	raw, err := Rank(table, class)
	require.NoError(t, err)
	conv, err := Rank(table, class, WithIntegersAsContinuous(true))
	require.NoError(t, err)
	assert.InDelta(t, raw.Records[0].Importance, conv.Records[0].Importance, 1e-12)
}

func TestRankShapeErrors(t *testing.T) {
	t.Run("row mismatch", func(t *testing.T) {
		table := NewTable(CategoricalColumn("a", []string{"u", "v", "w"}))
		_, err := Rank(table, ClassLabels([]string{"x", "y"}))
		require.Error(t, err)
		var derr *errors.DimensionError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, 0, derr.Axis)
	})

	t.Run("no columns", func(t *testing.T) {
		_, err := Rank(NewTable(), ClassLabels([]string{"x", "y"}))
		require.Error(t, err)
		var derr *errors.DimensionError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, 1, derr.Axis)
	})

	t.Run("empty class", func(t *testing.T) {
		table := NewTable(CategoricalColumn("a", nil))
		_, err := Rank(table, ClassLabels(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})
}

func TestRankOptionValidation(t *testing.T) {
	table := NewTable(CategoricalColumn("a", []string{"u", "v"}))
	class := ClassLabels([]string{"x", "y"})

	tests := []struct {
		name  string
		opt   Option
		param string
	}{
		{"confidence too high", WithConfidenceInterval(1.0, 100), "confidence"},
		{"confidence too low", WithConfidenceInterval(0.0, 100), "confidence"},
		{"zero draws", WithConfidenceInterval(0.95, 0), "nBoot"},
		{"unknown measure", WithMeasure(Measure(9)), "measure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rank(table, class, tt.opt)
			require.Error(t, err)
			var verr *errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.param, verr.ParamName)
		})
	}
}

func TestRankNumericResponseBinned(t *testing.T) {
	table := NewTable(IntegerColumn("flag", []int{1, 1, 1, 0, 0, 0}))
	class := ClassNumeric([]float64{0.1, 0.2, 0.3, 7.1, 7.2, 7.3})

	res, err := Rank(table, class, WithEqualFrequencyResponse(2))
	require.NoError(t, err)

	// The low and high halves land in separate bins, so the attribute
	// predicts the binned class perfectly.
	assert.InDelta(t, math.Log(2), res.Records[0].Importance, 1e-12)

	var disc *errors.DiscretizationWarning
	found := false
	for _, adv := range res.Advisories {
		if errors.As(adv, &disc) {
			found = true
		}
	}
	require.True(t, found, "expected a DiscretizationWarning")
	assert.Equal(t, 2, disc.Bins)
}

func TestRankNumericResponseTooManyBins(t *testing.T) {
	table := NewTable(IntegerColumn("flag", []int{1, 0, 1, 0}))
	class := ClassNumeric([]float64{1, 1, 2, 2})

	_, err := Rank(table, class, WithEqualFrequencyResponse(3))
	require.Error(t, err)
	var verr *errors.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRankNumericResponseExactValues(t *testing.T) {
	// Without binning, each distinct numeric response value is its own
	// category.
	table := NewTable(IntegerColumn("flag", []int{1, 1, 0, 0}))
	class := ClassNumeric([]float64{3.5, 3.5, 9.0, 9.0})

	res, err := Rank(table, class)
	require.NoError(t, err)
	assert.Empty(t, res.Advisories)
	assert.InDelta(t, math.Log(2), res.Records[0].Importance, 1e-12)
}

func TestRankWorkersEquivalence(t *testing.T) {
	table := NewTable(
		CategoricalColumn("c1", []string{"a", "b", "a", "b", "a", "b", "c", "c"}),
		IntegerColumn("c2", []int{1, 1, 2, 2, 3, 3, 1, 2}),
		ContinuousColumn("c3", []float64{0.5, 0.5, 1.5, 1.5, 0.5, 1.5, 2.5, 2.5}),
	)
	class := ClassLabels([]string{"x", "y", "x", "y", "y", "x", "x", "y"})

	seq, err := Rank(table, class, WithWorkers(1))
	require.NoError(t, err)
	par, err := Rank(table, class, WithWorkers(4))
	require.NoError(t, err)

	require.Len(t, par.Records, len(seq.Records))
	for i := range seq.Records {
		assert.Equal(t, seq.Records[i].Attribute, par.Records[i].Attribute)
		assert.InDelta(t, seq.Records[i].Importance, par.Records[i].Importance, 1e-12)
	}
}
