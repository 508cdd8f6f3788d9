// Package preprocessing provides data preparation for entropy-based
// ranking. The only transformation the core needs is equal-frequency
// discretization of a continuous response vector.
package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/entrank/pkg/errors"
)

// EqualFrequencyBins discretizes values into nbins groups of as-equal-as-
// possible size and returns one bin label per input value, aligned with
// the input order. Values are ranked by a stable sort, so ties are broken
// by original position. Labels are "bin1" through "binN" in ascending
// value order.
//
// It fails with a ValidationError when nbins is non-positive or exceeds
// the number of distinct values.
func EqualFrequencyBins(values []float64, nbins int) ([]string, error) {
	if nbins <= 0 {
		return nil, errors.NewValidationError("nbins", "must be positive", nbins)
	}

	distinct := make(map[float64]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if nbins > len(distinct) {
		return nil, errors.NewValidationError("nbins",
			fmt.Sprintf("must not exceed the number of distinct values (%d)", len(distinct)), nbins)
	}

	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	// Group sizes differ by at most one; the first n%nbins groups take
	// the extra observation.
	base := n / nbins
	extra := n % nbins

	labels := make([]string, n)
	pos := 0
	for g := 0; g < nbins; g++ {
		size := base
		if g < extra {
			size++
		}
		label := fmt.Sprintf("bin%d", g+1)
		for k := 0; k < size; k++ {
			labels[order[pos]] = label
			pos++
		}
	}
	return labels, nil
}
