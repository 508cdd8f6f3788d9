package rank

import (
	"github.com/YuminosukeSato/entrank/core/parallel"
	"github.com/YuminosukeSato/entrank/entropy"
)

// entropyPair holds one attribute's marginal entropy and its joint
// entropy with the class.
type entropyPair struct {
	h     float64
	joint float64
}

// computeDense evaluates every column of t against the class labels.
// Columns are independent, so the loop is chunked across workers; each
// slot of the result is written by exactly one goroutine.
func computeDense(t Table, class []string, integersAsContinuous bool, workers int) []entropyPair {
	pairs := make([]entropyPair, len(t.Cols))
	parallel.Run(len(t.Cols), workers, func(start, end int) {
		for j := start; j < end; j++ {
			pairs[j] = columnEntropy(t.Cols[j], class, integersAsContinuous)
		}
	})
	return pairs
}

// columnEntropy resolves the column's declared type into categories and
// computes its entropy pair. Continuous values are grouped by exact value,
// one category per distinct value; predictors are never binned.
func columnEntropy(c Column, class []string, integersAsContinuous bool) entropyPair {
	switch c.Kind {
	case Categorical:
		return entropyPair{entropy.Of(c.Cats), entropy.Joint(c.Cats, class)}
	case Continuous:
		return entropyPair{entropy.Of(c.Reals), entropy.Joint(c.Reals, class)}
	default:
		if integersAsContinuous {
			vals := make([]float64, len(c.Ints))
			for i, v := range c.Ints {
				vals[i] = float64(v)
			}
			return entropyPair{entropy.Of(vals), entropy.Joint(vals, class)}
		}
		// Raw integers serve as category labels.
		return entropyPair{entropy.Of(c.Ints), entropy.Joint(c.Ints, class)}
	}
}

// gatherTable builds the bootstrap resample of t selected by row indices.
func gatherTable(t Table, indices []int) Table {
	cols := make([]Column, len(t.Cols))
	for j, c := range t.Cols {
		rc := Column{Name: c.Name, Kind: c.Kind}
		switch c.Kind {
		case Categorical:
			rc.Cats = make([]string, len(indices))
			for i, idx := range indices {
				rc.Cats[i] = c.Cats[idx]
			}
		case Continuous:
			rc.Reals = make([]float64, len(indices))
			for i, idx := range indices {
				rc.Reals[i] = c.Reals[idx]
			}
		default:
			rc.Ints = make([]int, len(indices))
			for i, idx := range indices {
				rc.Ints[i] = c.Ints[idx]
			}
		}
		cols[j] = rc
	}
	return Table{Cols: cols}
}

func gatherLabels(labels []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = labels[idx]
	}
	return out
}
