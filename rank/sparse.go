package rank

import (
	"github.com/YuminosukeSato/entrank/core/parallel"
	"github.com/YuminosukeSato/entrank/entropy"
)

// The sparse path never materializes implicit zeros. Marginal frequencies
// come from counting stored entries per distinct value and crediting the
// remainder of the row count to the zero category. Joint frequencies need
// the class label of every row, including rows with no stored entry in a
// column: those are recovered by subtracting the per-class counts of the
// stored entries from the full per-class totals, which costs O(nnz +
// #classes) per column instead of O(rows).

// jointCell is a (attribute value, class label) pair of the joint
// frequency table.
type jointCell struct {
	v float64
	c string
}

// computeSparse evaluates every column of m against the class labels.
// classTotals must hold the frequency of each class label over all rows.
// mult, when non-nil, gives the number of times each original row appears
// in the current (resampled) dataset; classTotals must then be the
// resampled totals. A nil mult means every row appears exactly once.
func computeSparse(m *CSC, class []string, classTotals map[string]int, mult []int, workers int) []entropyPair {
	pairs := make([]entropyPair, m.Cols)
	parallel.Run(m.Cols, workers, func(start, end int) {
		for j := start; j < end; j++ {
			pairs[j] = sparseColumnEntropy(m, j, class, classTotals, mult)
		}
	})
	return pairs
}

func sparseColumnEntropy(m *CSC, j int, class []string, classTotals map[string]int, mult []int) entropyPair {
	counts := make(map[float64]int, 16)
	joint := make(map[jointCell]int, 16)
	storedByClass := make(map[string]int, len(classTotals))
	stored := 0

	for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
		r := m.RowIndex[k]
		w := 1
		if mult != nil {
			w = mult[r]
			if w == 0 {
				continue
			}
		}
		v := m.Values[k]
		c := class[r]
		counts[v] += w
		joint[jointCell{v, c}] += w
		storedByClass[c] += w
		stored += w
	}

	// Rows without a stored entry hold the default value. Explicitly
	// stored zeros merge with the same category here.
	total := m.Rows
	counts[0] += total - stored
	for c, ct := range classTotals {
		if d := ct - storedByClass[c]; d > 0 {
			joint[jointCell{0, c}] += d
		}
	}

	return entropyPair{entropy.FromCounts(counts, total), entropy.FromCounts(joint, total)}
}

// countLabels tallies the class totals the sparse path subtracts from.
func countLabels(labels []string) map[string]int {
	totals := make(map[string]int, 16)
	for _, c := range labels {
		totals[c]++
	}
	return totals
}
