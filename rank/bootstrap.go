package rank

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/entrank/core/parallel"
)

// pointFn computes the per-attribute importance scores for the dataset
// selected by a row-index resample. A nil slice selects the original
// dataset. workers bounds any per-attribute parallelism inside the call.
type pointFn func(indices []int, workers int) []float64

// boundsPair holds the percentile bounds for one attribute. NaN bounds
// mean no bootstrap draw produced a finite importance for the attribute.
type boundsPair struct {
	lower float64
	upper float64
}

// bootstrapCI draws nBoot row resamples with replacement, re-runs the
// point-estimate pipeline on each, and reduces every attribute's score
// distribution to the empirical (1-confidence)/2 and 1-(1-confidence)/2
// quantiles, linearly interpolated between order statistics.
//
// Each draw owns an independent PCG stream keyed by (seed, draw index),
// so results do not depend on scheduling order and draws parallelize
// without shared state. Draws on degenerate resamples may produce
// non-finite scores; those are excluded from the quantile computation
// rather than aborting the loop. An attribute with no finite draw at all
// gets NaN bounds.
func bootstrapCI(fn pointFn, rows, nAttrs, nBoot int, confidence float64, seed uint64, workers int) []boundsPair {
	draws := make([][]float64, nBoot)
	parallel.Run(nBoot, workers, func(start, end int) {
		for b := start; b < end; b++ {
			rng := rand.New(rand.NewPCG(seed, uint64(b)))
			indices := make([]int, rows)
			for i := range indices {
				indices[i] = rng.IntN(rows)
			}
			draws[b] = fn(indices, 1)
		}
	})

	alpha := (1 - confidence) / 2
	bounds := make([]boundsPair, nAttrs)
	finite := make([]float64, 0, nBoot)
	for a := 0; a < nAttrs; a++ {
		finite = finite[:0]
		for b := 0; b < nBoot; b++ {
			v := draws[b][a]
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
		if len(finite) == 0 {
			bounds[a] = boundsPair{math.NaN(), math.NaN()}
			continue
		}
		sort.Float64s(finite)
		bounds[a] = boundsPair{
			lower: stat.Quantile(alpha, stat.LinInterp, finite, nil),
			upper: stat.Quantile(1-alpha, stat.LinInterp, finite, nil),
		}
	}
	return bounds
}
