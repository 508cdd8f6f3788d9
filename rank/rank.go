package rank

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entrank/entropy"
	"github.com/YuminosukeSato/entrank/pkg/errors"
	"github.com/YuminosukeSato/entrank/pkg/log"
	"github.com/YuminosukeSato/entrank/preprocessing"
)

// ImportanceRecord is the per-attribute output: the point estimate and,
// when confidence intervals are requested, the bootstrap percentile
// bounds. Bounds are NaN when the interval was not requested or could not
// be estimated. Resampling noise may place the point estimate slightly
// outside [Lower, Upper]; the ordering Lower <= Upper itself always holds
// for estimated bounds.
type ImportanceRecord struct {
	Attribute  string
	Importance float64
	Lower      float64
	Upper      float64
}

// Result is the output of a ranking request. Records preserve the input
// column order. Advisories collects non-fatal conditions (discretization
// of the response, degenerate attributes, unstable bounds) as typed
// values from pkg/errors, so callers can assert on them instead of
// scraping console output.
type Result struct {
	Measure    Measure
	Records    []ImportanceRecord
	Advisories []error
	HasCI      bool
}

// Rank scores every column of t by its association with the class and
// returns one record per column, in column order. The class must be
// row-aligned with every column; rows with a missing class label must be
// filtered out beforehand. Hard errors (invalid configuration, shape
// mismatch) abort the whole request with no partial result.
func Rank(t Table, class Class, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	if len(t.Cols) == 0 {
		return nil, errors.NewDimensionError("Rank", 1, 0, 1)
	}
	rows := class.Len()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "rank.Rank")
	}
	for _, c := range t.Cols {
		if c.Len() != rows {
			return nil, errors.NewDimensionError("Rank", rows, c.Len(), 0)
		}
	}

	labels, advisories, err := resolveClass(class, o)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(t.Cols))
	for j, c := range t.Cols {
		if c.Name != "" {
			names[j] = c.Name
		} else {
			names[j] = strconv.Itoa(j + 1)
		}
	}

	fn := func(indices []int, workers int) []float64 {
		tt, cc := t, labels
		if indices != nil {
			tt = gatherTable(t, indices)
			cc = gatherLabels(labels, indices)
		}
		hc := entropy.Of(cc)
		pairs := computeDense(tt, cc, o.integersAsContinuous, workers)
		return scores(o.measure, hc, pairs)
	}
	return run(fn, names, rows, o, advisories), nil
}

// RankMatrix ranks the columns of a dense numeric matrix. Every column is
// treated as continuous and resolved by exact-value grouping. names may
// be nil, in which case columns are identified by 1-based position.
func RankMatrix(X mat.Matrix, names []string, class Class, opts ...Option) (*Result, error) {
	r, c := X.Dims()
	if names != nil && len(names) != c {
		return nil, errors.NewDimensionError("RankMatrix", c, len(names), 1)
	}
	cols := make([]Column, c)
	for j := 0; j < c; j++ {
		vals := make([]float64, r)
		for i := 0; i < r; i++ {
			vals[i] = X.At(i, j)
		}
		name := ""
		if names != nil {
			name = names[j]
		}
		cols[j] = ContinuousColumn(name, vals)
	}
	return Rank(Table{Cols: cols}, class, opts...)
}

// RankSparse ranks the columns of a compressed sparse column matrix
// without materializing its implicit zeros. names may be nil, in which
// case columns are identified by 1-based position.
func RankSparse(m *CSC, names []string, class Class, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	if m.Cols == 0 {
		return nil, errors.NewDimensionError("RankSparse", 1, 0, 1)
	}
	if m.Rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "rank.RankSparse")
	}
	if class.Len() != m.Rows {
		return nil, errors.NewDimensionError("RankSparse", m.Rows, class.Len(), 0)
	}
	if names != nil && len(names) != m.Cols {
		return nil, errors.NewDimensionError("RankSparse", m.Cols, len(names), 1)
	}

	labels, advisories, err := resolveClass(class, o)
	if err != nil {
		return nil, err
	}

	if names == nil {
		names = make([]string, m.Cols)
		for j := range names {
			names[j] = strconv.Itoa(j + 1)
		}
	}

	totals := countLabels(labels)
	fn := func(indices []int, workers int) []float64 {
		classTotals := totals
		var mult []int
		if indices != nil {
			mult = make([]int, m.Rows)
			classTotals = make(map[string]int, len(totals))
			for _, idx := range indices {
				mult[idx]++
				classTotals[labels[idx]]++
			}
		}
		hc := entropy.FromCounts(classTotals, m.Rows)
		pairs := computeSparse(m, labels, classTotals, mult, workers)
		return scores(o.measure, hc, pairs)
	}
	return run(fn, names, m.Rows, o, advisories), nil
}

func (o *options) validate() error {
	if !o.measure.valid() {
		return errors.NewValidationError("measure", "unknown importance measure", int(o.measure))
	}
	if o.ci {
		if o.confidence <= 0 || o.confidence >= 1 {
			return errors.NewValidationError("confidence", "must be in (0, 1)", o.confidence)
		}
		if o.nBoot < 1 {
			return errors.NewValidationError("nBoot", "must be positive", o.nBoot)
		}
	}
	return nil
}

// resolveClass converts the class union into categorical labels. A
// numeric class is either equal-frequency binned (when requested) or
// grouped by exact value.
func resolveClass(c Class, o options) ([]string, []error, error) {
	if !c.numeric {
		return c.labels, nil, nil
	}
	if o.binResponse {
		labels, err := preprocessing.EqualFrequencyBins(c.reals, o.nbins)
		if err != nil {
			return nil, nil, err
		}
		adv := errors.NewDiscretizationWarning("class", o.nbins, "equal-frequency")
		return labels, []error{adv}, nil
	}
	labels := make([]string, len(c.reals))
	for i, v := range c.reals {
		labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return labels, nil, nil
}

func scores(m Measure, hc float64, pairs []entropyPair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = m.score(hc, p.h, p.joint)
	}
	return out
}

// run executes the point estimate, the optional bootstrap, and assembles
// the result.
func run(fn pointFn, names []string, rows int, o options, advisories []error) *Result {
	start := time.Now()
	o.applySeed()

	point := fn(nil, o.workers)
	records := make([]ImportanceRecord, len(names))
	for i, name := range names {
		records[i] = ImportanceRecord{
			Attribute:  name,
			Importance: point[i],
			Lower:      math.NaN(),
			Upper:      math.NaN(),
		}
		if v := point[i]; math.IsNaN(v) || math.IsInf(v, 0) {
			advisories = append(advisories, errors.NewDegenerateAttributeWarning(name, o.measure.String()))
		}
	}

	draws := 0
	if o.ci {
		draws = o.nBoot
		bounds := bootstrapCI(fn, rows, len(names), o.nBoot, o.confidence, o.seed, o.workers)
		for i := range records {
			records[i].Lower = bounds[i].lower
			records[i].Upper = bounds[i].upper
			if math.IsNaN(bounds[i].lower) {
				advisories = append(advisories, errors.NewUnstableBoundsWarning(names[i], o.nBoot))
			}
		}
	}

	slog.Default().Debug("ranking complete",
		log.MeasureKey, o.measure.String(),
		log.RowsKey, rows,
		log.AttributesKey, len(names),
		log.DrawsKey, draws,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return &Result{
		Measure:    o.measure,
		Records:    records,
		Advisories: advisories,
		HasCI:      o.ci,
	}
}
