package rank

import "math/rand/v2"

// Option configures a ranking request.
type Option func(*options)

type options struct {
	measure              Measure
	integersAsContinuous bool
	binResponse          bool
	nbins                int
	ci                   bool
	confidence           float64
	nBoot                int
	seed                 uint64
	seedSet              bool
	workers              int
}

func defaultOptions() options {
	return options{
		measure: InfoGain,
		workers: 1,
	}
}

// WithMeasure selects the importance formula. The default is InfoGain.
func WithMeasure(m Measure) Option {
	return func(o *options) {
		o.measure = m
	}
}

// WithIntegersAsContinuous controls how Integer columns are resolved:
// when true they are converted to exact-value categories like Continuous
// columns; when false (the default) the raw integer values serve as
// category labels directly.
func WithIntegersAsContinuous(v bool) Option {
	return func(o *options) {
		o.integersAsContinuous = v
	}
}

// WithEqualFrequencyResponse discretizes a numeric class into nbins
// equal-frequency bins before ranking. It has no effect on a categorical
// class. A DiscretizationWarning is appended to Result.Advisories when
// the binning is applied.
func WithEqualFrequencyResponse(nbins int) Option {
	return func(o *options) {
		o.binResponse = true
		o.nbins = nbins
	}
}

// WithConfidenceInterval enables bootstrap confidence bounds: nBoot
// resamples drawn with replacement, reduced per attribute to the
// empirical (1-confidence)/2 and 1-(1-confidence)/2 quantiles.
// confidence must lie in (0, 1) and nBoot must be positive.
//
// Draws over degenerate resamples can produce non-finite importance
// values; they are excluded from the quantiles. An attribute whose draws
// are all non-finite gets NaN bounds and an UnstableBoundsWarning.
func WithConfidenceInterval(confidence float64, nBoot int) Option {
	return func(o *options) {
		o.ci = true
		o.confidence = confidence
		o.nBoot = nBoot
	}
}

// WithSeed fixes the random source used for bootstrap resampling, making
// the resamples reproducible. Without it a fresh seed is drawn per
// request.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithWorkers bounds the number of goroutines used for per-attribute and
// per-draw work. Zero or negative selects the number of available CPUs.
// The default is 1: single-threaded, matching hosts that cannot guarantee
// anything about concurrent access to their data.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func (o *options) applySeed() {
	if !o.seedSet {
		o.seed = rand.Uint64()
	}
}
