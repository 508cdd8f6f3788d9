// Package entropy implements Shannon entropy estimation over categorical
// data. All values are reported in nats (natural logarithm).
//
// The estimators are empirical plug-in estimators: probabilities are the
// observed relative frequencies, and zero-count categories are excluded
// from the sum rather than contributing log(0).
package entropy

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Of returns the Shannon entropy of the empirical distribution of labels.
// Labels are opaque and compared only by equality, so any comparable type
// works: category strings, raw integer codes, or exact numeric values.
// An empty sequence or a sequence with a single distinct label has
// entropy 0.
func Of[T comparable](labels []T) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[T]int, 16)
	for _, l := range labels {
		counts[l]++
	}
	return FromCounts(counts, len(labels))
}

type cell[A, B comparable] struct {
	a A
	b B
}

// Joint returns the Shannon entropy of the joint distribution of
// (attr value, class value) pairs observed together. Both sequences must
// have equal length; a mismatch is a programming error and panics.
func Joint[A, B comparable](attr []A, class []B) float64 {
	if len(attr) != len(class) {
		panic(fmt.Sprintf("entropy: Joint called with mismatched lengths %d and %d", len(attr), len(class)))
	}
	if len(attr) == 0 {
		return 0
	}
	counts := make(map[cell[A, B]]int, 16)
	for i, a := range attr {
		counts[cell[A, B]{a, class[i]}]++
	}
	return FromCounts(counts, len(attr))
}

// FromCounts returns the entropy of a frequency table whose counts sum to
// total. Entries with non-positive counts are skipped, so callers may fold
// derived counts (such as an implicit-default category) into the table
// without special-casing zero.
func FromCounts[K comparable](counts map[K]int, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := make([]float64, 0, len(counts))
	n := float64(total)
	for _, c := range counts {
		if c > 0 {
			p = append(p, float64(c)/n)
		}
	}
	return stat.Entropy(p)
}
