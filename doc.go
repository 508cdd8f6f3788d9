// Package entrank ranks attributes by their statistical association with
// a categorical class using Shannon-entropy-derived scores: information
// gain, gain ratio, and symmetrical uncertainty.
//
// The library handles both dense tabular data and compressed sparse
// column matrices without densifying them, and can attach bootstrap
// confidence intervals to every score.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/entrank/rank"
//	)
//
//	func main() {
//	    table := rank.NewTable(
//	        rank.CategoricalColumn("outlook", []string{"sunny", "sunny", "rain", "rain"}),
//	        rank.IntegerColumn("windy", []int{1, 0, 1, 0}),
//	    )
//	    class := rank.ClassLabels([]string{"no", "no", "yes", "yes"})
//
//	    res, err := rank.Rank(table, class,
//	        rank.WithMeasure(rank.InfoGain),
//	        rank.WithConfidenceInterval(0.95, 1000),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, rec := range res.Records {
//	        fmt.Println(rec.Attribute, rec.Importance, rec.Lower, rec.Upper)
//	    }
//	}
//
// # Packages
//
//   - rank: importance calculators, bootstrap estimator, public API
//   - entropy: Shannon entropy primitives over categorical data
//   - preprocessing: equal-frequency discretization of a numeric response
//   - core/parallel: fork-join helper for per-attribute and per-draw work
//   - pkg/errors: structured errors and advisory warnings
//   - pkg/log: structured logging setup
package entrank
