package errors

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Advisory types describe conditions that do not abort a ranking request
// but that callers may want to inspect or assert on. They are returned in
// the result rather than emitted as side effects, and implement both error
// and zerolog.LogObjectMarshaler so they can be logged structurally.

// DiscretizationWarning records that a continuous variable was converted
// to categories before entropy estimation.
type DiscretizationWarning struct {
	Variable string
	Bins     int
	Method   string
}

func (w *DiscretizationWarning) Error() string {
	return fmt.Sprintf("variable '%s' was discretized into %d bins using %s binning", w.Variable, w.Bins, w.Method)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DiscretizationWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("variable", w.Variable).
		Int("bins", w.Bins).
		Str("method", w.Method).
		Str("type", "DiscretizationWarning")
}

// NewDiscretizationWarning creates a new DiscretizationWarning.
func NewDiscretizationWarning(variable string, bins int, method string) *DiscretizationWarning {
	return &DiscretizationWarning{Variable: variable, Bins: bins, Method: method}
}

// DegenerateAttributeWarning records that an attribute is constant
// (zero entropy) so a normalized importance measure divided by zero.
// The non-finite score is kept in the result as-is; this warning exists
// so callers can tell a degenerate attribute from a numerical bug.
type DegenerateAttributeWarning struct {
	Attribute string
	Measure   string
}

func (w *DegenerateAttributeWarning) Error() string {
	return fmt.Sprintf("attribute '%s' has zero entropy; %s is not finite", w.Attribute, w.Measure)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateAttributeWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("attribute", w.Attribute).
		Str("measure", w.Measure).
		Str("type", "DegenerateAttributeWarning")
}

// NewDegenerateAttributeWarning creates a new DegenerateAttributeWarning.
func NewDegenerateAttributeWarning(attribute, measure string) *DegenerateAttributeWarning {
	return &DegenerateAttributeWarning{Attribute: attribute, Measure: measure}
}

// UnstableBoundsWarning records that every bootstrap draw for an attribute
// produced a non-finite importance value, so its confidence bounds are NaN.
type UnstableBoundsWarning struct {
	Attribute string
	Draws     int
}

func (w *UnstableBoundsWarning) Error() string {
	return fmt.Sprintf("attribute '%s' produced no finite importance value in %d bootstrap draws; bounds are NaN", w.Attribute, w.Draws)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UnstableBoundsWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("attribute", w.Attribute).
		Int("draws", w.Draws).
		Str("type", "UnstableBoundsWarning")
}

// NewUnstableBoundsWarning creates a new UnstableBoundsWarning.
func NewUnstableBoundsWarning(attribute string, draws int) *UnstableBoundsWarning {
	return &UnstableBoundsWarning{Attribute: attribute, Draws: draws}
}
