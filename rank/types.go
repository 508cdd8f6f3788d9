// Package rank ranks attributes by their entropy-based association with
// a categorical class: information gain, gain ratio, or symmetrical
// uncertainty, with optional bootstrap confidence intervals.
//
// Inputs arrive in one of a closed set of shapes — a dense Table of typed
// columns, a plain gonum matrix, or a compressed sparse column matrix —
// and are resolved once at the boundary. The entropy core never branches
// on the source shape again.
package rank

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entrank/pkg/errors"
)

// ColumnKind declares how a dense column's values are interpreted before
// entropy estimation.
type ColumnKind int

const (
	// Categorical columns hold opaque labels used directly as categories.
	Categorical ColumnKind = iota
	// Continuous columns hold floating-point values; each distinct value
	// becomes its own category (exact-value grouping, never binned).
	Continuous
	// Integer columns hold integer values, used either as raw category
	// labels or via exact-value grouping depending on
	// WithIntegersAsContinuous.
	Integer
)

// Column is one named attribute of a Table. Exactly one of the value
// slices is populated, matching Kind.
type Column struct {
	Name  string
	Kind  ColumnKind
	Cats  []string
	Reals []float64
	Ints  []int
}

// CategoricalColumn builds a column of opaque category labels.
func CategoricalColumn(name string, values []string) Column {
	return Column{Name: name, Kind: Categorical, Cats: values}
}

// ContinuousColumn builds a column of floating-point values.
func ContinuousColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Continuous, Reals: values}
}

// IntegerColumn builds a column of integer values.
func IntegerColumn(name string, values []int) Column {
	return Column{Name: name, Kind: Integer, Ints: values}
}

// Len returns the number of observations in the column.
func (c Column) Len() int {
	switch c.Kind {
	case Categorical:
		return len(c.Cats)
	case Continuous:
		return len(c.Reals)
	default:
		return len(c.Ints)
	}
}

// Table is a dense attribute matrix of named columns. All columns must
// share the same row count as the class vector; Rank validates this.
type Table struct {
	Cols []Column
}

// NewTable builds a Table from columns.
func NewTable(cols ...Column) Table {
	return Table{Cols: cols}
}

// Class is the response variable, either categorical labels or a numeric
// vector resolved at the boundary (see WithEqualFrequencyResponse).
type Class struct {
	labels  []string
	reals   []float64
	numeric bool
}

// ClassLabels builds a categorical class from labels.
func ClassLabels(labels []string) Class {
	return Class{labels: labels}
}

// ClassNumeric builds a numeric class. Unless equal-frequency binning is
// requested, each distinct value becomes its own category.
func ClassNumeric(values []float64) Class {
	return Class{reals: values, numeric: true}
}

// Len returns the number of observations in the class vector.
func (c Class) Len() int {
	if c.numeric {
		return len(c.reals)
	}
	return len(c.labels)
}

// CSC is a column-compressed sparse attribute matrix. For each column j,
// the non-default entries live at positions ColPtr[j] through ColPtr[j+1]
// of RowIndex and Values; every unlisted row holds the implicit default
// value zero. Rows and Cols are authoritative for the matrix shape,
// independent of the number of stored entries. A row index must appear at
// most once per column.
type CSC struct {
	Rows, Cols int
	ColPtr     []int
	RowIndex   []int
	Values     []float64
}

// NewCSC validates the compressed structure and returns the matrix.
func NewCSC(rows, cols int, colPtr, rowIndex []int, values []float64) (*CSC, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.NewValueError("NewCSC", "negative dimension")
	}
	if len(colPtr) != cols+1 {
		return nil, errors.NewDimensionError("NewCSC", cols+1, len(colPtr), 1)
	}
	if colPtr[0] != 0 {
		return nil, errors.NewValueError("NewCSC", "column pointer must start at 0")
	}
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, errors.NewValueError("NewCSC", "column pointer must be non-decreasing")
		}
	}
	nnz := colPtr[cols]
	if len(rowIndex) != nnz {
		return nil, errors.NewDimensionError("NewCSC", nnz, len(rowIndex), 0)
	}
	if len(values) != nnz {
		return nil, errors.NewDimensionError("NewCSC", nnz, len(values), 0)
	}
	for _, r := range rowIndex {
		if r < 0 || r >= rows {
			return nil, errors.NewValueError("NewCSC", "row index out of range")
		}
	}
	return &CSC{Rows: rows, Cols: cols, ColPtr: colPtr, RowIndex: rowIndex, Values: values}, nil
}

// ToDense materializes the matrix, filling unlisted entries with zero.
// Intended for small matrices and equivalence checks, not for the ranking
// path, which works on the compressed form directly.
func (m *CSC) ToDense() *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for j := 0; j < m.Cols; j++ {
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			d.Set(m.RowIndex[k], j, m.Values[k])
		}
	}
	return d
}
