// SPDX-License-Identifier: MIT
// Package matrix provides converters between the sparse container and flat
// or dense representations.
//
// The only dense boundary is SetDense, which ingests any gonum mat.Matrix.
// There is no sparse→dense converter: callers read values back
// with At/Contains over the known shape, or walk Entries.
package matrix

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Entry is a flat representation of a single stored element.
type Entry struct {
	Row, Col int
	Value    float64
}

// SetDense resizes m to src's shape, clears it, and copies every element
// whose magnitude exceeds eps.
// MAIN DESCRIPTION:
//   - Elements inside [-eps, eps] are treated as structural zeros and omitted.
//
// Implementation:
//   - Stage 1: validate src non-nil and eps finite; a negative eps is flipped.
//   - Stage 2: resize and clear (stale entries never leak through).
//   - Stage 3: scan src row-major; store |v| > eps.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrNaNInf (non-finite eps, or a non-finite
//     element under the numeric policy).
//
// Complexity:
//   - Time O(rows*cols) reads of src, Space O(stored entries).
//
// Notes:
//   - eps is compared against the element value, never its position.
func (m *Sparse) SetDense(src mat.Matrix, eps float64) error {
	if src == nil {
		return matrixErrorf(opSetDense, ErrNilMatrix)
	}
	if isNonFinite(eps) {
		return matrixErrorf(opSetDense, ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	rows, cols := src.Dims()
	m.resizeUnchecked(rows, cols)
	m.Clear()

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if v > eps || v < -eps {
				if err := m.checkValue(v); err != nil {
					return matrixErrorf(opSetDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				m.rowAt(i)[j] = v
			}
		}
	}

	return nil
}

// NewSparseFromDense is the allocating variant of SetDense.
func NewSparseFromDense(src mat.Matrix, eps float64, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(0, 0, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetDense(src, eps); err != nil {
		return nil, err
	}

	return m, nil
}

// Entries returns every stored element in row-major (row, then column) order.
// Stored zeros are included.
//
// Time Complexity: O(nnz·log nnz)
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	for i, row := range m.data[:m.r] {
		start := len(out)
		for j, v := range row {
			out = append(out, Entry{Row: i, Col: j, Value: v})
		}
		slices.SortFunc(out[start:], func(a, b Entry) int { return cmp.Compare(a.Col, b.Col) })
	}

	return out
}
