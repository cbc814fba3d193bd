// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over stored entries only: Scale, ScaleRows, Sum
//     and AllClose.
//   - Each kernel walks row maps directly; absent entries are never visited.
//
// Determinism & Performance:
//   - Rows are walked in index order; within a row only + and * of a single
//     pair are performed, so map iteration order cannot change any value.
//   - Results are freshly allocated *Sparse with the receiver's policy.
//     O(nnz) time and space.

package matrix

import "math"

const (
	opScale     = "Scale"
	opScaleRows = "ScaleRows"
	opSum       = "Sum"
	opAllClose  = "AllClose"
)

// emptyLike allocates an empty matrix of m's shape inheriting m's policy.
func emptyLike(m *Sparse) *Sparse {
	return &Sparse{
		r:              m.r,
		c:              m.c,
		data:           make([]Row, m.r),
		validateNaNInf: m.validateNaNInf,
		rowCap:         m.rowCap,
	}
}

// Scale returns alpha·m. A zero alpha yields an empty matrix of m's shape.
//
// Errors: ErrNilMatrix; ErrNaNInf for a non-finite alpha under validation.
// Complexity: O(nnz).
func Scale(m *Sparse, alpha float64) (*Sparse, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	if err := m.checkValue(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := emptyLike(m)
	if alpha == 0.0 {
		return out, nil
	}
	for i, row := range m.data[:m.r] {
		if len(row) == 0 {
			continue
		}
		dst := out.rowAt(i)
		for j, v := range row {
			dst[j] = v * alpha
		}
	}

	return out, nil
}

// ScaleRows computes out[i,j] = m[i,j] * scale[i].
// Rows with a zero factor end up empty.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows),
// ErrNaNInf for a non-finite factor under validation.
// Complexity: O(nnz + rows).
func ScaleRows(m *Sparse, scale []float64) (*Sparse, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleRows, ErrNilMatrix)
	}
	if len(scale) != m.r {
		return nil, matrixErrorf(opScaleRows, ErrDimensionMismatch)
	}
	out := emptyLike(m)
	for i, row := range m.data[:m.r] {
		sf := scale[i] // row scale once per row
		if err := m.checkValue(sf); err != nil {
			return nil, matrixErrorf(opScaleRows, err)
		}
		if len(row) == 0 || sf == 0.0 {
			continue
		}
		dst := out.rowAt(i)
		for j, v := range row {
			dst[j] = v * sf
		}
	}

	return out, nil
}

// Sum returns a + b. Keys present in either operand are stored in the
// result, even when the sum cancels to 0.0.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)).
func Sum(a, b *Sparse) (*Sparse, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	out := a.clone()
	for i, row := range b.data[:b.r] {
		if len(row) == 0 {
			continue
		}
		dst := out.rowAt(i)
		for j, v := range row {
			dst[j] += v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Absent entries take part as 0.0.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Complexity: O(nnz(a) + nnz(b)), Space O(1).
func AllClose(a, b *Sparse, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}
	for i := 0; i < a.r; i++ {
		rowA, rowB := a.data[i], b.data[i]
		for j, av := range rowA {
			if !within(av, rowB[j]) {
				return false, nil
			}
		}
		for j, bv := range rowB {
			if _, seen := rowA[j]; seen {
				continue
			}
			if !within(0, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
