// SPDX-License-Identifier: MIT
// Package matrix provides the sparse matrix product and related kernels.
// All kernels perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Implement c = a·b touching only stored entries.
//   - Define operation tags and shared constants for error reporting.

package matrix

import (
	"fmt"
	"maps"
	"slices"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opSetDense  = "SetDense"
	opEqual     = "Equal"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul overwrites m with the product a·b.
// MAIN DESCRIPTION:
//   - Sparse product: for every stored (i,k)=v of a and every stored (k,j)=w
//     of b's row k, accumulate m[i][j] += v*w.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: if m aliases an operand, compute into a scratch and copy back.
//   - Stage 3: resize to (a.Rows(), b.Cols()), clear, accumulate.
//
// Behavior highlights:
//   - Columns of each row of a are visited in ascending order, so the
//     floating-point accumulation order is deterministic.
//   - Products that are exactly 0.0 are not stored (same rule as Add).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(Σ_{(i,k)∈nnz(a)} nnz(b_k) + nnz(a)·log), never rows×cols×inner.
//   - Space O(nnz(result)).
func (m *Sparse) Mul(a, b *Sparse) error {
	if m == nil {
		return matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	// Aliased receiver: the operands must stay intact while we accumulate.
	if m == a || m == b {
		tmp := &Sparse{validateNaNInf: m.validateNaNInf, rowCap: m.rowCap}
		mulInto(tmp, a, b)
		return m.CopyFrom(tmp)
	}
	mulInto(m, a, b)

	return nil
}

// mulInto computes c = a·b for validated, non-aliased operands.
func mulInto(c, a, b *Sparse) {
	c.resizeUnchecked(a.r, b.c)
	c.Clear()

	var (
		k    int
		v, w float64
	)
	for i, rowA := range a.data[:a.r] {
		if len(rowA) == 0 {
			continue
		}
		var rowC Row // created lazily on the first non-zero product
		for _, k = range slices.Sorted(maps.Keys(rowA)) {
			v = rowA[k]
			rowB := b.data[k]
			if len(rowB) == 0 {
				continue
			}
			for j := range rowB {
				w = rowB[j]
				if p := v * w; p != 0.0 {
					if rowC == nil {
						rowC = c.rowAt(i)
					}
					rowC[j] += p
				}
			}
		}
	}
}

// Mul returns a freshly allocated product a·b.
// The result inherits a's numeric policy.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c := &Sparse{validateNaNInf: a.validateNaNInf, rowCap: a.rowCap}
	mulInto(c, a, b)

	return c, nil
}

// Equal reports whether a and b share a shape and every pair of entries
// differs by at most eps. Absent entries compare as 0.0, so structural and
// numeric zeros are indistinguishable here; use Contains for structure.
//
// Errors: ErrNilMatrix, ErrNaNInf for a non-finite eps.
// Complexity: O(nnz(a) + nnz(b)).
func Equal(a, b *Sparse, eps float64) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opEqual, ErrNilMatrix)
	}
	if isNonFinite(eps) {
		return false, matrixErrorf(opEqual, ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for i := 0; i < a.r; i++ {
		rowA, rowB := a.data[i], b.data[i]
		for j, v := range rowA {
			if d := v - rowB[j]; d > eps || d < -eps {
				return false, nil
			}
		}
		for j, w := range rowB {
			if _, seen := rowA[j]; seen {
				continue
			}
			if w > eps || w < -eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Stored zeros stay stored; the original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: O(nnz) time, O(nnz) space.
func Transpose(m *Sparse) (*Sparse, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	t := &Sparse{
		r:              m.c,
		c:              m.r,
		data:           make([]Row, m.c),
		validateNaNInf: m.validateNaNInf,
		rowCap:         m.rowCap,
	}
	for i, row := range m.data[:m.r] {
		for j, v := range row {
			t.rowAt(j)[i] = v
		}
	}

	return t, nil
}
