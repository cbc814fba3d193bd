// Package ops provides advanced operations for the sparsemat/matrix package.
// Inverter computes the inverse of a square sparse matrix by pivoted
// Gauss–Jordan elimination, carried out entirely on sparse rows.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsemat/matrix"
)

const (
	opInvert  = "Invert"
	opInverse = "Inverse"

	// noSkip disables the skip column in eliminateInto.
	noSkip = -1

	// unit is the value stored in permutation and identity entries.
	unit = 1.0
)

// Inverter owns the scratch state reused across Invert calls.
//   - work:     working copy of the input, reduced in place by the forward pass
//   - permuted: P·work, reduced in place by the backward pass
//   - perm:     permutation matrix, perm[p][i] = 1 for pivot column p of row i
//   - acc:      inverse accumulator, starts as the identity
//
// Scratch matrices are cleared, never released, so repeated inversions of
// same-sized inputs stop allocating row maps after the first call.
//
// An Inverter is not safe for concurrent use; give each goroutine its own.
type Inverter struct {
	eps float64

	work     *matrix.Sparse
	permuted *matrix.Sparse
	perm     *matrix.Sparse
	acc      *matrix.Sparse
}

// NewInverter allocates an Inverter and its scratch matrices.
// Recognised options: matrix.WithEpsilon (absolute near-zero tolerance,
// default matrix.DefaultEpsilon) and matrix.WithRowCapacity for scratch rows.
//
// Complexity: O(1).
func NewInverter(opts ...matrix.Option) *Inverter {
	o := matrix.NewMatrixOptions(opts...)
	// Scratch matrices only ever receive values derived from validated input.
	scratch := []matrix.Option{matrix.WithNoValidateNaNInf(), matrix.WithRowCapacity(o.RowCapacity())}

	return &Inverter{
		eps:      o.Epsilon(),
		work:     mustScratch(scratch),
		permuted: mustScratch(scratch),
		perm:     mustScratch(scratch),
		acc:      mustScratch(scratch),
	}
}

// mustScratch builds an empty 0×0 scratch matrix; that shape is always valid.
func mustScratch(opts []matrix.Option) *matrix.Sparse {
	m, err := matrix.NewSparse(0, 0, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Epsilon returns the absolute tolerance this Inverter uses.
func (inv *Inverter) Epsilon() float64 { return inv.eps }

// Invert computes the inverse of m into out.
// MAIN DESCRIPTION:
//   - Returns (true, nil) and fills out with m⁻¹ when m is invertible.
//   - Returns (false, nil) when m is singular or numerically degenerate under
//     the absolute tolerance; out is left untouched in that case.
//   - Returns an error only for malformed input.
//
// Implementation:
//   - Stage 1 (Validate): non-nil, square.
//   - Stage 2 (Prepare): acc := I(n); work := copy(m); perm := 0(n×n).
//   - Stage 3 (Forward): for each row i pick the lowest column p whose value
//     is outside ±eps, record perm[p][i] = 1, scale row i by 1/pivot and
//     eliminate column p from every row below (acc rows follow along).
//   - Stage 4 (Permute): permuted := P·work; out := P·acc.
//   - Stage 5 (Backward): for row i and every column j > i still stored,
//     subtract that multiple of row j (out rows follow along).
//
// Behavior highlights:
//   - The pivot rule is structural (lowest column index), not largest
//     magnitude; it decides the recorded permutation.
//   - Near-zero eliminations are skipped, but the entry is still removed, so
//     the inverse of a structurally sparse matrix stays sparse.
//   - Badly scaled matrices can be misclassified because eps is absolute.
//
// Inputs:
//   - m: square matrix (not modified; may be the same object as out).
//   - out: destination, resized to n×n.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n² + Σ over eliminations of nnz(pivot row)), Space O(nnz(fill)).
func (inv *Inverter) Invert(m, out *matrix.Sparse) (bool, error) {
	// Stage 1: validate input
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}
	if out == nil {
		return false, fmt.Errorf("%s: out: %w", opInvert, matrix.ErrNilMatrix)
	}
	n := m.Rows()

	// Stage 2: reset scratch state
	if err := inv.acc.SetIdentity(n); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}
	if err := inv.work.CopyFrom(m); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}
	if err := inv.perm.Resize(n, n); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}
	inv.perm.Clear()

	// Stage 3: forward elimination (upper-triangular up to permutation)
	if !inv.forward(n) {
		return false, nil
	}

	// Stage 4: apply the permutation to both structures
	if err := inv.permuted.Mul(inv.perm, inv.work); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}
	if err := out.Mul(inv.perm, inv.acc); err != nil {
		return false, fmt.Errorf("%s: %w", opInvert, err)
	}

	// Stage 5: backward elimination towards the identity
	inv.backward(n, out)

	return true, nil
}

// forward runs the pivoted forward pass; false means singular.
func (inv *Inverter) forward(n int) bool {
	var (
		i, j, p        int
		pivot, v       float64
		ok             bool
		pivotRow, lRow matrix.Row
		pivotAcc, lAcc matrix.Row
	)
	for i = 0; i < n; i++ {
		pivotRow, _ = inv.work.Row(i) // i < n: in range
		if len(pivotRow) == 0 {
			return false // a zero row cannot supply a pivot
		}

		p, ok = lowestPivotColumn(pivotRow, inv.eps)
		if !ok {
			return false
		}
		_ = inv.perm.Set(p, i, unit) // p, i < n

		pivot = pivotRow[p]
		if math.Abs(pivot) < inv.eps {
			return false
		}

		pivotAcc, _ = inv.acc.Row(i)
		scaleRow(pivotRow, 1.0/pivot)
		scaleRow(pivotAcc, 1.0/pivot)

		for j = i + 1; j < n; j++ {
			lRow, _ = inv.work.Row(j)
			if v, ok = lRow[p]; !ok {
				continue
			}
			delete(lRow, p)
			if closeToZero(v, inv.eps) {
				continue
			}

			eliminateInto(lRow, pivotRow, v, p)
			lAcc, _ = inv.acc.Row(j)
			eliminateInto(lAcc, pivotAcc, v, noSkip)
		}
	}

	return true
}

// backward clears everything right of the diagonal of the permuted matrix,
// mirroring each row operation on out.
func (inv *Inverter) backward(n int, out *matrix.Sparse) {
	var (
		i, j           int
		v              float64
		ok             bool
		row, rowOut    matrix.Row
		pivRow, pivOut matrix.Row
	)
	for i = 0; i < n; i++ {
		row, _ = inv.permuted.Row(i)
		rowOut, _ = out.Row(i)
		// Ascending j: subtracting row j only adds entries at columns > j,
		// which later iterations of this loop pick up.
		for j = i + 1; j < n; j++ {
			if v, ok = row[j]; !ok {
				continue
			}
			delete(row, j)
			if closeToZero(v, inv.eps) {
				continue
			}

			pivRow, _ = inv.permuted.Row(j)
			eliminateInto(row, pivRow, v, j)
			pivOut, _ = out.Row(j)
			eliminateInto(rowOut, pivOut, v, noSkip)
		}
	}
}

// Inverse is the allocating facade over a fresh Inverter.
// Returns (inverse, true, nil) on success and (nil, false, nil) for a
// singular input.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Inverse(m *matrix.Sparse, opts ...matrix.Option) (*matrix.Sparse, bool, error) {
	out, err := matrix.NewSparse(0, 0, opts...)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", opInverse, err)
	}
	ok, err := NewInverter(opts...).Invert(m, out)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", opInverse, err)
	}
	if !ok {
		return nil, false, nil
	}

	return out, true, nil
}
