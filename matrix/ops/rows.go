package ops

import (
	"math"

	"github.com/katalvlaran/sparsemat/matrix"
)

// closeToZero reports |v| < eps (strict on both sides).
func closeToZero(v, eps float64) bool {
	return v < eps && v > -eps
}

// lowestPivotColumn returns the smallest column index in row whose value is
// not within ±eps of zero. ok is false when every stored value is ~0.
// Complexity: O(nnz(row)).
func lowestPivotColumn(row matrix.Row, eps float64) (col int, ok bool) {
	col = math.MaxInt
	for j, v := range row {
		if j < col && !closeToZero(v, eps) {
			col = j
		}
	}

	return col, col != math.MaxInt
}

// scaleRow multiplies every stored entry of row by s in place.
func scaleRow(row matrix.Row, s float64) {
	for j := range row {
		row[j] *= s
	}
}

// eliminateInto performs dst -= factor·src over src's stored entries,
// skipping column skip (already removed from dst by the caller). Absent dst
// entries are created. Pass noSkip to touch every column.
//
// Each dst column is written at most once per call, so the result does not
// depend on map iteration order.
func eliminateInto(dst, src matrix.Row, factor float64, skip int) {
	for j, v := range src {
		if j == skip {
			continue
		}
		dst[j] -= factor * v
	}
}
