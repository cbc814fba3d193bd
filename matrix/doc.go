// Package matrix offers a sparse real matrix container and its kernels.
//
// The matrix package provides:
//
//   - Sparse: a mutable, resizable rows×cols container storing only explicit
//     entries (row map of column maps). Absent entries read as 0.0.
//   - Row: live access to a single row for in-place transforms.
//   - Mul: the sparse product, costing Σ nnz(row k of b) over stored (i,k) of a.
//   - Transpose, Scale, ScaleRows, Sum, AllClose, Equal: kernels that only
//     ever visit stored entries.
//   - SetDense / NewSparseFromDense: the dense boundary, ingesting any gonum
//     mat.Matrix and dropping entries within ±eps.
//   - Sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ...) matched with
//     errors.Is, and functional options for the numeric policy.
//
// Inversion lives in the ops subpackage.
//
// See the examples in this package and ops for usage patterns.
package matrix
