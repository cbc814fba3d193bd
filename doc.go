// Package sparsemat is a small, allocation-conscious toolkit for sparse
// real matrices and their floating-point inversion.
//
// What is inside?
//
//	matrix/     Sparse container (row map of column maps), Row, errors,
//	            functional options, validators, product, transpose,
//	            element-wise kernels, formatting and the gonum dense
//	            boundary (SetDense)
//	matrix/ops/ Inverter: pivoted Gauss–Jordan elimination carried out on
//	            two parallel sparse structures plus a permutation matrix
//	examples/   runnable block-diagonal inversion demo
//
// Why sparse?
//
//   - Absent entries are implicit zeros; nothing is ever densified.
//   - Multiplication costs Σ nnz(row k of B) over stored (i,k) of A,
//     not rows×cols×inner.
//   - Inversion signals singularity with a boolean, never with an error.
//
// Quick ASCII example:
//
//	/ 2.00,   *  \        / 0.50,   *  \
//	\  *  ,  4.00/  ──▶   \  *  ,  0.25/
//
// An Inverter owns reusable scratch buffers and must not be shared between
// goroutines.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
