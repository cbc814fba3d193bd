// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse container and the ops
// kernels. This file intentionally contains ONLY types; errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Row is one sparse row: column index → explicitly stored value.
// Absent columns read as 0.0. A stored value may itself be 0.0 when it was
// produced by accumulation (Add, elimination cancellation); Contains reports
// such entries as present.
//
// Rows returned by (*Sparse).Row are live: writes go straight into the owning
// matrix. Callers that mutate a live Row must keep column keys within
// [0, Cols()).
type Row map[int]float64

// Matrix represents a two-dimensional mutable array of float64 values.
// *Sparse implements it so generic helpers (validators, formatting) can work
// against the interface.
//
// Complexity notes: all methods are expected O(1) except Clone (O(nnz)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
