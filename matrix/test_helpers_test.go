// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for Sparse tests.
//   • Bridge to gonum's mat.Dense, which serves as the dense reference.

package matrix_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsemat/matrix"
)

// seed used by every randomized test in this package.
const seed = 492911

// MustSparse ALLOCATES an r×c *Sparse or fails the test (fatal on error).
func MustSparse(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(r, c, opts...)
	if err != nil {
		t.Fatalf("NewSparse(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustContains REPORTS whether m stores (i,j) or fails the test.
func MustContains(t *testing.T, m *matrix.Sparse, i, j int) bool {
	t.Helper()
	ok, err := m.Contains(i, j)
	if err != nil {
		t.Fatalf("Contains(%d,%d): %v", i, j, err)
	}

	return ok
}

// NewFilledSparse BUILDS an r×c *Sparse from a row-major flat slice; zeros
// stay absent because Set ignores them.
func NewFilledSparse(t *testing.T, r, c int, vals []float64) *matrix.Sparse {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledSparse: len(vals)=%d, want %d", len(vals), r*c)
	}
	m := MustSparse(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, vals[i*c+j])
		}
	}

	return m
}

// RandomPair FILLS up to nnz random entries in [0,1) into both a Sparse and a
// gonum Dense reference of shape r×c, mirroring every write.
func RandomPair(t *testing.T, rng *rand.Rand, r, c, nnz int) (*matrix.Sparse, *mat.Dense) {
	t.Helper()
	sp := MustSparse(t, r, c)
	ref := mat.NewDense(r, c, nil)
	for k := 0; k < nnz; k++ {
		i, j, v := rng.Intn(r), rng.Intn(c), rng.Float64()
		ref.Set(i, j, v)
		MustSet(t, sp, i, j, v)
	}

	return sp, ref
}

// DenseOf COPIES a Sparse into a gonum Dense for reference comparisons.
func DenseOf(t *testing.T, m *matrix.Sparse) *mat.Dense {
	t.Helper()
	d := mat.NewDense(max(m.Rows(), 1), max(m.Cols(), 1), nil)
	for _, e := range m.Entries() {
		d.Set(e.Row, e.Col, e.Value)
	}

	return d
}

// newRand returns a generator seeded with the package seed.
func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }
