// SPDX-License-Identifier: MIT
// Package ops_test contains fixtures shared by the inverter tests.
package ops_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsemat/matrix"
)

// seed used by every randomized test in this package.
const seed = 492911

// MustSparse ALLOCATES an r×c *Sparse or fails the test.
func MustSparse(t *testing.T, r, c int) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(r, c)
	if err != nil {
		t.Fatalf("NewSparse(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Sparse, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m *matrix.Sparse, i, j int, v float64) {
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

// NewFilledSparse BUILDS an r×c *Sparse from a row-major flat slice.
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

// RandomPermutationPair STORES one entry per row at a shuffled column (so the
// matrix is full rank), then nnzExtra further random entries, mirroring
// every write into a gonum Dense reference. Permutation values are drawn
// from [lo, lo+1).
func RandomPermutationPair(t *testing.T, rng *rand.Rand, n, nnzExtra int, lo float64) (*matrix.Sparse, *mat.Dense) {
	t.Helper()
	sp := MustSparse(t, n, n)
	ref := mat.NewDense(n, n, nil)
	for i, j := range rng.Perm(n) {
		v := lo + rng.Float64()
		ref.Set(i, j, v)
		MustSet(t, sp, i, j, v)
	}
	for k := 0; k < nnzExtra; k++ {
		i, j, v := rng.Intn(n), rng.Intn(n), rng.Float64()
		ref.Set(i, j, v)
		MustSet(t, sp, i, j, v)
	}

	return sp, ref
}

// DiagonallyDominant BUILDS an n×n matrix with nnz random off-diagonal
// entries in [0,1) and n+1 on the diagonal.
func DiagonallyDominant(t *testing.T, rng *rand.Rand, n, nnz int) (*matrix.Sparse, *mat.Dense) {
	t.Helper()
	sp := MustSparse(t, n, n)
	ref := mat.NewDense(n, n, nil)
	for k := 0; k < nnz; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		v := rng.Float64()
		ref.Set(i, j, v)
		MustSet(t, sp, i, j, v)
	}
	for i := 0; i < n; i++ {
		d := float64(n+1) + rng.Float64()
		ref.Set(i, i, d)
		MustSet(t, sp, i, i, d)
	}

	return sp, ref
}

// RequireIdentity FAILS unless m has ~1 on the diagonal (within tol) and
// no stored off-diagonal entry.
func RequireIdentity(t *testing.T, m *matrix.Sparse, tol float64) {
	t.Helper()
	for _, e := range m.Entries() {
		if e.Row != e.Col {
			t.Fatalf("off-diagonal entry stored at (%d,%d)=%g", e.Row, e.Col, e.Value)
		}
	}
	for i := 0; i < m.Rows(); i++ {
		if d := MustAt(t, m, i, i) - 1; d > tol || d < -tol {
			t.Fatalf("diagonal (%d,%d) off by %g", i, i, d)
		}
	}
}

// MaxResidual RETURNS max |(a·b - I)(i,j)| over all cells.
func MaxResidual(t *testing.T, a, b *matrix.Sparse) float64 {
	t.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	worst := 0.0
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			d := MustAt(t, p, i, j) - want
			if d < 0 {
				d = -d
			}
			worst = max(worst, d)
		}
	}

	return worst
}
