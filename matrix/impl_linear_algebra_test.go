// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the sparse product and Equal.
package matrix_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsemat/matrix"
)

// TestMulDimensionMismatch verifies the inner-dimension guard.
func TestMulDimensionMismatch(t *testing.T) {
	a := MustSparse(t, 2, 3)
	b := MustSparse(t, 4, 2)
	c := MustSparse(t, 0, 0)

	require.ErrorIs(t, c.Mul(a, b), matrix.ErrDimensionMismatch)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, c.Mul(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, c.Mul(a, nil), matrix.ErrNilMatrix)
}

// TestMulSmall checks a hand-computed product and the stored structure.
func TestMulSmall(t *testing.T) {
	a := NewFilledSparse(t, 2, 3, []float64{
		1, 0, 2,
		0, 3, 0,
	})
	b := NewFilledSparse(t, 3, 2, []float64{
		0, 4,
		5, 0,
		0, 6,
	})
	c := MustSparse(t, 7, 7)
	MustSet(t, c, 6, 6, 1.0) // stale content must be cleared

	require.NoError(t, c.Mul(a, b))
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())

	require.Equal(t, 16.0, MustAt(t, c, 0, 1)) // 1*4 + 2*6
	require.Equal(t, 15.0, MustAt(t, c, 1, 0)) // 3*5
	require.False(t, MustContains(t, c, 0, 0))
	require.False(t, MustContains(t, c, 1, 1))
	require.Equal(t, 2, c.NNZ())
}

// TestMulAliasedReceiver ensures c.Mul(c, b) and c.Mul(a, c) see intact operands.
func TestMulAliasedReceiver(t *testing.T) {
	a := NewFilledSparse(t, 2, 2, []float64{1, 2, 3, 4})
	want, err := matrix.Mul(a, a)
	require.NoError(t, err)

	left := a.Clone().(*matrix.Sparse)
	require.NoError(t, left.Mul(left, a))
	eq, err := matrix.Equal(want, left, 0)
	require.NoError(t, err)
	require.True(t, eq, "left alias:\n%v", left)

	right := a.Clone().(*matrix.Sparse)
	require.NoError(t, right.Mul(a, right))
	eq, err = matrix.Equal(want, right, 0)
	require.NoError(t, err)
	require.True(t, eq, "right alias:\n%v", right)
}

// TestMulAgainstDenseReference compares random sparse products with gonum.
func TestMulAgainstDenseReference(t *testing.T) {
	rng := rand.New(rand.NewSource(seed))
	const (
		maxSize    = 100
		maxEntries = 100
		iterations = 100
	)
	result := MustSparse(t, 0, 0) // reused across iterations
	for it := 0; it < iterations; it++ {
		n, m, p := rng.Intn(maxSize)+1, rng.Intn(maxSize)+1, rng.Intn(maxSize)+1
		t.Run(fmt.Sprintf("%03d_%dx%dx%d", it, n, m, p), func(t *testing.T) {
			a, refA := RandomPair(t, rng, n, m, maxEntries)
			b, refB := RandomPair(t, rng, m, p, maxEntries)

			var ref mat.Dense
			ref.Mul(refA, refB)

			require.NoError(t, result.Mul(a, b))
			require.Equal(t, n, result.Rows())
			require.Equal(t, p, result.Cols())
			for i := 0; i < n; i++ {
				for j := 0; j < p; j++ {
					want := ref.At(i, j)
					require.InDelta(t, want, MustAt(t, result, i, j), 1e-10*math.Max(1, math.Abs(want)))
				}
			}
		})
	}
}

// TestMulIsSparse verifies that the product only stores reachable entries.
func TestMulIsSparse(t *testing.T) {
	const n = 500
	a := MustSparse(t, n, n)
	b := MustSparse(t, n, n)
	for i := 0; i < n; i++ {
		MustSet(t, a, i, (i+1)%n, 2.0)
		MustSet(t, b, i, i, 0.5)
	}
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, n, c.NNZ())
	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, MustAt(t, c, i, (i+1)%n))
	}
}

// TestEqual covers shape, tolerance and absent-vs-zero handling.
func TestEqual(t *testing.T) {
	a := NewFilledSparse(t, 2, 2, []float64{1, 0, 0, 2})
	b := NewFilledSparse(t, 2, 2, []float64{1 + 1e-12, 0, 0, 2})

	eq, err := matrix.Equal(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = matrix.Equal(a, b, 0)
	require.NoError(t, err)
	require.False(t, eq)

	require.NoError(t, b.Add(0, 1, 1e-3)) // extra entry only in b
	eq, err = matrix.Equal(a, b, 1e-9)
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = matrix.Equal(a, MustSparse(t, 2, 3), 1)
	require.NoError(t, err)
	require.False(t, eq)

	_, err = matrix.Equal(a, nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Equal(a, b, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
