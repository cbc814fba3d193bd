// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns an empty rows×cols *Sparse. Alias of NewSparse with an
// intention-revealing name: in sparse storage "zeros" costs nothing.
// Complexity: O(rows) for the row header slice.
func NewZeros(rows, cols int, opts ...Option) (*Sparse, error) {
	return NewSparse(rows, cols, opts...)
}

// NewIdentity returns I_n as a *Sparse (n stored ones).
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetIdentity(n); err != nil {
		return nil, err
	}

	return m, nil
}

// ZerosLike returns an empty matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike(m Matrix, opts ...Option) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewSparse(m.Rows(), m.Cols(), opts...)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix, opts ...Option) (*Sparse, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), opts...)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Product is an alias for Mul: a freshly allocated a·b.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Sparse) (*Sparse, error) { return Transpose(m) }
