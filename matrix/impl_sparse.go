// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row map of column maps) & safe accessors.
//
// Purpose:
//   - Hold only explicitly stored entries; every absent entry reads as 0.0.
//   - Guarantee safety at the public surface: indexed methods return errors
//     instead of panicking.
//   - Keep row storage alive across Resize/Clear so scratch matrices reused
//     by inverters amortize their allocations.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set/Add/Contains: O(1) expected; Row: O(1);
//     SetRow: O(nnz(row)); CopyFrom/Clone: O(nnz); Clear: O(rows touched);
//     SetIdentity: O(n).

package matrix

import (
	"fmt"
	"maps"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAdd      = "Add"      // method tag used in error wrappers
	ctxContains = "Contains" // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSetRow   = "SetRow"   // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// sparseRowErrorf is sparseErrorf for row-only methods.
func sparseRowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Sparse.%s(%d): %w", method, row, err)
}

// Sparse is a mutable, resizable sparse matrix.
//   - r,c hold the logical shape; they bound every indexed access.
//   - data[i] is row i's column map; nil until the row is first written.
//     len(data) never shrinks, so capacity survives Resize and Clear.
//   - validateNaNInf enables NaN/Inf rejection in Set/Add/SetRow.
//   - rowCap is the capacity hint for lazily created rows.
//
// Each Sparse exclusively owns its rows. Copying operations (SetRow,
// CopyFrom, Clone) copy values and never alias another matrix's storage.
//
// A Sparse is not safe for concurrent mutation.
type Sparse struct {
	r, c           int   // logical shape (>= 0)
	data           []Row // row storage, len(data) >= r
	validateNaNInf bool  // numeric guard: reject NaN/Inf when true
	rowCap         int   // map capacity hint for new rows
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and the resolved numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options; allocate the row slice (rows themselves stay nil).
//
// Behavior highlights:
//   - NewSparse(0, 0) is the default, empty matrix; grow it with Resize.
//   - No entry is stored until Set/Add/SetRow writes one.
//
// Inputs:
//   - rows, cols: non-negative logical shape.
//   - opts: WithNoValidateNaNInf, WithRowCapacity, ...
//
// Returns:
//   - *Sparse or ErrInvalidDimensions.
//
// Complexity:
//   - Time O(rows), Space O(rows) for the row header slice.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, err)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		data:           make([]Row, rows),
		validateNaNInf: o.validateNaNInf,
		rowCap:         o.rowCapacity,
	}, nil
}

// Rows returns the logical row count. Complexity: O(1).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the logical column count. Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// rowAt returns row i, creating its map on first use.
// Caller guarantees 0 ≤ i < len(m.data).
func (m *Sparse) rowAt(i int) Row {
	row := m.data[i]
	if row == nil {
		row = make(Row, m.rowCap)
		m.data[i] = row
	}

	return row
}

// checkValue enforces the numeric policy for a single incoming value.
func (m *Sparse) checkValue(v float64) error {
	if m.validateNaNInf && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}

// Set stores v at (i, j), overwriting any prior entry.
// MAIN DESCRIPTION:
//   - Safe element write; an exact 0.0 is a no-op.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: short-circuit v == 0.0 (no removal, no creation).
//   - Stage 3: enforce numeric policy, then write.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1) expected, Space O(1) amortized.
//
// Notes:
//   - Setting zero never deletes: a previously stored value survives Set(i,j,0).
func (m *Sparse) Set(i, j int, v float64) error {
	if err := validateBounds(m.r, m.c, i, j); err != nil {
		return sparseErrorf(ctxSet, i, j, err)
	}
	if v == 0.0 {
		return nil
	}
	if err := m.checkValue(v); err != nil {
		return sparseErrorf(ctxSet, i, j, err)
	}
	m.rowAt(i)[j] = v

	return nil
}

// Add accumulates v into (i, j), creating the entry when absent.
// An exact 0.0 delta is a no-op. Accumulation may cancel an entry down to a
// stored 0.0; the key is kept and Contains keeps reporting it.
//
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(1) expected.
func (m *Sparse) Add(i, j int, v float64) error {
	if err := validateBounds(m.r, m.c, i, j); err != nil {
		return sparseErrorf(ctxAdd, i, j, err)
	}
	if v == 0.0 {
		return nil
	}
	if err := m.checkValue(v); err != nil {
		return sparseErrorf(ctxAdd, i, j, err)
	}
	m.rowAt(i)[j] += v

	return nil
}

// At returns the stored value at (i, j), or 0.0 when nothing is stored.
//
// Errors: ErrOutOfRange.
// Complexity: O(1) expected; no allocations.
func (m *Sparse) At(i, j int) (float64, error) {
	if err := validateBounds(m.r, m.c, i, j); err != nil {
		return 0, sparseErrorf(ctxAt, i, j, err)
	}

	return m.data[i][j], nil // indexing a nil Row yields 0
}

// Contains reports whether (i, j) is explicitly stored. A stored entry may be
// numerically zero after cancellation.
//
// Errors: ErrOutOfRange.
func (m *Sparse) Contains(i, j int) (bool, error) {
	if err := validateBounds(m.r, m.c, i, j); err != nil {
		return false, sparseErrorf(ctxContains, i, j, err)
	}
	_, ok := m.data[i][j]

	return ok, nil
}

// Row returns the live map of row i (possibly empty).
// MAIN DESCRIPTION:
//   - Direct access for in-place row transforms (scaling, elimination).
//
// Behavior highlights:
//   - The returned Row is owned by m: writes are visible through At/Contains.
//   - The row map is created on demand, so the result is never nil.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1) amortized.
func (m *Sparse) Row(i int) (Row, error) {
	if i < 0 || i >= m.r {
		return nil, sparseRowErrorf(ctxRow, i, ErrOutOfRange)
	}

	return m.rowAt(i), nil
}

// SetRow replaces row i with a copy of src.
// Implementation:
//   - Stage 1: bounds check i; validate every column key and value in src.
//   - Stage 2: snapshot src (it may be this very row), clear, copy back.
//
// Behavior highlights:
//   - Never aliases src; later writes to src do not affect m.
//   - Stored zeros in src are copied as stored zeros.
//   - A nil or empty src clears the row.
//
// Errors:
//   - ErrOutOfRange (row index or any column key), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz(src)), Space O(nnz(src)).
func (m *Sparse) SetRow(i int, src Row) error {
	if i < 0 || i >= m.r {
		return sparseRowErrorf(ctxSetRow, i, ErrOutOfRange)
	}
	for j, v := range src {
		if j < 0 || j >= m.c {
			return sparseErrorf(ctxSetRow, i, j, ErrOutOfRange)
		}
		if err := m.checkValue(v); err != nil {
			return sparseErrorf(ctxSetRow, i, j, err)
		}
	}
	snapshot := maps.Clone(src)
	dst := m.rowAt(i)
	clear(dst)
	maps.Copy(dst, snapshot)

	return nil
}

// CopyFrom makes m a deep copy of other's shape and entries.
// The receiver keeps its own numeric policy and row capacity hint.
//
// Errors: ErrNilMatrix.
// Complexity: O(nnz(other)).
func (m *Sparse) CopyFrom(other *Sparse) error {
	if other == nil {
		return fmt.Errorf("CopyFrom: %w", ErrNilMatrix)
	}
	if other == m {
		return nil
	}
	m.resizeUnchecked(other.r, other.c)
	m.Clear()
	for i, row := range other.data[:other.r] {
		if len(row) == 0 {
			continue
		}
		maps.Copy(m.rowAt(i), row)
	}

	return nil
}

// SetIdentity resizes m to n×n, clears every row and stores 1.0 on the diagonal.
//
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n + rows previously touched).
func (m *Sparse) SetIdentity(n int) error {
	if err := validateShape(n, n); err != nil {
		return fmt.Errorf("SetIdentity(%d): %w", n, err)
	}
	m.resizeUnchecked(n, n)
	m.Clear()
	for i := 0; i < n; i++ {
		m.rowAt(i)[i] = 1.0
	}

	return nil
}

// Resize changes the logical shape.
// MAIN DESCRIPTION:
//   - Storage is never released: row maps stay allocated for reuse.
//
// Behavior highlights:
//   - Entries that fall outside the new shape are dropped, so shrinking and
//     growing again never resurrects stale values.
//   - Entries inside the new shape are untouched.
//
// Errors:
//   - ErrInvalidDimensions for negative rows/cols.
//
// Complexity:
//   - Time O(rows dropped + nnz of kept rows when cols shrink).
func (m *Sparse) Resize(rows, cols int) error {
	if err := validateShape(rows, cols); err != nil {
		return fmt.Errorf("Resize(%d,%d): %w", rows, cols, err)
	}
	m.resizeUnchecked(rows, cols)

	return nil
}

// resizeUnchecked implements Resize for already validated shapes.
func (m *Sparse) resizeUnchecked(rows, cols int) {
	// Rows beyond the new bound are emptied but their maps are retained.
	for i := rows; i < m.r; i++ {
		clear(m.data[i])
	}
	// Columns beyond the new bound are pruned from the surviving rows.
	if cols < m.c {
		keep := min(rows, m.r)
		for _, row := range m.data[:keep] {
			for j := range row {
				if j >= cols {
					delete(row, j)
				}
			}
		}
	}
	if rows > len(m.data) {
		m.data = append(m.data, make([]Row, rows-len(m.data))...)
	}
	m.r, m.c = rows, cols
}

// Clear removes every stored entry; the shape is unchanged and row maps are
// kept for reuse.
// Complexity: O(len(data)).
func (m *Sparse) Clear() {
	for _, row := range m.data {
		clear(row) // clear(nil) is a no-op
	}
}

// NNZ returns the number of explicitly stored entries (stored zeros included).
// Complexity: O(rows).
func (m *Sparse) NNZ() int {
	n := 0
	for _, row := range m.data[:m.r] {
		n += len(row)
	}

	return n
}

// Clone returns a deep copy with the same shape, entries and numeric policy.
// Complexity: O(nnz).
func (m *Sparse) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside the package.
func (m *Sparse) clone() *Sparse {
	cp := &Sparse{
		r:              m.r,
		c:              m.c,
		data:           make([]Row, m.r),
		validateNaNInf: m.validateNaNInf,
		rowCap:         m.rowCap,
	}
	for i, row := range m.data[:m.r] {
		if len(row) == 0 {
			continue
		}
		cp.data[i] = maps.Clone(row)
	}

	return cp
}
