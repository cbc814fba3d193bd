// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and a read-only Options view to matrix_test ONLY.
//   - Being a _test.go file, it never widens the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot is a stable, read-only view of internal Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	RowCapacity    int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
		RowCapacity:    o.rowCapacity,
	}
}

// NewMatrixOptionsSnapshot_TestOnly snapshots the documented defaults.
func NewMatrixOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly snapshots gatherOptions(opts...).
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// RowStorageLen_TestOnly reports len(m.data): allocated row headers.
func RowStorageLen_TestOnly(m *Sparse) int { return len(m.data) }

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly     = panicEpsilonInvalid
	PanicRowCapacityInvalid_TestOnly = panicRowCapacityInvalid
)

var (
	ExportedValidateBounds = validateBounds
	ExportedValidateShape  = validateShape
)
