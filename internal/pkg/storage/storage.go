package storage

import (
	"context"
)

// ArtifactStore persists the artifacts of a payroll run: payslips,
// registers and the raw run result. Runs never revisit earlier
// artifacts, so writing is the whole contract.
type ArtifactStore interface {
	// Write stores data under a path relative to the store root and
	// returns the cleaned relative path
	Write(ctx context.Context, path string, data []byte) (string, error)
}
