// Package snapshot provides persistence for campaign snapshots.
package snapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/tavernkeep/dungeonmaster/internal/repositories/snapshot Repository

import (
	"context"
)

// Repository defines the interface for snapshot persistence. A slot
// identifies where a snapshot lives; what it means is up to the
// implementation (a filesystem path, a redis key).
//
// Repositories are pure transforms: they retain no snapshot state
// between calls. Concurrent access to the same slot from multiple
// processes is the caller's responsibility, not guarded here.
type Repository interface {
	// Save writes a snapshot to a slot, overwriting any previous save
	// Returns errors.InvalidArgument for empty slots or nil snapshots
	// Returns errors.CodeIO when the slot cannot be written
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads a snapshot back from a slot
	// Returns errors.InvalidArgument for empty slots
	// Returns errors.CodeIO when the slot cannot be read
	// Returns errors.CodeSnapshotFormat for malformed or incomplete documents
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}
