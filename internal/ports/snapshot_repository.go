package ports

import (
	"context"

	"usagebar/internal/domain"
)

// SnapshotWriter stores parsed usage records
type SnapshotWriter interface {
	Save(ctx context.Context, snapshot domain.UsageSnapshot) error

	// Prune keeps only the newest keep snapshots
	Prune(ctx context.Context, keep int) error
}

// SnapshotReader reads stored usage records, newest first
type SnapshotReader interface {
	List(ctx context.Context, limit int) ([]domain.UsageSnapshot, error)
}

// SnapshotRepository is the composite interface
type SnapshotRepository interface {
	SnapshotReader
	SnapshotWriter
	Close() error
}
