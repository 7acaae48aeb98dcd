package ports

import (
	"context"

	"build-promotion-service/internal/core/domain"
)

// BuildStore enumerates the immutable build artifacts on disk.
// List returns builds newest first (lexicographically descending version);
// an empty or missing builds directory yields an empty slice, not an error.
// The store knows nothing about the active pointer: Active flags are derived
// by the service layer.
type BuildStore interface {
	List(ctx context.Context) ([]*domain.Build, error)
	Exists(ctx context.Context, version string) (bool, error)
	Remove(ctx context.Context, version string) error
}

// ActivePointer is the single durable designation of the promoted version.
// Get returns "" (and no error) when no promotion has ever happened.
// Set must be immediately visible to subsequent Gets. The promotion workflow
// is the sole writer.
type ActivePointer interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, version string) error
}

// BinaryInstaller stages a build artifact into the live execution path with
// the executable bit set.
type BinaryInstaller interface {
	Install(ctx context.Context, version string) error
}
