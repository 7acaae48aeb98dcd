package ports

import (
	"context"

	"build-promotion-service/internal/core/domain"
)

// HealthClient probes the managed service's health endpoint once, bounded by
// a fixed timeout. It never returns an error: every failure mode is an
// unreachable snapshot.
type HealthClient interface {
	Probe(ctx context.Context) domain.HealthSnapshot
}
