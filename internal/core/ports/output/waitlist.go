package ports

import (
	"context"

	"build-promotion-service/internal/core/domain"
)

type WaitlistRepository interface {
	Add(ctx context.Context, entry *domain.WaitlistEntry) error
}
