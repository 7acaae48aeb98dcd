package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

type waitlistRepo struct {
	pool *pgxpool.Pool
}

// NewWaitlistRepository creates a postgres-backed waitlist repository
func NewWaitlistRepository(pool *pgxpool.Pool) ports.WaitlistRepository {
	return &waitlistRepo{pool: pool}
}

func (r *waitlistRepo) Add(ctx context.Context, entry *domain.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist_signup (id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.Email,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist_signup: %w", err)
	}
	return nil
}
