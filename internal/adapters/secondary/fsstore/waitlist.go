package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

type waitlistFile struct {
	path string
}

// NewWaitlistFile creates an append-only waitlist log, the fallback when no
// database is configured. One line per signup: RFC3339 timestamp, tab, email.
func NewWaitlistFile(path string) ports.WaitlistRepository {
	return &waitlistFile{path: path}
}

func (w *waitlistFile) Add(ctx context.Context, entry *domain.WaitlistEntry) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create waitlist dir: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open waitlist file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\n", entry.CreatedAt.Format(time.RFC3339), entry.Email)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append waitlist entry: %w", err)
	}
	return nil
}
