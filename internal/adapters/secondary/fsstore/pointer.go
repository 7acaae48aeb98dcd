package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ports "build-promotion-service/internal/core/ports/output"
)

type activePointer struct {
	path string
}

// NewActivePointer persists the active version in a single file. A missing
// file means no promotion has ever happened and reads as "".
func NewActivePointer(path string) ports.ActivePointer {
	return &activePointer{path: path}
}

func (p *activePointer) Get(ctx context.Context) (string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read active pointer: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (p *activePointer) Set(ctx context.Context, version string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create pointer dir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn pointer.
	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".active-*")
	if err != nil {
		return fmt.Errorf("create pointer temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(version + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write active pointer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close active pointer: %w", err)
	}

	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("commit active pointer: %w", err)
	}
	return nil
}
