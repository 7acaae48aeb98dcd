package fsstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

type binaryInstaller struct {
	buildsDir  string
	binaryPath string
}

// NewBinaryInstaller stages {version}.bin from buildsDir as the live binary
// at binaryPath. The copy goes to a temp file beside the target and is
// renamed into place, so the live path never holds a half-written binary and
// the running process keeps its old inode until restart.
func NewBinaryInstaller(buildsDir, binaryPath string) ports.BinaryInstaller {
	return &binaryInstaller{buildsDir: buildsDir, binaryPath: binaryPath}
}

func (i *binaryInstaller) Install(ctx context.Context, version string) error {
	if !domain.ValidVersion(version) {
		return domain.ErrInvalidVersion
	}

	src, err := os.Open(filepath.Join(i.buildsDir, version+binSuffix))
	if err != nil {
		return fmt.Errorf("open build %s: %w", version, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat build %s: %w", version, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(i.binaryPath), ".install-*")
	if err != nil {
		return fmt.Errorf("create install temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("copy build %s: %w", version, err)
	}
	if written != info.Size() {
		tmp.Close()
		return fmt.Errorf("copy build %s: wrote %d of %d bytes", version, written, info.Size())
	}

	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod build %s: %w", version, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close install temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), i.binaryPath); err != nil {
		return fmt.Errorf("install build %s: %w", version, err)
	}
	return nil
}
