package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

const binSuffix = ".bin"

type buildStore struct {
	dir string
}

// NewBuildStore creates a filesystem-backed build store over dir.
// Builds are files named {version}.bin; everything else in the directory is
// ignored.
func NewBuildStore(dir string) ports.BuildStore {
	return &buildStore{dir: dir}
}

func (s *buildStore) List(ctx context.Context) ([]*domain.Build, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Build{}, nil
		}
		return nil, fmt.Errorf("read builds dir: %w", err)
	}

	builds := make([]*domain.Build, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), binSuffix) {
			continue
		}
		version := strings.TrimSuffix(entry.Name(), binSuffix)
		if !domain.ValidVersion(version) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between readdir and stat; skip it.
			continue
		}

		builds = append(builds, &domain.Build{
			Version:   version,
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	// Newest first. Versions are expected to sort monotonically
	// (timestamp-style identifiers), so lexicographic descending works.
	sort.Slice(builds, func(i, j int) bool {
		return builds[i].Version > builds[j].Version
	})

	return builds, nil
}

func (s *buildStore) Exists(ctx context.Context, version string) (bool, error) {
	if !domain.ValidVersion(version) {
		return false, domain.ErrInvalidVersion
	}

	_, err := os.Stat(s.path(version))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat build %s: %w", version, err)
	}
	return true, nil
}

func (s *buildStore) Remove(ctx context.Context, version string) error {
	if !domain.ValidVersion(version) {
		return domain.ErrInvalidVersion
	}

	if err := os.Remove(s.path(version)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrBuildNotFound
		}
		return fmt.Errorf("remove build %s: %w", version, err)
	}
	return nil
}

func (s *buildStore) path(version string) string {
	return filepath.Join(s.dir, version+binSuffix)
}
