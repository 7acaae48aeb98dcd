package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/core/domain"
	output "build-promotion-service/internal/core/ports/output"
)

type BuildService struct {
	store         output.BuildStore
	pointer       output.ActivePointer
	retentionKeep int
}

func NewBuildService(store output.BuildStore, pointer output.ActivePointer, retentionKeep int) *BuildService {
	return &BuildService{
		store:         store,
		pointer:       pointer,
		retentionKeep: retentionKeep,
	}
}

// List returns all builds newest first, with the Active flag derived from
// the active pointer. A pointer naming a build that no longer exists simply
// flags nothing as active.
func (s *BuildService) List(ctx context.Context) ([]*domain.Build, string, error) {
	builds, err := s.store.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list builds: %w", err)
	}

	active, err := s.pointer.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("read active pointer: %w", err)
	}

	for _, b := range builds {
		b.Active = b.Version == active
	}
	return builds, active, nil
}

// Delete removes a build from the store. The active build is never removable:
// the conflict check runs before anything else so the currently promoted
// version always refuses, even mid-promotion.
func (s *BuildService) Delete(ctx context.Context, version string) error {
	if !domain.ValidVersion(version) {
		return domain.ErrInvalidVersion
	}

	active, err := s.pointer.Get(ctx)
	if err != nil {
		return fmt.Errorf("read active pointer: %w", err)
	}
	if version == active {
		return domain.ErrBuildActive
	}

	exists, err := s.store.Exists(ctx, version)
	if err != nil {
		return fmt.Errorf("check build %s: %w", version, err)
	}
	if !exists {
		return domain.ErrBuildNotFound
	}

	if err := s.store.Remove(ctx, version); err != nil {
		return fmt.Errorf("remove build %s: %w", version, err)
	}

	log.WithField("version", version).Info("build deleted")
	return nil
}

// Prune removes all but the keep newest builds, skipping the active one
// regardless of its age. Returns the versions it removed. keep <= 0 falls
// back to the configured retention.
func (s *BuildService) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep <= 0 {
		keep = s.retentionKeep
	}

	builds, active, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var pruned []string
	for i, b := range builds {
		if i < keep || b.Version == active {
			continue
		}
		if err := s.store.Remove(ctx, b.Version); err != nil {
			return pruned, fmt.Errorf("prune build %s: %w", b.Version, err)
		}
		pruned = append(pruned, b.Version)
	}

	if len(pruned) > 0 {
		log.WithFields(log.Fields{"keep": keep, "pruned": len(pruned)}).Info("old builds pruned")
	}
	return pruned, nil
}
