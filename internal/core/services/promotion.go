package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/core/domain"
	output "build-promotion-service/internal/core/ports/output"
)

// PromotionConfig bounds the verification phase of a promotion.
type PromotionConfig struct {
	ServiceName  string
	PollAttempts int
	PollInterval time.Duration
	SettleDelay  time.Duration
}

type PromotionService struct {
	store      output.BuildStore
	installer  output.BinaryInstaller
	pointer    output.ActivePointer
	supervisor output.ProcessSupervisor
	health     output.HealthClient
	cfg        PromotionConfig
}

func NewPromotionService(
	store output.BuildStore,
	installer output.BinaryInstaller,
	pointer output.ActivePointer,
	supervisor output.ProcessSupervisor,
	health output.HealthClient,
	cfg PromotionConfig,
) *PromotionService {
	return &PromotionService{
		store:      store,
		installer:  installer,
		pointer:    pointer,
		supervisor: supervisor,
		health:     health,
		cfg:        cfg,
	}
}

type PromotionResult struct {
	OK      bool
	Message string
}

type RestartResult struct {
	OK      bool
	Healthy bool
	Outcome output.RestartOutcome
}

// Promote stages a build as the live binary, commits the active pointer,
// restarts the managed service and polls its health endpoint.
//
// The steps are strictly ordered and each is a precondition for the next.
// Once the pointer is written the promotion is committed: restart and health
// verification can only downgrade the result message, never the outcome.
// An exhausted health poll therefore still returns OK with a degraded
// message, not a failure.
func (s *PromotionService) Promote(ctx context.Context, version string) (*PromotionResult, error) {
	if !domain.ValidVersion(version) {
		return nil, domain.ErrInvalidVersion
	}

	// 1. Existence check before any mutation.
	exists, err := s.store.Exists(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("check build %s: %w", version, err)
	}
	if !exists {
		return nil, domain.ErrBuildNotFound
	}

	// 2. Stage the binary. An install failure aborts before the pointer is
	// written, so a half-copied binary is never recorded as active.
	if err := s.installer.Install(ctx, version); err != nil {
		return nil, fmt.Errorf("install build %s: %w", version, err)
	}

	// 3. Commit. From here on the promotion has happened.
	if err := s.pointer.Set(ctx, version); err != nil {
		return nil, fmt.Errorf("set active pointer: %w", err)
	}
	log.WithField("version", version).Info("active version committed")

	// 4. Restart is fire-and-forget; the poll below is the confirmation.
	outcome := s.supervisor.Restart(ctx, s.cfg.ServiceName)
	if outcome != output.RestartSucceeded {
		log.WithFields(log.Fields{"service": s.cfg.ServiceName, "outcome": outcome}).
			Warn("supervisor restart not confirmed")
	}

	// 5. Bounded health poll, first reachable snapshot wins.
	for i := 0; i < s.cfg.PollAttempts; i++ {
		select {
		case <-ctx.Done():
			return &PromotionResult{OK: true, Message: "restarted but health check not yet passing"}, nil
		case <-time.After(s.cfg.PollInterval):
		}

		if snap := s.health.Probe(ctx); snap.Reachable {
			log.WithFields(log.Fields{"version": version, "attempt": i + 1}).
				Info("promoted build is healthy")
			return &PromotionResult{OK: true, Message: "OK"}, nil
		}
	}

	log.WithField("version", version).Warn("promoted build not healthy within poll bound")
	return &PromotionResult{OK: true, Message: "restarted but health check not yet passing"}, nil
}

// Restart triggers an unconditional supervisor restart, waits a fixed settle
// delay and takes a single health probe. It never fails: the caller gets the
// restart outcome and the observed reachability.
func (s *PromotionService) Restart(ctx context.Context) (*RestartResult, error) {
	outcome := s.supervisor.Restart(ctx, s.cfg.ServiceName)

	select {
	case <-ctx.Done():
	case <-time.After(s.cfg.SettleDelay):
	}

	snap := s.health.Probe(ctx)
	return &RestartResult{OK: true, Healthy: snap.Reachable, Outcome: outcome}, nil
}
