package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/core/domain"
	output "build-promotion-service/internal/core/ports/output"
)

type StatusService struct {
	store      output.BuildStore
	pointer    output.ActivePointer
	health     output.HealthClient
	supervisor output.ProcessSupervisor
}

func NewStatusService(
	store output.BuildStore,
	pointer output.ActivePointer,
	health output.HealthClient,
	supervisor output.ProcessSupervisor,
) *StatusService {
	return &StatusService{
		store:      store,
		pointer:    pointer,
		health:     health,
		supervisor: supervisor,
	}
}

type Status struct {
	ActiveVersion string
	Healthy       bool
	UptimeSecs    int64
	BuildCount    int
	Services      []domain.ServiceProcess
}

// Status composes the active pointer, a fresh health probe, the build count
// and the supervisor's process table. The process table is best effort; a
// supervisor that cannot report simply yields an empty list.
func (s *StatusService) Status(ctx context.Context) (*Status, error) {
	active, err := s.pointer.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read active pointer: %w", err)
	}

	builds, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}

	snap := s.health.Probe(ctx)

	procs, err := s.supervisor.Status(ctx)
	if err != nil {
		log.WithError(err).Debug("supervisor status unavailable")
		procs = nil
	}

	return &Status{
		ActiveVersion: active,
		Healthy:       snap.Reachable,
		UptimeSecs:    snap.UptimeSecs,
		BuildCount:    len(builds),
		Services:      procs,
	}, nil
}
