package ports

import (
	"context"

	"build-promotion-service/internal/core/domain"
)

// RestartOutcome is the tri-state result of a supervisor restart request.
// The restart is fire-and-forget from the promotion workflow's perspective;
// the health poll is the real confirmation mechanism.
type RestartOutcome string

const (
	RestartSucceeded RestartOutcome = "succeeded"
	RestartFailed    RestartOutcome = "failed"
	RestartTimedOut  RestartOutcome = "timed-out"
)

// ProcessSupervisor restarts the managed service and reports what the
// supervisor knows about its processes. Status is best effort: adapters that
// cannot enumerate processes return an empty list.
type ProcessSupervisor interface {
	Restart(ctx context.Context, service string) RestartOutcome
	Status(ctx context.Context) ([]domain.ServiceProcess, error)
}
