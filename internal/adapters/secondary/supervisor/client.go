package supervisor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/config"
	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

type client struct {
	socket  string
	timeout time.Duration
}

// NewClient creates a supervisord adapter that shells out to supervisorctl
// over the configured unix socket.
func NewClient(cfg *config.SupervisorConfig) ports.ProcessSupervisor {
	timeout := cfg.RestartTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &client{socket: cfg.Socket, timeout: timeout}
}

func (c *client) Restart(ctx context.Context, service string) ports.RestartOutcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "supervisorctl", "-s", c.socket, "restart", service)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.WithField("service", service).Warn("supervisorctl restart timed out")
			return ports.RestartTimedOut
		}
		log.WithError(err).WithFields(log.Fields{
			"service": service,
			"output":  strings.TrimSpace(string(out)),
		}).Warn("supervisorctl restart failed")
		return ports.RestartFailed
	}
	return ports.RestartSucceeded
}

func (c *client) Status(ctx context.Context) ([]domain.ServiceProcess, error) {
	cmd := exec.CommandContext(ctx, "supervisorctl", "-s", c.socket, "status")
	out, err := cmd.Output()
	if err != nil {
		// supervisorctl exits non-zero when any program is not RUNNING but
		// still prints the table; fall back to whatever it produced.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(out) == 0 {
			return nil, err
		}
	}
	return parseStatus(string(out)), nil
}

// parseStatus reads supervisorctl's status table, e.g.:
//
//	app        RUNNING   pid 1234, uptime 0:05:31
//	sidecar    STOPPED   Not started
func parseStatus(out string) []domain.ServiceProcess {
	var procs []domain.ServiceProcess
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		proc := domain.ServiceProcess{Name: fields[0], State: fields[1]}
		for i, f := range fields {
			switch f {
			case "pid":
				if i+1 < len(fields) {
					proc.PID = strings.TrimSuffix(fields[i+1], ",")
				}
			case "uptime":
				if i+1 < len(fields) {
					proc.Uptime = fields[i+1]
				}
			}
		}
		procs = append(procs, proc)
	}
	return procs
}
