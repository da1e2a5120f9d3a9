// Package probe checks whether the accelerator module is reachable by
// running the vendor CLI. The check is a subprocess spawn with meaningful
// latency, so callers cache the result between scheduled probes.
package probe

import (
	"context"
	"os/exec"
	"time"

	"github.com/earthlume/statusled/internal/logger"
)

const defaultTimeout = 3 * time.Second

// defaultArgv identifies the accelerator firmware over the vendor CLI.
// Exit code 0 means the device answered.
var defaultArgv = []string{"hailortcli", "fw-control", "identify"}

// Prober reports accelerator liveness. Alive never blocks longer than the
// probe timeout.
type Prober interface {
	Alive(ctx context.Context) bool
}

// ExecProber runs the health-check command. A non-zero exit, a spawn
// failure and a timeout are all identically "not alive".
type ExecProber struct {
	argv    []string
	timeout time.Duration
}

// NewExecProber builds a prober running the accelerator health check with
// the default 3-second timeout.
func NewExecProber() *ExecProber {
	return &ExecProber{
		argv:    defaultArgv,
		timeout: defaultTimeout,
	}
}

// Alive runs the health check and reports whether it exited cleanly.
func (p *ExecProber) Alive(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.argv[0], p.argv[1:]...)
	if err := cmd.Run(); err != nil {
		logger.Debug().Err(err).Str("command", p.argv[0]).Msg("accelerator probe failed")
		return false
	}

	return true
}
