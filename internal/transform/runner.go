package transform

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/trxer/go-trxer/internal/process"
)

// killGracePeriod bounds how long Run waits for output pipes after the
// process group has been killed.
const killGracePeriod = 2 * time.Second

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner implements CommandRunner using os/exec. The child runs in its
// own process group, which is killed when ctx is canceled.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary comes from config or PATH lookup
	process.Isolate(cmd)
	cmd.Cancel = func() error {
		return process.KillGroup(cmd.Process.Pid)
	}
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
