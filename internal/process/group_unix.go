//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Isolate starts cmd in its own process group so KillGroup reaches its children.
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}
