//go:build unix

package engine

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup puts the child in its own process group so a timeout kill
// reaches every process it spawned, not just the direct child.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(pid int) {
	pgid, err := unix.Getpgid(pid)
	if err != nil {
		_ = unix.Kill(pid, unix.SIGKILL)
		return
	}
	_ = unix.Kill(-pgid, unix.SIGKILL)
}
