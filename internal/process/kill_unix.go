//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// browser helper processes down with it. Non-positive pids are ignored:
// kill(-0) would target the caller's own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; launcher.Kill already handled the leader.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
