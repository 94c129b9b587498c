// Package process answers liveness questions about local processes, used
// by the server lifecycle commands to verify pids from the discovery file.
package process

import (
	"strings"

	"github.com/google/gops/goprocess"
)

// Snapshot is a point-in-time view of the processes running on this host.
type Snapshot struct {
	procs []goprocess.P
}

// Take lists the currently running processes.
func Take() *Snapshot {
	return &Snapshot{procs: goprocess.FindAll()}
}

// Running reports whether a process with the given pid was alive when the
// snapshot was taken.
func (s *Snapshot) Running(pid int) bool {
	for _, p := range s.procs {
		if p.PID == pid {
			return true
		}
	}

	return false
}

// RunningWithName reports whether the given pid is alive and its executable
// or path contains name (case-insensitive). Guards against pid reuse by an
// unrelated process.
func (s *Snapshot) RunningWithName(pid int, name string) bool {
	name = strings.ToLower(name)
	for _, p := range s.procs {
		if p.PID == pid {
			return strings.Contains(strings.ToLower(p.Exec), name) ||
				strings.Contains(strings.ToLower(p.Path), name)
		}
	}

	return false
}
