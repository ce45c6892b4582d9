//go:build !windows

package lockfile

import (
	"os"
	"syscall"
)

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// signal 0 probes existence without delivering anything
	return proc.Signal(syscall.Signal(0)) == nil
}
