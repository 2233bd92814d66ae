// Package process lists and signals local processes for the kill mode.
package process

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// ErrInvalidPID is returned for non-positive or self-referencing pids.
var ErrInvalidPID = errors.New("invalid pid")

// Process is one row of the process table.
type Process struct {
	PID  int
	User string
	Name string
}

var (
	runPS = func() ([]byte, error) {
		return exec.Command("ps", "-axo", "pid=,user=,comm=").Output()
	}
	signal = func(pid int, sig syscall.Signal) error {
		return syscall.Kill(pid, sig)
	}
)

// List returns the running processes, excluding the caller.
func List() ([]Process, error) {
	out, err := runPS()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return parse(out, os.Getpid()), nil
}

// Kill sends SIGTERM to pid.
func Kill(pid int) error {
	if pid <= 1 || pid == os.Getpid() {
		return fmt.Errorf("%d: %w", pid, ErrInvalidPID)
	}
	if err := signal(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("kill %d: %w", pid, err)
	}
	return nil
}

func parse(out []byte, self int) []Process {
	var procs []Process
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil || pid == self {
			continue
		}
		name := strings.Join(fields[2:], " ")
		if idx := strings.LastIndex(name, "/"); idx >= 0 && idx < len(name)-1 {
			name = name[idx+1:]
		}
		procs = append(procs, Process{PID: pid, User: fields[1], Name: name})
	}
	return procs
}
