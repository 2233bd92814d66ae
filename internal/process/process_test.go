package process

import (
	"errors"
	"os"
	"syscall"
	"testing"
)

func TestParseSkipsSelfAndMalformedRows(t *testing.T) {
	out := []byte(`    1 root     /sbin/init
  200 alice    /usr/bin/zsh
  abc bob      broken
  300 alice    Google Chrome Helper
  400 carol
  500 alice    tmux
`)
	procs := parse(out, 500)
	if len(procs) != 3 {
		t.Fatalf("expected 3 processes, got %d: %+v", len(procs), procs)
	}
	if procs[0].Name != "init" || procs[0].PID != 1 {
		t.Fatalf("unexpected first process %+v", procs[0])
	}
	if procs[1].Name != "zsh" || procs[1].User != "alice" {
		t.Fatalf("unexpected second process %+v", procs[1])
	}
	if procs[2].Name != "Google Chrome Helper" {
		t.Fatalf("expected multi-word name, got %q", procs[2].Name)
	}
}

func TestListUsesPS(t *testing.T) {
	prev := runPS
	t.Cleanup(func() { runPS = prev })
	runPS = func() ([]byte, error) { return []byte("42 dave vim\n"), nil }
	procs, err := List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(procs) != 1 || procs[0].PID != 42 {
		t.Fatalf("unexpected processes %+v", procs)
	}
	runPS = func() ([]byte, error) { return nil, errors.New("no ps") }
	if _, err := List(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestKillSendsSIGTERM(t *testing.T) {
	prev := signal
	t.Cleanup(func() { signal = prev })
	var gotPID int
	var gotSig syscall.Signal
	signal = func(pid int, sig syscall.Signal) error {
		gotPID, gotSig = pid, sig
		return nil
	}
	if err := Kill(1234); err != nil {
		t.Fatalf("kill: %v", err)
	}
	if gotPID != 1234 || gotSig != syscall.SIGTERM {
		t.Fatalf("expected SIGTERM to 1234, got %v to %d", gotSig, gotPID)
	}
	for _, pid := range []int{0, 1, os.Getpid()} {
		if err := Kill(pid); !errors.Is(err, ErrInvalidPID) {
			t.Fatalf("Kill(%d): expected ErrInvalidPID, got %v", pid, err)
		}
	}
}
