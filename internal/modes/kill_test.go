package modes

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/process"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
)

func seededProcesses() state.ProcessStore {
	store := state.NewProcessStore()
	store.SetEntries([]process.Process{
		{PID: 42, User: "root", Name: "sshd"},
		{PID: 1337, User: "me", Name: "vim"},
		{PID: 7, User: "me", Name: "zsh"},
	})
	return store
}

func TestKillFiltersByNameOrPID(t *testing.T) {
	k := NewKill(seededProcesses(), func(int) error { return nil })
	session := &fakeSession{mode: launcher.ModeKill}

	k.EnterMode("/k", session)
	if got := len(k.DisplayableItems()); got != 3 {
		t.Fatalf("expected all processes, got %d", got)
	}
	k.HandleInput("/k VIM", session)
	items := k.DisplayableItems()
	if len(items) != 1 || items[0].Key() != "pid:1337" {
		t.Fatalf("expected vim only, got %v", titles(items))
	}
	k.HandleInput("/k 42", session)
	items = k.DisplayableItems()
	if len(items) != 1 || items[0].Subtitle() != "root" {
		t.Fatalf("expected sshd by pid, got %v", titles(items))
	}
	if session.resets != 3 {
		t.Fatalf("expected a reset per text change, got %d", session.resets)
	}
}

func TestKillRowsAreAligned(t *testing.T) {
	k := NewKill(seededProcesses(), nil)
	k.EnterMode("/k", &fakeSession{})
	got := titles(k.DisplayableItems())
	want := []string{"  42  sshd", "1337  vim", "   7  zsh"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestKillExecuteRemovesRowAndStaysOpen(t *testing.T) {
	var killed []int
	k := NewKill(seededProcesses(), func(pid int) error {
		killed = append(killed, pid)
		return nil
	})
	session := &fakeSession{mode: launcher.ModeKill}
	k.EnterMode("/k", session)

	if !k.ExecuteAction(1, session) {
		t.Fatalf("expected kill to succeed")
	}
	if len(killed) != 1 || killed[0] != 1337 {
		t.Fatalf("expected pid 1337 killed, got %v", killed)
	}
	if got := len(k.DisplayableItems()); got != 2 {
		t.Fatalf("expected killed row removed, got %d rows", got)
	}
	if k.HideAfterAction() {
		t.Fatalf("kill mode should stay open")
	}
	if k.ExecuteAction(9, session) {
		t.Fatalf("out of range index should fail")
	}
}

func TestKillFailureKeepsRow(t *testing.T) {
	k := NewKill(seededProcesses(), func(int) error { return errors.New("permission denied") })
	session := &fakeSession{mode: launcher.ModeKill}
	k.EnterMode("/k", session)
	if k.ExecuteAction(0, session) {
		t.Fatalf("expected failure to report false")
	}
	if got := len(k.DisplayableItems()); got != 3 {
		t.Fatalf("expected rows untouched, got %d", got)
	}
}

func TestKillRefreshPicksUpNewSnapshot(t *testing.T) {
	store := seededProcesses()
	k := NewKill(store, nil)
	session := &fakeSession{mode: launcher.ModeKill}
	k.EnterMode("/k z", session)
	store.SetEntries([]process.Process{{PID: 8, User: "me", Name: "zsh"}, {PID: 9, User: "me", Name: "zellij"}})
	k.Refresh(session)
	if got := len(k.DisplayableItems()); got != 2 {
		t.Fatalf("expected refreshed rows, got %d", got)
	}
	if session.resets != 1 {
		t.Fatalf("refresh must not reset selection")
	}
	k.Cleanup(session)
	if len(k.DisplayableItems()) != 0 {
		t.Fatalf("expected cleanup to clear rows")
	}
}
