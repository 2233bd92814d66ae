package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/backend"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/process"
)

func TestViewShowsSuggestionsWithMarks(t *testing.T) {
	f := newFixture(t, Options{})
	f.settings.SetModeEnabled(launcher.ModeWeb, false)
	f.harness.Type("/")
	view := f.harness.View()
	for _, want := range []string{"/k", "/s", "/w", "✓", "✗"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewEmptyStates(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/x")
	if view := f.harness.View(); !strings.Contains(view, "No matching commands") {
		t.Fatalf("expected suggestion empty state, got:\n%s", view)
	}
	f.harness.Press(tea.KeyEsc)
	f.harness.Type("/w")
	if view := f.harness.View(); !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected mode empty state, got:\n%s", view)
	}
}

func TestViewShowsModeHeaderAndHelp(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s go")
	view := f.harness.View()
	if !strings.Contains(view, launcher.ModeSearch.Title()) {
		t.Fatalf("expected mode title in header, got:\n%s", view)
	}
	if !strings.Contains(view, "ctrl+x removes the selected history entry") {
		t.Fatalf("expected help lines, got:\n%s", view)
	}
}

func TestViewFooterToggle(t *testing.T) {
	f := newFixture(t, Options{})
	if strings.Contains(f.harness.View(), "ctrl+c quit") {
		t.Fatalf("footer should be hidden by default")
	}
	f = newFixture(t, Options{ShowFooter: true})
	if !strings.Contains(f.harness.View(), "ctrl+c quit") {
		t.Fatalf("expected footer when enabled")
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	f := newFixture(t, Options{Width: 40, Height: 10})
	entries := make([]process.Process, 20)
	for i := range entries {
		entries[i] = process.Process{PID: 100 + i, User: "me", Name: fmt.Sprintf("proc-%02d", i)}
	}
	f.harness.Send(backendEventMsg{event: backend.Event{Kind: backend.KindProcesses, Data: entries}})
	f.harness.Type("/k")
	view := f.harness.View()
	if strings.Contains(view, "proc-15") {
		t.Fatalf("expected proc-15 outside the initial viewport, view =\n%s", view)
	}
	for i := 0; i < 15; i++ {
		f.harness.Press(tea.KeyDown)
	}
	view = f.harness.View()
	if !strings.Contains(view, "proc-15") {
		t.Fatalf("expected proc-15 visible after scrolling, view =\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := len([]rune(stripANSI(line))); w > 40 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
}

func TestBackendEventRefreshesKillList(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/k")
	f.harness.Press(tea.KeyDown)
	f.harness.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindProcesses,
		Data: []process.Process{{PID: 11, Name: "vim"}, {PID: 12, Name: "htop"}, {PID: 13, Name: "less"}},
	}})
	if got := len(f.model.dispatcher.Items()); got != 3 {
		t.Fatalf("expected refreshed list, got %d rows", got)
	}
	if got := f.session().SelectedIndex(); got != 1 {
		t.Fatalf("refresh must keep the selection, got %d", got)
	}
}

func TestBackendErrorShownInKillMode(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Send(backendEventMsg{event: backend.Event{Kind: backend.KindProcesses, Err: fmt.Errorf("ps failed")}})
	if strings.Contains(f.harness.View(), "ps failed") {
		t.Fatalf("backend errors only surface in kill mode")
	}
	f.harness.Type("/k")
	if !strings.Contains(f.harness.View(), "ps failed") {
		t.Fatalf("expected backend error in status line")
	}
	if f.processes.Err() == nil {
		t.Fatalf("expected error recorded in the process store")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
