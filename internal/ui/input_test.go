package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

func TestTypingEntersMode(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s golang")
	if f.model.Text() != "/s golang" {
		t.Fatalf("expected prompt text, got %q", f.model.Text())
	}
	if got := f.session().Mode(); got != launcher.ModeSearch {
		t.Fatalf("expected search mode, got %s", got)
	}
	items := f.model.dispatcher.Items()
	if len(items) == 0 || items[0].Title() != "golang" {
		t.Fatalf("expected query row first, got %d items", len(items))
	}
}

func TestBackspaceLeavesMode(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s")
	f.harness.Press(tea.KeyBackspace)
	f.harness.Press(tea.KeyBackspace)
	if f.model.Text() != "" {
		t.Fatalf("expected empty prompt, got %q", f.model.Text())
	}
	if got := f.session().Mode(); got != launcher.ModeLaunch {
		t.Fatalf("expected launch mode, got %s", got)
	}
}

func TestCursorMovementEditsInPlace(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/sgo")
	f.harness.Press(tea.KeyLeft)
	f.harness.Press(tea.KeyLeft)
	f.harness.Type(" ")
	if f.model.Text() != "/s go" {
		t.Fatalf("expected space inserted at cursor, got %q", f.model.Text())
	}
	if pos := f.model.prompt.Cursor(); pos != 3 {
		t.Fatalf("expected cursor at 3, got %d", pos)
	}
	f.harness.Press(tea.KeyRight)
	if pos := f.model.prompt.Cursor(); pos != 4 {
		t.Fatalf("expected cursor at 4, got %d", pos)
	}
}

func TestWordDeleteAndClear(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s hello world")
	f.harness.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if f.model.Text() != "/s hello " {
		t.Fatalf("unexpected text after ctrl+w: %q", f.model.Text())
	}
	f.harness.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if f.model.Text() != "" || f.session().Mode() != launcher.ModeLaunch {
		t.Fatalf("expected ctrl+u to clear prompt and leave search mode")
	}
}

func TestInitialQueryAppliesMode(t *testing.T) {
	f := newFixture(t, Options{InitialQuery: "/k "})
	if got := f.session().Mode(); got != launcher.ModeKill {
		t.Fatalf("expected kill mode from initial query, got %s", got)
	}
	if pos := f.model.prompt.Cursor(); pos != 3 {
		t.Fatalf("expected cursor after initial query, got %d", pos)
	}
}

func TestPromptLineShowsPlaceholder(t *testing.T) {
	f := newFixture(t, Options{})
	if line := f.model.promptLine(); !strings.Contains(line, "type / for commands") {
		t.Fatalf("expected placeholder in prompt, got %q", line)
	}
	f.harness.Type("/w")
	if line := f.model.promptLine(); strings.Contains(line, "type / for commands") {
		t.Fatalf("placeholder should disappear once text is typed")
	}
}
