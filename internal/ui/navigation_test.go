package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

func TestEnterRunsSearchAndQuits(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s golang")
	f.harness.Press(tea.KeyEnter)
	if len(f.opened.targets) != 1 || f.opened.targets[0] != "https://www.google.com/search?q=golang" {
		t.Fatalf("unexpected opened targets %v", f.opened.targets)
	}
	if !f.harness.Quit() {
		t.Fatalf("expected search to dismiss the popup")
	}
	if f.history.Len() != 1 {
		t.Fatalf("expected search recorded in history")
	}
}

func TestEnterOnSuggestionAppliesTrigger(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/w")
	// "/w" also enters web mode; go back to the suggestion list first.
	f.harness.Press(tea.KeyBackspace)
	if !f.session().SuggestionsShowing() {
		t.Fatalf("expected suggestions for %q", f.model.Text())
	}
	items := f.model.dispatcher.Items()
	if len(items) != 3 {
		t.Fatalf("expected every command for \"/\", got %d", len(items))
	}
	f.harness.Press(tea.KeyDown)
	f.harness.Press(tea.KeyTab)
	if f.model.Text() != "/s" {
		t.Fatalf("expected prompt to hold the trigger, got %q", f.model.Text())
	}
	if f.session().Mode() != launcher.ModeSearch {
		t.Fatalf("expected search mode after applying suggestion")
	}
	if f.harness.Quit() {
		t.Fatalf("applying a suggestion must not quit")
	}
}

func TestKillStaysOpenAfterAction(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/k")
	f.harness.Press(tea.KeyDown)
	f.harness.Press(tea.KeyEnter)
	if len(f.killed) != 1 || f.killed[0] != 12 {
		t.Fatalf("expected pid 12 killed, got %v", f.killed)
	}
	if f.harness.Quit() {
		t.Fatalf("kill mode should keep the popup open")
	}
	if got := f.session().SelectedIndex(); got != 0 {
		t.Fatalf("expected selection clamped to remaining row, got %d", got)
	}
}

func TestEscapeClearsThenQuits(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/s x")
	f.harness.Press(tea.KeyEsc)
	if f.model.Text() != "" || f.session().Mode() != launcher.ModeLaunch {
		t.Fatalf("expected esc to clear the prompt")
	}
	if f.harness.Quit() {
		t.Fatalf("first esc should not quit")
	}
	f.harness.Press(tea.KeyEsc)
	if !f.harness.Quit() {
		t.Fatalf("esc on an empty prompt should quit")
	}
}

func TestCtrlXRemovesHistoryRow(t *testing.T) {
	f := newFixture(t, Options{})
	for _, q := range []string{"alpha", "beta"} {
		if _, err := f.history.AddSearch(q, "google"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	f.harness.Type("/s")
	f.harness.Send(tea.KeyMsg{Type: tea.KeyCtrlX})
	if f.history.Len() != 1 || f.history.Items()[0].Query != "alpha" {
		t.Fatalf("expected newest entry removed, got %+v", f.history.Items())
	}
	if f.model.currentInfo() == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestSelectionWrapsAndPages(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/k")
	f.harness.Press(tea.KeyUp)
	if got := f.session().SelectedIndex(); got != 1 {
		t.Fatalf("expected wrap to last row, got %d", got)
	}
	f.harness.Press(tea.KeyHome)
	if got := f.session().SelectedIndex(); got != 0 {
		t.Fatalf("expected first row, got %d", got)
	}
	f.harness.Press(tea.KeyPgDown)
	if got := f.session().SelectedIndex(); got != 1 {
		t.Fatalf("expected page down to clamp at last row, got %d", got)
	}
}

func TestCtrlCQuits(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Type("/k")
	f.harness.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !f.harness.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}
