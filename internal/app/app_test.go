package app

import (
	"testing"

	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/opener"
	"github.com/atomicstack/tmux-popup-launcher/internal/settings"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
)

type noopRunner struct{}

func (noopRunner) Run(string, string) (string, error) { return "launch-test", nil }

func testDeps(t *testing.T) (Deps, *[]string) {
	t.Helper()
	var opened []string
	return Deps{
		Settings:  settings.Defaults(),
		History:   history.New(nil, history.Options{}),
		Opener:    opener.Func(func(target string) error { opened = append(opened, target); return nil }),
		Runner:    noopRunner{},
		Processes: state.NewProcessStore(),
		Home:      t.TempDir(),
	}, &opened
}

func TestNewDispatcherRegistersEveryMode(t *testing.T) {
	deps, _ := testDeps(t)
	d, err := NewDispatcher(deps)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	suggestions := d.Suggestions()
	want := []string{"/k", "/s", "/w", "/t", "/o"}
	if len(suggestions) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(suggestions))
	}
	for i, trigger := range want {
		if suggestions[i].Trigger != trigger {
			t.Fatalf("suggestion %d: expected %q, got %q", i, trigger, suggestions[i].Trigger)
		}
	}
}

func TestNewDispatcherSearchScenario(t *testing.T) {
	deps, opened := testDeps(t)
	d, err := NewDispatcher(deps)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	d.HandleText("/s golang")
	if d.Session().Mode() != launcher.ModeSearch {
		t.Fatalf("expected search mode, got %s", d.Session().Mode())
	}
	out := d.Activate()
	if !out.Executed || !out.Dismiss {
		t.Fatalf("expected executed and dismissed, got %+v", out)
	}
	if len(*opened) != 1 || (*opened)[0] != "https://www.google.com/search?q=golang" {
		t.Fatalf("unexpected opened %v", *opened)
	}
	if deps.History.Len() != 1 {
		t.Fatalf("expected search recorded")
	}
}

func TestNewDispatcherHonoursDisabledSearch(t *testing.T) {
	deps, _ := testDeps(t)
	deps.Settings.SetModeEnabled(launcher.ModeSearch, false)
	d, err := NewDispatcher(deps)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	d.HandleText("/s golang")
	if d.Session().Mode() != launcher.ModeLaunch {
		t.Fatalf("expected launch mode with search disabled, got %s", d.Session().Mode())
	}
}
