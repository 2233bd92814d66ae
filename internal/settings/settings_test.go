package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, mode := range launcher.Modes() {
		if !s.ModeEnabled(mode) {
			t.Fatalf("expected %s enabled by default", mode)
		}
	}
	if s.SearchEngine() != EngineGoogle {
		t.Fatalf("expected google, got %q", s.SearchEngine())
	}
	if !s.ShowCommandSuggestions() {
		t.Fatalf("expected suggestions on by default")
	}
	opts := s.HistoryOptions()
	if opts.MaxItems != 100 || opts.DisplayLimit != 10 {
		t.Fatalf("unexpected history options %+v", opts)
	}
	if s.Config().Backend.ProcessInterval != 2*time.Second {
		t.Fatalf("unexpected interval %v", s.Config().Backend.ProcessInterval)
	}
}

func TestLoadReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[modes]
search = false
kill = false
show_command_suggestions = false
default_search_engine = "Bing"

[history]
max_items = 25
display_limit = 5
path = "/tmp/h.json"

[backend]
process_interval = "500ms"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ModeEnabled(launcher.ModeSearch) || s.ModeEnabled(launcher.ModeKill) {
		t.Fatalf("expected search and kill disabled")
	}
	if !s.ModeEnabled(launcher.ModeWeb) {
		t.Fatalf("expected web enabled by default")
	}
	if s.SearchEngine() != EngineBing {
		t.Fatalf("expected normalised engine bing, got %q", s.SearchEngine())
	}
	if s.ShowCommandSuggestions() {
		t.Fatalf("expected suggestions off")
	}
	cfg := s.Config()
	if cfg.History.MaxItems != 25 || cfg.History.DisplayLimit != 5 || cfg.History.Path != "/tmp/h.json" {
		t.Fatalf("unexpected history config %+v", cfg.History)
	}
	if cfg.Backend.ProcessInterval != 500*time.Millisecond {
		t.Fatalf("unexpected interval %v", cfg.Backend.ProcessInterval)
	}
	if s.Path() != path {
		t.Fatalf("expected path %q, got %q", path, s.Path())
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("TMUX_POPUP_LAUNCHER_MODES_WEB", "false")
	t.Setenv("TMUX_POPUP_LAUNCHER_MODES_DEFAULT_SEARCH_ENGINE", "baidu")
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ModeEnabled(launcher.ModeWeb) {
		t.Fatalf("expected env to disable web mode")
	}
	if s.SearchEngine() != EngineBaidu {
		t.Fatalf("expected baidu, got %q", s.SearchEngine())
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[modes\nsearch = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLiveToggles(t *testing.T) {
	s := Defaults()
	s.SetModeEnabled(launcher.ModeSearch, false)
	if s.ModeEnabled(launcher.ModeSearch) {
		t.Fatalf("expected search disabled")
	}
	s.SetModeEnabled(launcher.ModeLaunch, false)
	if !s.ModeEnabled(launcher.ModeLaunch) {
		t.Fatalf("launch mode cannot be disabled")
	}
	s.SetSearchEngine(" BING ")
	if s.SearchEngine() != EngineBing {
		t.Fatalf("expected bing, got %q", s.SearchEngine())
	}
	s.SetShowCommandSuggestions(false)
	if s.ShowCommandSuggestions() {
		t.Fatalf("expected suggestions off")
	}
}
