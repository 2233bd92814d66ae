// Package settings loads user preferences from a TOML file with environment
// overrides.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/spf13/viper"
)

const (
	appName   = "tmux-popup-launcher"
	envPrefix = "TMUX_POPUP_LAUNCHER"
	envConfig = envPrefix + "_CONFIG"

	EngineGoogle = "google"
	EngineBing   = "bing"
	EngineBaidu  = "baidu"
)

// Config mirrors the settings file.
type Config struct {
	Modes   ModesConfig   `mapstructure:"modes"`
	History HistoryConfig `mapstructure:"history"`
	Backend BackendConfig `mapstructure:"backend"`
}

// ModesConfig toggles launcher modes.
type ModesConfig struct {
	Kill                   bool   `mapstructure:"kill"`
	Search                 bool   `mapstructure:"search"`
	Web                    bool   `mapstructure:"web"`
	Terminal               bool   `mapstructure:"terminal"`
	File                   bool   `mapstructure:"file"`
	ShowCommandSuggestions bool   `mapstructure:"show_command_suggestions"`
	DefaultSearchEngine    string `mapstructure:"default_search_engine"`
}

// HistoryConfig configures the search history store.
type HistoryConfig struct {
	MaxItems     int    `mapstructure:"max_items"`
	DisplayLimit int    `mapstructure:"display_limit"`
	Path         string `mapstructure:"path"`
}

// BackendConfig configures background polling.
type BackendConfig struct {
	ProcessInterval time.Duration `mapstructure:"process_interval"`
}

// Settings is the live, read-mostly settings object shared by the launcher.
type Settings struct {
	mu   sync.RWMutex
	cfg  Config
	path string
}

var _ launcher.Settings = (*Settings)(nil)

// DefaultPath returns ~/.config/tmux-popup-launcher/config.toml.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".config", appName, "config.toml")
}

// DefaultHistoryPath returns $XDG_DATA_HOME/tmux-popup-launcher/history.json.
func DefaultHistoryPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(homeDir(), ".local", "share")
	}
	return filepath.Join(base, appName, "history.json")
}

// Defaults returns the settings used when no file is present.
func Defaults() *Settings {
	v := newViper()
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &Settings{cfg: normalise(cfg)}
}

// Load reads path, or the TMUX_POPUP_LAUNCHER_CONFIG file, or the default
// location. A missing file yields defaults; a malformed one is an error.
// Environment variables such as TMUX_POPUP_LAUNCHER_MODES_SEARCH override
// file values.
func Load(path string) (*Settings, error) {
	v := newViper()
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &Settings{cfg: normalise(cfg), path: path}, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("modes.kill", true)
	v.SetDefault("modes.search", true)
	v.SetDefault("modes.web", true)
	v.SetDefault("modes.terminal", true)
	v.SetDefault("modes.file", true)
	v.SetDefault("modes.show_command_suggestions", true)
	v.SetDefault("modes.default_search_engine", EngineGoogle)
	v.SetDefault("history.max_items", history.DefaultMaxItems)
	v.SetDefault("history.display_limit", history.DefaultDisplayLimit)
	v.SetDefault("history.path", DefaultHistoryPath())
	v.SetDefault("backend.process_interval", "2s")

	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func normalise(cfg Config) Config {
	cfg.Modes.DefaultSearchEngine = strings.ToLower(strings.TrimSpace(cfg.Modes.DefaultSearchEngine))
	if cfg.History.MaxItems <= 0 {
		cfg.History.MaxItems = history.DefaultMaxItems
	}
	if cfg.History.DisplayLimit <= 0 {
		cfg.History.DisplayLimit = history.DefaultDisplayLimit
	}
	if strings.TrimSpace(cfg.History.Path) == "" {
		cfg.History.Path = DefaultHistoryPath()
	}
	if cfg.Backend.ProcessInterval <= 0 {
		cfg.Backend.ProcessInterval = 2 * time.Second
	}
	return cfg
}

// Path returns the file the settings were loaded from.
func (s *Settings) Path() string { return s.path }

// Config returns a copy of the current configuration.
func (s *Settings) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// ModeEnabled reports whether mode may be activated. The launch mode is
// always enabled.
func (s *Settings) ModeEnabled(mode launcher.Mode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch mode {
	case launcher.ModeLaunch:
		return true
	case launcher.ModeKill:
		return s.cfg.Modes.Kill
	case launcher.ModeSearch:
		return s.cfg.Modes.Search
	case launcher.ModeWeb:
		return s.cfg.Modes.Web
	case launcher.ModeTerminal:
		return s.cfg.Modes.Terminal
	case launcher.ModeFile:
		return s.cfg.Modes.File
	default:
		return false
	}
}

// SetModeEnabled toggles a mode at runtime.
func (s *Settings) SetModeEnabled(mode launcher.Mode, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch mode {
	case launcher.ModeKill:
		s.cfg.Modes.Kill = enabled
	case launcher.ModeSearch:
		s.cfg.Modes.Search = enabled
	case launcher.ModeWeb:
		s.cfg.Modes.Web = enabled
	case launcher.ModeTerminal:
		s.cfg.Modes.Terminal = enabled
	case launcher.ModeFile:
		s.cfg.Modes.File = enabled
	}
}

// SearchEngine returns the configured engine identifier.
func (s *Settings) SearchEngine() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Modes.DefaultSearchEngine
}

// SetSearchEngine changes the engine identifier.
func (s *Settings) SetSearchEngine(engine string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Modes.DefaultSearchEngine = strings.ToLower(strings.TrimSpace(engine))
}

// ShowCommandSuggestions reports whether launch mode lists commands.
func (s *Settings) ShowCommandSuggestions() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Modes.ShowCommandSuggestions
}

// SetShowCommandSuggestions toggles the suggestion view.
func (s *Settings) SetShowCommandSuggestions(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Modes.ShowCommandSuggestions = show
}

// HistoryOptions returns the store options derived from the settings.
func (s *Settings) HistoryOptions() history.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return history.Options{
		MaxItems:     s.cfg.History.MaxItems,
		DisplayLimit: s.cfg.History.DisplayLimit,
	}
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("HOME")
}
