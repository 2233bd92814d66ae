package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/backend"
	"github.com/atomicstack/tmux-popup-launcher/internal/dispatch"
	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/modes"
	"github.com/atomicstack/tmux-popup-launcher/internal/opener"
	"github.com/atomicstack/tmux-popup-launcher/internal/settings"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
	"github.com/atomicstack/tmux-popup-launcher/internal/suggest"
	"github.com/atomicstack/tmux-popup-launcher/internal/tmux"
	"github.com/atomicstack/tmux-popup-launcher/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	SettingsPath string
	HistoryPath  string
	InitialQuery string
}

// Deps are the collaborators the launcher core is built from.
type Deps struct {
	Settings  *settings.Settings
	History   *history.Store
	Opener    opener.Opener
	Runner    modes.SessionRunner
	Processes state.ProcessStore
	Home      string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	set, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	historyPath := cfg.HistoryPath
	if historyPath == "" {
		historyPath = set.Config().History.Path
	}
	file := history.NewFileStore(historyPath)
	defer func() {
		if err := file.Close(); err != nil {
			logging.Error(fmt.Errorf("close history: %w", err))
		}
	}()
	store, err := history.Open(file, set.HistoryOptions())
	if err != nil {
		// The store is still usable; the broken file is replaced on next save.
		logging.Error(fmt.Errorf("load history: %w", err))
	}

	sys, err := opener.NewSystem()
	if err != nil {
		return fmt.Errorf("url opener: %w", err)
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	home, _ := os.UserHomeDir()

	processes := state.NewProcessStore()
	d, err := NewDispatcher(Deps{
		Settings:  set,
		History:   store,
		Opener:    sys,
		Runner:    tmux.NewRunner(socketPath),
		Processes: processes,
		Home:      home,
	})
	if err != nil {
		return err
	}

	var watcher *backend.Watcher
	if set.ModeEnabled(launcher.ModeKill) {
		watcher = backend.NewWatcher(set.Config().Backend.ProcessInterval)
		defer watcher.Stop()
	}

	model := ui.NewModel(d, ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Watcher:      watcher,
		Processes:    processes,
		InitialQuery: cfg.InitialQuery,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Exit(model.Text())
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewDispatcher registers every controller, derives the command suggestions
// from them and returns the dispatcher in launch mode.
func NewDispatcher(deps Deps) (*dispatch.Dispatcher, error) {
	reg := launcher.NewRegistry()
	controllers := []launcher.Controller{
		modes.NewKill(deps.Processes, nil),
		modes.NewSearch(deps.History, deps.Settings, deps.Opener),
		modes.NewWeb(deps.Opener),
		modes.NewTerminal(deps.Runner, deps.Home),
		modes.NewFile(deps.Opener, deps.Home),
	}
	for _, c := range controllers {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register %s controller: %w", c.Mode(), err)
		}
	}
	engine := suggest.New(deps.Settings)
	for _, cmd := range suggest.DefaultCommands(reg) {
		if err := engine.Register(cmd); err != nil {
			return nil, fmt.Errorf("register %s command: %w", cmd.Trigger, err)
		}
	}
	return dispatch.New(reg, deps.Settings, engine), nil
}
