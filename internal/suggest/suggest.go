// Package suggest resolves partially typed input to the launcher commands it
// could complete to.
package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

// ErrDuplicateTrigger is returned when a trigger is registered twice.
var ErrDuplicateTrigger = errors.New("trigger already registered")

// Command is a prefix-activated launcher command.
type Command struct {
	Trigger     string
	Mode        launcher.Mode
	Description string
}

// Suggestion pairs a command with its live enabled state.
type Suggestion struct {
	Command
	Enabled bool
}

var _ launcher.Item = Suggestion{}

func (s Suggestion) Key() string      { return "cmd:" + s.Trigger }
func (s Suggestion) Title() string    { return s.Trigger }
func (s Suggestion) Subtitle() string { return s.Description }
func (s Suggestion) Icon() string     { return launcher.IconCommand }

// Engine holds the registered commands in registration order.
type Engine struct {
	commands []Command
	triggers map[string]struct{}
	settings launcher.Settings
}

// New returns an engine that reads enabled state from settings. settings may
// be nil, in which case every command is reported enabled.
func New(settings launcher.Settings) *Engine {
	return &Engine{
		triggers: make(map[string]struct{}),
		settings: settings,
	}
}

// Register appends cmd. Triggers must be non-empty and unique.
func (e *Engine) Register(cmd Command) error {
	if cmd.Trigger == "" {
		return fmt.Errorf("command for %s: empty trigger", cmd.Mode)
	}
	if _, ok := e.triggers[cmd.Trigger]; ok {
		return fmt.Errorf("%q: %w", cmd.Trigger, ErrDuplicateTrigger)
	}
	e.triggers[cmd.Trigger] = struct{}{}
	e.commands = append(e.commands, cmd)
	return nil
}

// Commands returns every registered command in registration order.
func (e *Engine) Commands() []Command {
	out := make([]Command, len(e.commands))
	copy(out, e.commands)
	return out
}

// Suggest returns the commands whose trigger starts with input, compared
// case-sensitively, in registration order. Empty input matches every command.
// Disabled commands are included and flagged rather than filtered.
func (e *Engine) Suggest(input string) []Suggestion {
	out := make([]Suggestion, 0, len(e.commands))
	for _, cmd := range e.commands {
		if input != "" && !strings.HasPrefix(cmd.Trigger, input) {
			continue
		}
		out = append(out, Suggestion{Command: cmd, Enabled: e.enabled(cmd.Mode)})
	}
	events.Suggest.Show(input, len(out))
	return out
}

func (e *Engine) enabled(mode launcher.Mode) bool {
	if e.settings == nil {
		return true
	}
	return e.settings.ModeEnabled(mode)
}

var descriptions = map[launcher.Mode]string{
	launcher.ModeKill:     "Kill a running process",
	launcher.ModeSearch:   "Search the web",
	launcher.ModeWeb:      "Open a URL in the browser",
	launcher.ModeTerminal: "Run a command in a new tmux session",
	launcher.ModeFile:     "Browse and open files",
}

// DefaultCommands derives one command per prefixed controller in r.
func DefaultCommands(r *launcher.Registry) []Command {
	controllers := r.Controllers()
	out := make([]Command, 0, len(controllers))
	for _, c := range controllers {
		prefix, ok := c.Prefix()
		if !ok {
			continue
		}
		desc := descriptions[c.Mode()]
		if desc == "" {
			desc = c.Mode().Title()
		}
		out = append(out, Command{Trigger: prefix, Mode: c.Mode(), Description: desc})
	}
	return out
}
