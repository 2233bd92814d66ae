package modes

import (
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

const TerminalPrefix = "/t"

// SessionRunner starts a command in a new terminal session.
type SessionRunner interface {
	Run(command, dir string) (string, error)
}

// Terminal runs the typed command in a new tmux session.
type Terminal struct {
	launcher.PrefixMatcher

	runner  SessionRunner
	dir     string
	command string
}

// NewTerminal returns the "/t" controller. Sessions start in dir.
func NewTerminal(runner SessionRunner, dir string) *Terminal {
	return &Terminal{
		PrefixMatcher: launcher.PrefixMatcher{Value: TerminalPrefix},
		runner:        runner,
		dir:           dir,
	}
}

func (t *Terminal) Mode() launcher.Mode { return launcher.ModeTerminal }

func (t *Terminal) EnterMode(text string, session launcher.SessionView) {
	t.command = t.Argument(text)
	session.ResetSelection()
}

func (t *Terminal) HandleInput(text string, session launcher.SessionView) {
	t.command = t.Argument(text)
	session.ResetSelection()
}

func (t *Terminal) DisplayableItems() []launcher.Item {
	label := t.command
	if label == "" {
		label = "Open a shell"
	}
	return []launcher.Item{launcher.QueryItem{
		ID:     "terminal:run",
		Label:  label,
		Detail: "Run in a new tmux session",
		Glyph:  launcher.IconTerminal,
	}}
}

func (t *Terminal) ExecuteAction(index int, _ launcher.SessionView) bool {
	if index != 0 {
		return false
	}
	if _, err := t.runner.Run(t.command, t.dir); err != nil {
		events.Mode.Error(launcher.ModeTerminal.String(), err)
		logging.Error(err)
		return false
	}
	return true
}

func (t *Terminal) Cleanup(launcher.SessionView) {
	t.command = ""
}

func (t *Terminal) HideAfterAction() bool { return true }

func (t *Terminal) HelpText() []string {
	return []string{
		"/t <command>  run a command in a new tmux session",
		"/t on its own opens a shell",
	}
}
