package modes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/format/table"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/process"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
)

const KillPrefix = "/k"

var processColumns = []table.Column{
	{Align: table.AlignRight},
	{Align: table.AlignLeft, MaxWidth: 48},
}

// ProcessItem is one row of the kill list.
type ProcessItem struct {
	process.Process
	Label string
}

func (p ProcessItem) Key() string      { return "pid:" + strconv.Itoa(p.PID) }
func (p ProcessItem) Title() string    { return p.Label }
func (p ProcessItem) Subtitle() string { return p.User }
func (p ProcessItem) Icon() string     { return launcher.IconProcess }

// Kill lists processes from the backend snapshot and terminates the selected
// one. The launcher stays open so several processes can be killed in a row.
type Kill struct {
	launcher.PrefixMatcher

	store state.ProcessStore
	kill  func(pid int) error

	filter string
	rows   []ProcessItem
}

// NewKill returns the "/k" controller. killFn defaults to process.Kill.
func NewKill(store state.ProcessStore, killFn func(pid int) error) *Kill {
	if killFn == nil {
		killFn = process.Kill
	}
	return &Kill{
		PrefixMatcher: launcher.PrefixMatcher{Value: KillPrefix},
		store:         store,
		kill:          killFn,
	}
}

func (k *Kill) Mode() launcher.Mode { return launcher.ModeKill }

func (k *Kill) EnterMode(text string, session launcher.SessionView) {
	k.filter = k.Argument(text)
	k.rebuild()
	session.ResetSelection()
}

func (k *Kill) HandleInput(text string, session launcher.SessionView) {
	k.filter = k.Argument(text)
	k.rebuild()
	session.ResetSelection()
}

// Refresh rebuilds the list from the latest snapshot.
func (k *Kill) Refresh(launcher.SessionView) {
	k.rebuild()
}

func (k *Kill) rebuild() {
	needle := strings.ToLower(k.filter)
	var matched []process.Process
	for _, p := range k.store.Entries() {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strconv.Itoa(p.PID), needle) {
			continue
		}
		matched = append(matched, p)
	}
	if len(matched) == 0 {
		k.rows = nil
		return
	}
	cells := make([][]string, len(matched))
	for i, p := range matched {
		cells[i] = []string{strconv.Itoa(p.PID), p.Name}
	}
	labels := table.Format(cells, processColumns)
	k.rows = make([]ProcessItem, len(matched))
	for i, p := range matched {
		k.rows[i] = ProcessItem{Process: p, Label: labels[i]}
	}
}

func (k *Kill) DisplayableItems() []launcher.Item {
	items := make([]launcher.Item, len(k.rows))
	for i, row := range k.rows {
		items[i] = row
	}
	return items
}

func (k *Kill) ExecuteAction(index int, _ launcher.SessionView) bool {
	if index < 0 || index >= len(k.rows) {
		return false
	}
	target := k.rows[index]
	if err := k.kill(target.PID); err != nil {
		events.Mode.Error(launcher.ModeKill.String(), err)
		logging.Error(fmt.Errorf("kill %s: %w", target.Name, err))
		return false
	}
	k.rows = append(k.rows[:index:index], k.rows[index+1:]...)
	return true
}

func (k *Kill) Cleanup(launcher.SessionView) {
	k.filter = ""
	k.rows = nil
}

func (k *Kill) HideAfterAction() bool { return false }

func (k *Kill) HelpText() []string {
	return []string{
		"/k <name or pid>  filter running processes",
		"enter sends SIGTERM to the selected process",
	}
}
