package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/dispatch"
	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/modes"
	"github.com/atomicstack/tmux-popup-launcher/internal/process"
	"github.com/atomicstack/tmux-popup-launcher/internal/settings"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
	"github.com/atomicstack/tmux-popup-launcher/internal/suggest"
)

type openRecorder struct {
	targets []string
}

func (o *openRecorder) Open(target string) error {
	o.targets = append(o.targets, target)
	return nil
}

type fixture struct {
	model     *Model
	harness   *Harness
	settings  *settings.Settings
	history   *history.Store
	processes state.ProcessStore
	opened    *openRecorder
	killed    []int
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		settings:  settings.Defaults(),
		processes: state.NewProcessStore(),
		opened:    &openRecorder{},
	}
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var tick, id int
	f.history = history.New(nil, history.Options{
		Now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			id++
			return fmt.Sprintf("h%d", id)
		},
	})
	f.processes.SetEntries([]process.Process{
		{PID: 11, User: "me", Name: "vim"},
		{PID: 12, User: "me", Name: "htop"},
	})

	reg := launcher.NewRegistry()
	controllers := []launcher.Controller{
		modes.NewKill(f.processes, func(pid int) error {
			f.killed = append(f.killed, pid)
			return nil
		}),
		modes.NewSearch(f.history, f.settings, f.opened),
		modes.NewWeb(f.opened),
	}
	for _, c := range controllers {
		if err := reg.Register(c); err != nil {
			t.Fatalf("register %s: %v", c.Mode(), err)
		}
	}
	engine := suggest.New(f.settings)
	for _, cmd := range suggest.DefaultCommands(reg) {
		if err := engine.Register(cmd); err != nil {
			t.Fatalf("register command: %v", err)
		}
	}
	opts.Processes = f.processes
	f.model = NewModel(dispatch.New(reg, f.settings, engine), opts)
	f.harness = NewHarness(f.model)
	return f
}

func (f *fixture) session() dispatch.Session {
	return f.model.dispatcher.Session()
}
