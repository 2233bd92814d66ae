package modes

import (
	"fmt"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

type fakeSession struct {
	mode   launcher.Mode
	text   string
	index  int
	resets int
}

func (f *fakeSession) Mode() launcher.Mode { return f.mode }
func (f *fakeSession) Text() string        { return f.text }
func (f *fakeSession) SelectedIndex() int  { return f.index }
func (f *fakeSession) ResetSelection() {
	f.resets++
	f.index = 0
}

type fakeSettings struct {
	engine string
}

func (f fakeSettings) ModeEnabled(launcher.Mode) bool { return true }
func (f fakeSettings) SearchEngine() string           { return f.engine }
func (f fakeSettings) ShowCommandSuggestions() bool   { return true }

type openRecorder struct {
	targets []string
	err     error
}

func (o *openRecorder) Open(target string) error {
	if o.err != nil {
		return o.err
	}
	o.targets = append(o.targets, target)
	return nil
}

func newHistory() *history.Store {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var tick, id int
	return history.New(nil, history.Options{
		Now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			id++
			return fmt.Sprintf("h%d", id)
		},
	})
}

func titles(items []launcher.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title()
	}
	return out
}
