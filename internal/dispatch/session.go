package dispatch

import "github.com/atomicstack/tmux-popup-launcher/internal/launcher"

// Session is the launcher state owned by a Dispatcher. Controllers receive it
// as a launcher.SessionView.
type Session struct {
	mode        launcher.Mode
	text        string
	selected    int
	suggestions bool
}

var _ launcher.SessionView = (*Session)(nil)

func (s Session) Mode() launcher.Mode { return s.mode }
func (s Session) Text() string        { return s.text }

// SelectedIndex returns the clamped selection, or launcher.NoSelection when
// the result list is empty.
func (s Session) SelectedIndex() int { return s.selected }

// ResetSelection moves the selection back to the first row. The dispatcher
// clamps it once the controller has rebuilt its items.
func (s *Session) ResetSelection() { s.selected = 0 }

// SuggestionsShowing reports whether the command suggestion view is active.
func (s Session) SuggestionsShowing() bool { return s.suggestions }

func (s *Session) clamp(n int) {
	if n <= 0 {
		s.selected = launcher.NoSelection
		return
	}
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= n {
		s.selected = n - 1
	}
}
