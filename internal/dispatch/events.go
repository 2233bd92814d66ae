package dispatch

import "github.com/atomicstack/tmux-popup-launcher/internal/launcher"

// EventKind identifies a state change published by the dispatcher.
type EventKind int

const (
	EventModeEntered EventKind = iota
	EventModeExited
	EventItemsChanged
	EventSelectionChanged
	EventExecuted
	EventExecuteFailed
	EventSuggestionApplied
	EventDismiss
)

var eventNames = map[EventKind]string{
	EventModeEntered:       "mode-entered",
	EventModeExited:        "mode-exited",
	EventItemsChanged:      "items-changed",
	EventSelectionChanged:  "selection-changed",
	EventExecuted:          "executed",
	EventExecuteFailed:     "execute-failed",
	EventSuggestionApplied: "suggestion-applied",
	EventDismiss:           "dismiss",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event describes one transition. Index is the selection involved, where
// relevant; Text is the session text after the transition.
type Event struct {
	Kind  EventKind
	Mode  launcher.Mode
	Index int
	Text  string
}

// Listener receives events synchronously on the goroutine driving the
// dispatcher, after the transition has completed.
type Listener func(Event)
