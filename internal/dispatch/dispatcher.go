// Package dispatch routes launcher input to the mode controller that owns it
// and keeps the session state consistent across mode transitions.
package dispatch

import (
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/suggest"
)

// Outcome reports the result of Activate.
type Outcome struct {
	// Executed is true when a controller action ran successfully.
	Executed bool
	// Dismiss is true when the launcher should hide after the action.
	Dismiss bool
	// Text is the new input text when TextChanged is set.
	Text        string
	TextChanged bool
}

// Dispatcher is the mode state machine. It is not safe for concurrent use;
// all calls are expected from the UI goroutine.
type Dispatcher struct {
	registry  *launcher.Registry
	settings  launcher.Settings
	suggester *suggest.Engine

	session     Session
	active      launcher.Controller
	suggestions []suggest.Suggestion
	listeners   []Listener
}

// New returns a dispatcher in launch mode with empty text. suggester may be
// nil to disable the suggestion view.
func New(registry *launcher.Registry, settings launcher.Settings, suggester *suggest.Engine) *Dispatcher {
	d := &Dispatcher{
		registry:  registry,
		settings:  settings,
		suggester: suggester,
		session:   Session{mode: launcher.ModeLaunch, selected: launcher.NoSelection},
	}
	d.updateSuggestions()
	d.session.clamp(d.itemCount())
	return d
}

// Subscribe registers l for every subsequent event.
func (d *Dispatcher) Subscribe(l Listener) {
	if l != nil {
		d.listeners = append(d.listeners, l)
	}
}

// Session returns a copy of the current session state.
func (d *Dispatcher) Session() Session {
	return d.session
}

// Active returns the active controller, or nil in launch mode.
func (d *Dispatcher) Active() launcher.Controller {
	return d.active
}

// Items returns the rows currently on display: the active controller's items,
// or the command suggestions in launch mode.
func (d *Dispatcher) Items() []launcher.Item {
	if d.active != nil {
		return d.active.DisplayableItems()
	}
	if !d.session.suggestions {
		return nil
	}
	out := make([]launcher.Item, len(d.suggestions))
	for i, s := range d.suggestions {
		out[i] = s
	}
	return out
}

// Suggestions returns the suggestion list shown in launch mode.
func (d *Dispatcher) Suggestions() []suggest.Suggestion {
	out := make([]suggest.Suggestion, len(d.suggestions))
	copy(out, d.suggestions)
	return out
}

// HelpText returns the active controller's help lines, if it has any.
func (d *Dispatcher) HelpText() []string {
	if h, ok := d.active.(launcher.Helper); ok {
		return h.HelpText()
	}
	return nil
}

// HandleText runs one dispatch transition for the new input text.
func (d *Dispatcher) HandleText(text string) {
	d.session.text = text

	if d.active != nil && d.active.ShouldExit(text, &d.session) {
		d.exitActive()
	}

	target := d.registry.Resolve(text, d.modeEnabled)
	switch {
	case d.active != nil && d.active.Mode() == target:
		d.active.HandleInput(text, &d.session)
		events.Mode.Input(target.String(), text, len(d.active.DisplayableItems()))
	default:
		if d.active != nil {
			d.exitActive()
		}
		if target != launcher.ModeLaunch {
			d.enter(target, text)
		}
	}

	d.updateSuggestions()
	d.session.clamp(d.itemCount())
	d.emit(EventItemsChanged, d.session.selected)
}

// Activate executes the selected row. In launch mode it applies the selected
// suggestion; otherwise it forwards the selection to the active controller.
func (d *Dispatcher) Activate() Outcome {
	index := d.session.selected
	if index == launcher.NoSelection {
		return Outcome{}
	}
	if d.active == nil {
		if !d.session.suggestions || index >= len(d.suggestions) {
			return Outcome{}
		}
		trigger := d.suggestions[index].Trigger
		events.Suggest.Apply(trigger)
		d.HandleText(trigger)
		d.emit(EventSuggestionApplied, index)
		return Outcome{Text: trigger, TextChanged: true}
	}

	mode := d.active.Mode()
	ok := d.active.ExecuteAction(index, &d.session)
	events.Mode.Execute(mode.String(), index, ok)
	if !ok {
		d.emit(EventExecuteFailed, index)
		return Outcome{}
	}
	d.emit(EventExecuted, index)
	// Executing may change the controller's items (history, process list).
	d.session.clamp(d.itemCount())
	d.emit(EventItemsChanged, d.session.selected)
	if !d.active.HideAfterAction() {
		return Outcome{Executed: true}
	}
	events.Mode.Dismiss(mode.String())
	d.emit(EventDismiss, index)
	return Outcome{Executed: true, Dismiss: true}
}

// Select moves the selection to index, clamped to the list.
func (d *Dispatcher) Select(index int) {
	before := d.session.selected
	d.session.selected = index
	d.session.clamp(d.itemCount())
	d.noteSelection(before)
}

// MoveUp moves the selection up one row, wrapping to the bottom.
func (d *Dispatcher) MoveUp() {
	n := d.itemCount()
	if n == 0 {
		return
	}
	before := d.session.selected
	if d.session.selected > 0 {
		d.session.selected--
	} else {
		d.session.selected = n - 1
	}
	d.noteSelection(before)
}

// MoveDown moves the selection down one row, wrapping to the top.
func (d *Dispatcher) MoveDown() {
	n := d.itemCount()
	if n == 0 {
		return
	}
	before := d.session.selected
	if d.session.selected < n-1 {
		d.session.selected++
	} else {
		d.session.selected = 0
	}
	d.noteSelection(before)
}

// MoveSelection moves the selection by delta rows without wrapping.
func (d *Dispatcher) MoveSelection(delta int) {
	d.Select(d.session.selected + delta)
}

// PageUp moves the selection up by pageSize rows.
func (d *Dispatcher) PageUp(pageSize int) {
	d.MoveSelection(-d.pageSize(pageSize))
}

// PageDown moves the selection down by pageSize rows.
func (d *Dispatcher) PageDown(pageSize int) {
	d.MoveSelection(d.pageSize(pageSize))
}

// SelectFirst selects the first row.
func (d *Dispatcher) SelectFirst() {
	d.Select(0)
}

// SelectLast selects the last row.
func (d *Dispatcher) SelectLast() {
	d.Select(d.itemCount() - 1)
}

// RemoveSelected asks the active controller to delete the selected row.
func (d *Dispatcher) RemoveSelected() bool {
	remover, ok := d.active.(launcher.Remover)
	if !ok || d.session.selected == launcher.NoSelection {
		return false
	}
	if !remover.RemoveItem(d.session.selected, &d.session) {
		return false
	}
	d.session.clamp(d.itemCount())
	d.emit(EventItemsChanged, d.session.selected)
	return true
}

// Refresh asks the active controller to recompute its items from fresh
// background data. The selection is kept where possible.
func (d *Dispatcher) Refresh() {
	refresher, ok := d.active.(launcher.Refresher)
	if !ok {
		return
	}
	refresher.Refresh(&d.session)
	d.session.clamp(d.itemCount())
	d.emit(EventItemsChanged, d.session.selected)
}

// Reset cleans up the active controller and returns to an empty launch state.
func (d *Dispatcher) Reset() {
	d.HandleText("")
}

func (d *Dispatcher) enter(mode launcher.Mode, text string) {
	c, ok := d.registry.Controller(mode)
	if !ok {
		return
	}
	d.active = c
	d.session.mode = mode
	c.EnterMode(text, &d.session)
	events.Mode.Enter(mode.String(), text)
	d.emit(EventModeEntered, d.session.selected)
}

func (d *Dispatcher) exitActive() {
	c := d.active
	mode := c.Mode()
	c.Cleanup(&d.session)
	d.active = nil
	d.session.mode = launcher.ModeLaunch
	events.Mode.Exit(mode.String(), d.session.text)
	d.emitFor(EventModeExited, mode, d.session.selected)
}

func (d *Dispatcher) updateSuggestions() {
	d.suggestions = nil
	d.session.suggestions = false
	if d.active != nil || d.suggester == nil {
		return
	}
	if d.settings != nil && !d.settings.ShowCommandSuggestions() {
		return
	}
	d.suggestions = d.suggester.Suggest(d.session.text)
	d.session.suggestions = true
}

func (d *Dispatcher) modeEnabled(mode launcher.Mode) bool {
	if d.settings == nil {
		return true
	}
	return d.settings.ModeEnabled(mode)
}

func (d *Dispatcher) itemCount() int {
	if d.active != nil {
		return len(d.active.DisplayableItems())
	}
	if d.session.suggestions {
		return len(d.suggestions)
	}
	return 0
}

func (d *Dispatcher) pageSize(size int) int {
	n := d.itemCount()
	if size <= 0 || size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	return size
}

func (d *Dispatcher) noteSelection(before int) {
	if before == d.session.selected {
		return
	}
	events.UI.Select(d.session.mode.String(), d.session.selected)
	d.emit(EventSelectionChanged, d.session.selected)
}

func (d *Dispatcher) emit(kind EventKind, index int) {
	d.emitFor(kind, d.session.mode, index)
}

func (d *Dispatcher) emitFor(kind EventKind, mode launcher.Mode, index int) {
	if len(d.listeners) == 0 {
		return
	}
	evt := Event{Kind: kind, Mode: mode, Index: index, Text: d.session.text}
	for _, l := range d.listeners {
		l(evt)
	}
}
