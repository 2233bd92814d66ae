package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		events.UI.Quit("interrupt")
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "tab":
		if m.dispatcher.Session().SuggestionsShowing() {
			return m.handleEnterKey()
		}
	case "ctrl+x":
		m.removeSelected()
	case "up", "ctrl+p":
		m.dispatcher.MoveUp()
		m.noteSelection()
	case "down", "ctrl+n":
		m.dispatcher.MoveDown()
		m.noteSelection()
	case "pgup":
		m.dispatcher.PageUp(m.maxVisibleItems())
		m.noteSelection()
	case "pgdown":
		m.dispatcher.PageDown(m.maxVisibleItems())
		m.noteSelection()
	case "home":
		m.dispatcher.SelectFirst()
		m.noteSelection()
	case "end":
		m.dispatcher.SelectLast()
		m.noteSelection()
	}
	return nil
}

// handleEscapeKey clears the prompt, which also leaves the active mode. An
// empty prompt closes the popup.
func (m *Model) handleEscapeKey() tea.Cmd {
	before := m.prompt.Cursor()
	if !m.prompt.Clear() {
		events.UI.Quit("escape")
		return tea.Quit
	}
	events.Prompt.Cleared()
	m.textChanged(before)
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	session := m.dispatcher.Session()
	events.UI.Activate(session.Mode().String(), session.SelectedIndex())
	outcome := m.dispatcher.Activate()
	if outcome.TextChanged {
		before := m.prompt.Cursor()
		m.prompt.SetText(outcome.Text)
		m.notePromptCursorChange(before)
	}
	m.syncViewport()
	if outcome.Dismiss {
		events.UI.Quit("dismiss")
		return tea.Quit
	}
	return nil
}

func (m *Model) removeSelected() {
	if m.dispatcher.RemoveSelected() {
		m.setInfo("Removed entry")
	}
	m.syncViewport()
}

func (m *Model) noteSelection() {
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.viewport.Follow(m.dispatcher.Session().SelectedIndex(), len(m.dispatcher.Items()), m.maxVisibleItems())
}
