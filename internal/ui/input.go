package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

func (m *Model) updatePromptCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.promptCursor, cmd = m.promptCursor.Update(msg)
	return cmd
}

func (m *Model) notePromptCursorChange(before int) {
	if before != m.prompt.Cursor() {
		m.cursorDirty = true
	}
}

// handleTextInput applies prompt editing keys. It reports whether the key was
// consumed; text changes are forwarded to the dispatcher.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	before := m.prompt.Cursor()
	switch msg.String() {
	case "ctrl+u":
		if !m.prompt.Clear() {
			return false
		}
		events.Prompt.Cleared()
		m.textChanged(before)
		return true
	case "ctrl+w", "alt+backspace":
		if !m.prompt.DeleteWordBackward() {
			return false
		}
		events.Prompt.WordBackspace(m.prompt.Text())
		m.textChanged(before)
		return true
	case "ctrl+a":
		if !m.prompt.MoveStart() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.Cursor(m.prompt.Cursor())
		return true
	case "ctrl+e":
		if !m.prompt.MoveEnd() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.Cursor(m.prompt.Cursor())
		return true
	case "alt+b":
		if !m.prompt.MoveWordBackward() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.CursorWord(m.prompt.Cursor())
		return true
	case "alt+f":
		if !m.prompt.MoveWordForward() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.CursorWord(m.prompt.Cursor())
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.prompt.DeleteRuneBackward() {
			return false
		}
		events.Prompt.Backspace(m.prompt.Text())
		m.textChanged(before)
		return true
	case tea.KeyDelete, tea.KeyCtrlD:
		if !m.prompt.DeleteRuneForward() {
			return false
		}
		events.Prompt.Backspace(m.prompt.Text())
		m.textChanged(before)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.insertText(string(msg.Runes))
	case tea.KeySpace:
		return m.insertText(" ")
	case tea.KeyLeft:
		if !m.prompt.MoveRuneBackward() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.Cursor(m.prompt.Cursor())
		return true
	case tea.KeyRight:
		if !m.prompt.MoveRuneForward() {
			return false
		}
		m.notePromptCursorChange(before)
		events.Prompt.Cursor(m.prompt.Cursor())
		return true
	}
	return false
}

func (m *Model) insertText(text string) bool {
	before := m.prompt.Cursor()
	if !m.prompt.Insert(text) {
		return false
	}
	events.Prompt.Append(m.prompt.Text())
	m.textChanged(before)
	return true
}

// textChanged hands the prompt to the dispatcher, which runs one mode
// transition and resets the selection.
func (m *Model) textChanged(beforeCursor int) {
	m.notePromptCursorChange(beforeCursor)
	m.forceClearInfo()
	m.errMsg = ""
	m.dispatcher.HandleText(m.prompt.Text())
	m.syncViewport()
}

func (m *Model) promptLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.promptCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.promptCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.promptCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	runes := []rune(m.prompt.Text())
	if len(runes) == 0 {
		placeholder := []rune(placeholderText)
		if styles.FilterPlaceholder != nil {
			m.promptCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderPromptCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	pos := m.prompt.Cursor()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderPromptCursor(caretRune) + after
}

const placeholderText = "(type / for commands)"

func (m *Model) renderPromptCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.promptCursor.SetChar(char)

	base := m.promptCursor.TextStyle.Copy().Inline(true)
	if m.promptCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
