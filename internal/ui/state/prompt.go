// Package state holds the editing and scrolling state behind the launcher UI.
package state

import "unicode"

// Prompt is the editable input line with a rune-indexed cursor.
type Prompt struct {
	text   []rune
	cursor int
}

// Text returns the current input.
func (p *Prompt) Text() string { return string(p.text) }

// Cursor returns the rune offset of the caret.
func (p *Prompt) Cursor() int {
	if p.cursor < 0 {
		return 0
	}
	if p.cursor > len(p.text) {
		return len(p.text)
	}
	return p.cursor
}

// Set replaces the input and places the caret at cursor, clamped.
func (p *Prompt) Set(text string, cursor int) {
	p.text = []rune(text)
	p.cursor = cursor
	p.cursor = p.Cursor()
}

// SetText replaces the input and moves the caret to the end.
func (p *Prompt) SetText(text string) {
	p.Set(text, len([]rune(text)))
}

// Clear empties the input. It reports whether anything was removed.
func (p *Prompt) Clear() bool {
	if len(p.text) == 0 {
		return false
	}
	p.Set("", 0)
	return true
}

// Insert adds text at the caret.
func (p *Prompt) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	pos := p.Cursor()
	updated := make([]rune, 0, len(p.text)+len(insert))
	updated = append(updated, p.text[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, p.text[pos:]...)
	p.text = updated
	p.cursor = pos + len(insert)
	return true
}

// DeleteRuneBackward removes the rune before the caret.
func (p *Prompt) DeleteRuneBackward() bool {
	pos := p.Cursor()
	if pos == 0 {
		return false
	}
	p.text = append(p.text[:pos-1:pos-1], p.text[pos:]...)
	p.cursor = pos - 1
	return true
}

// DeleteRuneForward removes the rune under the caret.
func (p *Prompt) DeleteRuneForward() bool {
	pos := p.Cursor()
	if pos >= len(p.text) {
		return false
	}
	p.text = append(p.text[:pos:pos], p.text[pos+1:]...)
	return true
}

// DeleteWordBackward removes the word before the caret along with any
// whitespace between it and the caret.
func (p *Prompt) DeleteWordBackward() bool {
	pos := p.Cursor()
	if pos == 0 {
		return false
	}
	i := p.wordStart(pos)
	p.text = append(p.text[:i:i], p.text[pos:]...)
	p.cursor = i
	return true
}

func (p *Prompt) MoveStart() bool {
	if p.Cursor() == 0 {
		return false
	}
	p.cursor = 0
	return true
}

func (p *Prompt) MoveEnd() bool {
	if p.Cursor() == len(p.text) {
		return false
	}
	p.cursor = len(p.text)
	return true
}

func (p *Prompt) MoveRuneBackward() bool {
	pos := p.Cursor()
	if pos == 0 {
		return false
	}
	p.cursor = pos - 1
	return true
}

func (p *Prompt) MoveRuneForward() bool {
	pos := p.Cursor()
	if pos >= len(p.text) {
		return false
	}
	p.cursor = pos + 1
	return true
}

func (p *Prompt) MoveWordBackward() bool {
	pos := p.Cursor()
	i := p.wordStart(pos)
	if i == pos {
		return false
	}
	p.cursor = i
	return true
}

func (p *Prompt) MoveWordForward() bool {
	pos := p.Cursor()
	i := pos
	for i < len(p.text) && !unicode.IsSpace(p.text[i]) {
		i++
	}
	for i < len(p.text) && unicode.IsSpace(p.text[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.cursor = i
	return true
}

func (p *Prompt) wordStart(pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(p.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(p.text[i-1]) {
		i--
	}
	return i
}
