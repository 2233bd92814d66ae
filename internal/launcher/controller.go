package launcher

import "strings"

// SessionView is the read-mostly view of the launcher session handed to
// controllers. ResetSelection is the only mutation they may perform.
type SessionView interface {
	Mode() Mode
	Text() string
	SelectedIndex() int
	ResetSelection()
}

// Settings exposes the user preferences the dispatch core reads. It is never
// written through this interface.
type Settings interface {
	ModeEnabled(Mode) bool
	SearchEngine() string
	ShowCommandSuggestions() bool
}

// Controller implements one prefix-activated mode.
//
// Lifecycle: EnterMode, then zero or more HandleInput calls, then Cleanup.
// The dispatcher never calls HandleInput on an inactive controller and never
// re-enters one without an intervening Cleanup.
type Controller interface {
	Mode() Mode
	Prefix() (string, bool)
	ShouldActivate(text string) bool
	EnterMode(text string, session SessionView)
	HandleInput(text string, session SessionView)
	DisplayableItems() []Item
	// ExecuteAction runs the item at index. Out of range indexes and
	// collaborator failures report false.
	ExecuteAction(index int, session SessionView) bool
	ShouldExit(text string, session SessionView) bool
	Cleanup(session SessionView)
	HideAfterAction() bool
}

// Refresher is implemented by controllers whose items depend on data that
// changes in the background. Refresh recomputes items for the current text
// without resetting the selection.
type Refresher interface {
	Refresh(session SessionView)
}

// Remover is implemented by controllers that can delete the item at index.
type Remover interface {
	RemoveItem(index int, session SessionView) bool
}

// Helper is implemented by controllers that provide footer help lines.
type Helper interface {
	HelpText() []string
}

// PrefixMatcher supplies the default prefix rules for a controller. Embed it
// and set Value to the trigger, e.g. "/s".
type PrefixMatcher struct {
	Value string
}

func (p PrefixMatcher) Prefix() (string, bool) {
	return p.Value, p.Value != ""
}

func (p PrefixMatcher) ShouldActivate(text string) bool {
	return p.Value != "" && strings.HasPrefix(text, p.Value)
}

func (p PrefixMatcher) ShouldExit(text string, _ SessionView) bool {
	return !p.ShouldActivate(text)
}

// Argument returns what follows the prefix and its separating space, trimmed
// of surrounding whitespace. Text that does not start with prefix+" " has no
// argument, so "/sfoo" yields "".
func (p PrefixMatcher) Argument(text string) string {
	rest, ok := strings.CutPrefix(text, p.Value+" ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}
