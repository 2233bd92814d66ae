package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header                *lipgloss.Style
	ModeBadge             *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Subtitle              *lipgloss.Style
	Icon                  *lipgloss.Style
	SuggestionEnabled     *lipgloss.Style
	SuggestionDisabled    *lipgloss.Style
	Empty                 *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Help                  *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ModeBadge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	SuggestionEnabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SuggestionDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

var glyphs = map[string]string{
	launcher.IconSearch:   "⌕",
	launcher.IconHistory:  "↺",
	launcher.IconProcess:  "⚙",
	launcher.IconGlobe:    "◍",
	launcher.IconTerminal: "›",
	launcher.IconFolder:   "▸",
	launcher.IconFile:     "·",
	launcher.IconCommand:  "/",
}

// Glyph returns the symbol drawn for an item icon reference, or "" for
// unknown references.
func Glyph(icon string) string {
	return glyphs[icon]
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
