package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/suggest"
	"github.com/atomicstack/tmux-popup-launcher/internal/theme"
)

const (
	headerTitle = "launcher"
	keyHints    = "↑/↓ move  enter run  tab complete  ctrl+x remove  esc clear  ctrl+c quit"
)

type segment struct {
	text  string
	style *lipgloss.Style
}

type styledLine struct {
	text     string
	style    *lipgloss.Style
	segments []segment
	raw      bool // text already carries ANSI escapes
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	lines = append(lines, m.itemLines()...)
	if help := m.dispatcher.HelpText(); len(help) > 0 {
		lines = append(lines, styledLine{})
		for _, line := range help {
			lines = append(lines, styledLine{text: line, style: styles.Help})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: keyHints, style: styles.Footer})
	}
	// The bottom bar takes two rows: status line and prompt.
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottom := []styledLine{m.statusLine(), {text: m.promptLine(), raw: true}}
	lines = append(lines, applyWidth(bottom, m.width)...)
	return renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	mode := m.dispatcher.Session().Mode()
	if mode == launcher.ModeLaunch {
		return styledLine{text: headerTitle, style: styles.Header}
	}
	return styledLine{segments: []segment{
		{text: headerTitle + " ", style: styles.Header},
		{text: " " + mode.Title() + " ", style: styles.ModeBadge},
	}}
}

func (m *Model) itemLines() []styledLine {
	items := m.dispatcher.Items()
	if len(items) == 0 {
		return []styledLine{{text: m.emptyText(), style: styles.Empty}}
	}
	selected := m.dispatcher.Session().SelectedIndex()
	m.viewport.Follow(selected, len(items), m.maxVisibleItems())
	start, end := m.viewport.Window(len(items), m.maxVisibleItems())
	lines := make([]styledLine, 0, end-start)
	for idx := start; idx < end; idx++ {
		lines = append(lines, buildItemLine(items[idx], idx == selected, m.width))
	}
	return lines
}

func (m *Model) emptyText() string {
	session := m.dispatcher.Session()
	text := session.Text()
	if arg, ok := m.dispatcher.Active().(interface{ Argument(string) string }); ok {
		text = arg.Argument(text)
	}
	text = strings.TrimSpace(text)
	switch {
	case session.SuggestionsShowing():
		return "No matching commands"
	case session.Mode() == launcher.ModeLaunch:
		return "Type a command such as /s to start"
	case text == "":
		return "(no entries)"
	default:
		return fmt.Sprintf("No results for %q", text)
	}
}

// buildItemLine renders one result row. When width is positive the row is
// padded so the selected background spans the container.
func buildItemLine(item launcher.Item, selected bool, width int) styledLine {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	subtitleStyle := styles.Subtitle
	iconStyle := styles.Icon
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		subtitleStyle = styles.SelectedItem
		iconStyle = styles.SelectedItem
	}
	segs := []segment{{text: "▌", style: indicatorStyle}, {text: " ", style: lineStyle}}
	if s, ok := item.(suggest.Suggestion); ok {
		mark, markStyle := "✓ ", styles.SuggestionEnabled
		if !s.Enabled {
			mark, markStyle = "✗ ", styles.SuggestionDisabled
		}
		segs = append(segs, segment{text: mark, style: markStyle})
	} else if glyph := theme.Glyph(item.Icon()); glyph != "" {
		segs = append(segs, segment{text: glyph + " ", style: iconStyle})
	}
	segs = append(segs, segment{text: item.Title(), style: lineStyle})
	if sub := item.Subtitle(); sub != "" {
		segs = append(segs, segment{text: "  " + sub, style: subtitleStyle})
	}
	if width > 0 {
		if pad := width - segmentsWidth(segs); pad > 0 {
			segs = append(segs, segment{text: strings.Repeat(" ", pad), style: lineStyle})
		}
	}
	return styledLine{segments: segs}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	if warn, msg := m.hasBackendIssue(); warn && m.dispatcher.Session().Mode() == launcher.ModeKill {
		return styledLine{text: "Process list unavailable: " + msg, style: styles.Error}
	}
	return styledLine{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, status line and prompt
	if help := m.dispatcher.HelpText(); len(help) > 0 {
		used += 1 + len(help)
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		switch {
		case line.raw:
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width), "…")
			}
		case line.segments != nil:
			line.segments = fitSegments(line.segments, width)
		default:
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func fitSegments(segs []segment, width int) []segment {
	if segmentsWidth(segs) <= width {
		return segs
	}
	out := make([]segment, 0, len(segs))
	remain := width
	for _, seg := range segs {
		n := len([]rune(seg.text))
		if n < remain {
			out = append(out, seg)
			remain -= n
			continue
		}
		seg.text = truncateText(seg.text, remain)
		out = append(out, seg)
		break
	}
	return out
}

func segmentsWidth(segs []segment) int {
	total := 0
	for _, seg := range segs {
		total += len([]rune(seg.text))
	}
	return total
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line.raw:
			out[i] = line.text
		case line.segments != nil:
			var b strings.Builder
			for _, seg := range line.segments {
				b.WriteString(renderStyled(seg.style, seg.text))
			}
			out[i] = b.String()
		default:
			out[i] = renderStyled(line.style, line.text)
		}
	}
	return strings.Join(out, "\n")
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
