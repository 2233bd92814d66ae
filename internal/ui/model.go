package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-launcher/internal/backend"
	"github.com/atomicstack/tmux-popup-launcher/internal/dispatch"
	"github.com/atomicstack/tmux-popup-launcher/internal/state"
	"github.com/atomicstack/tmux-popup-launcher/internal/theme"
	uistate "github.com/atomicstack/tmux-popup-launcher/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Watcher      *backend.Watcher
	Processes    state.ProcessStore
	InitialQuery string
}

// Model implements the Bubble Tea model for the launcher popup.
type Model struct {
	dispatcher *dispatch.Dispatcher
	processes  state.ProcessStore

	prompt       uistate.Prompt
	viewport     uistate.Viewport
	promptCursor cursor.Model
	cursorDirty  bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around d.
func NewModel(d *dispatch.Dispatcher, opts Options) *Model {
	m := &Model{
		dispatcher:   d,
		processes:    opts.Processes,
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.promptCursor = c
	d.Subscribe(m.handleDispatchEvent)
	if opts.InitialQuery != "" {
		m.prompt.SetText(opts.InitialQuery)
		d.HandleText(m.prompt.Text())
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.promptCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updatePromptCursor(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Text returns the prompt contents.
func (m *Model) Text() string { return m.prompt.Text() }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.cursorDirty {
		m.cursorDirty = false
		m.promptCursor.Blink = false
		if cmd := m.promptCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleDispatchEvent(evt dispatch.Event) {
	switch evt.Kind {
	case dispatch.EventExecuteFailed:
		m.errMsg = evt.Mode.Title() + ": action failed"
	case dispatch.EventExecuted:
		m.errMsg = ""
		if m.verbose {
			m.setInfo(evt.Mode.Title() + ": done")
		}
	case dispatch.EventModeEntered, dispatch.EventModeExited:
		m.errMsg = ""
		m.viewport.Offset = 0
	}
}
