package launcher

// Item is a single row the rendering layer can display. Keys are unique within
// one list; list order is the position a controller receives in ExecuteAction.
type Item interface {
	Key() string
	Title() string
	Subtitle() string
	Icon() string
}

// QueryItem is the transient "run what I typed" row a controller places ahead
// of its other results.
type QueryItem struct {
	ID     string
	Label  string
	Detail string
	Glyph  string
}

func (q QueryItem) Key() string      { return q.ID }
func (q QueryItem) Title() string    { return q.Label }
func (q QueryItem) Subtitle() string { return q.Detail }
func (q QueryItem) Icon() string     { return q.Glyph }

// Icon references understood by the theme.
const (
	IconSearch   = "search"
	IconHistory  = "history"
	IconProcess  = "process"
	IconGlobe    = "globe"
	IconTerminal = "terminal"
	IconFolder   = "folder"
	IconFile     = "file"
	IconCommand  = "command"
)
