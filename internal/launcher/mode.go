package launcher

// Mode identifies a launcher mode. The declaration order is the activation
// priority used by Registry.Resolve.
type Mode int

const (
	ModeLaunch Mode = iota
	ModeKill
	ModeSearch
	ModeWeb
	ModeTerminal
	ModeFile
)

// NoSelection is the selected index reported when the result list is empty.
const NoSelection = -1

var modeNames = map[Mode]string{
	ModeLaunch:   "launch",
	ModeKill:     "kill",
	ModeSearch:   "search",
	ModeWeb:      "web",
	ModeTerminal: "terminal",
	ModeFile:     "file",
}

var modeTitles = map[Mode]string{
	ModeLaunch:   "Launcher",
	ModeKill:     "Kill Process",
	ModeSearch:   "Web Search",
	ModeWeb:      "Open URL",
	ModeTerminal: "Terminal",
	ModeFile:     "Open File",
}

// Modes returns every mode in priority order.
func Modes() []Mode {
	return []Mode{ModeLaunch, ModeKill, ModeSearch, ModeWeb, ModeTerminal, ModeFile}
}

// String returns the lower-case key used in settings and logs.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Title returns the human readable mode name shown in the header.
func (m Mode) Title() string {
	if title, ok := modeTitles[m]; ok {
		return title
	}
	return m.String()
}

// ParseMode maps a settings key back to its mode.
func ParseMode(name string) (Mode, bool) {
	for mode, n := range modeNames {
		if n == name {
			return mode, true
		}
	}
	return ModeLaunch, false
}
