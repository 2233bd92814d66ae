package modes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/opener"
)

const (
	FilePrefix = "/o"
	// FileLimit caps the number of entries listed for one directory.
	FileLimit = 50
)

// FileItem is a directory entry offered by the file mode.
type FileItem struct {
	Path  string
	Name  string
	IsDir bool
}

func (f FileItem) Key() string { return "file:" + f.Path }

func (f FileItem) Title() string {
	if f.IsDir {
		return f.Name + string(filepath.Separator)
	}
	return f.Name
}

func (f FileItem) Subtitle() string { return filepath.Dir(f.Path) }

func (f FileItem) Icon() string {
	if f.IsDir {
		return launcher.IconFolder
	}
	return launcher.IconFile
}

// File browses the filesystem and opens the chosen entry with the system
// handler. Input is a path; the part after the last separator filters the
// entries of the directory before it.
type File struct {
	launcher.PrefixMatcher

	opener  opener.Opener
	home    string
	readDir func(string) ([]os.DirEntry, error)

	entries []FileItem
	err     error
}

// NewFile returns the "/o" controller. Relative paths resolve against home.
func NewFile(op opener.Opener, home string) *File {
	return &File{
		PrefixMatcher: launcher.PrefixMatcher{Value: FilePrefix},
		opener:        op,
		home:          home,
		readDir:       os.ReadDir,
	}
}

func (f *File) Mode() launcher.Mode { return launcher.ModeFile }

func (f *File) EnterMode(text string, session launcher.SessionView) {
	f.update(text)
	session.ResetSelection()
}

func (f *File) HandleInput(text string, session launcher.SessionView) {
	f.update(text)
	session.ResetSelection()
}

// Refresh rereads the directory for the current input.
func (f *File) Refresh(session launcher.SessionView) {
	f.update(session.Text())
}

func (f *File) update(text string) {
	dir, fragment := f.split(f.Argument(text))
	f.entries, f.err = f.list(dir, fragment)
	if f.err != nil {
		events.Mode.Error(launcher.ModeFile.String(), f.err)
	}
}

// split separates the directory part of arg from the trailing fragment and
// resolves the directory against home.
func (f *File) split(arg string) (string, string) {
	if arg == "~" {
		arg = "~/"
	}
	dir, fragment := "", arg
	if idx := strings.LastIndex(arg, "/"); idx >= 0 {
		dir, fragment = arg[:idx+1], arg[idx+1:]
	}
	switch {
	case dir == "":
		return f.home, fragment
	case strings.HasPrefix(dir, "~/"):
		return filepath.Join(f.home, dir[2:]), fragment
	case filepath.IsAbs(dir):
		return filepath.Clean(dir), fragment
	default:
		return filepath.Join(f.home, dir), fragment
	}
}

func (f *File) list(dir, fragment string) ([]FileItem, error) {
	dirEntries, err := f.readDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	showHidden := strings.HasPrefix(fragment, ".")
	candidates := make([]FileItem, 0, len(dirEntries))
	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !showHidden {
			continue
		}
		candidates = append(candidates, FileItem{
			Path:  filepath.Join(dir, name),
			Name:  name,
			IsDir: entry.IsDir(),
		})
		names = append(names, name)
	}
	if fragment == "" {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].IsDir != candidates[j].IsDir {
				return candidates[i].IsDir
			}
			return strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
		})
		return limitFiles(candidates), nil
	}
	ranks := fuzzy.RankFindNormalizedFold(fragment, names)
	sort.Stable(ranks)
	matched := make([]FileItem, 0, len(ranks))
	seen := make(map[int]bool, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, candidates[rank.OriginalIndex])
		seen[rank.OriginalIndex] = true
	}
	needle := strings.ToLower(fragment)
	for i, candidate := range candidates {
		if !seen[i] && strings.Contains(strings.ToLower(candidate.Name), needle) {
			matched = append(matched, candidate)
		}
	}
	return limitFiles(matched), nil
}

func limitFiles(items []FileItem) []FileItem {
	if len(items) > FileLimit {
		return items[:FileLimit]
	}
	return items
}

func (f *File) DisplayableItems() []launcher.Item {
	items := make([]launcher.Item, len(f.entries))
	for i, entry := range f.entries {
		items[i] = entry
	}
	return items
}

// Err reports the last directory read failure, if any.
func (f *File) Err() error { return f.err }

func (f *File) ExecuteAction(index int, _ launcher.SessionView) bool {
	if index < 0 || index >= len(f.entries) {
		return false
	}
	target := f.entries[index]
	if err := f.opener.Open(target.Path); err != nil {
		events.Mode.Error(launcher.ModeFile.String(), err)
		logging.Error(err)
		return false
	}
	return true
}

func (f *File) Cleanup(launcher.SessionView) {
	f.entries = nil
	f.err = nil
}

func (f *File) HideAfterAction() bool { return true }

func (f *File) HelpText() []string {
	return []string{
		"/o <path>  open a file or folder, relative paths start at home",
		"start the last segment with . to list hidden entries",
	}
}
