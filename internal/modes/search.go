// Package modes holds the prefix-activated launcher controllers.
package modes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/history"
	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/opener"
)

const (
	SearchPrefix = "/s"

	engineGoogle = "google"
	engineBing   = "bing"
	engineBaidu  = "baidu"
)

var engineTemplates = map[string]string{
	engineBaidu:  "https://www.baidu.com/s?wd=",
	engineBing:   "https://www.bing.com/search?q=",
	engineGoogle: "https://www.google.com/search?q=",
}

var engineTitles = map[string]string{
	engineBaidu:  "Baidu",
	engineBing:   "Bing",
	engineGoogle: "Google",
}

// ResolveEngine maps a configured engine identifier to a supported engine.
// Unknown and empty identifiers fall back to google.
func ResolveEngine(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if _, ok := engineTemplates[id]; ok {
		return id
	}
	return engineGoogle
}

// SearchURL builds the search URL for query on engine.
func SearchURL(engine, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", history.ErrEmptyQuery
	}
	raw := engineTemplates[ResolveEngine(engine)] + url.QueryEscape(query)
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("build search url: %w", err)
	}
	if parsed.Host == "" {
		return "", errors.New("build search url: missing host")
	}
	return parsed.String(), nil
}

// Search runs web searches and offers matching entries from the history.
type Search struct {
	launcher.PrefixMatcher

	history  *history.Store
	settings launcher.Settings
	opener   opener.Opener

	query   string
	matches []history.Item
}

// NewSearch returns the "/s" controller.
func NewSearch(store *history.Store, settings launcher.Settings, op opener.Opener) *Search {
	return &Search{
		PrefixMatcher: launcher.PrefixMatcher{Value: SearchPrefix},
		history:       store,
		settings:      settings,
		opener:        op,
	}
}

func (s *Search) Mode() launcher.Mode { return launcher.ModeSearch }

func (s *Search) EnterMode(text string, session launcher.SessionView) {
	s.update(text)
	session.ResetSelection()
}

func (s *Search) HandleInput(text string, session launcher.SessionView) {
	s.update(text)
	session.ResetSelection()
}

func (s *Search) update(text string) {
	s.query = s.Argument(text)
	s.rematch()
}

func (s *Search) rematch() {
	s.matches = s.history.Matching(s.query, s.history.DisplayLimit())
}

// Query returns the query extracted from the current text.
func (s *Search) Query() string { return s.query }

func (s *Search) DisplayableItems() []launcher.Item {
	items := make([]launcher.Item, 0, len(s.matches)+1)
	if s.query != "" {
		items = append(items, launcher.QueryItem{
			ID:     "search:query",
			Label:  s.query,
			Detail: "Search " + engineTitles[s.engine()],
			Glyph:  launcher.IconSearch,
		})
	}
	for _, item := range s.matches {
		items = append(items, item)
	}
	return items
}

// ExecuteAction searches for the current query at index 0, or for a history
// entry otherwise. Without a query the list holds only history entries.
func (s *Search) ExecuteAction(index int, _ launcher.SessionView) bool {
	query, ok := s.queryAt(index)
	if !ok {
		return false
	}
	return s.search(query)
}

func (s *Search) queryAt(index int) (string, bool) {
	if s.query != "" {
		if index == 0 {
			return s.query, true
		}
		index--
	}
	if index < 0 || index >= len(s.matches) {
		return "", false
	}
	return s.matches[index].Query, true
}

func (s *Search) search(query string) bool {
	engine := s.engine()
	target, err := SearchURL(engine, query)
	if err != nil {
		events.Mode.Error(launcher.ModeSearch.String(), err)
		return false
	}
	if _, err := s.history.AddSearch(query, engine); err != nil {
		logging.Error(fmt.Errorf("record search: %w", err))
	} else {
		s.rematch()
	}
	if err := s.opener.Open(target); err != nil {
		events.Mode.Error(launcher.ModeSearch.String(), err)
		logging.Error(err)
		return false
	}
	return true
}

func (s *Search) engine() string {
	if s.settings == nil {
		return engineGoogle
	}
	return ResolveEngine(s.settings.SearchEngine())
}

func (s *Search) Cleanup(launcher.SessionView) {
	s.query = ""
	s.matches = nil
}

func (s *Search) HideAfterAction() bool { return true }

// RemoveItem deletes the history entry shown at index.
func (s *Search) RemoveItem(index int, _ launcher.SessionView) bool {
	if s.query != "" {
		if index == 0 {
			return false
		}
		index--
	}
	if index < 0 || index >= len(s.matches) {
		return false
	}
	if !s.history.Remove(s.matches[index].ID) {
		return false
	}
	s.rematch()
	return true
}

func (s *Search) HelpText() []string {
	return []string{
		"/s <query>  search the web with " + engineTitles[s.engine()],
		"enter runs the query or the selected history entry",
		"ctrl+x removes the selected history entry",
	}
}
