package modes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/atomicstack/tmux-popup-launcher/internal/opener"
)

const WebPrefix = "/w"

// ErrInvalidURL is returned by NormalizeURL for input that is not a web URL.
var ErrInvalidURL = errors.New("invalid url")

// NormalizeURL adds an https scheme when raw has none and checks the result
// names a host.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%q: unsupported scheme: %w", raw, ErrInvalidURL)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%q: missing host: %w", raw, ErrInvalidURL)
	}
	return parsed.String(), nil
}

// Web opens the typed URL in the browser.
type Web struct {
	launcher.PrefixMatcher

	opener opener.Opener
	target string
}

// NewWeb returns the "/w" controller.
func NewWeb(op opener.Opener) *Web {
	return &Web{PrefixMatcher: launcher.PrefixMatcher{Value: WebPrefix}, opener: op}
}

func (w *Web) Mode() launcher.Mode { return launcher.ModeWeb }

func (w *Web) EnterMode(text string, session launcher.SessionView) {
	w.target = w.Argument(text)
	session.ResetSelection()
}

func (w *Web) HandleInput(text string, session launcher.SessionView) {
	w.target = w.Argument(text)
	session.ResetSelection()
}

func (w *Web) DisplayableItems() []launcher.Item {
	if w.target == "" {
		return nil
	}
	label := w.target
	detail := "Open in browser"
	if normalized, err := NormalizeURL(w.target); err == nil {
		label = normalized
	} else {
		detail = "Not a valid URL"
	}
	return []launcher.Item{launcher.QueryItem{
		ID:     "web:url",
		Label:  label,
		Detail: detail,
		Glyph:  launcher.IconGlobe,
	}}
}

func (w *Web) ExecuteAction(index int, _ launcher.SessionView) bool {
	if index != 0 || w.target == "" {
		return false
	}
	target, err := NormalizeURL(w.target)
	if err != nil {
		events.Mode.Error(launcher.ModeWeb.String(), err)
		return false
	}
	if err := w.opener.Open(target); err != nil {
		events.Mode.Error(launcher.ModeWeb.String(), err)
		logging.Error(err)
		return false
	}
	return true
}

func (w *Web) Cleanup(launcher.SessionView) {
	w.target = ""
}

func (w *Web) HideAfterAction() bool { return true }

func (w *Web) HelpText() []string {
	return []string{"/w <url>  open a URL, https:// is added when missing"}
}
