package history

import (
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/launcher"
)

// Item is one recorded search. Items are never mutated after creation.
type Item struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Engine    string    `json:"engine"`
	Timestamp time.Time `json:"timestamp"`
}

var _ launcher.Item = Item{}

// Title implements launcher.Item.
func (i Item) Title() string { return i.Query }

// Subtitle implements launcher.Item.
func (i Item) Subtitle() string {
	if i.Timestamp.IsZero() {
		return i.Engine
	}
	stamp := i.Timestamp.Local().Format("2006-01-02 15:04")
	if i.Engine == "" {
		return stamp
	}
	return i.Engine + " · " + stamp
}

// Icon implements launcher.Item.
func (Item) Icon() string { return launcher.IconHistory }

// Key implements launcher.Item.
func (i Item) Key() string { return i.ID }
