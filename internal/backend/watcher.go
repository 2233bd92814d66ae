package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/process"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindProcesses Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindProcesses:
		return "processes"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Fetcher loads one snapshot for a Kind.
type Fetcher func(ctx context.Context) (interface{}, error)

var listProcesses = func(context.Context) (interface{}, error) {
	return process.List()
}

// Watcher polls local data sources at a fixed interval and publishes events.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls the process table every
// interval.
func NewWatcher(interval time.Duration) *Watcher {
	return newWatcher(interval, map[Kind]Fetcher{KindProcesses: listProcesses})
}

func newWatcher(interval time.Duration, fetchers map[Kind]Fetcher) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	for kind, fetch := range fetchers {
		w.start(kind, fetch)
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) start(kind Kind, fetch Fetcher) {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(kind, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return fetch(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch Fetcher) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
