package backend

import (
	"context"
	"sync"
	"time"
)

// throttle keeps successive process table scans at least gap apart, so ticks
// that pile up behind a slow ps run do not fire back to back.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	if gap < 0 {
		gap = 0
	}
	return &throttle{gap: gap}
}

// wait blocks until gap has passed since the previous scan or ctx is done.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.gap == 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.last.IsZero() {
		if delay := t.gap - time.Since(t.last); delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	t.last = time.Now()
	return nil
}
