package notify

import (
	"sync"
	"time"
)

// dismissTimer controls the lifetime of a toast. It mirrors the behavior of
// a hover-aware toast: the countdown can be paused while the user's
// attention is on it and resumed afterwards, with the remaining time
// carried over.
type dismissTimer struct {
	mu        sync.Mutex
	timer     *time.Timer
	remaining time.Duration
	started   time.Time
	paused    bool
	done      chan struct{}
	stopped   bool
}

func newDismissTimer(d time.Duration, onExpire func()) *dismissTimer {
	t := &dismissTimer{
		remaining: d,
		started:   time.Now(),
		done:      make(chan struct{}),
	}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			return
		}
		t.stopped = true
		close(t.done)
		t.mu.Unlock()
		if onExpire != nil {
			onExpire()
		}
	})
	return t
}

// Pause halts the countdown, keeping the remaining duration.
func (t *dismissTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused || t.stopped {
		return
	}
	if t.timer.Stop() {
		elapsed := time.Since(t.started)
		if elapsed < t.remaining {
			t.remaining -= elapsed
		} else {
			t.remaining = 0
		}
		t.paused = true
	}
}

// Resume restarts the countdown with whatever time was left at Pause.
func (t *dismissTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.paused || t.stopped {
		return
	}
	t.paused = false
	t.started = time.Now()
	t.timer.Reset(t.remaining)
}

// Stop cancels the countdown without firing the expiry callback.
func (t *dismissTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.timer.Stop()
	close(t.done)
}

// Done is closed when the timer expires or is stopped.
func (t *dismissTimer) Done() <-chan struct{} { return t.done }
