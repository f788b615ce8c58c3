package timer

import (
	"errors"
	"fmt"
	"sync"
)

var ErrInvalidDuration = errors.New("rest duration must be positive")

// RestMenu is the set of durations offered to the user, in seconds.
var RestMenu = []int{30, 60, 90, 120, 180, 240}

type RestState struct {
	Duration  int  `json:"duration_seconds"`
	Remaining int  `json:"remaining_seconds"`
	Active    bool `json:"is_active"`
}

// RestScheduler runs at most one countdown. Starting a new one replaces the running one.
type RestScheduler struct {
	ticker   Ticker
	onTick   func(remaining int)
	onFinish func()

	mu     sync.Mutex
	state  RestState
	handle Handle
	gen    uint64
}

type RestOption func(*RestScheduler)

// WithOnFinish is called once for every countdown that runs down to zero.
func WithOnFinish(fn func()) RestOption {
	return func(r *RestScheduler) {
		r.onFinish = fn
	}
}

func WithOnTick(fn func(remaining int)) RestOption {
	return func(r *RestScheduler) {
		r.onTick = fn
	}
}

func NewRestScheduler(ticker Ticker, opts ...RestOption) *RestScheduler {
	r := &RestScheduler{ticker: ticker}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RestScheduler) Start(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, seconds)
	}

	r.mu.Lock()
	old := r.detachLocked()
	gen := r.gen
	r.state = RestState{Duration: seconds, Remaining: seconds, Active: true}
	r.mu.Unlock()

	if old != nil {
		old.Stop()
	}

	h := r.ticker.Every(Period, func() bool {
		return r.tick(gen)
	})

	r.mu.Lock()
	if r.gen != gen {
		// Finished, skipped or replaced before we got to keep the handle.
		r.mu.Unlock()
		h.Stop()
		return nil
	}
	r.handle = h
	r.mu.Unlock()

	return nil
}

// Skip ends the running countdown without a completion signal.
// It reports whether a countdown was running.
func (r *RestScheduler) Skip() bool {
	r.mu.Lock()
	wasActive := r.state.Active
	old := r.detachLocked()
	r.state.Active = false
	r.state.Remaining = 0
	r.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	return wasActive
}

// Cancel releases the underlying ticker. Safe to call any number of times.
func (r *RestScheduler) Cancel() {
	r.Skip()
}

func (r *RestScheduler) State() RestState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *RestScheduler) tick(gen uint64) bool {
	r.mu.Lock()
	if r.gen != gen || !r.state.Active {
		r.mu.Unlock()
		return false
	}

	r.state.Remaining--
	remaining := r.state.Remaining
	if remaining > 0 {
		r.mu.Unlock()
		if r.onTick != nil {
			r.onTick(remaining)
		}
		return true
	}

	r.state.Active = false
	r.handle = nil
	r.gen++
	r.mu.Unlock()

	if r.onTick != nil {
		r.onTick(0)
	}
	if r.onFinish != nil {
		r.onFinish()
	}
	return false
}

// detachLocked invalidates the running countdown and hands back its ticker for stopping
// once the lock is released.
func (r *RestScheduler) detachLocked() Handle {
	r.gen++
	h := r.handle
	r.handle = nil
	return h
}
