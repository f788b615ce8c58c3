package timer

import "sync"

// ElapsedClock counts whole seconds from session start until Stop. No pause.
type ElapsedClock struct {
	mu      sync.Mutex
	seconds int
	stopped bool
	handle  Handle
}

func StartClock(ticker Ticker) *ElapsedClock {
	return StartClockAt(ticker, 0)
}

// StartClockAt resumes counting from seconds already elapsed.
func StartClockAt(ticker Ticker, seconds int) *ElapsedClock {
	if seconds < 0 {
		seconds = 0
	}

	c := &ElapsedClock{seconds: seconds}
	h := ticker.Every(Period, c.tick)

	c.mu.Lock()
	c.handle = h
	c.mu.Unlock()

	return c
}

func (c *ElapsedClock) Seconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seconds
}

func (c *ElapsedClock) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Stop is idempotent.
func (c *ElapsedClock) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	h := c.handle
	c.handle = nil
	c.mu.Unlock()

	if h != nil {
		h.Stop()
	}
}

func (c *ElapsedClock) tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false
	}
	c.seconds++
	return true
}
