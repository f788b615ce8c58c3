package timer

import (
	"sync"
	"time"
)

// ManualTicker only ticks when told to. Tests and replays use it in place of SystemTicker.
type ManualTicker struct {
	mu      sync.Mutex
	handles []*manualHandle
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

func (m *ManualTicker) Every(_ time.Duration, fn TickFunc) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := &manualHandle{owner: m, fn: fn}
	m.handles = append(m.handles, h)
	return h
}

// Tick delivers n ticks to every live handle, in registration order.
func (m *ManualTicker) Tick(n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		live := make([]*manualHandle, 0, len(m.handles))
		for _, h := range m.handles {
			if !h.stopped {
				live = append(live, h)
			}
		}
		m.mu.Unlock()

		for _, h := range live {
			m.mu.Lock()
			stopped := h.stopped
			m.mu.Unlock()
			if stopped {
				continue
			}

			if !h.fn() {
				m.mu.Lock()
				h.stopped = true
				m.mu.Unlock()
			}
		}
	}
}

// Active is the number of handles still ticking.
func (m *ManualTicker) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, h := range m.handles {
		if !h.stopped {
			n++
		}
	}
	return n
}

type manualHandle struct {
	owner   *ManualTicker
	fn      TickFunc
	stopped bool
}

func (h *manualHandle) Stop() {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	h.stopped = true
}
