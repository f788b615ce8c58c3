package timer

import (
	"sync"
	"time"
)

// Period is the granularity of every countdown and clock in a session.
const Period = time.Second

// TickFunc runs once per period. Returning false ends the ticking.
type TickFunc func() bool

// Ticker is the host-provided periodic callback primitive.
type Ticker interface {
	Every(d time.Duration, fn TickFunc) Handle
}

// Handle stops a running ticker. Stop must be safe to call more than once
// and must not return while a tick can still be delivered.
type Handle interface {
	Stop()
}

// SystemTicker drives callbacks from a time.Ticker on its own goroutine.
type SystemTicker struct{}

func (SystemTicker) Every(d time.Duration, fn TickFunc) Handle {
	h := &systemHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	t := time.NewTicker(d)
	go func() {
		defer close(h.done)
		defer t.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				// A stop racing the tick wins.
				select {
				case <-h.stop:
					return
				default:
				}
				if !fn() {
					return
				}
			}
		}
	}()

	return h
}

type systemHandle struct {
	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// Stop blocks until the ticking goroutine is gone. It must not be called from inside the tick
// callback of the same handle; return false from the callback instead.
func (h *systemHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
