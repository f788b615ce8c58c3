package timer_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/misterclayt0n/liftquest/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemTicker_StopWaitsForGoroutine(t *testing.T) {
	var count atomic.Int32
	h := timer.SystemTicker{}.Every(time.Millisecond, func() bool {
		count.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
	h.Stop()
	after := count.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, count.Load())

	h.Stop()
}

func TestSystemTicker_CallbackCanEndTicking(t *testing.T) {
	var count atomic.Int32
	h := timer.SystemTicker{}.Every(time.Millisecond, func() bool {
		return count.Add(1) < 2
	})

	require.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, time.Millisecond)
	h.Stop()
	assert.Equal(t, int32(2), count.Load())
}

func TestRestScheduler_WithSystemTicker(t *testing.T) {
	done := make(chan struct{})
	rest := timer.NewRestScheduler(timer.SystemTicker{}, timer.WithOnFinish(func() { close(done) }))

	require.NoError(t, rest.Start(1))
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("countdown never finished")
	}
	assert.False(t, rest.State().Active)
	rest.Cancel()
}

func TestRestScheduler_CancelWithSystemTicker(t *testing.T) {
	rest := timer.NewRestScheduler(timer.SystemTicker{}, timer.WithOnFinish(func() {
		t.Error("cancelled countdown must not finish")
	}))
	clock := timer.StartClock(timer.SystemTicker{})

	require.NoError(t, rest.Start(1))
	rest.Cancel()
	clock.Stop()
	time.Sleep(1200 * time.Millisecond)
}
