package timer_test

import (
	"testing"

	"github.com/misterclayt0n/liftquest/internal/timer"

	"github.com/stretchr/testify/assert"
)

func TestElapsedClock_CountsUntilStopped(t *testing.T) {
	ticker := timer.NewManualTicker()
	clock := timer.StartClock(ticker)

	ticker.Tick(42)
	assert.Equal(t, 42, clock.Seconds())

	clock.Stop()
	assert.True(t, clock.Stopped())
	ticker.Tick(10)
	assert.Equal(t, 42, clock.Seconds())
	assert.Equal(t, 0, ticker.Active())
}

func TestElapsedClock_StopIsIdempotent(t *testing.T) {
	ticker := timer.NewManualTicker()
	clock := timer.StartClock(ticker)

	clock.Stop()
	clock.Stop()
	assert.True(t, clock.Stopped())
	assert.Equal(t, 0, clock.Seconds())
}

func TestElapsedClock_ResumesFromOffset(t *testing.T) {
	ticker := timer.NewManualTicker()
	clock := timer.StartClockAt(ticker, 300)
	ticker.Tick(5)
	assert.Equal(t, 305, clock.Seconds())
	clock.Stop()
}
