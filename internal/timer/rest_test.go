package timer_test

import (
	"testing"

	"github.com/misterclayt0n/liftquest/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRestScheduler_CountsDownAndFinishes(t *testing.T) {
	ticker := timer.NewManualTicker()
	finished := 0
	var ticks []int
	rest := timer.NewRestScheduler(ticker,
		timer.WithOnFinish(func() { finished++ }),
		timer.WithOnTick(func(remaining int) { ticks = append(ticks, remaining) }),
	)

	require.NoError(t, rest.Start(3))
	assert.Equal(t, timer.RestState{Duration: 3, Remaining: 3, Active: true}, rest.State())

	ticker.Tick(2)
	assert.Equal(t, 1, rest.State().Remaining)
	assert.True(t, rest.State().Active)
	assert.Equal(t, 0, finished)

	ticker.Tick(1)
	assert.False(t, rest.State().Active)
	assert.Equal(t, 0, rest.State().Remaining)
	assert.Equal(t, 1, finished)
	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.Equal(t, 0, ticker.Active())

	ticker.Tick(5)
	assert.Equal(t, 1, finished)
}

func TestRestScheduler_RestartReplacesRunningCountdown(t *testing.T) {
	ticker := timer.NewManualTicker()
	finished := 0
	rest := timer.NewRestScheduler(ticker, timer.WithOnFinish(func() { finished++ }))

	require.NoError(t, rest.Start(2))
	ticker.Tick(1)
	require.NoError(t, rest.Start(5))
	assert.Equal(t, 1, ticker.Active())

	ticker.Tick(2)
	assert.Equal(t, 0, finished, "first countdown must not complete")
	assert.Equal(t, 3, rest.State().Remaining)

	ticker.Tick(3)
	assert.Equal(t, 1, finished)

	ticker.Tick(10)
	assert.Equal(t, 1, finished)
}

func TestRestScheduler_SkipHasNoCompletionSignal(t *testing.T) {
	ticker := timer.NewManualTicker()
	finished := 0
	rest := timer.NewRestScheduler(ticker, timer.WithOnFinish(func() { finished++ }))

	require.NoError(t, rest.Start(60))
	ticker.Tick(10)
	assert.True(t, rest.Skip())
	assert.False(t, rest.State().Active)
	assert.Equal(t, 0, ticker.Active())

	ticker.Tick(100)
	assert.Equal(t, 0, finished)
	assert.False(t, rest.Skip())
}

func TestRestScheduler_CancelIsIdempotent(t *testing.T) {
	ticker := timer.NewManualTicker()
	rest := timer.NewRestScheduler(ticker)

	rest.Cancel()
	require.NoError(t, rest.Start(30))
	rest.Cancel()
	rest.Cancel()
	assert.False(t, rest.State().Active)
	assert.Equal(t, 0, ticker.Active())
}

func TestRestScheduler_RejectsNonPositiveDuration(t *testing.T) {
	rest := timer.NewRestScheduler(timer.NewManualTicker())
	assert.ErrorIs(t, rest.Start(0), timer.ErrInvalidDuration)
	assert.ErrorIs(t, rest.Start(-30), timer.ErrInvalidDuration)
	assert.False(t, rest.State().Active)
}

func TestRestScheduler_AcceptsOffMenuDuration(t *testing.T) {
	rest := timer.NewRestScheduler(timer.NewManualTicker())
	require.NoError(t, rest.Start(45))
	assert.Equal(t, 45, rest.State().Duration)
	rest.Cancel()
}

func TestRestScheduler_RestartFromFinishListener(t *testing.T) {
	ticker := timer.NewManualTicker()
	var rest *timer.RestScheduler
	rounds := 0
	rest = timer.NewRestScheduler(ticker, timer.WithOnFinish(func() {
		rounds++
		if rounds == 1 {
			require.NoError(t, rest.Start(1))
		}
	}))

	require.NoError(t, rest.Start(1))
	ticker.Tick(1)
	assert.True(t, rest.State().Active)
	ticker.Tick(1)
	assert.Equal(t, 2, rounds)
	assert.False(t, rest.State().Active)
}
