package scoring_test

import (
	"math"
	"testing"

	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressWith(sets ...models.SetEntry) []models.ExerciseProgress {
	return []models.ExerciseProgress{
		{
			Exercise: models.Exercise{Name: "Bench Press", TargetSets: len(sets), TargetReps: 5, MuscleGroup: "Chest"},
			Sets:     sets,
		},
	}
}

func TestComputeVolume_OnlyCompletedSets(t *testing.T) {
	exercises := progressWith(
		models.SetEntry{Weight: "100", Reps: "5", Completed: true},
		models.SetEntry{Weight: "80", Reps: "8", Completed: false},
	)
	assert.Equal(t, 500.0, scoring.ComputeVolume(exercises))
}

func TestComputeVolume_MalformedCountsAsZero(t *testing.T) {
	exercises := progressWith(
		models.SetEntry{Weight: "abc", Reps: "5", Completed: true},
		models.SetEntry{Weight: "20", Reps: "10", Completed: true},
	)
	assert.Equal(t, 200.0, scoring.ComputeVolume(exercises))
	assert.Equal(t, 0.0, scoring.ComputeVolume(nil))
}

func TestComputeXP(t *testing.T) {
	assert.Equal(t, 125, scoring.ComputeXP(500, 42))
	assert.Equal(t, 100, scoring.ComputeXP(0, 0))
	assert.Equal(t, 100, scoring.ComputeXP(99.9, 9))
	assert.Equal(t, 115, scoring.ComputeXP(1000, 10))
	assert.Equal(t, 100, scoring.ComputeXP(-50, -3))
}

func TestComputeXP_HugeInputsStayPositive(t *testing.T) {
	assert.Equal(t, scoring.BaseXP+scoring.MaxBonusXP, scoring.ComputeXP(1e300, 0))
	assert.Equal(t, scoring.BaseXP+scoring.MaxBonusXP, scoring.ComputeXP(math.Inf(1), 0))
	assert.Equal(t, scoring.BaseXP, scoring.ComputeXP(math.NaN(), 0))
	assert.Positive(t, scoring.ComputeXP(1e300, math.MaxInt))
}

func TestFinish_HugeWeightAwardsPositiveXP(t *testing.T) {
	exercises := []models.ExerciseProgress{{
		Exercise: models.Exercise{Name: "Squat", TargetSets: 1, TargetReps: 1},
		Sets:     []models.SetEntry{{Weight: "1e300", Reps: "1", Completed: true}},
	}}

	report, err := scoring.Finish(exercises, 60, 0)
	require.NoError(t, err)
	assert.Positive(t, report.XPAwarded)
	assert.Equal(t, scoring.BaseXP+scoring.MaxBonusXP, report.XPAwarded)
}

func TestFinish_NoProgress(t *testing.T) {
	exercises := progressWith(models.SetEntry{Weight: "100", Reps: "5"})
	_, err := scoring.Finish(exercises, 600, 0)
	assert.ErrorIs(t, err, scoring.ErrNoProgress)
}

func TestFinish_Report(t *testing.T) {
	exercises := progressWith(
		models.SetEntry{Weight: "100", Reps: "10", Completed: true},
		models.SetEntry{},
		models.SetEntry{},
	)

	report, err := scoring.Finish(exercises, 600, 0)
	require.NoError(t, err)
	assert.Equal(t, models.SessionReport{
		TotalVolume:     1000,
		CompletedSets:   1,
		TotalSets:       3,
		DurationMinutes: 10,
		XPAwarded:       115,
	}, report)
}

func TestFinish_LevelUpEcho(t *testing.T) {
	exercises := progressWith(models.SetEntry{Weight: "100", Reps: "10", Completed: true})

	report, err := scoring.Finish(exercises, 659, 450)
	require.NoError(t, err)
	assert.Equal(t, 10, report.DurationMinutes)
	assert.True(t, report.LeveledUp)
	assert.Equal(t, 2, report.NewLevel)

	report, err = scoring.Finish(exercises, 600, 100)
	require.NoError(t, err)
	assert.False(t, report.LeveledUp)
	assert.Zero(t, report.NewLevel)
}
