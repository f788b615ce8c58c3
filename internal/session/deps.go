package session

import (
	"context"

	"github.com/misterclayt0n/liftquest/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=session_test

// ExerciseSource supplies the exercises of the workout about to start.
type ExerciseSource interface {
	Exercises(ctx context.Context) ([]models.Exercise, error)
}

// WorkoutLogger persists finished workouts.
type WorkoutLogger interface {
	SaveWorkoutLog(ctx context.Context, log models.WorkoutLog) error
}

// XPAwarder is the authority on cumulative XP and levels.
type XPAwarder interface {
	AwardXP(ctx context.Context, award models.XPAward) (models.XPResult, error)
}

// XPReader reports cumulative XP before an award.
type XPReader interface {
	TotalXP(ctx context.Context) (int, error)
}

// Notifier renders the abstract session signals (vibration, sound, a terminal bell...).
type Notifier interface {
	SetCompleted(exIdx, setIdx int)
	RestFinished()
}

// Snapshotter keeps a copy of the live session somewhere durable.
type Snapshotter interface {
	Save(state models.SessionState) error
	Clear() error
}
