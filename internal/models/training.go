package models

import "time"

const ActionWorkoutComplete = "workout_complete"

// SessionReport is the scored outcome of a finished session.
type SessionReport struct {
	TotalVolume     float64 `json:"total_volume"`
	CompletedSets   int     `json:"completed_sets"`
	TotalSets       int     `json:"total_sets"`
	DurationMinutes int     `json:"duration_minutes"`
	XPAwarded       int     `json:"xp_awarded"`
	LeveledUp       bool    `json:"leveled_up"`
	NewLevel        int     `json:"new_level,omitempty"` // Only meaningful when LeveledUp.
}

// WorkoutLog is the payload handed to persistence. Sets are completed-only.
type WorkoutLog struct {
	ID              string           `json:"id"`
	WorkoutName     string           `json:"workout_name"`
	Exercises       []LoggedExercise `json:"exercises"`
	DurationMinutes int              `json:"duration_minutes"`
	Notes           string           `json:"notes"`
	LoggedAt        time.Time        `json:"logged_at"`
}

type LoggedExercise struct {
	Name        string      `json:"name"`
	MuscleGroup string      `json:"muscle_group"`
	Notes       string      `json:"notes,omitempty"`
	Sets        []LoggedSet `json:"sets"`
}

type LoggedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type XPAward struct {
	ActionType string `json:"action_type"`
	XPAmount   int    `json:"xp_amount"`
}

// XPResult is the authority's answer to an award.
type XPResult struct {
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
	TotalXP   int  `json:"total_xp"`
}

// SessionState is the on-disk snapshot of an in-progress session.
type SessionState struct {
	SessionID      string             `toml:"session_id"`
	WorkoutName    string             `toml:"workout_name"`
	StartTime      time.Time          `toml:"start_time"`
	ElapsedSeconds int                `toml:"elapsed_seconds"`
	CurrentIndex   int                `toml:"current_index"`
	Exercises      []ExerciseProgress `toml:"exercises"`
}

// Daily log kinds.
const (
	DailyKindNutrition  = "nutrition"
	DailyKindSupplement = "supplement"
)

// DailyEntry is one day-keyed nutrition or supplement record.
type DailyEntry struct {
	ID       string    `json:"id"`
	Day      string    `json:"day"` // 2006-01-02
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Unit     string    `json:"unit"`
	LoggedAt time.Time `json:"logged_at"`
}
