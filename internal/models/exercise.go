package models

import (
	"math"
	"strconv"
	"strings"
)

const DefaultMuscleGroup = "Other"

// Exercise is what a program asks for. Immutable once a session starts.
type Exercise struct {
	Name           string  `json:"name" toml:"name"`
	TargetSets     int     `json:"target_sets" toml:"target_sets"`
	TargetReps     int     `json:"target_reps" toml:"target_reps"`
	MuscleGroup    string  `json:"muscle_group" toml:"muscle_group"`
	EstimatedOneRM float64 `json:"estimated_one_rm,omitempty" toml:"estimated_one_rm,omitempty"` // Computed server-side, display only.
}

// SetEntry keeps weight and reps as typed so a half-filled row survives until it is completed.
type SetEntry struct {
	Weight    string `json:"weight" toml:"weight"`
	Reps      string `json:"reps" toml:"reps"`
	Completed bool   `json:"completed" toml:"completed"`
}

type ExerciseProgress struct {
	Exercise Exercise   `json:"exercise" toml:"exercise"`
	Sets     []SetEntry `json:"sets" toml:"sets"`
	Notes    string     `json:"notes" toml:"notes"`
}

// SetField names the editable columns of a SetEntry.
type SetField string

const (
	FieldWeight SetField = "weight"
	FieldReps   SetField = "reps"
)

func (f SetField) IsValid() bool {
	switch f {
	case FieldWeight, FieldReps:
		return true
	default:
		return false
	}
}

// Values parses the typed weight and reps. ok is false unless both are present and numeric.
func (s SetEntry) Values() (weight float64, reps int, ok bool) {
	w := strings.TrimSpace(s.Weight)
	r := strings.TrimSpace(s.Reps)
	if w == "" || r == "" {
		return 0, 0, false
	}

	weight, err := strconv.ParseFloat(w, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return 0, 0, false
	}

	reps, err = strconv.Atoi(r)
	if err != nil || reps < 0 {
		return 0, 0, false
	}

	return weight, reps, true
}
