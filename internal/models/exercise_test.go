package models_test

import (
	"testing"

	"github.com/misterclayt0n/liftquest/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSetEntry_Values(t *testing.T) {
	tests := []struct {
		name   string
		set    models.SetEntry
		weight float64
		reps   int
		ok     bool
	}{
		{name: "plain", set: models.SetEntry{Weight: "100", Reps: "5"}, weight: 100, reps: 5, ok: true},
		{name: "decimal weight", set: models.SetEntry{Weight: " 62.5 ", Reps: "8"}, weight: 62.5, reps: 8, ok: true},
		{name: "bodyweight", set: models.SetEntry{Weight: "0", Reps: "12"}, weight: 0, reps: 12, ok: true},
		{name: "missing reps", set: models.SetEntry{Weight: "100"}},
		{name: "missing weight", set: models.SetEntry{Reps: "5"}},
		{name: "text weight", set: models.SetEntry{Weight: "heavy", Reps: "5"}},
		{name: "fractional reps", set: models.SetEntry{Weight: "100", Reps: "5.5"}},
		{name: "negative weight", set: models.SetEntry{Weight: "-10", Reps: "5"}},
		{name: "nan", set: models.SetEntry{Weight: "NaN", Reps: "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, reps, ok := tt.set.Values()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.weight, weight)
			assert.Equal(t, tt.reps, reps)
		})
	}
}

func TestSetField_IsValid(t *testing.T) {
	assert.True(t, models.FieldWeight.IsValid())
	assert.True(t, models.FieldReps.IsValid())
	assert.False(t, models.SetField("rpe").IsValid())
}
