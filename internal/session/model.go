package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/scoring"
)

// Model is the in-progress workout. It never performs I/O.
type Model struct {
	ID        string
	Name      string
	StartedAt time.Time

	exercises []models.ExerciseProgress
	current   int
}

// NewModel lays out targetSets empty rows per exercise. An empty list falls back to defaults;
// with no defaults either it fails with ErrInvalidInput.
func NewModel(name string, exercises, defaults []models.Exercise, startedAt time.Time) (*Model, error) {
	if len(exercises) == 0 {
		exercises = defaults
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: empty exercise list", ErrInvalidInput)
	}

	progress := make([]models.ExerciseProgress, 0, len(exercises))
	for i, ex := range exercises {
		ex, err := normalizeExercise(ex)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		progress = append(progress, models.ExerciseProgress{
			Exercise: ex,
			Sets:     make([]models.SetEntry, ex.TargetSets),
		})
	}

	return &Model{
		ID:        uuid.New().String(),
		Name:      name,
		StartedAt: startedAt,
		exercises: progress,
	}, nil
}

// RestoreModel rebuilds a model from a snapshot.
func RestoreModel(state models.SessionState) (*Model, error) {
	if len(state.Exercises) == 0 {
		return nil, fmt.Errorf("%w: snapshot has no exercises", ErrInvalidInput)
	}

	exercises := make([]models.ExerciseProgress, len(state.Exercises))
	for i, ep := range state.Exercises {
		ex, err := normalizeExercise(ep.Exercise)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		sets := append([]models.SetEntry(nil), ep.Sets...)
		if len(sets) == 0 {
			sets = []models.SetEntry{{}}
		}
		exercises[i] = models.ExerciseProgress{Exercise: ex, Sets: sets, Notes: ep.Notes}
	}

	current := state.CurrentIndex
	if current < 0 || current >= len(exercises) {
		current = 0
	}

	id := state.SessionID
	if id == "" {
		id = uuid.New().String()
	}

	return &Model{
		ID:        id,
		Name:      state.WorkoutName,
		StartedAt: state.StartTime,
		exercises: exercises,
		current:   current,
	}, nil
}

func normalizeExercise(ex models.Exercise) (models.Exercise, error) {
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return ex, fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	}
	if ex.TargetSets < 1 {
		ex.TargetSets = 1
	}
	if ex.TargetReps < 1 {
		ex.TargetReps = 1
	}
	if strings.TrimSpace(ex.MuscleGroup) == "" {
		ex.MuscleGroup = models.DefaultMuscleGroup
	}
	return ex, nil
}

func (m *Model) UpdateSet(exIdx, setIdx int, field models.SetField, value string) error {
	set, err := m.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	if !field.IsValid() {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	if set.Completed {
		return ErrLockedSet
	}

	value = strings.TrimSpace(value)
	switch field {
	case models.FieldWeight:
		set.Weight = value
	case models.FieldReps:
		set.Reps = value
	}
	return nil
}

// UpdateEntry fills in weight and reps together; on error neither field changes.
func (m *Model) UpdateEntry(exIdx, setIdx int, weight, reps string) error {
	set, err := m.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	if set.Completed {
		return ErrLockedSet
	}

	set.Weight = strings.TrimSpace(weight)
	set.Reps = strings.TrimSpace(reps)
	return nil
}

// ToggleSetComplete flips completion and returns the new value. Completing needs numeric
// weight and reps; on ErrMissingData nothing changes.
func (m *Model) ToggleSetComplete(exIdx, setIdx int) (bool, error) {
	set, err := m.set(exIdx, setIdx)
	if err != nil {
		return false, err
	}

	if set.Completed {
		set.Completed = false
		return false, nil
	}

	if _, _, ok := set.Values(); !ok {
		return false, ErrMissingData
	}
	set.Completed = true
	return true, nil
}

func (m *Model) AddSet(exIdx int) error {
	if err := m.checkExercise(exIdx); err != nil {
		return err
	}
	m.exercises[exIdx].Sets = append(m.exercises[exIdx].Sets, models.SetEntry{})
	return nil
}

// RemoveSet drops the last set. The last remaining set is never removed.
func (m *Model) RemoveSet(exIdx int) error {
	if err := m.checkExercise(exIdx); err != nil {
		return err
	}
	sets := m.exercises[exIdx].Sets
	if len(sets) <= 1 {
		return nil
	}
	m.exercises[exIdx].Sets = sets[:len(sets)-1]
	return nil
}

// Advance moves the cursor by delta. Moving past either end leaves it where it is.
func (m *Model) Advance(delta int) int {
	next := m.current + delta
	if next >= 0 && next < len(m.exercises) {
		m.current = next
	}
	return m.current
}

func (m *Model) SetNote(exIdx int, note string) error {
	if err := m.checkExercise(exIdx); err != nil {
		return err
	}
	m.exercises[exIdx].Notes = strings.TrimSpace(note)
	return nil
}

func (m *Model) Current() int {
	return m.current
}

func (m *Model) Len() int {
	return len(m.exercises)
}

func (m *Model) CompletedSets() int {
	completed, _ := scoring.CountSets(m.exercises)
	return completed
}

func (m *Model) TotalSets() int {
	_, total := scoring.CountSets(m.exercises)
	return total
}

// Exercises returns a deep copy.
func (m *Model) Exercises() []models.ExerciseProgress {
	out := make([]models.ExerciseProgress, len(m.exercises))
	for i, ep := range m.exercises {
		ep.Sets = append([]models.SetEntry(nil), ep.Sets...)
		out[i] = ep
	}
	return out
}

func (m *Model) Exercise(exIdx int) (models.ExerciseProgress, error) {
	if err := m.checkExercise(exIdx); err != nil {
		return models.ExerciseProgress{}, err
	}
	ep := m.exercises[exIdx]
	ep.Sets = append([]models.SetEntry(nil), ep.Sets...)
	return ep, nil
}

func (m *Model) State(elapsedSeconds int) models.SessionState {
	return models.SessionState{
		SessionID:      m.ID,
		WorkoutName:    m.Name,
		StartTime:      m.StartedAt,
		ElapsedSeconds: elapsedSeconds,
		CurrentIndex:   m.current,
		Exercises:      m.Exercises(),
	}
}

// WorkoutLog builds the persistence payload: completed sets only, exercises without any are dropped.
func (m *Model) WorkoutLog(durationMinutes int, loggedAt time.Time) models.WorkoutLog {
	log := models.WorkoutLog{
		ID:              uuid.New().String(),
		WorkoutName:     m.Name,
		DurationMinutes: durationMinutes,
		LoggedAt:        loggedAt,
	}

	var notes []string
	for _, ep := range m.exercises {
		var sets []models.LoggedSet
		for _, set := range ep.Sets {
			if !set.Completed {
				continue
			}
			weight, reps, ok := set.Values()
			if !ok {
				continue
			}
			sets = append(sets, models.LoggedSet{Weight: weight, Reps: reps})
		}
		if len(sets) == 0 {
			continue
		}
		log.Exercises = append(log.Exercises, models.LoggedExercise{
			Name:        ep.Exercise.Name,
			MuscleGroup: ep.Exercise.MuscleGroup,
			Notes:       ep.Notes,
			Sets:        sets,
		})
		if ep.Notes != "" {
			notes = append(notes, ep.Exercise.Name+": "+ep.Notes)
		}
	}
	log.Notes = strings.Join(notes, "\n")

	return log
}

func (m *Model) checkExercise(exIdx int) error {
	if exIdx < 0 || exIdx >= len(m.exercises) {
		return fmt.Errorf("%w: exercise %d of %d", ErrIndexOutOfRange, exIdx+1, len(m.exercises))
	}
	return nil
}

func (m *Model) set(exIdx, setIdx int) (*models.SetEntry, error) {
	if err := m.checkExercise(exIdx); err != nil {
		return nil, err
	}
	sets := m.exercises[exIdx].Sets
	if setIdx < 0 || setIdx >= len(sets) {
		return nil, fmt.Errorf("%w: set %d of %d", ErrIndexOutOfRange, setIdx+1, len(sets))
	}
	return &sets[setIdx], nil
}
