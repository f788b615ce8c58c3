package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/liftquest/internal/models"
)

// SaveWorkoutLog stores a finished workout. Saving the same log ID twice is a no-op, so a
// retried submission never duplicates a session.
func (s *Storage) SaveWorkoutLog(ctx context.Context, log models.WorkoutLog) error {
	if log.ID == "" {
		return fmt.Errorf("workout log without an id")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	loggedAt := log.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO workout_logs
        (id, workout_name, duration_minutes, notes, logged_at)
        VALUES (?, ?, ?, ?, ?)`,
		log.ID,
		log.WorkoutName,
		log.DurationMinutes,
		log.Notes,
		loggedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save workout log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Already stored by an earlier attempt.
		return tx.Commit()
	}

	for i, ex := range log.Exercises {
		exID := uuid.New().String()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO workout_log_exercises
            (id, workout_log_id, position, name, muscle_group, notes)
            VALUES (?, ?, ?, ?, ?, ?)`,
			exID, log.ID, i, ex.Name, ex.MuscleGroup, ex.Notes,
		)
		if err != nil {
			return fmt.Errorf("Failed to save exercise %s: %w", ex.Name, err)
		}

		for j, set := range ex.Sets {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO workout_log_sets
                (id, log_exercise_id, position, weight, reps)
                VALUES (?, ?, ?, ?, ?)`,
				uuid.New().String(), exID, j, set.Weight, set.Reps,
			)
			if err != nil {
				return fmt.Errorf("Failed to save set: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

// GetWorkoutLog loads one workout with its exercises and sets.
func (s *Storage) GetWorkoutLog(ctx context.Context, id string) (*models.WorkoutLog, error) {
	var log models.WorkoutLog
	var notes sql.NullString
	var loggedAt string

	err := s.DB.QueryRowContext(ctx,
		`SELECT id, workout_name, duration_minutes, notes, logged_at
        FROM workout_logs WHERE id = ?`, id,
	).Scan(&log.ID, &log.WorkoutName, &log.DurationMinutes, &notes, &loggedAt)
	if err != nil {
		return nil, err
	}
	log.Notes = notes.String
	log.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)

	exercises, err := s.loadExercises(ctx, log.ID)
	if err != nil {
		return nil, err
	}
	log.Exercises = exercises

	return &log, nil
}

// ListWorkoutLogs returns workouts newest first, with exercises and sets. limit <= 0 means all.
func (s *Storage) ListWorkoutLogs(ctx context.Context, limit int) ([]models.WorkoutLog, error) {
	query := `
        SELECT id, workout_name, duration_minutes, notes, logged_at
        FROM workout_logs
        ORDER BY logged_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Failed to query workout logs: %w", err)
	}

	var logs []models.WorkoutLog
	for rows.Next() {
		var log models.WorkoutLog
		var notes sql.NullString
		var loggedAt string
		if err := rows.Scan(&log.ID, &log.WorkoutName, &log.DurationMinutes, &notes, &loggedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("Failed to scan workout log: %w", err)
		}
		log.Notes = notes.String
		log.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Loaded after closing the cursor: sqlite runs on a single connection.
	for i := range logs {
		exercises, err := s.loadExercises(ctx, logs[i].ID)
		if err != nil {
			return nil, err
		}
		logs[i].Exercises = exercises
	}

	return logs, nil
}

func (s *Storage) loadExercises(ctx context.Context, logID string) ([]models.LoggedExercise, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT e.id, e.name, e.muscle_group, e.notes, st.weight, st.reps
        FROM workout_log_exercises e
        LEFT JOIN workout_log_sets st ON st.log_exercise_id = e.id
        WHERE e.workout_log_id = ?
        ORDER BY e.position ASC, st.position ASC`, logID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.LoggedExercise
	lastID := ""
	for rows.Next() {
		var exID, name, muscle string
		var notes sql.NullString
		var weight sql.NullFloat64
		var reps sql.NullInt64
		if err := rows.Scan(&exID, &name, &muscle, &notes, &weight, &reps); err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}

		if exID != lastID {
			exercises = append(exercises, models.LoggedExercise{
				Name:        name,
				MuscleGroup: muscle,
				Notes:       notes.String,
			})
			lastID = exID
		}
		if weight.Valid && reps.Valid {
			cur := &exercises[len(exercises)-1]
			cur.Sets = append(cur.Sets, models.LoggedSet{Weight: weight.Float64, Reps: int(reps.Int64)})
		}
	}
	return exercises, rows.Err()
}
