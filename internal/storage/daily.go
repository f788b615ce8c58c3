package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/utils"
)

// DailyLog is the day-keyed store for nutrition and supplement entries.
type DailyLog interface {
	AddDailyEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error)
	DailyEntries(ctx context.Context, day string) ([]models.DailyEntry, error)
}

var _ DailyLog = (*Storage)(nil)

func (s *Storage) AddDailyEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error) {
	switch entry.Kind {
	case models.DailyKindNutrition, models.DailyKindSupplement:
	default:
		return models.DailyEntry{}, fmt.Errorf("unknown daily entry kind %q", entry.Kind)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return models.DailyEntry{}, fmt.Errorf("daily entry name is required")
	}

	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}
	if entry.Day == "" {
		entry.Day = entry.LoggedAt.Format(utils.DayLayout)
	}
	if _, err := time.Parse(utils.DayLayout, entry.Day); err != nil {
		return models.DailyEntry{}, fmt.Errorf("Failed to parse day %q: %w", entry.Day, err)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO daily_entries (id, day, kind, name, amount, unit, logged_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Day, entry.Kind, entry.Name, entry.Amount, entry.Unit,
		entry.LoggedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("Failed to add daily entry: %w", err)
	}
	return entry, nil
}

func (s *Storage) DailyEntries(ctx context.Context, day string) ([]models.DailyEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, day, kind, name, amount, unit, logged_at
        FROM daily_entries
        WHERE day = ?
        ORDER BY logged_at ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("Failed to query daily entries: %w", err)
	}
	defer rows.Close()

	var entries []models.DailyEntry
	for rows.Next() {
		var e models.DailyEntry
		var loggedAt string
		if err := rows.Scan(&e.ID, &e.Day, &e.Kind, &e.Name, &e.Amount, &e.Unit, &loggedAt); err != nil {
			return nil, fmt.Errorf("Failed to scan daily entry: %w", err)
		}
		e.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
