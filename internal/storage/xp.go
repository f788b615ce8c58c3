package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/progression"
)

// TotalXP is the cumulative XP in the ledger.
func (s *Storage) TotalXP(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(xp_amount), 0) FROM xp_ledger`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("Failed to sum XP: %w", err)
	}
	return total, nil
}

// AwardXP appends to the ledger and answers whether the award crossed a level threshold.
func (s *Storage) AwardXP(ctx context.Context, award models.XPAward) (models.XPResult, error) {
	if award.XPAmount < 0 {
		return models.XPResult{}, fmt.Errorf("negative XP award: %d", award.XPAmount)
	}
	if award.ActionType == "" {
		return models.XPResult{}, fmt.Errorf("XP award without an action type")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.XPResult{}, fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var before int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(SUM(xp_amount), 0) FROM xp_ledger`).Scan(&before); err != nil {
		return models.XPResult{}, fmt.Errorf("Failed to sum XP: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO xp_ledger (id, action_type, xp_amount, awarded_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(),
		award.ActionType,
		award.XPAmount,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return models.XPResult{}, fmt.Errorf("Failed to record XP award: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.XPResult{}, fmt.Errorf("Failed to commit transaction: %w", err)
	}

	up, level := progression.LeveledUp(before, award.XPAmount)
	return models.XPResult{
		LeveledUp: up,
		NewLevel:  level,
		TotalXP:   before + award.XPAmount,
	}, nil
}
