package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/splitbalance/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ListSplits returns the user's splits, newest first, without their day
// aggregates.
func (db *DB) ListSplits(ctx context.Context, userID int) ([]models.Split, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, start_date, is_active, created_at
		 FROM splits
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying splits: %w", err)
	}
	defer rows.Close()

	var result []models.Split
	for rows.Next() {
		var s models.Split
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.StartDate, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning split: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetSplit returns one split with its full day and target aggregate.
func (db *DB) GetSplit(ctx context.Context, splitID uuid.UUID, userID int) (*models.Split, error) {
	var s models.Split
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, start_date, is_active, created_at
		 FROM splits
		 WHERE id = $1 AND user_id = $2`,
		splitID, userID).Scan(&s.ID, &s.UserID, &s.Name, &s.StartDate, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("split %s: %w", splitID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying split: %w", err)
	}

	if err := db.loadDays(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetActiveSplit returns the user's active split with its aggregate, or
// ErrNotFound if no split is active.
func (db *DB) GetActiveSplit(ctx context.Context, userID int) (*models.Split, error) {
	var s models.Split
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, start_date, is_active, created_at
		 FROM splits
		 WHERE user_id = $1 AND is_active`,
		userID).Scan(&s.ID, &s.UserID, &s.Name, &s.StartDate, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("no active split for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying active split: %w", err)
	}

	if err := db.loadDays(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (db *DB) loadDays(ctx context.Context, s *models.Split) error {
	dayRows, err := db.Pool.Query(ctx,
		`SELECT id, name, ordinal
		 FROM split_days
		 WHERE split_id = $1
		 ORDER BY ordinal`,
		s.ID)
	if err != nil {
		return fmt.Errorf("querying split days: %w", err)
	}
	defer dayRows.Close()

	dayIndex := make(map[uuid.UUID]int)
	for dayRows.Next() {
		var d models.SplitDay
		if err := dayRows.Scan(&d.ID, &d.Name, &d.Ordinal); err != nil {
			return fmt.Errorf("scanning split day: %w", err)
		}
		dayIndex[d.ID] = len(s.Days)
		s.Days = append(s.Days, d)
	}
	if err := dayRows.Err(); err != nil {
		return err
	}

	targetRows, err := db.Pool.Query(ctx,
		`SELECT t.split_day_id, t.muscle_id, t.target_activation
		 FROM split_day_targets t
		 JOIN split_days d ON d.id = t.split_day_id
		 WHERE d.split_id = $1
		 ORDER BY t.muscle_id`,
		s.ID)
	if err != nil {
		return fmt.Errorf("querying split targets: %w", err)
	}
	defer targetRows.Close()

	for targetRows.Next() {
		var dayID uuid.UUID
		var t models.MuscleTarget
		if err := targetRows.Scan(&dayID, &t.MuscleID, &t.TargetActivation); err != nil {
			return fmt.Errorf("scanning split target: %w", err)
		}
		if i, ok := dayIndex[dayID]; ok {
			s.Days[i].Targets = append(s.Days[i].Targets, t)
		}
	}
	return targetRows.Err()
}

// SaveSplit persists a split aggregate: the split row is upserted and its
// days and targets are replaced wholesale in one transaction. Replacing
// rather than diffing keeps the ordinal-contiguity invariant trivially
// intact after day removals.
func (db *DB) SaveSplit(ctx context.Context, s *models.Split) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning split save: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO splits (id, user_id, name, start_date, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
			SET name = $3, start_date = $4, is_active = $5`,
		s.ID, s.UserID, s.Name, s.StartDate, s.IsActive, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting split: %w", err)
	}

	// Targets cascade with their days.
	if _, err := tx.Exec(ctx, `DELETE FROM split_days WHERE split_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clearing split days: %w", err)
	}

	for i := range s.Days {
		d := &s.Days[i]
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO split_days (id, split_id, name, ordinal) VALUES ($1, $2, $3, $4)`,
			d.ID, s.ID, d.Name, d.Ordinal)
		if err != nil {
			return fmt.Errorf("inserting split day %q: %w", d.Name, err)
		}
		for _, t := range d.Targets {
			_, err := tx.Exec(ctx,
				`INSERT INTO split_day_targets (split_day_id, muscle_id, target_activation)
				 VALUES ($1, $2, $3)`,
				d.ID, t.MuscleID, t.TargetActivation)
			if err != nil {
				return fmt.Errorf("inserting target for muscle %d: %w", t.MuscleID, err)
			}
		}
	}

	return tx.Commit(ctx)
}

// DeleteSplit removes a split and, via cascade, its days and targets.
func (db *DB) DeleteSplit(ctx context.Context, splitID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM splits WHERE id = $1 AND user_id = $2`, splitID, userID)
	if err != nil {
		return fmt.Errorf("deleting split: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("split %s: %w", splitID, ErrNotFound)
	}
	return nil
}

// ActivateSplit makes one split the user's active schedule: every other
// split owned by the user is deactivated and the target split gets its
// start date and active flag, all in a single transaction so the
// one-active-split invariant can never be observed broken.
func (db *DB) ActivateSplit(ctx context.Context, splitID uuid.UUID, userID int, startDate time.Time) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning split activation: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE splits SET is_active = FALSE WHERE user_id = $1 AND id <> $2`,
		userID, splitID)
	if err != nil {
		return fmt.Errorf("deactivating other splits: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE splits SET is_active = TRUE, start_date = $3
		 WHERE id = $1 AND user_id = $2`,
		splitID, userID, startDate)
	if err != nil {
		return fmt.Errorf("activating split: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("split %s: %w", splitID, ErrNotFound)
	}

	return tx.Commit(ctx)
}
