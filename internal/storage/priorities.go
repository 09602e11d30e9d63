package storage

import (
	"context"
	"fmt"

	"github.com/claude/splitbalance/internal/engine"
	"github.com/claude/splitbalance/internal/models"
)

// ListPriorities returns the user's explicit muscle priorities. Muscles
// without a row fall back to models.DefaultPriority at read time; no
// default rows are materialized.
func (db *DB) ListPriorities(ctx context.Context, userID int) ([]models.MusclePriority, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, muscle_id, priority
		 FROM muscle_priorities
		 WHERE user_id = $1
		 ORDER BY muscle_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying priorities: %w", err)
	}
	defer rows.Close()

	var result []models.MusclePriority
	for rows.Next() {
		var p models.MusclePriority
		if err := rows.Scan(&p.UserID, &p.MuscleID, &p.Priority); err != nil {
			return nil, fmt.Errorf("scanning priority: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// UpsertPriorities writes the given priorities for a user, one row per
// muscle, replacing existing values. Priorities outside [1, 100] are
// rejected here, at the boundary, so the range calculator never sees them.
func (db *DB) UpsertPriorities(ctx context.Context, userID int, priorities []models.MusclePriority) error {
	for _, p := range priorities {
		if p.Priority < 1 || p.Priority > 100 {
			return fmt.Errorf("muscle %d priority %d: %w", p.MuscleID, p.Priority, engine.ErrPriorityRange)
		}
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning priority update: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range priorities {
		_, err := tx.Exec(ctx,
			`INSERT INTO muscle_priorities (user_id, muscle_id, priority)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, muscle_id) DO UPDATE SET priority = $3`,
			userID, p.MuscleID, p.Priority)
		if err != nil {
			return fmt.Errorf("upserting priority for muscle %d: %w", p.MuscleID, err)
		}
	}
	return tx.Commit(ctx)
}
