package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about all stored data.
type DataStats struct {
	TotalSplits     int64             `json:"total_splits"`
	TotalWorkouts   int64             `json:"total_workouts"`
	TotalLoggedSets int64             `json:"total_logged_sets"`
	TotalMuscles    int64             `json:"total_muscles"`
	EarliestLog     *time.Time        `json:"earliest_log"`
	LatestLog       *time.Time        `json:"latest_log"`
	SetsByWorkout   []WorkoutSetsStat `json:"sets_by_workout"`
}

// WorkoutSetsStat holds the logged-set count for a single workout.
type WorkoutSetsStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GetDataStats returns aggregate statistics for a user's stored data.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM splits WHERE user_id = $1`, userID,
	).Scan(&stats.TotalSplits)
	if err != nil {
		return nil, fmt.Errorf("counting splits: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = $1`, userID,
	).Scan(&stats.TotalWorkouts)
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_logs WHERE user_id = $1`, userID,
	).Scan(&stats.TotalLoggedSets)
	if err != nil {
		return nil, fmt.Errorf("counting logged sets: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM muscles`,
	).Scan(&stats.TotalMuscles)
	if err != nil {
		return nil, fmt.Errorf("counting muscles: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT MIN(date_time), MAX(date_time) FROM workout_logs WHERE user_id = $1`, userID,
	).Scan(&stats.EarliestLog, &stats.LatestLog)
	if err != nil {
		return nil, fmt.Errorf("querying log date range: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT w.name, COUNT(l.id)
		 FROM workouts w
		 LEFT JOIN workout_logs l ON l.workout_id = w.id
		 WHERE w.user_id = $1
		 GROUP BY w.name
		 ORDER BY COUNT(l.id) DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sets by workout: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s WorkoutSetsStat
		if err := rows.Scan(&s.Name, &s.Count); err != nil {
			return nil, fmt.Errorf("scanning workout sets stat: %w", err)
		}
		stats.SetsByWorkout = append(stats.SetsByWorkout, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
