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

// InsertWorkout inserts a workout definition with its fixed contribution
// list in one transaction.
func (db *DB) InsertWorkout(ctx context.Context, w *models.Workout) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning workout insert: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, user_id, name, equipment, location, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.UserID, w.Name, w.Equipment, w.Location, w.Notes, w.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}

	for _, c := range w.Contributions {
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_muscles (workout_id, muscle_id, activation_rating)
			 VALUES ($1, $2, $3)`,
			w.ID, c.MuscleID, c.ActivationRating)
		if err != nil {
			return fmt.Errorf("inserting contribution for muscle %d: %w", c.MuscleID, err)
		}
	}

	return tx.Commit(ctx)
}

// ListWorkouts returns the user's workout definitions with contribution
// lists attached, newest first.
func (db *DB) ListWorkouts(ctx context.Context, userID int) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, equipment, location, notes, created_at
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Equipment, &w.Location, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		index[w.ID] = len(result)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	contribRows, err := db.Pool.Query(ctx,
		`SELECT wm.workout_id, wm.muscle_id, wm.activation_rating
		 FROM workout_muscles wm
		 JOIN workouts w ON w.id = wm.workout_id
		 WHERE w.user_id = $1
		 ORDER BY wm.muscle_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workout contributions: %w", err)
	}
	defer contribRows.Close()

	for contribRows.Next() {
		var workoutID uuid.UUID
		var c models.MuscleContribution
		if err := contribRows.Scan(&workoutID, &c.MuscleID, &c.ActivationRating); err != nil {
			return nil, fmt.Errorf("scanning workout contribution: %w", err)
		}
		if i, ok := index[workoutID]; ok {
			result[i].Contributions = append(result[i].Contributions, c)
		}
	}
	return result, contribRows.Err()
}

// GetWorkoutByName returns the user's workout matching the given name, or
// ErrNotFound. Used by the importer to match exported session exercises to
// workout definitions.
func (db *DB) GetWorkoutByName(ctx context.Context, userID int, name string) (*models.Workout, error) {
	var w models.Workout
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, equipment, location, notes, created_at
		 FROM workouts
		 WHERE user_id = $1 AND name = $2`,
		userID, name).Scan(&w.ID, &w.UserID, &w.Name, &w.Equipment, &w.Location, &w.Notes, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("workout %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout %q: %w", name, err)
	}
	return &w, nil
}

// InsertLoggedSet records one performed set of a workout.
func (db *DB) InsertLoggedSet(ctx context.Context, set *models.LoggedSet) error {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_logs (id, user_id, workout_id, date_time, weight_kg, reps, rir, rest_time_sec)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		set.ID, set.UserID, set.WorkoutID, set.DateTime, set.WeightKg, set.Reps, set.RIR, set.RestTimeSec)
	if err != nil {
		return fmt.Errorf("inserting logged set: %w", err)
	}
	return nil
}

// QueryLoggedSets returns the user's logged sets in [start, end), each
// carrying its owning workout's fixed contribution list. The aggregator
// consumes these as-is and never re-derives contributions per set.
func (db *DB) QueryLoggedSets(ctx context.Context, userID int, start, end time.Time) ([]models.LoggedSet, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, workout_id, date_time, weight_kg, reps, rir, rest_time_sec
		 FROM workout_logs
		 WHERE user_id = $1 AND date_time >= $2 AND date_time < $3
		 ORDER BY date_time DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying logged sets: %w", err)
	}
	defer rows.Close()

	var result []models.LoggedSet
	workoutIDs := make(map[uuid.UUID]bool)
	for rows.Next() {
		var s models.LoggedSet
		if err := rows.Scan(&s.ID, &s.UserID, &s.WorkoutID, &s.DateTime,
			&s.WeightKg, &s.Reps, &s.RIR, &s.RestTimeSec); err != nil {
			return nil, fmt.Errorf("scanning logged set: %w", err)
		}
		workoutIDs[s.WorkoutID] = true
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(workoutIDs))
	for id := range workoutIDs {
		ids = append(ids, id)
	}
	contribRows, err := db.Pool.Query(ctx,
		`SELECT workout_id, muscle_id, activation_rating
		 FROM workout_muscles
		 WHERE workout_id = ANY($1)
		 ORDER BY muscle_id`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("querying set contributions: %w", err)
	}
	defer contribRows.Close()

	contribs := make(map[uuid.UUID][]models.MuscleContribution)
	for contribRows.Next() {
		var workoutID uuid.UUID
		var c models.MuscleContribution
		if err := contribRows.Scan(&workoutID, &c.MuscleID, &c.ActivationRating); err != nil {
			return nil, fmt.Errorf("scanning set contribution: %w", err)
		}
		contribs[workoutID] = append(contribs[workoutID], c)
	}
	if err := contribRows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		result[i].Contributions = contribs[result[i].WorkoutID]
	}
	return result, nil
}
