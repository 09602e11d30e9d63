package storage

import (
	"context"
	"fmt"

	"github.com/claude/splitbalance/internal/catalog"
	"github.com/claude/splitbalance/internal/models"
)

// SeedMuscles inserts catalog entries that are not present yet, keyed by
// muscle name. Existing rows are left untouched so seeding is idempotent
// across restarts. Returns the number of rows inserted.
func (db *DB) SeedMuscles(ctx context.Context, entries []catalog.Entry) (int64, error) {
	var inserted int64
	for _, e := range entries {
		tag, err := db.Pool.Exec(ctx,
			`INSERT INTO muscles (name, muscle_group, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			e.Name, e.Group, e.Description)
		if err != nil {
			return inserted, fmt.Errorf("seeding muscle %q: %w", e.Name, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// ListMuscles returns the full muscle catalog ordered by group, then name.
func (db *DB) ListMuscles(ctx context.Context) ([]models.Muscle, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, muscle_group, description
		 FROM muscles
		 ORDER BY muscle_group, name`)
	if err != nil {
		return nil, fmt.Errorf("querying muscles: %w", err)
	}
	defer rows.Close()

	var result []models.Muscle
	for rows.Next() {
		var m models.Muscle
		if err := rows.Scan(&m.ID, &m.Name, &m.Group, &m.Description); err != nil {
			return nil, fmt.Errorf("scanning muscle: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// GetMuscle returns one catalog muscle by ID.
func (db *DB) GetMuscle(ctx context.Context, id int) (*models.Muscle, error) {
	var m models.Muscle
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, muscle_group, description FROM muscles WHERE id = $1`,
		id).Scan(&m.ID, &m.Name, &m.Group, &m.Description)
	if err != nil {
		return nil, fmt.Errorf("querying muscle %d: %w", id, err)
	}
	return &m, nil
}
