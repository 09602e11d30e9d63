package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claude/splitbalance/internal/models"
	"github.com/claude/splitbalance/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	SessionsParsed int
	SetsInserted   int
	WarmupsSkipped int

	UnmatchedExercises []string
}

// Importer reads training-log CSV exports from a directory and inserts
// logged sets for exercises that match a workout definition by name.
type Importer struct {
	db     *storage.DB
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil, in which case every file is
// processed on every run.
func New(db *storage.DB, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, state: state, log: log, dryRun: dryRun}
}

// Import processes all .csv files under dir for the given user.
func (imp *Importer) Import(ctx context.Context, dir string, userID int) (*Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading %s: %w", dir, err)
	}

	unmatched := map[string]bool{}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		skip, size, hash, err := imp.alreadyImported(path, entry.Name())
		if err != nil {
			imp.log.Error("checking import state", "file", entry.Name(), "error", err)
			imp.stats.FilesErrored++
			continue
		}
		if skip {
			imp.stats.FilesSkipped++
			continue
		}

		if err := imp.importFile(ctx, path, userID, unmatched); err != nil {
			imp.log.Error("importing file", "file", entry.Name(), "error", err)
			imp.stats.FilesErrored++
			continue
		}
		imp.stats.FilesProcessed++

		if imp.state != nil && !imp.dryRun {
			if err := imp.state.MarkImported(entry.Name(), size, hash); err != nil {
				imp.log.Warn("recording import state", "file", entry.Name(), "error", err)
			}
		}
	}

	for name := range unmatched {
		imp.stats.UnmatchedExercises = append(imp.stats.UnmatchedExercises, name)
	}
	sort.Strings(imp.stats.UnmatchedExercises)

	return &imp.stats, nil
}

// alreadyImported returns whether the file was imported before, plus its
// current size and hash for state recording.
func (imp *Importer) alreadyImported(path, relPath string) (bool, int64, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, 0, "", err
	}
	hash, err := HashFile(path)
	if err != nil {
		return false, 0, "", err
	}
	if imp.state == nil {
		return false, info.Size(), hash, nil
	}
	done, err := imp.state.IsImported(relPath, info.Size(), hash)
	return done, info.Size(), hash, err
}

func (imp *Importer) importFile(ctx context.Context, path string, userID int, unmatched map[string]bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sessions, err := Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for _, session := range sessions {
		imp.stats.SessionsParsed++
		for _, ex := range session.Exercises {
			workout, err := imp.db.GetWorkoutByName(ctx, userID, ex.Name)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					if !unmatched[ex.Name] {
						imp.log.Warn("no workout matches exercise, skipping", "exercise", ex.Name)
						unmatched[ex.Name] = true
					}
					continue
				}
				return err
			}

			for _, set := range ex.Sets {
				if set.IsWarmup {
					imp.stats.WarmupsSkipped++
					continue
				}
				if imp.dryRun {
					imp.stats.SetsInserted++
					continue
				}
				if err := imp.db.InsertLoggedSet(ctx, buildSet(userID, workout, session, set)); err != nil {
					return fmt.Errorf("inserting set for %s: %w", ex.Name, err)
				}
				imp.stats.SetsInserted++
			}
		}
	}
	return nil
}

// buildSet maps one parsed working set onto a logged set for the matched
// workout. RIR is rounded to the nearest whole rep in reserve.
func buildSet(userID int, workout *models.Workout, session Session, set Set) *models.LoggedSet {
	weight := set.WeightKg
	reps := set.Reps
	rir := int(math.Round(set.RIR))
	return &models.LoggedSet{
		UserID:    userID,
		WorkoutID: workout.ID,
		DateTime:  session.Date,
		WeightKg:  &weight,
		Reps:      &reps,
		RIR:       &rir,
	}
}
