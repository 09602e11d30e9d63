package engine

import (
	"fmt"
	"time"

	"github.com/claude/splitbalance/internal/models"
	"github.com/google/uuid"
)

// AddDay appends a new day to the split with the next contiguous ordinal
// and returns a pointer to it.
func AddDay(split *models.Split, name string) *models.SplitDay {
	split.Days = append(split.Days, models.SplitDay{
		ID:      uuid.New(),
		Name:    name,
		Ordinal: len(split.Days) + 1,
	})
	return &split.Days[len(split.Days)-1]
}

// RemoveDay removes the day at the given ordinal and re-sequences the
// remaining days so ordinals stay contiguous from 1, preserving relative
// order. Removing the last remaining day fails with ErrInvalidSchedule: an
// empty split cannot resolve a rotation.
func RemoveDay(split *models.Split, ordinal int) error {
	if split.Length() <= 1 {
		return fmt.Errorf("removing day %d would leave split %q empty: %w", ordinal, split.Name, ErrInvalidSchedule)
	}
	idx := -1
	for i := range split.Days {
		if split.Days[i].Ordinal == ordinal {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("split %q has no day at ordinal %d", split.Name, ordinal)
	}

	split.Days = append(split.Days[:idx], split.Days[idx+1:]...)
	for i := range split.Days {
		split.Days[i].Ordinal = i + 1
	}
	return nil
}

// UpsertTarget sets the day's target for a muscle, replacing any existing
// target for that muscle so the one-target-per-muscle-per-day invariant
// holds without error.
func UpsertTarget(day *models.SplitDay, muscleID, activation int) {
	if t := day.Target(muscleID); t != nil {
		t.TargetActivation = activation
		return
	}
	day.Targets = append(day.Targets, models.MuscleTarget{
		MuscleID:         muscleID,
		TargetActivation: activation,
	})
}

// InsertTarget is the raw insert path: it fails with ErrDuplicateTarget if
// the day already has a target for the muscle. Callers that want
// replace-on-conflict should use UpsertTarget.
func InsertTarget(day *models.SplitDay, muscleID, activation int) error {
	if day.Target(muscleID) != nil {
		return fmt.Errorf("day %q already targets muscle %d: %w", day.Name, muscleID, ErrDuplicateTarget)
	}
	day.Targets = append(day.Targets, models.MuscleTarget{
		MuscleID:         muscleID,
		TargetActivation: activation,
	})
	return nil
}

// Activate marks the split active with the given rotation anchor date. A
// split needs at least one day before it can drive a rotation. Clearing the
// active flag on the user's other splits is the storage layer's half of the
// swap; both effects must land in one transaction.
func Activate(split *models.Split, startDate time.Time) error {
	if split.Length() == 0 {
		return fmt.Errorf("cannot activate empty split %q: %w", split.Name, ErrInvalidSchedule)
	}
	d := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	split.StartDate = &d
	split.IsActive = true
	return nil
}
