package engine

import (
	"fmt"
	"time"

	"github.com/claude/splitbalance/internal/models"
)

// ResolveDay returns the split day that is current on the given calendar
// date. The rotation is purely a function of whole days elapsed since the
// split's start date, modulo its length; gaps in logging do not shift it.
//
// Dates before the start date resolve deterministically via Euclidean
// (floored) modulo: the day before the anchor is the last day of the cycle.
// Calling this on a split with no start date or no days returns
// ErrInvalidSchedule.
func ResolveDay(split models.Split, onDate time.Time) (models.SplitDay, error) {
	if split.StartDate == nil {
		return models.SplitDay{}, fmt.Errorf("split %q has no start date: %w", split.Name, ErrInvalidSchedule)
	}
	n := split.Length()
	if n == 0 {
		return models.SplitDay{}, fmt.Errorf("split %q has no days: %w", split.Name, ErrInvalidSchedule)
	}

	idx := floorMod(daysBetween(*split.StartDate, onDate), n)
	day := split.Day(idx + 1)
	if day == nil {
		return models.SplitDay{}, fmt.Errorf("split %q has no day at ordinal %d: %w", split.Name, idx+1, ErrInvalidSchedule)
	}
	return *day, nil
}

// daysBetween returns the number of whole calendar days from one date to
// another, ignoring the time-of-day component. Both timestamps are assumed
// to be in the caller's single reference time zone already.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

// floorMod returns a mod n with the sign of n, so negative a still maps to
// [0, n). Go's % operator truncates toward zero, which would break rotation
// for dates before the anchor.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
