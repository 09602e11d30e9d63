package models

import (
	"time"

	"github.com/google/uuid"
)

// MuscleTarget is the planned activation for one muscle on one split day.
// At most one target per muscle may exist within a day.
type MuscleTarget struct {
	MuscleID         int `json:"muscle_id"`
	TargetActivation int `json:"target_activation"`
}

// SplitDay is one day within a split's rotating cycle. Ordinals are
// contiguous integers starting at 1.
type SplitDay struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Ordinal int            `json:"ordinal"`
	Targets []MuscleTarget `json:"targets"`
}

// Target returns the day's target for the given muscle, or nil.
func (d *SplitDay) Target(muscleID int) *MuscleTarget {
	for i := range d.Targets {
		if d.Targets[i].MuscleID == muscleID {
			return &d.Targets[i]
		}
	}
	return nil
}

// Split is a named, ordered, repeating cycle of training days. At most one
// split per user is active; activation anchors the rotation at StartDate.
type Split struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	IsActive  bool       `json:"is_active"`
	Days      []SplitDay `json:"days"`
	CreatedAt time.Time  `json:"created_at"`
}

// Length returns the number of days in the split's cycle.
func (s *Split) Length() int {
	return len(s.Days)
}

// Day returns the day at the given ordinal, or nil if no such day exists.
func (s *Split) Day(ordinal int) *SplitDay {
	for i := range s.Days {
		if s.Days[i].Ordinal == ordinal {
			return &s.Days[i]
		}
	}
	return nil
}

// TrackedMuscles returns the set of muscle IDs that have a target on any
// day of the split.
func (s *Split) TrackedMuscles() map[int]bool {
	tracked := make(map[int]bool)
	for _, d := range s.Days {
		for _, t := range d.Targets {
			tracked[t.MuscleID] = true
		}
	}
	return tracked
}
