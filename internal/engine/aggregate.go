package engine

import (
	"time"

	"github.com/claude/splitbalance/internal/models"
)

// Aggregate sums per-muscle activation across all logged sets whose
// timestamp falls in the half-open window [windowStart, windowEnd). Each
// retained set contributes its owning workout's fixed activation rating for
// every muscle on its contribution list.
//
// Summation is order-independent; reordering the input never changes the
// result. Sets with an empty contribution list are counted but add nothing.
// Muscles are not filtered against any split here — over-training a muscle
// outside the plan is a signal the caller must surface, not drop.
func Aggregate(sets []models.LoggedSet, windowStart, windowEnd time.Time) map[int]int {
	totals := make(map[int]int)
	for _, set := range sets {
		if set.DateTime.Before(windowStart) || !set.DateTime.Before(windowEnd) {
			continue
		}
		for _, c := range set.Contributions {
			totals[c.MuscleID] += c.ActivationRating
		}
	}
	return totals
}
