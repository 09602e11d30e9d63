package engine

import (
	"fmt"
	"sort"

	"github.com/claude/splitbalance/internal/models"
)

// MuscleStatuses composes the dashboard view: one status record per catalog
// muscle, joining the user's priorities (default 80 when unset), the active
// split's targets, and already-aggregated activation totals.
//
// Muscles with a target anywhere in the split are classified against their
// computed range. Muscles outside the split — including ones that logged
// activation anyway — come back flagged InSplit=false with the NotTracked
// marker and a zero range; the classifier is never consulted for them.
// Output is sorted by muscle group, then name, for stable rendering.
func MuscleStatuses(catalog []models.Muscle, priorities []models.MusclePriority, split models.Split, activation map[int]int) ([]models.MuscleStatus, error) {
	prioByMuscle := make(map[int]int, len(priorities))
	for _, p := range priorities {
		prioByMuscle[p.MuscleID] = p.Priority
	}
	tracked := split.TrackedMuscles()

	statuses := make([]models.MuscleStatus, 0, len(catalog))
	for _, m := range catalog {
		prio, ok := prioByMuscle[m.ID]
		if !ok {
			prio = models.DefaultPriority
		}

		st := models.MuscleStatus{
			MuscleID:          m.ID,
			MuscleName:        m.Name,
			MuscleGroup:       m.Group,
			CurrentActivation: activation[m.ID],
			Priority:          prio,
			Classification:    models.StatusNotTracked,
		}

		if tracked[m.ID] {
			rng, err := ComputeRange(prio, split.Length())
			if err != nil {
				return nil, fmt.Errorf("computing range for muscle %q: %w", m.Name, err)
			}
			st.InSplit = true
			st.TargetLower = rng.Lower
			st.TargetUpper = rng.Upper
			st.Classification = Classify(st.CurrentActivation, rng)
		}

		statuses = append(statuses, st)
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].MuscleGroup != statuses[j].MuscleGroup {
			return statuses[i].MuscleGroup < statuses[j].MuscleGroup
		}
		return statuses[i].MuscleName < statuses[j].MuscleName
	})
	return statuses, nil
}
