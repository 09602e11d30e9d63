package engine

import (
	"fmt"
	"sort"

	"github.com/claude/splitbalance/internal/models"
)

// AnalyzeSplit evaluates a split's plan on paper: for each muscle targeted
// anywhere in the split, the target activations are summed across all days
// and classified against the muscle's range, exactly as logged volume would
// be. The split editor renders this so a plan can be balanced before a
// single set is logged.
//
// Only muscles present in the split appear in the result; catalog entries
// without a target are irrelevant to plan analysis. Returns
// ErrInvalidSchedule for a split with no days.
func AnalyzeSplit(split models.Split, catalog []models.Muscle, priorities []models.MusclePriority) ([]models.MuscleStatus, error) {
	if split.Length() == 0 {
		return nil, fmt.Errorf("analyzing split %q with no days: %w", split.Name, ErrInvalidSchedule)
	}

	muscleByID := make(map[int]models.Muscle, len(catalog))
	for _, m := range catalog {
		muscleByID[m.ID] = m
	}
	prioByMuscle := make(map[int]int, len(priorities))
	for _, p := range priorities {
		prioByMuscle[p.MuscleID] = p.Priority
	}

	planned := make(map[int]int)
	for _, d := range split.Days {
		for _, t := range d.Targets {
			planned[t.MuscleID] += t.TargetActivation
		}
	}

	statuses := make([]models.MuscleStatus, 0, len(planned))
	for muscleID, total := range planned {
		prio, ok := prioByMuscle[muscleID]
		if !ok {
			prio = models.DefaultPriority
		}
		rng, err := ComputeRange(prio, split.Length())
		if err != nil {
			return nil, fmt.Errorf("computing range for muscle %d: %w", muscleID, err)
		}

		m := muscleByID[muscleID]
		statuses = append(statuses, models.MuscleStatus{
			MuscleID:          muscleID,
			MuscleName:        m.Name,
			MuscleGroup:       m.Group,
			CurrentActivation: total,
			TargetLower:       rng.Lower,
			TargetUpper:       rng.Upper,
			Priority:          prio,
			Classification:    Classify(total, rng),
			InSplit:           true,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].MuscleGroup != statuses[j].MuscleGroup {
			return statuses[i].MuscleGroup < statuses[j].MuscleGroup
		}
		return statuses[i].MuscleName < statuses[j].MuscleName
	})
	return statuses, nil
}
