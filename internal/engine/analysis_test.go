package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/splitbalance/internal/models"
)

// TestAnalyzeSplitSumsTargetsAcrossDays verifies that plan analysis sums a
// muscle's targets over every day of the split before classifying.
func TestAnalyzeSplitSumsTargetsAcrossDays(t *testing.T) {
	split := testSplit(3, date(2026, time.March, 2))
	UpsertTarget(&split.Days[0], 1, 1500)
	UpsertTarget(&split.Days[1], 1, 1500)
	UpsertTarget(&split.Days[2], 1, 1500)

	statuses, err := AnalyzeSplit(split, testCatalog, []models.MusclePriority{{UserID: 1, MuscleID: 1, Priority: 80}})
	if err != nil {
		t.Fatalf("AnalyzeSplit: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}

	st := statuses[0]
	if st.CurrentActivation != 4500 {
		t.Errorf("planned total = %d, want 4500", st.CurrentActivation)
	}
	// lower bound at priority 80 on 3 days is 3780, so 4500 is in range
	if st.Classification != models.StatusOptimal {
		t.Errorf("classification = %q, want %q", st.Classification, models.StatusOptimal)
	}
}

// TestAnalyzeSplitOnlyTargetedMuscles verifies catalog muscles without any
// target stay out of the plan analysis.
func TestAnalyzeSplitOnlyTargetedMuscles(t *testing.T) {
	split := testSplit(2, date(2026, time.March, 2))
	UpsertTarget(&split.Days[0], 1, 800)
	UpsertTarget(&split.Days[1], 2, 600)

	statuses, err := AnalyzeSplit(split, testCatalog, nil)
	if err != nil {
		t.Fatalf("AnalyzeSplit: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	for _, st := range statuses {
		if st.MuscleID != 1 && st.MuscleID != 2 {
			t.Errorf("unexpected muscle %d in plan analysis", st.MuscleID)
		}
		if !st.InSplit {
			t.Errorf("muscle %d should be flagged in split", st.MuscleID)
		}
	}
}

// TestAnalyzeSplitEmpty verifies that a split with no days cannot be
// analyzed.
func TestAnalyzeSplitEmpty(t *testing.T) {
	split := models.Split{Name: "empty"}
	if _, err := AnalyzeSplit(split, testCatalog, nil); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("AnalyzeSplit(empty) error = %v, want ErrInvalidSchedule", err)
	}
}
