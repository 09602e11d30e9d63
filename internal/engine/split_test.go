package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/splitbalance/internal/models"
)

// TestAddDayOrdinals verifies that appended days receive contiguous
// ordinals starting at 1.
func TestAddDayOrdinals(t *testing.T) {
	split := &models.Split{Name: "ppl"}
	for i, name := range []string{"Push", "Pull", "Legs"} {
		day := AddDay(split, name)
		if day.Ordinal != i+1 {
			t.Errorf("AddDay(%q) ordinal = %d, want %d", name, day.Ordinal, i+1)
		}
		if day.ID == (models.SplitDay{}).ID {
			t.Errorf("AddDay(%q) did not assign an ID", name)
		}
	}
	if split.Length() != 3 {
		t.Errorf("split length = %d, want 3", split.Length())
	}
}

// TestRemoveDayResequences verifies the contiguity invariant: removing
// ordinal 2 from [1,2,3,4] leaves [1,2,3] with names in original relative
// order.
func TestRemoveDayResequences(t *testing.T) {
	split := &models.Split{Name: "ulul"}
	for _, name := range []string{"Upper A", "Lower A", "Upper B", "Lower B"} {
		AddDay(split, name)
	}

	if err := RemoveDay(split, 2); err != nil {
		t.Fatalf("RemoveDay: %v", err)
	}

	wantNames := []string{"Upper A", "Upper B", "Lower B"}
	if split.Length() != len(wantNames) {
		t.Fatalf("split length = %d, want %d", split.Length(), len(wantNames))
	}
	for i, d := range split.Days {
		if d.Ordinal != i+1 {
			t.Errorf("day %d ordinal = %d, want %d", i, d.Ordinal, i+1)
		}
		if d.Name != wantNames[i] {
			t.Errorf("day %d name = %q, want %q", i, d.Name, wantNames[i])
		}
	}
}

// TestRemoveDayKeepsAtLeastOne verifies that removing the only remaining
// day fails with ErrInvalidSchedule instead of leaving an unresolvable
// split.
func TestRemoveDayKeepsAtLeastOne(t *testing.T) {
	split := &models.Split{Name: "full body"}
	AddDay(split, "Full Body")

	if err := RemoveDay(split, 1); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("RemoveDay(last day) error = %v, want ErrInvalidSchedule", err)
	}
	if split.Length() != 1 {
		t.Errorf("failed removal mutated the split: length = %d, want 1", split.Length())
	}
}

// TestRemoveDayUnknownOrdinal verifies that a bogus ordinal is reported
// without mutating the split.
func TestRemoveDayUnknownOrdinal(t *testing.T) {
	split := &models.Split{Name: "ppl"}
	for _, name := range []string{"Push", "Pull", "Legs"} {
		AddDay(split, name)
	}
	if err := RemoveDay(split, 7); err == nil {
		t.Error("RemoveDay(7) on a 3-day split should fail")
	}
	if split.Length() != 3 {
		t.Errorf("split length = %d, want 3", split.Length())
	}
}

// TestUpsertTargetReplaces verifies the one-target-per-muscle-per-day
// invariant: a second upsert for the same muscle replaces, never
// duplicates.
func TestUpsertTargetReplaces(t *testing.T) {
	day := &models.SplitDay{Name: "Push"}

	UpsertTarget(day, 1, 200)
	UpsertTarget(day, 2, 150)
	UpsertTarget(day, 1, 300)

	if len(day.Targets) != 2 {
		t.Fatalf("day has %d targets, want 2", len(day.Targets))
	}
	if got := day.Target(1); got == nil || got.TargetActivation != 300 {
		t.Errorf("target for muscle 1 = %+v, want activation 300", got)
	}
	if got := day.Target(2); got == nil || got.TargetActivation != 150 {
		t.Errorf("target for muscle 2 = %+v, want activation 150", got)
	}
}

// TestInsertTargetDuplicate verifies the raw insert path reports
// ErrDuplicateTarget instead of silently replacing.
func TestInsertTargetDuplicate(t *testing.T) {
	day := &models.SplitDay{Name: "Pull"}
	if err := InsertTarget(day, 1, 200); err != nil {
		t.Fatalf("InsertTarget: %v", err)
	}
	if err := InsertTarget(day, 1, 300); !errors.Is(err, ErrDuplicateTarget) {
		t.Errorf("InsertTarget(duplicate) error = %v, want ErrDuplicateTarget", err)
	}
	if got := day.Target(1); got == nil || got.TargetActivation != 200 {
		t.Errorf("target for muscle 1 = %+v, want original activation 200", got)
	}
}

// TestActivate verifies activation stamps the start date (truncated to
// midnight) and sets the active flag, and that an empty split cannot be
// activated.
func TestActivate(t *testing.T) {
	split := &models.Split{Name: "ppl"}
	AddDay(split, "Push")

	at := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC)
	if err := Activate(split, at); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !split.IsActive {
		t.Error("split not marked active")
	}
	want := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if split.StartDate == nil || !split.StartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", split.StartDate, want)
	}

	empty := &models.Split{Name: "empty"}
	if err := Activate(empty, at); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("Activate(empty split) error = %v, want ErrInvalidSchedule", err)
	}
}
