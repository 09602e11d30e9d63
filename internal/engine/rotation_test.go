package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/splitbalance/internal/models"
	"github.com/google/uuid"
)

func testSplit(numDays int, start time.Time) models.Split {
	s := models.Split{
		ID:        uuid.New(),
		UserID:    1,
		Name:      "test split",
		StartDate: &start,
		IsActive:  true,
	}
	names := []string{"Push", "Pull", "Legs", "Upper", "Lower", "Rest"}
	for i := 0; i < numDays; i++ {
		s.Days = append(s.Days, models.SplitDay{
			ID:      uuid.New(),
			Name:    names[i%len(names)],
			Ordinal: i + 1,
		})
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestResolveDayAnchor verifies that resolving on the start date itself
// always yields the first day of the cycle.
func TestResolveDayAnchor(t *testing.T) {
	start := date(2026, time.March, 2)
	for _, n := range []int{1, 3, 4, 6} {
		split := testSplit(n, start)
		day, err := ResolveDay(split, start)
		if err != nil {
			t.Fatalf("ResolveDay(%d days, anchor): %v", n, err)
		}
		if day.Ordinal != 1 {
			t.Errorf("ResolveDay(%d days, anchor) ordinal = %d, want 1", n, day.Ordinal)
		}
	}
}

// TestResolveDayRotation verifies the day-by-day progression through a
// 4-day cycle, including the wrap back to ordinal 1.
func TestResolveDayRotation(t *testing.T) {
	start := date(2026, time.March, 2)
	split := testSplit(4, start)

	cases := []struct {
		daysAfter   int
		wantOrdinal int
	}{
		{0, 1}, {1, 2}, {2, 3}, {3, 4},
		{4, 1}, {5, 2},
		{11, 4}, {12, 1},
		{365, 2}, // 365 mod 4 = 1
	}
	for _, tc := range cases {
		day, err := ResolveDay(split, start.AddDate(0, 0, tc.daysAfter))
		if err != nil {
			t.Fatalf("ResolveDay(+%d days): %v", tc.daysAfter, err)
		}
		if day.Ordinal != tc.wantOrdinal {
			t.Errorf("ResolveDay(+%d days) ordinal = %d, want %d", tc.daysAfter, day.Ordinal, tc.wantOrdinal)
		}
	}
}

// TestResolveDayPeriodic verifies that shifting the date by any whole
// number of cycle lengths resolves to the same day.
func TestResolveDayPeriodic(t *testing.T) {
	start := date(2026, time.January, 15)
	split := testSplit(3, start)

	for daysAfter := -7; daysAfter <= 7; daysAfter++ {
		base := start.AddDate(0, 0, daysAfter)
		want, err := ResolveDay(split, base)
		if err != nil {
			t.Fatalf("ResolveDay(+%d days): %v", daysAfter, err)
		}
		for _, k := range []int{-3, -1, 1, 2, 10} {
			got, err := ResolveDay(split, base.AddDate(0, 0, k*3))
			if err != nil {
				t.Fatalf("ResolveDay(+%d days, k=%d): %v", daysAfter, k, err)
			}
			if got.Ordinal != want.Ordinal {
				t.Errorf("ResolveDay(+%d days, k=%d) ordinal = %d, want %d",
					daysAfter, k, got.Ordinal, want.Ordinal)
			}
		}
	}
}

// TestResolveDayBeforeAnchor verifies floored-modulo behavior for dates
// before the start date: the day before the anchor is the last day of the
// cycle, not a negative index.
func TestResolveDayBeforeAnchor(t *testing.T) {
	start := date(2026, time.March, 2)
	cases := []struct {
		numDays     int
		daysBefore  int
		wantOrdinal int
	}{
		{4, 1, 4},
		{4, 2, 3},
		{4, 4, 1},
		{4, 5, 4},
		{3, 1, 3},
		{1, 1, 1},
		{6, 13, 5},
	}
	for _, tc := range cases {
		split := testSplit(tc.numDays, start)
		day, err := ResolveDay(split, start.AddDate(0, 0, -tc.daysBefore))
		if err != nil {
			t.Fatalf("ResolveDay(%d days, -%d days): %v", tc.numDays, tc.daysBefore, err)
		}
		if day.Ordinal != tc.wantOrdinal {
			t.Errorf("ResolveDay(%d days, -%d days) ordinal = %d, want %d",
				tc.numDays, tc.daysBefore, day.Ordinal, tc.wantOrdinal)
		}
	}
}

// TestResolveDayIgnoresTimeOfDay verifies that rotation depends on the
// calendar date only, not the timestamp's clock component.
func TestResolveDayIgnoresTimeOfDay(t *testing.T) {
	start := date(2026, time.March, 2)
	split := testSplit(4, start)

	lateOnAnchor := time.Date(2026, time.March, 2, 23, 59, 59, 0, time.UTC)
	day, err := ResolveDay(split, lateOnAnchor)
	if err != nil {
		t.Fatalf("ResolveDay: %v", err)
	}
	if day.Ordinal != 1 {
		t.Errorf("ResolveDay(23:59 on anchor) ordinal = %d, want 1", day.Ordinal)
	}
}

// TestResolveDayInvalidSchedule verifies the error cases: missing start
// date and empty day list.
func TestResolveDayInvalidSchedule(t *testing.T) {
	noStart := testSplit(3, date(2026, time.March, 2))
	noStart.StartDate = nil
	if _, err := ResolveDay(noStart, date(2026, time.March, 5)); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("ResolveDay(no start date) error = %v, want ErrInvalidSchedule", err)
	}

	empty := testSplit(0, date(2026, time.March, 2))
	if _, err := ResolveDay(empty, date(2026, time.March, 5)); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("ResolveDay(no days) error = %v, want ErrInvalidSchedule", err)
	}
}
