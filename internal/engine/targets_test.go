package engine

import (
	"errors"
	"math"
	"testing"
)

// TestComputeRangeKnownValues locks the range formula to concrete values,
// including the multiply-by-day-count upper bound.
func TestComputeRangeKnownValues(t *testing.T) {
	cases := []struct {
		priority  int
		numDays   int
		wantLower float64
		wantUpper float64
	}{
		// lower = 90*(10+0.1*80)*7/3, upper = 90*(20+0.1*80)*7*3
		{80, 3, 3780, 52920},
		// lower = 90*(10+0.1*100)*7/1 = 12600, upper = 90*(20+0.1*100)*7*1 = 18900
		{100, 1, 12600, 18900},
		// lower = 90*(10+0.1*1)*7/7 = 909, upper = 90*(20+0.1*1)*7*7 = 88641
		{1, 7, 909, 88641},
		// lower = 90*(10+0.1*50)*7/4 = 2362.5, upper = 90*(20+0.1*50)*7*4 = 63000
		{50, 4, 2362.5, 63000},
	}
	for _, tc := range cases {
		rng, err := ComputeRange(tc.priority, tc.numDays)
		if err != nil {
			t.Fatalf("ComputeRange(%d, %d): %v", tc.priority, tc.numDays, err)
		}
		if math.Abs(rng.Lower-tc.wantLower) > 1e-9 {
			t.Errorf("ComputeRange(%d, %d).Lower = %v, want %v", tc.priority, tc.numDays, rng.Lower, tc.wantLower)
		}
		if math.Abs(rng.Upper-tc.wantUpper) > 1e-9 {
			t.Errorf("ComputeRange(%d, %d).Upper = %v, want %v", tc.priority, tc.numDays, rng.Upper, tc.wantUpper)
		}
	}
}

// TestComputeRangeMonotonicInPriority verifies that for a fixed split
// length, raising priority never lowers either bound.
func TestComputeRangeMonotonicInPriority(t *testing.T) {
	for _, numDays := range []int{1, 3, 4, 6} {
		prev, err := ComputeRange(1, numDays)
		if err != nil {
			t.Fatalf("ComputeRange(1, %d): %v", numDays, err)
		}
		for p := 2; p <= 100; p++ {
			rng, err := ComputeRange(p, numDays)
			if err != nil {
				t.Fatalf("ComputeRange(%d, %d): %v", p, numDays, err)
			}
			if rng.Lower < prev.Lower {
				t.Fatalf("lower bound decreased at priority %d, days %d: %v -> %v", p, numDays, prev.Lower, rng.Lower)
			}
			if rng.Upper < prev.Upper {
				t.Fatalf("upper bound decreased at priority %d, days %d: %v -> %v", p, numDays, prev.Upper, rng.Upper)
			}
			prev = rng
		}
	}
}

// TestComputeRangeDayCountAsymmetry verifies the load-bearing asymmetry:
// more split days shrink the lower bound and widen the upper bound.
func TestComputeRangeDayCountAsymmetry(t *testing.T) {
	three, err := ComputeRange(80, 3)
	if err != nil {
		t.Fatalf("ComputeRange(80, 3): %v", err)
	}
	six, err := ComputeRange(80, 6)
	if err != nil {
		t.Fatalf("ComputeRange(80, 6): %v", err)
	}
	if six.Lower >= three.Lower {
		t.Errorf("lower bound should shrink with more days: 3d=%v, 6d=%v", three.Lower, six.Lower)
	}
	if six.Upper <= three.Upper {
		t.Errorf("upper bound should grow with more days: 3d=%v, 6d=%v", three.Upper, six.Upper)
	}
}

// TestComputeRangeRejectsBadInput verifies that out-of-range priorities are
// rejected rather than clamped, and that a zero-day split is an error.
func TestComputeRangeRejectsBadInput(t *testing.T) {
	for _, p := range []int{0, -5, 101, 150} {
		if _, err := ComputeRange(p, 3); !errors.Is(err, ErrPriorityRange) {
			t.Errorf("ComputeRange(%d, 3) error = %v, want ErrPriorityRange", p, err)
		}
	}
	for _, d := range []int{0, -1} {
		if _, err := ComputeRange(80, d); !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("ComputeRange(80, %d) error = %v, want ErrInvalidSchedule", d, err)
		}
	}
}
