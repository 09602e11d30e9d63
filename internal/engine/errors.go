// Package engine implements the split-rotation and muscle-activation
// balancing rules: resolving which day of a rotating split is current,
// computing priority-weighted target activation ranges, aggregating logged
// training volume per muscle, and classifying each muscle against its range.
//
// Everything here is pure computation. The engine never reads the clock,
// never performs I/O, and holds no shared state; persistence and transport
// live in internal/storage and internal/server.
package engine

import "errors"

var (
	// ErrInvalidSchedule is returned when a split cannot drive the rotation:
	// no start date, no days, or a mutation that would leave it with zero
	// days.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrDuplicateTarget is returned by the raw target insert path when a
	// day already has a target for the muscle. UpsertTarget resolves this
	// by replacement instead.
	ErrDuplicateTarget = errors.New("duplicate muscle target")

	// ErrPriorityRange is returned for a priority outside [1, 100]. Out of
	// range values are rejected, never clamped.
	ErrPriorityRange = errors.New("priority out of range")
)
