package models

// Classification is the balance verdict for one muscle against its target
// activation range.
type Classification string

const (
	// StatusWarning means no activation was logged in the window at all.
	StatusWarning Classification = "warning"
	// StatusBelow means logged activation is under the lower bound.
	StatusBelow Classification = "below"
	// StatusOptimal means activation is within the range, including the 15%
	// headroom above the nominal upper bound.
	StatusOptimal Classification = "optimal"
	// StatusAbove means activation exceeds the upper bound plus headroom.
	StatusAbove Classification = "above"
	// StatusNotTracked marks a muscle with no target anywhere in the active
	// split. It is a fixed marker, not a computed classification.
	StatusNotTracked Classification = "not_tracked"
)

// MuscleStatus is the derived dashboard record for one muscle. It is a pure
// function of catalog, priorities, split, and logged sets, recomputed on
// demand and never persisted.
type MuscleStatus struct {
	MuscleID          int            `json:"muscle_id"`
	MuscleName        string         `json:"muscle_name"`
	MuscleGroup       string         `json:"muscle_group"`
	CurrentActivation int            `json:"current_activation"`
	TargetLower       float64        `json:"target_lower"`
	TargetUpper       float64        `json:"target_upper"`
	Priority          int            `json:"priority"`
	Classification    Classification `json:"classification"`
	InSplit           bool           `json:"in_split"`
}
