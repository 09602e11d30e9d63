package models

// Canonical muscle group names used by the catalog.
const (
	GroupChest     = "chest"
	GroupBack      = "back"
	GroupShoulders = "shoulders"
	GroupArms      = "arms"
	GroupLegs      = "legs"
	GroupCore      = "core"
	GroupOther     = "other"
)

var muscleGroups = map[string]bool{
	GroupChest:     true,
	GroupBack:      true,
	GroupShoulders: true,
	GroupArms:      true,
	GroupLegs:      true,
	GroupCore:      true,
	GroupOther:     true,
}

// ValidMuscleGroup reports whether g is a known muscle group name.
func ValidMuscleGroup(g string) bool {
	return muscleGroups[g]
}

// Muscle is static catalog reference data. Rows are created by catalog
// seeding and never mutated afterwards.
type Muscle struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description,omitempty"`
}

// DefaultPriority is assumed for any muscle a user has not explicitly ranked.
const DefaultPriority = 80

// MusclePriority is a per-user importance weight in [1, 100] driving the
// muscle's target activation range.
type MusclePriority struct {
	UserID   int `json:"user_id"`
	MuscleID int `json:"muscle_id"`
	Priority int `json:"priority"`
}
