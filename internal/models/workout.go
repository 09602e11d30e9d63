package models

import (
	"time"

	"github.com/google/uuid"
)

// MuscleContribution is how much volume one set of a workout attributes to
// a single muscle. The list is fixed per workout; logged sets inherit it.
type MuscleContribution struct {
	MuscleID         int `json:"muscle_id"`
	ActivationRating int `json:"activation_rating"` // 0-100
}

// Workout is an exercise definition owned by a user, carrying its fixed
// muscle-activation contribution list.
type Workout struct {
	ID            uuid.UUID            `json:"id"`
	UserID        int                  `json:"user_id"`
	Name          string               `json:"name"`
	Equipment     string               `json:"equipment,omitempty"`
	Location      string               `json:"location,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Contributions []MuscleContribution `json:"contributions"`
	CreatedAt     time.Time            `json:"created_at"`
}

// LoggedSet is one performed set of a workout. Produced by workout logging,
// consumed read-only by the activation aggregator. Contributions is a copy
// of the owning workout's list at query time; the aggregator never
// re-derives it per set.
type LoggedSet struct {
	ID            uuid.UUID            `json:"id"`
	UserID        int                  `json:"user_id"`
	WorkoutID     uuid.UUID            `json:"workout_id"`
	DateTime      time.Time            `json:"date_time"`
	WeightKg      *float64             `json:"weight_kg,omitempty"`
	Reps          *int                 `json:"reps,omitempty"`
	RIR           *int                 `json:"rir,omitempty"` // reps in reserve, 0-10
	RestTimeSec   *int                 `json:"rest_time_sec,omitempty"`
	Contributions []MuscleContribution `json:"contributions"`
}
