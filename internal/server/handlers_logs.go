package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/splitbalance/internal/models"
	"github.com/google/uuid"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.db.ListWorkouts(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string                      `json:"name"`
		Equipment     string                      `json:"equipment"`
		Location      string                      `json:"location"`
		Notes         string                      `json:"notes"`
		Contributions []models.MuscleContribution `json:"contributions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	for _, c := range req.Contributions {
		if c.ActivationRating < 0 || c.ActivationRating > 100 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "activation_rating must be in [0, 100]"})
			return
		}
	}

	workout := &models.Workout{
		UserID:        s.userID,
		Name:          req.Name,
		Equipment:     req.Equipment,
		Location:      req.Location,
		Notes:         req.Notes,
		Contributions: req.Contributions,
	}
	if err := s.db.InsertWorkout(r.Context(), workout); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sets, err := s.db.QueryLoggedSets(r.Context(), s.userID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (s *Server) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkoutID   uuid.UUID `json:"workout_id"`
		DateTime    time.Time `json:"date_time"`
		WeightKg    *float64  `json:"weight_kg"`
		Reps        *int      `json:"reps"`
		RIR         *int      `json:"rir"`
		RestTimeSec *int      `json:"rest_time_sec"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.WorkoutID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "workout_id is required"})
		return
	}
	if req.DateTime.IsZero() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date_time is required"})
		return
	}
	if req.RIR != nil && (*req.RIR < 0 || *req.RIR > 10) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rir must be in [0, 10]"})
		return
	}

	set := &models.LoggedSet{
		UserID:      s.userID,
		WorkoutID:   req.WorkoutID,
		DateTime:    req.DateTime,
		WeightKg:    req.WeightKg,
		Reps:        req.Reps,
		RIR:         req.RIR,
		RestTimeSec: req.RestTimeSec,
	}
	if err := s.db.InsertLoggedSet(r.Context(), set); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, set)
}
