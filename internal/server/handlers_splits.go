package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/splitbalance/internal/engine"
	"github.com/claude/splitbalance/internal/models"
	"github.com/claude/splitbalance/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListSplits(w http.ResponseWriter, r *http.Request) {
	splits, err := s.db.ListSplits(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, splits)
}

func (s *Server) handleCreateSplit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string   `json:"name"`
		Days []string `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	split := &models.Split{UserID: s.userID, Name: req.Name}
	for _, dayName := range req.Days {
		engine.AddDay(split, dayName)
	}

	if err := s.db.SaveSplit(r.Context(), split); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, split)
}

// handleGetSplit returns the split aggregate together with its plan
// analysis: the per-muscle planned totals classified against each muscle's
// target range.
func (s *Server) handleGetSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}

	var analysis []models.MuscleStatus
	if split.Length() > 0 {
		catalog, err := s.db.ListMuscles(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		priorities, err := s.db.ListPriorities(r.Context(), s.userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		analysis, err = engine.AnalyzeSplit(*split, catalog, priorities)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"split":    split,
		"analysis": analysis,
	})
}

func (s *Server) handleRenameSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	split.Name = req.Name
	if err := s.db.SaveSplit(r.Context(), split); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleDeleteSplit(w http.ResponseWriter, r *http.Request) {
	splitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid split ID"})
		return
	}

	if err := s.db.DeleteSplit(r.Context(), splitID, s.userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "split not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleActivateSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}

	var req struct {
		StartDate string `json:"start_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.StartDate == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start_date is required"})
		return
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date: " + err.Error()})
		return
	}

	// Validate activation against the engine's rules before touching
	// storage; the storage call then applies the atomic flag swap.
	if err := engine.Activate(split, startDate); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err := s.db.ActivateSplit(r.Context(), split.ID, s.userID, *split.StartDate); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleAddSplitDay(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	day := engine.AddDay(split, req.Name)
	if err := s.db.SaveSplit(r.Context(), split); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, day)
}

func (s *Server) handleRemoveSplitDay(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}
	ordinal, err := strconv.Atoi(chi.URLParam(r, "ordinal"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ordinal"})
		return
	}

	if err := engine.RemoveDay(split, ordinal); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, engine.ErrInvalidSchedule) {
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	if err := s.db.SaveSplit(r.Context(), split); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleUpsertTarget(w http.ResponseWriter, r *http.Request) {
	split, ok := s.loadSplit(w, r)
	if !ok {
		return
	}
	ordinal, err := strconv.Atoi(chi.URLParam(r, "ordinal"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ordinal"})
		return
	}
	muscleID, err := strconv.Atoi(chi.URLParam(r, "muscleID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid muscle ID"})
		return
	}

	var req struct {
		TargetActivation int `json:"target_activation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TargetActivation < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target_activation must be non-negative"})
		return
	}

	day := split.Day(ordinal)
	if day == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no day at that ordinal"})
		return
	}

	engine.UpsertTarget(day, muscleID, req.TargetActivation)
	if err := s.db.SaveSplit(r.Context(), split); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// loadSplit parses the {id} route param and fetches the split aggregate,
// writing the error response itself when something is off.
func (s *Server) loadSplit(w http.ResponseWriter, r *http.Request) (*models.Split, bool) {
	splitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid split ID"})
		return nil, false
	}

	split, err := s.db.GetSplit(r.Context(), splitID, s.userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "split not found"})
			return nil, false
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return split, true
}
