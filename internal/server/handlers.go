package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/splitbalance/internal/engine"
	"github.com/claude/splitbalance/internal/models"
	"github.com/claude/splitbalance/internal/storage"
)

func (s *Server) handleListMuscles(w http.ResponseWriter, r *http.Request) {
	muscles, err := s.db.ListMuscles(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Grouped by muscle group for the editor pickers.
	grouped := make(map[string][]models.Muscle)
	for _, m := range muscles {
		grouped[m.Group] = append(grouped[m.Group], m)
	}
	writeJSON(w, http.StatusOK, grouped)
}

func (s *Server) handleListPriorities(w http.ResponseWriter, r *http.Request) {
	priorities, err := s.db.ListPriorities(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, priorities)
}

func (s *Server) handleUpdatePriorities(w http.ResponseWriter, r *http.Request) {
	var priorities []models.MusclePriority
	if err := json.NewDecoder(r.Body).Decode(&priorities); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.db.UpsertPriorities(r.Context(), s.userID, priorities); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrPriorityRange) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	updated, err := s.db.ListPriorities(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleCurrentDay resolves which day of the active split a given calendar
// date falls on. The date defaults to today only here, at the transport
// boundary; the engine itself never reads the clock.
func (s *Server) handleCurrentDay(w http.ResponseWriter, r *http.Request) {
	onDate := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		var err error
		onDate, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + err.Error()})
			return
		}
	}

	split, err := s.db.GetActiveSplit(r.Context(), s.userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active split"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	day, err := engine.ResolveDay(*split, onDate)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"split_id":   split.ID,
		"split_name": split.Name,
		"date":       onDate.Format("2006-01-02"),
		"day":        day,
	})
}

// handleBalance returns the dashboard muscle statuses: logged activation in
// the window classified against each muscle's target range under the
// active split.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	split, err := s.db.GetActiveSplit(r.Context(), s.userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active split"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

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
	sets, err := s.db.QueryLoggedSets(r.Context(), s.userID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	activation := engine.Aggregate(sets, start, end)
	statuses, err := engine.MuscleStatuses(catalog, priorities, *split, activation)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"window_start": start,
		"window_end":   end,
		"split_id":     split.ID,
		"statuses":     statuses,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDataStats(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 7 days
		end = time.Now()
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
