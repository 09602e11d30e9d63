package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/claude/splitbalance/internal/engine"
	"github.com/claude/splitbalance/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetCurrentSplitDay = mcp.NewTool("get_current_split_day",
	mcp.WithDescription("Resolve which day of the active split falls on a given date. Returns the day's name, ordinal, and per-muscle activation targets."),
	mcp.WithString("date", mcp.Description("Date to resolve (ISO 8601 or YYYY-MM-DD). Defaults to today.")),
)

var toolGetMuscleBalance = mcp.NewTool("get_muscle_balance",
	mcp.WithDescription("Per-muscle balance dashboard: logged activation over a window classified against each muscle's target range (warning/below/optimal/above, or not_tracked for muscles absent from the split)."),
	mcp.WithString("start", mcp.Description("Window start (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("Window end. Defaults to now.")),
)

var toolGetSplitAnalysis = mcp.NewTool("get_split_analysis",
	mcp.WithDescription("Analyze a split's plan on paper: sum its per-day targets across the full cycle and classify each muscle against its weekly target range. Works on any split, active or not."),
	mcp.WithString("split_id", mcp.Required(), mcp.Description("Split UUID")),
)

var toolListSplits = mcp.NewTool("list_splits",
	mcp.WithDescription("List all of the user's splits with their days, targets, and which one is active."),
)

var toolGetLoggedSets = mcp.NewTool("get_logged_sets",
	mcp.WithDescription("Query logged training sets. Each set carries weight, reps, RIR, and the per-muscle activation contributions of its workout."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

func (h *handlers) getCurrentSplitDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	onDate := time.Now()
	if s := req.GetString("date", ""); s != "" {
		t, err := parseFlexTime(s)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
		onDate = t
	}

	uid := UserIDFromContext(ctx)
	split, err := h.db.GetActiveSplit(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("no active split"), nil
		}
		h.log.Error("mcp get_current_split_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	day, err := engine.ResolveDay(*split, onDate)
	if err != nil {
		return mcp.NewToolResultError("cannot resolve day: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"split_id":   split.ID,
		"split_name": split.Name,
		"date":       onDate.Format("2006-01-02"),
		"day":        day,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMuscleBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	split, err := h.db.GetActiveSplit(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("no active split"), nil
		}
		h.log.Error("mcp get_muscle_balance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	muscles, err := h.db.ListMuscles(ctx)
	if err != nil {
		h.log.Error("mcp get_muscle_balance muscles", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	priorities, err := h.db.ListPriorities(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_muscle_balance priorities", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	sets, err := h.db.QueryLoggedSets(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp get_muscle_balance sets", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	activation := engine.Aggregate(sets, start, end)
	statuses, err := engine.MuscleStatuses(muscles, priorities, *split, activation)
	if err != nil {
		return mcp.NewToolResultError("balance computation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"window_start": start,
		"window_end":   end,
		"statuses":     statuses,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSplitAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("split_id")
	if err != nil {
		return mcp.NewToolResultError("split_id parameter is required"), nil
	}
	splitID, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid split_id: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	split, err := h.db.GetSplit(ctx, splitID, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("split not found"), nil
		}
		h.log.Error("mcp get_split_analysis", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	muscles, err := h.db.ListMuscles(ctx)
	if err != nil {
		h.log.Error("mcp get_split_analysis muscles", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	priorities, err := h.db.ListPriorities(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_split_analysis priorities", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	statuses, err := engine.AnalyzeSplit(*split, muscles, priorities)
	if err != nil {
		return mcp.NewToolResultError("analysis failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"split_id":   split.ID,
		"split_name": split.Name,
		"num_days":   split.Length(),
		"statuses":   statuses,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSplits(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	splits, err := h.db.ListSplits(ctx, uid)
	if err != nil {
		h.log.Error("mcp list_splits", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(splits)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLoggedSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	sets, err := h.db.QueryLoggedSets(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp get_logged_sets", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sets)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
