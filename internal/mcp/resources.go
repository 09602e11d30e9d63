package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/claude/splitbalance/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) activeSplit(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	split, err := h.db.GetActiveSplit(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			split = nil
		} else {
			return nil, err
		}
	}

	data, err := json.Marshal(map[string]any{"active_split": split})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) muscleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	muscles, err := h.db.ListMuscles(ctx)
	if err != nil {
		return nil, err
	}

	priorities, err := h.db.ListPriorities(ctx, uid)
	if err != nil {
		h.log.Warn("muscle_catalog: priorities query failed", "error", err)
	}

	data, err := json.Marshal(map[string]any{
		"muscles":    muscles,
		"priorities": priorities,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
