// Package mcp exposes the split and balance engine to MCP clients so an
// assistant can answer questions like "what day am I on" or "which muscles
// am I neglecting" against live data.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/splitbalance/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SplitBalance", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("SplitBalance training server. Query the active split rotation, muscle priorities, logged training volume, and per-muscle balance status. All data is scoped to the authenticated user."),
	)

	h := &handlers{db: db, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetCurrentSplitDay, Handler: h.getCurrentSplitDay},
		server.ServerTool{Tool: toolGetMuscleBalance, Handler: h.getMuscleBalance},
		server.ServerTool{Tool: toolGetSplitAnalysis, Handler: h.getSplitAnalysis},
		server.ServerTool{Tool: toolListSplits, Handler: h.listSplits},
		server.ServerTool{Tool: toolGetLoggedSets, Handler: h.getLoggedSets},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resActiveSplit, Handler: h.activeSplit},
		server.ServerResource{Resource: resMuscleCatalog, Handler: h.muscleCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	log *slog.Logger
}

// --- Resource definitions ---

var resActiveSplit = mcp.NewResource(
	"splitbalance://active_split",
	"Active Split",
	mcp.WithResourceDescription("The user's currently active split with its days, targets, and rotation anchor date"),
	mcp.WithMIMEType("application/json"),
)

var resMuscleCatalog = mcp.NewResource(
	"splitbalance://muscle_catalog",
	"Muscle Catalog",
	mcp.WithResourceDescription("All muscles with their groups and descriptions, plus the user's priorities"),
	mcp.WithMIMEType("application/json"),
)
