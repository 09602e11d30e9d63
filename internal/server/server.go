package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/splitbalance/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	userID int
	router chi.Router
}

// New creates a new Server with all routes configured. All data access is
// scoped to the given user.
func New(db *storage.DB, userID int, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		userID: userID,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// MountMCP attaches an MCP transport handler under /mcp.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/muscles", s.handleListMuscles)
	s.router.Get("/api/v1/priorities", s.handleListPriorities)
	s.router.Put("/api/v1/priorities", s.handleUpdatePriorities)

	s.router.Route("/api/v1/splits", func(r chi.Router) {
		r.Get("/", s.handleListSplits)
		r.Post("/", s.handleCreateSplit)
		r.Get("/{id}", s.handleGetSplit)
		r.Put("/{id}", s.handleRenameSplit)
		r.Delete("/{id}", s.handleDeleteSplit)
		r.Post("/{id}/activate", s.handleActivateSplit)
		r.Post("/{id}/days", s.handleAddSplitDay)
		r.Delete("/{id}/days/{ordinal}", s.handleRemoveSplitDay)
		r.Put("/{id}/days/{ordinal}/targets/{muscleID}", s.handleUpsertTarget)
	})

	s.router.Get("/api/v1/schedule/current", s.handleCurrentDay)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/dashboard/balance", s.handleBalance)

	s.router.Get("/api/v1/workouts", s.handleListWorkouts)
	s.router.Post("/api/v1/workouts", s.handleCreateWorkout)
	s.router.Get("/api/v1/logs", s.handleListLogs)
	s.router.Post("/api/v1/logs", s.handleCreateLog)
}
