package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/journal"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *journal.Service, idx index.EntryIndex, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, idx)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Entries.
	r.Get("/entries", h.ListEntries)
	r.Post("/entries", h.CreateEntry)
	r.Get("/entries/*", h.GetEntry)

	// Search.
	r.Get("/search", h.Search)

	// Streak.
	r.Get("/stats", h.Stats)
	r.Get("/grass", h.Grass)

	// Templates.
	r.Get("/templates", h.ListTemplates)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
