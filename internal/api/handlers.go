package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tilkit/til/internal/apperr"
	"github.com/tilkit/til/internal/checksum"
	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/journal"
	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/template"
)

// Handler holds API route handlers.
type Handler struct {
	svc *journal.Service
	idx index.EntryIndex
}

// NewHandler creates a new Handler.
func NewHandler(svc *journal.Service, idx index.EntryIndex) *Handler {
	return &Handler{svc: svc, idx: idx}
}

// entryPath extracts the entry path from the URL (everything after
// /api/entries/). Supports encoded slashes (e.g. go%2F2025-07-05.md).
func entryPath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListEntries handles GET /api/entries with optional pagination and
// category/tag filters.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	rows, total, err := h.idx.ListEntries(limit, offset, q.Get("category"), q.Get("tag"))
	if err != nil {
		slog.Error("list entries failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	items := make([]EntryListItem, len(rows))
	for i, row := range rows {
		items[i] = EntryListItem{
			Path:      row.Path,
			Category:  row.Category,
			Date:      dateString(row.Date),
			Title:     row.Title,
			Tags:      emptyIfNil(row.Tags),
			UpdatedAt: row.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, EntryListResponse{Entries: items, Total: total})
}

// GetEntry handles GET /api/entries/*.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	path := entryPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	data, err := h.svc.ReadEntry(path)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get entry failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, entryDetail(path, data))
}

// CreateEntry handles POST /api/entries. The date defaults to today and
// the template to "default".
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Category == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("category is required"))
		return
	}
	var day time.Time
	if req.Date != "" {
		parsed, err := time.Parse(parser.DateLayout, req.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("date must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}
	tplID := req.Template
	if tplID == "" {
		tplID = "default"
	}

	path, err := h.svc.CreateEntry(req.Category, day, tplID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrAlreadyExists):
			writeJSON(w, http.StatusConflict, errorBody("entry already exists"))
		case errors.Is(err, apperr.ErrInvalidCategory):
			writeJSON(w, http.StatusBadRequest, errorBody("invalid category"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusBadRequest, errorBody("unknown template"))
		default:
			slog.Error("create entry failed", slog.String("category", req.Category), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	data, err := h.svc.ReadEntry(path)
	if err != nil {
		slog.Error("read created entry failed", slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, entryDetail(path, data))
}

// Search handles GET /api/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	hits, err := h.idx.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	results := make([]SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = SearchResult{Path: hit.Path, Title: hit.Title, Snippet: hit.Snippet}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats()
	if err != nil {
		slog.Error("stats failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Grass handles GET /api/grass?weeks=N.
func (h *Handler) Grass(w http.ResponseWriter, r *http.Request) {
	weeks, _ := strconv.Atoi(r.URL.Query().Get("weeks"))
	grid, err := h.svc.Grass(weeks)
	if err != nil {
		slog.Error("grass failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	out := make([][]GrassCell, len(grid))
	for i, week := range grid {
		cells := make([]GrassCell, len(week))
		for j, c := range week {
			cells[j] = GrassCell{Date: c.Date.Format(parser.DateLayout), Active: c.Active, Future: c.Future}
		}
		out[i] = cells
	}
	writeJSON(w, http.StatusOK, map[string]any{"weeks": out})
}

// ListTemplates handles GET /api/templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	items := make([]TemplateItem, 0)
	for _, tpl := range h.svc.Templates().List() {
		items = append(items, TemplateItem{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Builtin:     template.IsBuiltin(tpl.ID),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": items})
}

func entryDetail(path string, data []byte) EntryDetail {
	res, err := parser.Parse(data)
	if err != nil {
		res = &parser.Result{}
	}
	detail := EntryDetail{
		Path:     path,
		Title:    res.Title,
		Content:  string(data),
		Checksum: checksum.Sum(data),
		Tags:     emptyIfNil(res.Tags),
	}
	if i := strings.IndexByte(path, '/'); i > 0 {
		detail.Category = path[:i]
	}
	if d, ok := parser.EntryDate(path); ok {
		detail.Date = d.Format(parser.DateLayout)
	}
	return detail
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(parser.DateLayout)
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
