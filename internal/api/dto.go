package api

import "time"

// CreateEntryRequest is the request body for creating an entry.
type CreateEntryRequest struct {
	Category string `json:"category" example:"go" validate:"required"`
	Date     string `json:"date,omitempty" example:"2025-07-05"`
	Template string `json:"template,omitempty" example:"default"`
}

// EntryDetail is the full entry response.
type EntryDetail struct {
	Path     string   `json:"path" example:"go/2025-07-05.md"`
	Category string   `json:"category" example:"go"`
	Date     string   `json:"date,omitempty" example:"2025-07-05"`
	Title    string   `json:"title" example:"TIL: goroutine leaks"`
	Content  string   `json:"content"`
	Checksum string   `json:"checksum"`
	Tags     []string `json:"tags"`
}

// EntryListItem is a lightweight item in a list response.
type EntryListItem struct {
	Path      string    `json:"path" example:"go/2025-07-05.md"`
	Category  string    `json:"category" example:"go"`
	Date      string    `json:"date,omitempty" example:"2025-07-05"`
	Title     string    `json:"title" example:"TIL: goroutine leaks"`
	Tags      []string  `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryListResponse wraps paginated entry listings.
type EntryListResponse struct {
	Entries []EntryListItem `json:"entries"`
	Total   int             `json:"total" example:"42"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path" example:"go/2025-07-05.md"`
	Title   string `json:"title" example:"TIL: goroutine leaks"`
	Snippet string `json:"snippet" example:"...matched text..."`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// TemplateItem describes one note template.
type TemplateItem struct {
	ID          string `json:"id" example:"default"`
	Name        string `json:"name" example:"Default"`
	Description string `json:"description,omitempty"`
	Builtin     bool   `json:"builtin"`
}

// GrassCell is one day in the contribution grid.
type GrassCell struct {
	Date   string `json:"date" example:"2025-07-05"`
	Active bool   `json:"active"`
	Future bool   `json:"future,omitempty"`
}
