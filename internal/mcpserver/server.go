// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes journal tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tilkit/til/internal/apperr"
	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/journal"
	"github.com/tilkit/til/internal/links"
	"github.com/tilkit/til/internal/parser"
	"github.com/tilkit/til/internal/template"
)

// Server wraps the MCP server with journal tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *journal.Service
	idx   index.EntryIndex
	links *links.Manager
}

// New creates a new MCP server with all journal tools registered.
func New(svc *journal.Service, idx index.EntryIndex, lm *links.Manager) *Server {
	s := &Server{svc: svc, idx: idx, links: lm}

	s.mcp = server.NewMCPServer(
		"TIL",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_entries",
		mcp.WithDescription("Full-text search through journal entries."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchEntries)

	s.mcp.AddTool(mcp.NewTool("read_entry",
		mcp.WithDescription("Read the full content of a journal entry."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the entry (e.g. go/2025-07-05.md)")),
	), s.readEntry)

	s.mcp.AddTool(mcp.NewTool("create_entry",
		mcp.WithDescription("Create today's journal entry for a category from a template. "+
			"The rendered entry follows the canonical format; read it first via the "+
			"get_entry_contract tool or the til://entry-format resource."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category directory for the entry (e.g. go)")),
		mcp.WithString("date", mcp.Description("Entry date as YYYY-MM-DD (defaults to today)")),
		mcp.WithString("template", mcp.Description("Template id (defaults to \"default\")")),
	), s.createEntry)

	s.mcp.AddTool(mcp.NewTool("get_entry_contract",
		mcp.WithDescription("Returns the canonical journal entry format contract. "+
			"Call this before creating entries to ensure correct structure."),
	), s.getEntryContract)

	s.mcp.AddTool(mcp.NewTool("get_streak",
		mcp.WithDescription("Get current and longest writing streaks plus totals."),
	), s.getStreak)

	s.mcp.AddTool(mcp.NewTool("add_link",
		mcp.WithDescription("Record a URL in this month's link file under today's date."),
		mcp.WithString("url", mcp.Required(), mcp.Description("The URL to record")),
		mcp.WithString("title", mcp.Description("Link text (defaults to the bare URL)")),
		mcp.WithString("tag", mcp.Description("Optional tag rendered as #tag")),
		mcp.WithString("snippet", mcp.Description("One-line description")),
	), s.addLink)

	s.mcp.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List available entry templates."),
	), s.listTemplates)

	// Resource: entry format contract.
	s.mcp.AddResource(
		mcp.NewResource("til://entry-format", "Entry Format Contract",
			mcp.WithResourceDescription("Canonical journal entry format that all entries must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readEntryFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.idx.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.svc.ReadEntry(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) createEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var date time.Time
	if v, dErr := req.RequireString("date"); dErr == nil && v != "" {
		parsed, pErr := time.Parse(parser.DateLayout, v)
		if pErr != nil {
			return mcp.NewToolResultError("date must be YYYY-MM-DD"), nil
		}
		date = parsed
	}

	tplID := "default"
	if v, tErr := req.RequireString("template"); tErr == nil && v != "" {
		tplID = v
	}

	path, err := s.svc.CreateEntry(category, date, tplID)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return mcp.NewToolResultError(fmt.Sprintf("entry already exists: %s", path)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) getEntryContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(EntryFormatContract), nil
}

func (s *Server) getStreak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.svc.Stats()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := links.Options{}
	if v, oErr := req.RequireString("title"); oErr == nil {
		opts.Title = v
	}
	if v, oErr := req.RequireString("tag"); oErr == nil {
		opts.Tag = v
	}
	if v, oErr := req.RequireString("snippet"); oErr == nil {
		opts.Snippet = v
	}

	file, err := s.links.Add(url, s.svc.Today(), opts)
	if err != nil {
		if errors.Is(err, links.ErrDuplicate) {
			return mcp.NewToolResultError("link already recorded today"), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("recorded in %s", file)), nil
}

func (s *Server) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var lines []string
	for _, tpl := range s.svc.Templates().List() {
		kind := "user"
		if template.IsBuiltin(tpl.ID) {
			kind = "builtin"
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", tpl.ID, kind, tpl.Description))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) readEntryFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "til://entry-format",
			MIMEType: "text/markdown",
			Text:     EntryFormatContract,
		},
	}, nil
}
