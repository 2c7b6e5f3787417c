package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

func testStore() *catalog.Store {
	store := catalog.NewStore()
	store.Replace(catalog.UpcomingTournaments, []sheet.Record{
		{"title": "Spring Open", "date": "2026-04-01", "description": "An open event"},
	})
	store.Replace(catalog.Showcase, []sheet.Record{
		{"title": "Signed Playmat", "description": "From the open"},
	})
	store.Replace(catalog.Cubes, []sheet.Record{
		{"name": "Vintage Cube", "description": "Powered", "features": "Power nine"},
		{"name": "Pauper Cube", "description": "Commons only"},
		{"name": "Legacy Cube"},
	})
	store.SetColumns(catalog.Cubes, []string{"name", "description", "features"})
	store.MarkLoaded(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), nil)
	return store
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_site", searchSiteTool, "search_site"},
		{"list_entries", listEntriesTool, "list_entries"},
		{"site_status", siteStatusTool, "site_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	store := testStore()
	srv := NewServer(store, nil)

	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store != store {
		t.Error("store not set correctly")
	}
}

func TestHandleSearchSite(t *testing.T) {
	srv := NewServer(testStore(), nil)

	t.Run("matches in search order", func(t *testing.T) {
		result := call(t, srv.handleSearchSite, map[string]any{"query": "OPEN"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", extractText(result))
		}
		text := extractText(result)
		if !strings.Contains(text, "Found 2 result(s)") {
			t.Errorf("text = %s", text)
		}
		if strings.Index(text, "Spring Open") > strings.Index(text, "Signed Playmat") {
			t.Errorf("tournaments should come before showcase:\n%s", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		result := call(t, srv.handleSearchSite, map[string]any{"query": "zzz"})
		if result.IsError || !strings.Contains(extractText(result), "No results found") {
			t.Errorf("result = %s", extractText(result))
		}
	})

	t.Run("short query", func(t *testing.T) {
		result := call(t, srv.handleSearchSite, map[string]any{"query": "o"})
		if !result.IsError {
			t.Error("expected error for single character query")
		}
	})

	t.Run("missing query", func(t *testing.T) {
		result := call(t, srv.handleSearchSite, map[string]any{})
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		result := call(t, NewServer(catalog.NewStore(), nil).handleSearchSite, map[string]any{"query": "open"})
		if !result.IsError {
			t.Error("expected error while loading")
		}
	})
}

func TestHandleListEntries(t *testing.T) {
	srv := NewServer(testStore(), nil)

	t.Run("columns in header order", func(t *testing.T) {
		result := call(t, srv.handleListEntries, map[string]any{"category": "cubes", "limit": float64(2)})
		if result.IsError {
			t.Fatalf("unexpected tool error: %s", extractText(result))
		}
		text := extractText(result)
		if !strings.Contains(text, "Cubes: showing 2 of 3 entries") {
			t.Errorf("text = %s", text)
		}
		if !strings.Contains(text, "Columns: name, description, features") {
			t.Errorf("columns missing:\n%s", text)
		}
		if strings.Contains(text, "Legacy Cube") {
			t.Error("limit not applied")
		}
	})

	t.Run("columns from records", func(t *testing.T) {
		result := call(t, srv.handleListEntries, map[string]any{"category": "upcoming_tournaments"})
		if !strings.Contains(extractText(result), "Columns: date, description, title") {
			t.Errorf("text = %s", extractText(result))
		}
	})

	t.Run("empty category", func(t *testing.T) {
		result := call(t, srv.handleListEntries, map[string]any{"category": "previous_tournaments"})
		if result.IsError || !strings.Contains(extractText(result), "has no entries") {
			t.Errorf("result = %s", extractText(result))
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		result := call(t, srv.handleListEntries, map[string]any{"category": "decks"})
		if !result.IsError {
			t.Error("expected error for unknown category")
		}
	})
}

func TestHandleSiteStatus(t *testing.T) {
	result := call(t, NewServer(testStore(), nil).handleSiteStatus, nil)
	text := extractText(result)
	for _, want := range []string{"Status: ready", "2026-01-02T03:04:05Z", "Cubes: 3", "Previous Tournaments: 0"} {
		if !strings.Contains(text, want) {
			t.Errorf("status missing %q:\n%s", want, text)
		}
	}

	store := catalog.NewStore()
	store.MarkLoaded(time.Now(), errors.New("deadline exceeded"))
	text = extractText(call(t, NewServer(store, nil).handleSiteStatus, nil))
	if !strings.Contains(text, "Last error: deadline exceeded") {
		t.Errorf("status = %s", text)
	}

	text = extractText(call(t, NewServer(catalog.NewStore(), nil).handleSiteStatus, nil))
	if !strings.Contains(text, "Status: loading") {
		t.Errorf("status = %s", text)
	}
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
