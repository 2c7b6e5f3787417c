package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/search"
	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

const defaultListLimit = 20

// handleSearchSite runs the site search over the current store contents.
func (s *Server) handleSearchSite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	snap := s.store.Snapshot()
	if !snap.Loaded {
		return mcp.NewToolResultError("The sheets are still loading. Try again shortly."), nil
	}

	res := search.Search(snap, query)
	s.logger.Debug("search_site", zap.String("term", res.Term), zap.Int("results", len(res.Items)))

	if !res.Active {
		return mcp.NewToolResultError(fmt.Sprintf("query must be at least %d characters", search.MinTermLength)), nil
	}
	if res.Empty() {
		return mcp.NewToolResultText(fmt.Sprintf("No results found for %q.", res.Term)), nil
	}
	return mcp.NewToolResultText(formatSearchResults(res)), nil
}

// handleListEntries returns the rows of one sheet, every column included.
func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}
	cat, err := catalog.ParseCategory(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := request.GetInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	snap := s.store.Snapshot()
	if !snap.Loaded {
		return mcp.NewToolResultError("The sheets are still loading. Try again shortly."), nil
	}

	records := snap.Get(cat)
	if len(records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%s has no entries.", cat.Label())), nil
	}
	return mcp.NewToolResultText(formatEntries(cat, snap.Columns[cat], records, limit)), nil
}

// handleSiteStatus reports the load state of the store.
func (s *Server) handleSiteStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()

	var sb strings.Builder
	if !snap.Loaded {
		sb.WriteString("Status: loading\n")
	} else {
		sb.WriteString("Status: ready\n")
		sb.WriteString(fmt.Sprintf("Loaded at: %s\n", snap.LoadedAt.Format(time.RFC3339)))
	}
	if snap.Err != nil {
		sb.WriteString(fmt.Sprintf("Last error: %v\n", snap.Err))
	}
	for _, cat := range catalog.Categories {
		sb.WriteString(fmt.Sprintf("%s: %d\n", cat.Label(), len(snap.Get(cat))))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatSearchResults lists results in scan order for agent consumption.
func formatSearchResults(res search.Results) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s) for %q:\n", len(res.Items), res.Term))
	for i, r := range res.Items {
		sb.WriteString(fmt.Sprintf("%d. %s (Category: %s, page: %s)\n", i+1, r.Title, r.Category, r.Page))
	}
	return sb.String()
}

// formatEntries prints up to limit records with their fields in column
// order. Without a header row the fields are sorted by name.
func formatEntries(cat catalog.Category, columns []string, records []sheet.Record, limit int) string {
	if len(columns) == 0 {
		seen := make(map[string]bool)
		for _, rec := range records {
			for k := range rec {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}
		sort.Strings(columns)
	}

	shown := records
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: showing %d of %d entries\n", cat.Label(), len(shown), len(records)))
	sb.WriteString(fmt.Sprintf("Columns: %s\n", strings.Join(columns, ", ")))

	for i, rec := range shown {
		sb.WriteString(fmt.Sprintf("\n--- Entry %d ---\n", i+1))
		for _, col := range columns {
			if v := rec.Get(col); v != "" {
				sb.WriteString(fmt.Sprintf("%s: %s\n", col, v))
			}
		}
	}
	return sb.String()
}
