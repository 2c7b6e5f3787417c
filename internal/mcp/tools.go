package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchSiteTool defines the search_site MCP tool.
var searchSiteTool = mcp.NewTool("search_site",
	mcp.WithDescription("Search tournaments, showcase items and cubes by title or description. Matching is a case-insensitive substring match."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search term, at least 2 characters"),
	),
)

// listEntriesTool defines the list_entries MCP tool.
var listEntriesTool = mcp.NewTool("list_entries",
	mcp.WithDescription("List the rows of one published sheet with every column."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Sheet to list"),
		mcp.Enum("showcase", "upcoming_tournaments", "previous_tournaments", "cubes"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of rows to return (default 20)"),
	),
)

// siteStatusTool defines the site_status MCP tool.
var siteStatusTool = mcp.NewTool("site_status",
	mcp.WithDescription("Report whether the sheets have loaded, when, and how many rows each holds."),
)
