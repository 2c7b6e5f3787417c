package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the community catalog to agents.
type Server struct {
	store  *catalog.Store
	logger *zap.Logger
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading from store.
func NewServer(store *catalog.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store:  store,
		logger: logger.Named("mcp"),
	}

	s.mcp = server.NewMCPServer(
		"cubeclub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchSiteTool, s.handleSearchSite)
	s.mcp.AddTool(listEntriesTool, s.handleListEntries)
	s.mcp.AddTool(siteStatusTool, s.handleSiteStatus)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
