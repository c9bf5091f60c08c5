package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/oak-security/stylusport/internal/handbook"
	"github.com/oak-security/stylusport/internal/searcher"
)

const (
	// ServerName is the MCP server name advertised during initialization.
	ServerName = "stylusport-mcp"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the handbook corpus and its search index.
type Server struct {
	mcp      *server.MCPServer
	chapters []handbook.Chapter
	byURI    map[string]handbook.Chapter
	searcher *searcher.Searcher
}

// NewServer loads the embedded handbook, builds and finalizes the search
// index, and registers all tools, resources and prompts. The index is
// immutable once this returns, so handlers share it freely.
func NewServer() (*Server, error) {
	chapters, err := handbook.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load handbook: %w", err)
	}

	index, err := handbook.BuildIndex(chapters)
	if err != nil {
		return nil, fmt.Errorf("failed to build handbook index: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{
		mcp:      mcpServer,
		chapters: chapters,
		byURI:    handbook.ByURI(chapters),
		searcher: searcher.New(index, chapters),
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve runs the MCP server on stdio and blocks until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchHandbookTool(), s.handleSearchHandbook)
	s.mcp.AddTool(readChapterTool(), s.handleReadChapter)
	s.mcp.AddTool(detectSolanaProgramKindTool(), s.handleDetectSolanaProgramKind)
	s.mcp.AddTool(generateCargoManifestTool(), s.handleGenerateCargoManifest)
	s.mcp.AddTool(generateMainRsTool(), s.handleGenerateMainRs)
}
