package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oak-security/stylusport/internal/handbook"
)

// registerResources exposes every handbook chapter as a readable MCP
// resource under its file:// URI.
func (s *Server) registerResources() {
	for _, chapter := range s.chapters {
		ch := chapter
		resource := mcp.Resource{
			URI:         ch.URI,
			Name:        ch.Name,
			Description: ch.Description,
			MIMEType:    handbook.MIMEType,
		}

		s.mcp.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      ch.URI,
					MIMEType: handbook.MIMEType,
					Text:     ch.Content,
				},
			}, nil
		})
	}
}
