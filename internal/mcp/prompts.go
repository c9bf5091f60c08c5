package mcp

import (
	"context"
	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
)

//go:embed prompts/plan_solana_program_stylus_migration.md
var planMigrationPrompt string

// registerPrompts registers the migration-planning prompt.
func (s *Server) registerPrompts() {
	prompt := mcp.Prompt{
		Name:        "plan_solana_program_stylus_migration",
		Description: "Prompts an LLM agent to plan for Solana program migration with the aid of the StylusPort::Solana handbook and MCP server",
	}

	s.mcp.AddPrompt(prompt, s.handlePlanMigrationPrompt)
}

func (s *Server) handlePlanMigrationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(planMigrationPrompt),
			},
		},
	}, nil
}
