package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchHandbookTool returns the tool definition for search_handbook
func searchHandbookTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_handbook",
		Description: "Search the StylusPort::Solana Handbook, receiving a list of chapter resource URIs in descending order of relevance score",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (natural language, identifiers and module paths all work)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-50)",
					"default":     10,
					"minimum":     1,
					"maximum":     50,
				},
			},
			Required: []string{"query"},
		},
	}
}

// readChapterTool returns the tool definition for read_chapter
func readChapterTool() mcp.Tool {
	return mcp.Tool{
		Name:        "read_chapter",
		Description: "Read the full markdown content of a handbook chapter by its resource URI",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"uri": map[string]interface{}{
					"type":        "string",
					"description": "Chapter resource URI as returned by search_handbook (file:///handbook/src/...)",
				},
			},
			Required: []string{"uri"},
		},
	}
}

// detectSolanaProgramKindTool returns the tool definition for detect_solana_program_kind
func detectSolanaProgramKindTool() mcp.Tool {
	return mcp.Tool{
		Name:        "detect_solana_program_kind",
		Description: "Detect the kind of a Solana program, either 'native' or 'anchor', from its Cargo.toml file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cargo_manifest": map[string]interface{}{
					"type":        "string",
					"description": "Solana program Cargo.toml file contents",
				},
			},
			Required: []string{"cargo_manifest"},
		},
	}
}

// generateCargoManifestTool returns the tool definition for generate_stylus_contract_cargo_manifest
func generateCargoManifestTool() mcp.Tool {
	return mcp.Tool{
		Name:        "generate_stylus_contract_cargo_manifest",
		Description: "Generate the Cargo.toml file for a Stylus contract",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"package_name": map[string]interface{}{
					"type":        "string",
					"description": "Stylus contract package name",
				},
			},
			Required: []string{"package_name"},
		},
	}
}

// generateMainRsTool returns the tool definition for generate_stylus_contract_main_rs
func generateMainRsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "generate_stylus_contract_main_rs",
		Description: "Generate the main.rs file for a Stylus contract",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"package_name": map[string]interface{}{
					"type":        "string",
					"description": "Stylus contract package name",
				},
			},
			Required: []string{"package_name"},
		},
	}
}
