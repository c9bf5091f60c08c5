package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oak-security/stylusport/internal/searcher"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeChapterNotFound = -32001 // Requested chapter URI is unknown
	ErrorCodeEmptyQuery      = -32004 // Query parameter is empty
)

// handleSearchHandbook handles the search_handbook tool invocation
func (s *Server) handleSearchHandbook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing",
		})
	}

	limit := getIntDefault(args, "limit", searcher.DefaultLimit)
	if limit < 1 || limit > searcher.MaxLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit out of range", map[string]interface{}{
			"param":   "limit",
			"value":   limit,
			"allowed": fmt.Sprintf("1-%d", searcher.MaxLimit),
		})
	}

	results, err := s.searcher.Search(query, limit)
	if err != nil {
		if errors.Is(err, searcher.ErrEmptyQuery) {
			return nil, newMCPError(ErrorCodeEmptyQuery, "query cannot be an empty string", map[string]interface{}{
				"param": "query",
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	formatted := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		formatted = append(formatted, map[string]interface{}{
			"rank":  r.Rank,
			"uri":   r.URI,
			"title": r.Title,
			"score": r.Score,
		})
	}

	response := map[string]interface{}{
		"query":         query,
		"total_results": len(results),
		"results":       formatted,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleReadChapter handles the read_chapter tool invocation
func (s *Server) handleReadChapter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	uri, ok := args["uri"].(string)
	if !ok || uri == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "uri parameter is required", map[string]interface{}{
			"param":  "uri",
			"reason": "missing or empty",
		})
	}

	chapter, found := s.byURI[uri]
	if !found {
		return nil, newMCPError(ErrorCodeChapterNotFound, "chapter not found", map[string]interface{}{
			"uri": uri,
		})
	}

	return mcp.NewToolResultText(chapter.Content), nil
}

// handleDetectSolanaProgramKind handles the detect_solana_program_kind tool invocation
func (s *Server) handleDetectSolanaProgramKind(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	manifest, ok := args["cargo_manifest"].(string)
	if !ok || manifest == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "cargo_manifest parameter is required", map[string]interface{}{
			"param":  "cargo_manifest",
			"reason": "missing or empty",
		})
	}

	if !strings.Contains(manifest, "[package]") || !strings.Contains(manifest, "dependencies") {
		return mcp.NewToolResultError("invalid cargo manifest file"), nil
	}

	if strings.Contains(manifest, "anchor-lang") {
		return mcp.NewToolResultText("anchor"), nil
	}
	if strings.Contains(manifest, "solana-program") {
		return mcp.NewToolResultText("native"), nil
	}

	return mcp.NewToolResultError("no solana program kind detected, are you sure this is the correct Cargo.toml file?"), nil
}

// handleGenerateCargoManifest handles the generate_stylus_contract_cargo_manifest tool invocation
func (s *Server) handleGenerateCargoManifest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	packageName, errResult, err := packageNameArg(request)
	if errResult != nil || err != nil {
		return errResult, err
	}

	manifest := fmt.Sprintf(`[package]
name = %q
version = "0.1.0"
edition = "2021"

[features]
export-abi = ["stylus-sdk/export-abi", "openzeppelin-stylus/export-abi"]

[dependencies]
alloy-primitives = %q
alloy-sol-types = %q
openzeppelin-stylus = %q
stylus-sdk = %q

[dev-dependencies]
alloy-primitives = { version = %q, features = [ "tiny-keccak" ] }
arbitrary = { version = %q, features = [ "derive" ] }
motsu = %q
`,
		packageName,
		envDefault("STYLUSPORT_MCP_ALLOY_PRIMITIVES_VERSION", "=0.8.20"),
		envDefault("STYLUSPORT_MCP_ALLOY_SOL_TYPES_VERSION", "=0.8.20"),
		envDefault("STYLUSPORT_MCP_OPENZEPPELIN_STYLUS_VERSION", "0.3.0"),
		envDefault("STYLUSPORT_MCP_STYLUS_SDK_VERSION", "=0.9.0"),
		envDefault("STYLUSPORT_MCP_ALLOY_PRIMITIVES_VERSION", "=0.8.20"),
		envDefault("STYLUSPORT_MCP_ARBITRARY_VERSION", "=1.4.2"),
		envDefault("STYLUSPORT_MCP_MOTSU_VERSION", "0.10.0"),
	)

	return mcp.NewToolResultText(manifest), nil
}

// handleGenerateMainRs handles the generate_stylus_contract_main_rs tool invocation
func (s *Server) handleGenerateMainRs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	packageName, errResult, err := packageNameArg(request)
	if errResult != nil || err != nil {
		return errResult, err
	}

	crateName := strings.ReplaceAll(packageName, "-", "_")

	mainRs := fmt.Sprintf(`#![cfg_attr(not(any(test, feature = "export-abi")), no_main)]

#[cfg(not(any(test, feature = "export-abi")))]
#[no_mangle]
pub extern "C" fn main() {}

#[cfg(feature = "export-abi")]
fn main() {
    %s::print_from_args();
}
`, crateName)

	return mcp.NewToolResultText(mainRs), nil
}

// Package-name validation, per the Cargo manifest name-field rules.

const invalidPackageNameMsg = "invalid package name - must be non-empty, not longer than 64 characters and only contain ASCII alphanumerics, hyphens & underscores"

// invalidPackageName reports whether name may not be used as a Cargo
// package name. The character allowlist also prevents newline injection
// into the generated files.
func invalidPackageName(name string) bool {
	if name == "" || len(name) > 64 {
		return true
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_':
		default:
			return true
		}
	}
	return false
}

// packageNameArg extracts and validates the package_name argument shared by
// the generator tools. Exactly one of the three return values is meaningful.
func packageNameArg(request mcp.CallToolRequest) (string, *mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	packageName, ok := args["package_name"].(string)
	if !ok || packageName == "" {
		return "", nil, newMCPError(ErrorCodeInvalidParams, "package_name parameter is required", map[string]interface{}{
			"param":  "package_name",
			"reason": "missing or empty",
		})
	}

	if invalidPackageName(packageName) {
		return "", mcp.NewToolResultError(invalidPackageNameMsg), nil
	}

	return packageName, nil, nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// envDefault returns the environment variable's value, or fallback when unset.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
