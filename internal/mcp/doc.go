// Package mcp implements the Model Context Protocol server for the
// StylusPort handbook.
//
// The server exposes the Solana-to-Stylus migration handbook to AI coding
// assistants over stdio (JSON-RPC 2.0):
//
//   - Tools: search_handbook, read_chapter, detect_solana_program_kind,
//     generate_stylus_contract_cargo_manifest,
//     generate_stylus_contract_main_rs
//   - Resources: every handbook chapter, readable by its file:// URI
//   - Prompts: plan_solana_program_stylus_migration
//
// # Tool: search_handbook
//
// Searches the handbook with the dual-field BM25 index:
//
//	Request:
//	{
//	  "name": "search_handbook",
//	  "arguments": {"query": "StorageAddress msg_sender", "limit": 5}
//	}
//
//	Response (text content, JSON):
//	{
//	  "query": "StorageAddress msg_sender",
//	  "total_results": 3,
//	  "results": [
//	    {"rank": 1, "uri": "file:///handbook/src/access-control.md",
//	     "title": "Handbook Chapter: Access Control Migration", "score": 5.1}
//	  ]
//	}
//
// Returned URIs are resource URIs; clients fetch chapter content through
// resources/read or the read_chapter tool.
//
// # Errors
//
// Protocol-level failures (missing or malformed arguments) are returned as
// JSON-RPC errors with the codes in this package. Domain failures a model
// should see and react to, such as an unrecognized Cargo.toml or an invalid
// package name, are returned as tool results flagged IsError.
//
// The handbook index is built once in NewServer, before the server accepts
// traffic, and is read-only afterwards; handlers share it without locking.
//
// Logging goes to stderr: stdout is reserved for the protocol.
package mcp
