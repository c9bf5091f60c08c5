// Package types provides shared type definitions for the StylusPort MCP
// server.
//
// The central type is SearchResult, produced by the handbook searcher and
// serialized by the MCP tool handlers:
//
//	result := types.SearchResult{
//	    URI:   "file:///handbook/src/state-storage.md",
//	    Title: "Handbook Chapter: State Storage Patterns",
//	    Rank:  1,
//	    Score: 4.21,
//	}
//
// Ranks are 1-based and assigned in descending score order. Scores are raw
// BM25 sums; they are comparable within a single query but not across
// queries.
//
// All domain types implement a Validate method:
//
//	if err := result.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
