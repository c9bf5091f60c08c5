package types

import "math"

// SearchResult is one ranked handbook chapter returned for a query.
type SearchResult struct {
	URI   string  `json:"uri"`
	Title string  `json:"title"`
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

// Validate ensures the result is well-formed.
func (r SearchResult) Validate() error {
	if r.URI == "" {
		return ErrMissingURI
	}
	if r.Title == "" {
		return ErrMissingTitle
	}
	if r.Rank < 1 {
		return ErrInvalidRank
	}
	if r.Score <= 0 || math.IsInf(r.Score, 0) || math.IsNaN(r.Score) {
		return ErrInvalidRelevanceScore
	}
	return nil
}
