package types

import "errors"

// Domain errors for type validation
var (
	ErrMissingURI            = errors.New("result URI is required")
	ErrMissingTitle          = errors.New("result title is required")
	ErrInvalidRank           = errors.New("rank must be >= 1")
	ErrInvalidRelevanceScore = errors.New("relevance score must be finite and > 0")
)
