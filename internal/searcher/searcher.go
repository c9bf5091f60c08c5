// Package searcher is the read-side facade over the finalized handbook
// index: it validates queries, maps scored document ids back to chapter
// metadata and caches recent responses.
package searcher

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oak-security/stylusport/internal/handbook"
	"github.com/oak-security/stylusport/internal/rank"
	"github.com/oak-security/stylusport/pkg/types"
)

const (
	// DefaultLimit is used when a request does not specify one.
	DefaultLimit = 10
	// MaxLimit caps the number of results per request.
	MaxLimit = 50

	cacheSize = 256
	cacheTTL  = time.Hour
)

// ErrEmptyQuery is returned for queries that are empty or whitespace-only.
var ErrEmptyQuery = fmt.Errorf("query cannot be empty")

// cacheEntry holds a cached result list with its expiration time.
type cacheEntry struct {
	results   []types.SearchResult
	expiresAt time.Time
}

// Searcher serves ranked handbook searches from an immutable index.
// It is safe for concurrent use.
type Searcher struct {
	index *rank.Index
	byURI map[string]handbook.Chapter

	cache   *lru.Cache[[32]byte, *cacheEntry]
	cacheMu sync.RWMutex
}

// New creates a Searcher over a finalized index and its chapter registry.
func New(index *rank.Index, chapters []handbook.Chapter) *Searcher {
	cache, err := lru.New[[32]byte, *cacheEntry](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	return &Searcher{
		index: index,
		byURI: handbook.ByURI(chapters),
		cache: cache,
	}
}

// Search scores the query against the handbook index and returns up to
// limit chapters in descending relevance order with 1-based ranks. A
// non-positive limit falls back to DefaultLimit; limits above MaxLimit are
// clamped.
func (s *Searcher) Search(query string, limit int) ([]types.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	key := requestHash(query, limit)
	if results, ok := s.fromCache(key); ok {
		return results, nil
	}

	scored, err := s.index.Score(query)
	if err != nil {
		return nil, fmt.Errorf("score query: %w", err)
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]types.SearchResult, 0, len(scored))
	for i, r := range scored {
		ch, ok := s.byURI[r.DocID]
		if !ok {
			// Index and registry are built from the same chapter list,
			// so every scored id must resolve.
			return nil, fmt.Errorf("scored document %q has no chapter", r.DocID)
		}
		results = append(results, types.SearchResult{
			URI:   ch.URI,
			Title: ch.Title,
			Rank:  i + 1,
			Score: r.Score,
		})
	}

	s.store(key, results)
	return results, nil
}

// fromCache returns a copy of a live cached result list.
func (s *Searcher) fromCache(key [32]byte) ([]types.SearchResult, bool) {
	now := time.Now()

	s.cacheMu.RLock()
	entry, found := s.cache.Get(key)
	if !found {
		s.cacheMu.RUnlock()
		return nil, false
	}
	if now.After(entry.expiresAt) {
		s.cacheMu.RUnlock()

		// Drop the expired entry under the write lock.
		s.cacheMu.Lock()
		s.cache.Remove(key)
		s.cacheMu.Unlock()
		return nil, false
	}
	results := copyResults(entry.results)
	s.cacheMu.RUnlock()

	return results, true
}

func (s *Searcher) store(key [32]byte, results []types.SearchResult) {
	entry := &cacheEntry{
		results:   copyResults(results),
		expiresAt: time.Now().Add(cacheTTL),
	}

	s.cacheMu.Lock()
	s.cache.Add(key, entry)
	s.cacheMu.Unlock()
}

func copyResults(src []types.SearchResult) []types.SearchResult {
	dst := make([]types.SearchResult, len(src))
	copy(dst, src)
	return dst
}

// requestHash computes a stable cache key for a query/limit pair.
func requestHash(query string, limit int) [32]byte {
	return sha256.Sum256([]byte(fmt.Sprintf("%s|%d", query, limit)))
}
