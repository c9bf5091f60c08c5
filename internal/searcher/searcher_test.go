package searcher

import (
	"errors"
	"testing"

	"github.com/oak-security/stylusport/internal/handbook"
)

// setupSearcher builds a searcher over a small fixed corpus.
func setupSearcher(t *testing.T) *Searcher {
	t.Helper()

	chapters := []handbook.Chapter{
		{
			Name:    "storage",
			URI:     "file:///handbook/src/storage.md",
			Title:   "Storage",
			Content: "StorageMap and StorageAddress hold contract state in slots",
		},
		{
			Name:    "tokens",
			URI:     "file:///handbook/src/tokens.md",
			Title:   "Tokens",
			Content: "fungible tokens use transfer_from and allowances",
		},
		{
			Name:    "events",
			URI:     "file:///handbook/src/events.md",
			Title:   "Events",
			Content: "events are emitted into the transaction receipt",
		},
	}

	ix, err := handbook.BuildIndex(chapters)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return New(ix, chapters)
}

func TestSearchRanksAndMetadata(t *testing.T) {
	s := setupSearcher(t)

	results, err := s.Search("fungible tokens", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}

	if results[0].URI != "file:///handbook/src/tokens.md" {
		t.Errorf("top URI = %q, want tokens chapter", results[0].URI)
	}
	if results[0].Title != "Tokens" {
		t.Errorf("top title = %q, want %q", results[0].Title, "Tokens")
	}
	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("result %d rank = %d, want %d", i, r.Rank, i+1)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("result %d invalid: %v", i, err)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := setupSearcher(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := s.Search(q, 10); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestSearchUnknownTerm(t *testing.T) {
	s := setupSearcher(t)

	results, err := s.Search("nonexistenttoken", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results for unknown term, want 0", len(results))
	}
}

func TestSearchLimitClamp(t *testing.T) {
	s := setupSearcher(t)

	// Broad query matched by several chapters.
	results, err := s.Search("contract state events tokens", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) > 1 {
		t.Fatalf("limit 1 returned %d results", len(results))
	}

	// Non-positive limit falls back to the default.
	results, err = s.Search("contract state events tokens", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("default limit should return results")
	}
}

func TestSearchCacheHit(t *testing.T) {
	s := setupSearcher(t)

	first, err := s.Search("StorageAddress", 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Search("StorageAddress", 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("cached result count %d, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached result %d = %+v, want %+v", i, second[i], first[i])
		}
	}

	// Mutating a returned slice must not poison the cache.
	if len(second) > 0 {
		second[0].Title = "mutated"
		third, err := s.Search("StorageAddress", 10)
		if err != nil {
			t.Fatal(err)
		}
		if third[0].Title == "mutated" {
			t.Error("cache returned aliased slice")
		}
	}
}
