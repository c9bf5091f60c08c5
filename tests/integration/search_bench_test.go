package integration

import (
	"testing"

	"github.com/oak-security/stylusport/internal/handbook"
	"github.com/oak-security/stylusport/internal/searcher"
)

// BenchmarkSearch benchmarks uncached queries against the full handbook.
func BenchmarkSearch(b *testing.B) {
	chapters, err := handbook.Load()
	if err != nil {
		b.Fatal(err)
	}
	index, err := handbook.BuildIndex(chapters)
	if err != nil {
		b.Fatal(err)
	}

	queries := []string{
		"StorageAddress msg_sender",
		"how do I migrate access control",
		"stylus_sdk::storage",
		"fungible token transfer",
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Fresh searcher each iteration so the cache never serves the hit.
		s := searcher.New(index, chapters)
		for _, q := range queries {
			if _, err := s.Search(q, searcher.DefaultLimit); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkSearchCached benchmarks repeated queries served from the cache.
func BenchmarkSearchCached(b *testing.B) {
	chapters, err := handbook.Load()
	if err != nil {
		b.Fatal(err)
	}
	index, err := handbook.BuildIndex(chapters)
	if err != nil {
		b.Fatal(err)
	}
	s := searcher.New(index, chapters)
	if _, err := s.Search("fungible token transfer", searcher.DefaultLimit); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := s.Search("fungible token transfer", searcher.DefaultLimit); err != nil {
			b.Fatal(err)
		}
	}
}
