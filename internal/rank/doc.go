// Package rank implements a dual-field BM25 index over a small in-memory
// corpus of documentation chapters.
//
// Every document is split into two independent vocabularies: prose tokens
// (plain words, lightly stemmed) and code-like tokens (identifiers, module
// paths, macros). Code tokens are indexed both whole and decomposed into
// subwords, so a query for "http" finds documents mentioning
// "parse_http_request" or "HTTPRequest".
//
// # Lifecycle
//
//	ix := rank.New(rank.DefaultK1)
//	if err := ix.AddDoc("file:///handbook/src/intro.md", text); err != nil {
//	    log.Fatal(err)
//	}
//	ix.Finalize()
//
//	results, err := ix.Score("StorageAddress msg_sender")
//
// AddDoc and Finalize run single-goroutine during startup. After Finalize
// the index is immutable and Score may be called from any number of
// goroutines without locking. AddDoc after Finalize returns ErrFinalized;
// Score before Finalize returns ErrNotFinalized.
//
// # Scoring
//
// Each field is scored with Okapi BM25 (saturating term frequency,
// per-field document-length normalization) using a Lucene-style
// non-negative IDF computed from the union of documents containing the
// term in either field. Query tokens classified as code-like boost code
// matches slightly over prose matches, and vice versa.
package rank
