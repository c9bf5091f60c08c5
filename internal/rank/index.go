package rank

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultK1 is the BM25 term-frequency saturation constant used for the
// handbook corpus.
const DefaultK1 = 1.2

// Field weight and length-normalization defaults for a mixed corpus.
// Code blocks vary in length much more than prose, so the code field gets
// a gentler length penalty.
const (
	defaultWeightProse = 1.0
	defaultNormProse   = 0.75
	defaultWeightCode  = 1.0
	defaultNormCode    = 0.50
)

// Domain errors surfaced by the index lifecycle.
var (
	ErrDuplicateDoc = errors.New("duplicate document id")
	ErrFinalized    = errors.New("index already finalized")
	ErrNotFinalized = errors.New("index not finalized")
)

// posting records how many times a term occurs in one field of one document.
type posting struct {
	doc string
	tf  int
}

// termStats holds the per-field posting lists for one distinct term plus
// its inverse document frequency, computed once by Finalize from the union
// of documents containing the term in either field.
type termStats struct {
	prose []posting
	code  []posting
	idf   float64
}

// Index accumulates per-document, per-field term statistics during a build
// phase and scores queries against them after Finalize. The zero value is
// not usable; construct with New.
type Index struct {
	terms    map[string]*termStats
	lenProse map[string]int
	lenCode  map[string]int
	avgProse float64
	avgCode  float64

	k1     float64
	wProse float64
	bProse float64
	wCode  float64
	bCode  float64

	finalized bool
}

// New creates an empty index in the building state.
func New(k1 float64) *Index {
	return &Index{
		terms:    make(map[string]*termStats),
		lenProse: make(map[string]int),
		lenCode:  make(map[string]int),
		k1:       k1,
		wProse:   defaultWeightProse,
		bProse:   defaultNormProse,
		wCode:    defaultWeightCode,
		bCode:    defaultNormCode,
	}
}

// AddDoc tokenizes text and accumulates its term frequencies under docID.
// Prose tokens are stemmed and counted in the prose field; code-like
// tokens register both the lowercased whole token and every decomposed
// subword in the code field, each independently noise-filtered.
//
// Returns ErrDuplicateDoc if docID was already added and ErrFinalized if
// the build phase has ended. The raw text is not retained.
func (ix *Index) AddDoc(docID, text string) error {
	if ix.finalized {
		return fmt.Errorf("add %q: %w", docID, ErrFinalized)
	}
	if _, dup := ix.lenProse[docID]; dup {
		return fmt.Errorf("add %q: %w", docID, ErrDuplicateDoc)
	}

	tfProse := make(map[string]int)
	tfCode := make(map[string]int)
	var lenProse, lenCode int

	for _, raw := range tokenizeRaw(text) {
		if looksCode(raw) {
			whole := strings.ToLower(raw)
			if !isNoiseCode(whole) {
				tfCode[whole]++
				lenCode++
			}
			for _, sub := range splitIdentifier(raw) {
				if !isNoiseCode(sub) {
					tfCode[sub]++
					lenCode++
				}
			}
			continue
		}
		tfProse[normalizeProse(raw)]++
		lenProse++
	}

	ix.lenProse[docID] = lenProse
	ix.lenCode[docID] = lenCode

	for term, tf := range tfProse {
		st := ix.stats(term)
		st.prose = append(st.prose, posting{doc: docID, tf: tf})
	}
	for term, tf := range tfCode {
		st := ix.stats(term)
		st.code = append(st.code, posting{doc: docID, tf: tf})
	}
	return nil
}

// Finalize ends the build phase: it computes corpus-wide average field
// lengths and the smoothed IDF for every term, then marks the index
// immutable. It must be called exactly once, after all AddDoc calls and
// before any Score call.
func (ix *Index) Finalize() {
	n := float64(len(ix.lenProse))

	var sumProse, sumCode int
	for _, l := range ix.lenProse {
		sumProse += l
	}
	for _, l := range ix.lenCode {
		sumCode += l
	}
	if n > 0 {
		ix.avgProse = float64(sumProse) / n
		ix.avgCode = float64(sumCode) / n
	}

	for _, st := range ix.terms {
		seen := make(map[string]struct{}, len(st.prose)+len(st.code))
		for _, p := range st.prose {
			seen[p.doc] = struct{}{}
		}
		for _, p := range st.code {
			seen[p.doc] = struct{}{}
		}
		df := float64(len(seen))

		// Lucene-style non-negative IDF; the 0.5 smoothing keeps it
		// strictly positive even for terms present in every document.
		st.idf = math.Log(1 + (n-df+0.5)/(df+0.5))
	}

	ix.finalized = true
}

// Len reports the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.lenProse)
}

func (ix *Index) stats(term string) *termStats {
	st, ok := ix.terms[term]
	if !ok {
		st = &termStats{}
		ix.terms[term] = st
	}
	return st
}
