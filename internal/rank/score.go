package rank

import (
	"math"
	"sort"
	"strings"
)

// Query-time boosts: a query token's own field classification weights
// matches in that field slightly higher than matches in the other.
const (
	boostMatching = 1.05
	boostOther    = 0.95
)

// Result is one scored document.
type Result struct {
	DocID string
	Score float64
}

// queryTerm is a pipeline-processed query token with its field
// classification.
type queryTerm struct {
	term string
	code bool
}

// Score runs the query through the same tokenize/classify/decompose
// pipeline used at build time, deduplicates the resulting terms, and sums
// a BM25 contribution per document across both fields. Documents are
// returned in descending score order; equal scores are broken by document
// id ascending so results are deterministic.
//
// Terms absent from the index contribute nothing. An empty or
// entirely-filtered query yields an empty result list. Score is read-only
// and safe for concurrent use once Finalize has run; calling it earlier
// returns ErrNotFinalized.
func (ix *Index) Score(query string) ([]Result, error) {
	if !ix.finalized {
		return nil, ErrNotFinalized
	}

	seen := make(map[string]struct{})
	acc := make(map[string]float64)

	for _, qt := range expandQuery(query) {
		if _, dup := seen[qt.term]; dup {
			continue
		}
		seen[qt.term] = struct{}{}

		st, ok := ix.terms[qt.term]
		if !ok {
			continue
		}

		boostProse, boostCode := boostMatching, boostOther
		if qt.code {
			boostProse, boostCode = boostOther, boostMatching
		}

		for _, p := range st.prose {
			tf := ix.fieldTF(ix.wProse, ix.bProse, p.tf, ix.lenProse[p.doc], ix.avgProse)
			acc[p.doc] += boostProse * st.idf * ix.saturate(tf)
		}
		for _, p := range st.code {
			tf := ix.fieldTF(ix.wCode, ix.bCode, p.tf, ix.lenCode[p.doc], ix.avgCode)
			acc[p.doc] += boostCode * st.idf * ix.saturate(tf)
		}
	}

	results := make([]Result, 0, len(acc))
	for doc, score := range acc {
		results = append(results, Result{DocID: doc, Score: score})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	return results, nil
}

// expandQuery applies the indexing pipeline to a query string: classify
// each raw token, include whole tokens plus subwords for code-like ones,
// stem prose ones, and drop noisy code tokens.
func expandQuery(query string) []queryTerm {
	var out []queryTerm
	for _, raw := range tokenizeRaw(query) {
		if looksCode(raw) {
			whole := strings.ToLower(raw)
			if !isNoiseCode(whole) {
				out = append(out, queryTerm{term: whole, code: true})
			}
			for _, sub := range splitIdentifier(raw) {
				if !isNoiseCode(sub) {
					out = append(out, queryTerm{term: sub, code: true})
				}
			}
			continue
		}
		out = append(out, queryTerm{term: normalizeProse(raw), code: false})
	}
	return out
}

// fieldTF computes the weighted, length-normalized term frequency for one
// field. The average-length floor keeps the division well-defined for an
// empty corpus or a field absent from it.
func (ix *Index) fieldTF(weight, b float64, tf, docLen int, avgLen float64) float64 {
	norm := 1 - b + b*(float64(docLen)/math.Max(avgLen, 1e-9))
	return weight * float64(tf) / norm
}

// saturate applies the BM25 term-frequency saturation curve.
func (ix *Index) saturate(tf float64) float64 {
	return tf * (ix.k1 + 1) / (tf + ix.k1)
}
