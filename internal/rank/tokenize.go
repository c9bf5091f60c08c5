package rank

import "strings"

// codeNoise lists tokens that carry no search signal when they appear in
// code snippets: Rust keywords plus attribute and macro names that show up
// as bare tokens in raw handbook text.
var codeNoise = map[string]struct{}{
	"fn": {}, "let": {}, "mut": {}, "pub": {}, "use": {}, "mod": {},
	"impl": {}, "struct": {}, "enum": {}, "trait": {}, "where": {},
	"as": {}, "in": {}, "match": {}, "if": {}, "else": {}, "loop": {},
	"while": {}, "for": {}, "self": {}, "super": {}, "crate": {},
	"return": {}, "type": {}, "const": {}, "static": {}, "ref": {},
	"move": {}, "async": {}, "await": {}, "dyn": {}, "default": {},
	"extern": {}, "unsafe": {},
	"derive": {}, "test": {}, "cfg": {}, "allow": {}, "deny": {}, "warn": {},
}

// tokenizeRaw splits text into raw token spans. Underscores, colons and
// exclamation marks survive so identifiers, module paths and macros stay
// intact. Consecutive delimiters collapse; no empty tokens are produced.
// Documents and queries must both pass through this function so that
// build-time and query-time vocabularies stay symmetric.
func tokenizeRaw(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case r == '_', r == ':', r == '!':
			return false
		}
		return true
	})
}

// looksCode classifies a raw token as code-like from lexical shape alone:
// an ASCII uppercase letter, a digit, an underscore, a "::" path separator
// or a trailing macro bang. Misclassifications are tolerated because both
// fields contribute to the final score.
func looksCode(tok string) bool {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if isUpper(c) || isDigit(c) || c == '_' {
			return true
		}
	}
	return strings.Contains(tok, "::") || strings.HasSuffix(tok, "!")
}

// splitIdentifier decomposes a code-like token into lowercased subwords.
// Split order: "::" path segments, then "_" snake parts, then camel-case
// segments with acronym handling.
func splitIdentifier(tok string) []string {
	var subs []string
	for _, pathSeg := range strings.Split(tok, "::") {
		for _, snakeSeg := range strings.Split(pathSeg, "_") {
			for _, seg := range splitCamelAcronyms(snakeSeg) {
				subs = append(subs, strings.ToLower(seg))
			}
		}
	}
	return subs
}

// splitCamelAcronyms scans a segment once, grouping characters into
// capitalized words, acronym runs, lowercase runs and digit runs.
// Punctuation inside a segment is dropped.
func splitCamelAcronyms(seg string) []string {
	var out []string
	i := 0
	for i < len(seg) {
		start := i
		switch c := seg[i]; {
		case isUpper(c):
			i++
			if i < len(seg) && isLower(seg[i]) {
				// Capitalized word: "Request".
				for i < len(seg) && isLower(seg[i]) {
					i++
				}
			} else {
				// Acronym run: "HTTP", "URL".
				for i < len(seg) && isUpper(seg[i]) {
					i++
				}
				// "HTTPRequest" splits as "HTTP" + "Request": the last
				// uppercase of a multi-character run followed by a
				// lowercase letter starts the next word.
				if i < len(seg) && isLower(seg[i]) && i-start > 1 {
					i--
				}
			}
			out = append(out, seg[start:i])
		case isLower(c):
			for i < len(seg) && isLower(seg[i]) {
				i++
			}
			out = append(out, seg[start:i])
		case isDigit(c):
			for i < len(seg) && isDigit(seg[i]) {
				i++
			}
			out = append(out, seg[start:i])
		default:
			// Punctuation such as ':' or '!' within the segment.
			i++
		}
	}
	return out
}

// normalizeProse lowercases a prose token and folds simple plural and
// tense suffixes. The length guards keep short words like "is" and "bus"
// from being mangled; this is a coarse stemmer, not a linguistic one.
func normalizeProse(tok string) string {
	t := strings.ToLower(tok)
	switch {
	case strings.HasSuffix(t, "ies") && len(t) > 3:
		t = t[:len(t)-3] + "y"
	case strings.HasSuffix(t, "s") && !strings.HasSuffix(t, "ss") && len(t) > 3:
		t = t[:len(t)-1]
	}
	switch {
	case strings.HasSuffix(t, "ing") && len(t) > 5:
		t = t[:len(t)-3]
	case strings.HasSuffix(t, "ed") && len(t) > 4:
		t = t[:len(t)-2]
	}
	return t
}

// isNoiseCode reports whether a code-field token should be dropped:
// keyword-like strings, lifetime-style tokens such as 'a, and
// single-character tokens (one-letter generics, braces seen as tokens).
// Prose tokens are never filtered here.
func isNoiseCode(tok string) bool {
	if _, ok := codeNoise[tok]; ok {
		return true
	}
	if strings.HasPrefix(tok, "'") {
		return true
	}
	return len(tok) == 1
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
