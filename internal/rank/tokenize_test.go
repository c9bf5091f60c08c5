package rank

import (
	"reflect"
	"testing"
)

func TestTokenizeRaw(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain words",
			text: "the quick brown fox",
			want: []string{"the", "quick", "brown", "fox"},
		},
		{
			name: "identifiers survive",
			text: "call msg_sender() on serde::de::Deserialize, then panic!",
			want: []string{"call", "msg_sender", "on", "serde::de::Deserialize", "then", "panic!"},
		},
		{
			name: "consecutive delimiters collapse",
			text: "a,,  b--c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only delimiters",
			text: " .,;()\t\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeRaw(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenizeRaw(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLooksCode(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"hello", false},
		{"Deserialize", true},
		{"msg_sender", true},
		{"erc20", true},
		{"serde::de", true},
		{"panic!", true},
		{"token", false},
		{"x", false},
		{"X", true},
	}

	for _, tt := range tests {
		if got := looksCode(tt.tok); got != tt.want {
			t.Errorf("looksCode(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestSplitCamelAcronyms(t *testing.T) {
	tests := []struct {
		seg  string
		want []string
	}{
		{"Request", []string{"Request"}},
		{"ParseHttpRequest", []string{"Parse", "Http", "Request"}},
		{"HTTPRequest", []string{"HTTP", "Request"}},
		{"parseURL", []string{"parse", "URL"}},
		{"erc20", []string{"erc", "20"}},
		{"HTTP", []string{"HTTP"}},
		{"lowercase", []string{"lowercase"}},
		{"2fa", []string{"2", "fa"}},
		{"", nil},
		// Punctuation within the segment is dropped.
		{"panic!", []string{"panic"}},
	}

	for _, tt := range tests {
		t.Run(tt.seg, func(t *testing.T) {
			got := splitCamelAcronyms(tt.seg)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCamelAcronyms(%q) = %v, want %v", tt.seg, got, tt.want)
			}
		})
	}
}

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		tok  string
		want []string
	}{
		{"serde::de::Deserialize", []string{"serde", "de", "deserialize"}},
		{"parse_http_request", []string{"parse", "http", "request"}},
		{"ParseHTTPRequest", []string{"parse", "http", "request"}},
		{"msg_sender", []string{"msg", "sender"}},
		{"StorageU256", []string{"storage", "u", "256"}},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got := splitIdentifier(tt.tok)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitIdentifier(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestNormalizeProse(t *testing.T) {
	tests := []struct {
		tok  string
		want string
	}{
		{"Dogs", "dog"},
		{"libraries", "library"},
		{"handles", "handle"},
		{"class", "class"},   // "ss" guard
		{"is", "is"},         // too short for the plural fold
		{"bus", "bus"},       // length guard
		{"running", "runn"},  // coarse by design
		{"ing", "ing"},       // length guard
		{"handled", "handl"},
		{"red", "red"}, // length guard
		{"errors", "error"},
	}

	for _, tt := range tests {
		if got := normalizeProse(tt.tok); got != tt.want {
			t.Errorf("normalizeProse(%q) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestIsNoiseCode(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"fn", true},
		{"impl", true},
		{"derive", true},
		{"'a", true}, // lifetime
		{"t", true},  // single-letter generic
		{"deserialize", false},
		{"storage", false},
	}

	for _, tt := range tests {
		if got := isNoiseCode(tt.tok); got != tt.want {
			t.Errorf("isNoiseCode(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

// Build-time and query-time classification must agree for any substring of
// indexed text that tokenizes to the same spans.
func TestClassificationSymmetry(t *testing.T) {
	text := "ParseHttpRequest handles serde::de::Deserialize and msg_sender values"

	for _, tok := range tokenizeRaw(text) {
		docSide := looksCode(tok)
		for _, queryTok := range tokenizeRaw(tok) {
			if got := looksCode(queryTok); got != docSide {
				t.Errorf("token %q classified %v at build time but %v at query time", tok, docSide, got)
			}
		}
	}
}
