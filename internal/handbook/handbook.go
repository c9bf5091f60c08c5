// Package handbook embeds the StylusPort migration handbook and builds the
// search index over it.
//
// Chapters are registered data-driven: chapters.yaml lists each chapter's
// name, content file, URI and display metadata, and the markdown content is
// compiled into the binary. Load parses the registry once; BuildIndex adds
// every chapter to a rank.Index and finalizes it, so the returned index is
// immediately safe to share across query handlers.
package handbook

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oak-security/stylusport/internal/rank"
)

//go:embed chapters.yaml
var registryYAML []byte

//go:embed content
var contentFS embed.FS

// MIMEType is the media type of every handbook chapter.
const MIMEType = "text/markdown"

// Chapter is one handbook document with its display metadata and full
// markdown content.
type Chapter struct {
	Name        string
	URI         string
	Title       string
	Description string
	Content     string
}

type registry struct {
	Chapters []chapterEntry `yaml:"chapters"`
}

type chapterEntry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	URI         string `yaml:"uri"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Load parses the embedded chapter registry and resolves each entry's
// content. The returned slice preserves registry order.
func Load() ([]Chapter, error) {
	var reg registry
	if err := yaml.Unmarshal(registryYAML, &reg); err != nil {
		return nil, fmt.Errorf("parse chapter registry: %w", err)
	}
	if len(reg.Chapters) == 0 {
		return nil, fmt.Errorf("chapter registry is empty")
	}

	chapters := make([]Chapter, 0, len(reg.Chapters))
	for _, e := range reg.Chapters {
		if e.Name == "" || e.File == "" || e.URI == "" || e.Title == "" {
			return nil, fmt.Errorf("chapter registry entry %q is missing required fields", e.Name)
		}

		content, err := contentFS.ReadFile("content/" + e.File)
		if err != nil {
			return nil, fmt.Errorf("read chapter %q: %w", e.Name, err)
		}

		chapters = append(chapters, Chapter{
			Name:        e.Name,
			URI:         e.URI,
			Title:       e.Title,
			Description: e.Description,
			Content:     string(content),
		})
	}
	return chapters, nil
}

// BuildIndex indexes every chapter under its URI and finalizes the index.
// Duplicate URIs in the registry surface as rank.ErrDuplicateDoc.
func BuildIndex(chapters []Chapter) (*rank.Index, error) {
	ix := rank.New(rank.DefaultK1)
	for _, ch := range chapters {
		if err := ix.AddDoc(ch.URI, ch.Content); err != nil {
			return nil, fmt.Errorf("index chapter %q: %w", ch.Name, err)
		}
	}
	ix.Finalize()
	return ix, nil
}

// ByURI builds a lookup table from chapter URI to chapter.
func ByURI(chapters []Chapter) map[string]Chapter {
	m := make(map[string]Chapter, len(chapters))
	for _, ch := range chapters {
		m[ch.URI] = ch
	}
	return m
}
