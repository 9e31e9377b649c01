package sitedata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the ordered sequence of top-level entries written to the
// output file.
type Document []Entry

// Category titles in the fixed order the site renders them.
const (
	KeyStatistics = "Listening Statistics"
	KeyArtists    = "Top Artists"
	KeyTracks     = "Top Tracks"
	KeyAlbums     = "Top Albums"
	KeyRecent     = "Recently Played"
)

const (
	returnKey   = "return"
	returnValue = "previous page"
	returnURL   = "https://jaimeum.github.io"
)

// Assemble builds the document from the per-category entry lists.
//
// Categories appear in a fixed order and categories with no items are
// omitted entirely. The trailing navigation entry is always present.
func Assemble(stats, artists, tracks, albums, recent []Entry) Document {
	sections := []struct {
		key   string
		items []Entry
	}{
		{KeyStatistics, stats},
		{KeyArtists, artists},
		{KeyTracks, tracks},
		{KeyAlbums, albums},
		{KeyRecent, recent},
	}

	doc := make(Document, 0, len(sections)+1)
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		doc = append(doc, Category(section.key, section.items))
	}

	doc = append(doc, Leaf(returnKey, returnValue, returnURL))
	return doc
}

// Encode serializes the document as block-style YAML, keeping key
// insertion order and literal Unicode.
func (d Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode([]Entry(d)); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize document: %w", err)
	}

	return buf.Bytes(), nil
}
