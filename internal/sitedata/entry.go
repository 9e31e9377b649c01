// Package sitedata builds the music data document consumed by the
// static site's templates and serializes it to _data/music.yml.
package sitedata

// Entry is one line item of the generated document.
//
// An entry is either a leaf (string Value, optional URL) or a category
// (nested Items). Only top-level category entries nest; every item
// inside a category is a leaf.
type Entry struct {
	Key   string
	Value string
	URL   string
	Items []Entry
}

// Leaf creates a leaf entry.
func Leaf(key, value, url string) Entry {
	return Entry{Key: key, Value: value, URL: url}
}

// Category creates a category entry wrapping the given items.
func Category(key string, items []Entry) Entry {
	return Entry{Key: key, Items: items}
}

// IsCategory reports whether the entry nests other entries.
func (e Entry) IsCategory() bool {
	return len(e.Items) > 0
}

// leafNode and categoryNode fix the serialized key order: key, value,
// then url. The site templates iterate mappings in document order.
type leafNode struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	URL   string `yaml:"url,omitempty"`
}

type categoryNode struct {
	Key   string  `yaml:"key"`
	Value []Entry `yaml:"value"`
}

// MarshalYAML emits the mapping shape the site expects: a category's
// value is the nested list, a leaf's value is its display string.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.IsCategory() {
		return categoryNode{Key: e.Key, Value: e.Items}, nil
	}
	return leafNode{Key: e.Key, Value: e.Value, URL: e.URL}, nil
}
