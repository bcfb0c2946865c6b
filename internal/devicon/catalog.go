// Package devicon resolves free-text skill names to renderable
// technology icons. It owns the embedded icon dataset, the curated
// alias table, and the cascading fallback resolver that guarantees
// every skill renders as something.
package devicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

//go:embed devicon.json
var deviconData []byte

// Versions lists the rendering styles that exist for an icon.
type Versions struct {
	SVG []string `json:"svg,omitempty"`
}

// Entry is one renderable technology icon from the dataset.
type Entry struct {
	Name     string   `json:"name"`
	AltNames []string `json:"altnames,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Versions Versions `json:"versions,omitempty"`
}

// DefaultVariant returns the preferred rendering style for the entry:
// "original" when available, otherwise the first style the dataset
// declares.
func (e *Entry) DefaultVariant() string {
	for _, v := range e.Versions.SVG {
		if v == "original" {
			return v
		}
	}
	if len(e.Versions.SVG) > 0 {
		return e.Versions.SVG[0]
	}
	return "original"
}

// Catalog indexes the icon dataset for exact and substring lookup.
// It is immutable after construction and safe for concurrent readers.
type Catalog struct {
	entries []*Entry
	byName  map[string]*Entry
	byAlias map[string]*Entry
}

// LoadCatalog parses the embedded dataset. A corrupt dataset is not
// fatal: the error is logged and an empty catalog is returned, which
// degrades every resolution to the badge fallback tier instead of
// halting the process.
func LoadCatalog() *Catalog {
	catalog, err := newCatalog(deviconData)
	if err != nil {
		log.Printf("devicon: failed to load icon dataset, degrading to empty catalog: %v", err)
		return emptyCatalog()
	}
	return catalog
}

func emptyCatalog() *Catalog {
	return &Catalog{
		byName:  make(map[string]*Entry),
		byAlias: make(map[string]*Entry),
	}
}

// newCatalog builds the index from raw dataset bytes. Individually
// malformed records are skipped and logged; only a malformed top-level
// document fails the whole load.
func newCatalog(data []byte) (*Catalog, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse icon dataset: %w", err)
	}

	c := emptyCatalog()
	for i, msg := range raw {
		var entry Entry
		if err := json.Unmarshal(msg, &entry); err != nil {
			log.Printf("devicon: skipping malformed dataset record %d: %v", i, err)
			continue
		}
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name == "" {
			log.Printf("devicon: skipping dataset record %d: empty name", i)
			continue
		}
		if _, exists := c.byName[name]; exists {
			log.Printf("devicon: skipping dataset record %d: duplicate name %q", i, name)
			continue
		}

		entry.Name = name
		c.entries = append(c.entries, &entry)
		c.byName[name] = &entry
	}

	// Index aliases in a second pass so an alias can never shadow a
	// canonical name declared later in the dataset.
	for _, entry := range c.entries {
		for _, alt := range entry.AltNames {
			alias := strings.ToLower(strings.TrimSpace(alt))
			if alias == "" {
				continue
			}
			if _, taken := c.byName[alias]; taken {
				log.Printf("devicon: dropping alias %q of %q: collides with a canonical name", alias, entry.Name)
				continue
			}
			if _, taken := c.byAlias[alias]; taken {
				continue
			}
			c.byAlias[alias] = entry
		}
	}

	return c, nil
}

// Len returns the number of loaded entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// LookupExact finds an entry by exact name, checking canonical names
// first and dataset aliases second. Matching is case-insensitive.
// Returns nil when no entry matches.
func (c *Catalog) LookupExact(name string) *Entry {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	if entry, ok := c.byName[key]; ok {
		return entry
	}
	if entry, ok := c.byAlias[key]; ok {
		return entry
	}
	return nil
}

// Has reports whether a name resolves to any entry.
func (c *Catalog) Has(name string) bool {
	return c.LookupExact(name) != nil
}

// Search returns up to limit canonical names whose name, alias, or tag
// contains the query as a substring. Results follow dataset order so
// repeated searches are stable.
func (c *Catalog) Search(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var matches []string
	for _, entry := range c.entries {
		if entryMatches(entry, q) {
			matches = append(matches, entry.Name)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

func entryMatches(entry *Entry, q string) bool {
	if strings.Contains(entry.Name, q) {
		return true
	}
	for _, alt := range entry.AltNames {
		if strings.Contains(strings.ToLower(alt), q) {
			return true
		}
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// AllCanonicalNames returns the set of canonical names in the catalog.
func (c *Catalog) AllCanonicalNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.entries))
	for _, entry := range c.entries {
		names[entry.Name] = struct{}{}
	}
	return names
}
