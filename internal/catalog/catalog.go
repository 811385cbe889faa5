// Package catalog exposes the fixed skill and bundle tables shipped with
// the low-level-dev-skills collection. The data is embedded in the binary
// and immutable after load; every consumer shares the same read-only view.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Skill is a single installable skill entry.
type Skill struct {
	Name        string `yaml:"name" json:"name"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
}

// Bundle is a curated, ordered group of skills installed together.
type Bundle struct {
	Tag         string   `yaml:"tag" json:"tag"`
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
}

// Catalog holds the full skill and bundle tables. The zero value is empty;
// use Load or Default to obtain a populated catalog.
type Catalog struct {
	skills     []Skill
	bundles    []Bundle
	categories []string
	byName     map[string]int
	byTag      map[string]int
}

type catalogFile struct {
	Skills  []Skill  `yaml:"skills"`
	Bundles []Bundle `yaml:"bundles"`
}

// Load parses a YAML catalog document and validates its integrity:
// unique lowercase names, unique bundle tags, and bundle members that
// all reference existing skills.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		skills:  file.Skills,
		bundles: file.Bundles,
		byName:  make(map[string]int, len(file.Skills)),
		byTag:   make(map[string]int, len(file.Bundles)),
	}

	seenCategory := make(map[string]bool)
	for i, s := range c.skills {
		if s.Name == "" {
			return nil, fmt.Errorf("catalog: skill %d has no name", i)
		}
		if s.Category == "" {
			return nil, fmt.Errorf("catalog: skill %q has no category", s.Name)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate skill name %q", s.Name)
		}
		c.byName[s.Name] = i
		if !seenCategory[s.Category] {
			seenCategory[s.Category] = true
			c.categories = append(c.categories, s.Category)
		}
	}

	for i, b := range c.bundles {
		if b.Tag == "" {
			return nil, fmt.Errorf("catalog: bundle %d has no tag", i)
		}
		if _, dup := c.byTag[b.Tag]; dup {
			return nil, fmt.Errorf("catalog: duplicate bundle tag %q", b.Tag)
		}
		c.byTag[b.Tag] = i
		for _, name := range b.Skills {
			if _, ok := c.byName[name]; !ok {
				return nil, fmt.Errorf("catalog: bundle %q references unknown skill %q", b.Tag, name)
			}
		}
	}

	return c, nil
}

var defaultCatalog = mustLoad(catalogYAML)

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		// The embedded catalog is authored in this repo; a broken table
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog
}

// Skills returns every skill in declaration order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Bundles returns every bundle in declaration order.
func (c *Catalog) Bundles() []Bundle {
	out := make([]Bundle, len(c.bundles))
	copy(out, c.bundles)
	return out
}

// Find looks up a skill by exact name.
func (c *Catalog) Find(name string) (Skill, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Skill{}, false
	}
	return c.skills[i], true
}

// FindBundle looks up a bundle by tag.
func (c *Catalog) FindBundle(tag string) (Bundle, bool) {
	i, ok := c.byTag[tag]
	if !ok {
		return Bundle{}, false
	}
	return c.bundles[i], true
}

// ByCategory returns the skills in a category, in declaration order.
// An unknown category yields an empty slice.
func (c *Catalog) ByCategory(category string) []Skill {
	var out []Skill
	for _, s := range c.skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skills)
}
