/* Copyright 2024 BolisettySujith
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package catalog reads and checks the collection's index
// (patterns.yaml): which patterns exist, which are implemented, and
// where their write-ups live.
package catalog

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Categories and statuses a Pattern may carry.
const (
	Creational = "creational"
	Structural = "structural"
	Behavioral = "behavioral"

	Implemented = "implemented"
	Planned     = "planned"
)

// Pattern is one entry in the collection.
type Pattern struct {
	// Name is the pattern's conventional name.  Something like
	// "Factory Method".
	Name string `yaml:"name" json:"name"`

	// Slug is the short identifier used by tools and file names.
	// Something like "factory-method".
	Slug string `yaml:"slug" json:"slug"`

	// Category is one of Creational, Structural, or Behavioral.
	Category string `yaml:"category" json:"category"`

	// Status is Implemented or Planned.
	Status string `yaml:"status" json:"status"`

	// Doc is the markdown write-up's file name under the docs
	// directory.  Optional for planned patterns.
	Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`

	// Summary is a one-line description for listings.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// Catalog is the whole index.
type Catalog struct {
	Patterns []*Pattern `yaml:"patterns" json:"patterns"`
}

// Parse reads a Catalog from YAML and validates it.
func Parse(bs []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(bs, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Read loads a Catalog from a YAML file.
func Read(filename string) (*Catalog, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(bs)
}

// Validate checks each entry and the slug uniqueness of the whole
// index.
func (c *Catalog) Validate() error {
	slugs := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		if p.Name == "" || p.Slug == "" {
			return &IncompletePattern{Pattern: p}
		}
		switch p.Category {
		case Creational, Structural, Behavioral:
		default:
			return &UnknownCategory{Pattern: p}
		}
		switch p.Status {
		case Implemented, Planned:
		default:
			return &UnknownStatus{Pattern: p}
		}
		if slugs[p.Slug] {
			return &DuplicateSlug{Slug: p.Slug}
		}
		slugs[p.Slug] = true
	}
	return nil
}

// Find returns the entry with the given slug, if any.
func (c *Catalog) Find(slug string) (*Pattern, bool) {
	for _, p := range c.Patterns {
		if p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}

// Implemented returns the entries that have runnable code, in catalog
// order.
func (c *Catalog) Implemented() []*Pattern {
	var ps []*Pattern
	for _, p := range c.Patterns {
		if p.Status == Implemented {
			ps = append(ps, p)
		}
	}
	return ps
}
