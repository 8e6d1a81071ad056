// Package taxonomy provides the static category → skill-term mapping used
// as ground truth for skill-gap analysis. A taxonomy is loaded once at
// process start and never mutated.
package taxonomy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schemaJSON constrains the external taxonomy artifact: a non-empty object
// mapping category names to non-empty lists of skill terms
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "array",
    "minItems": 1,
    "items": { "type": "string", "minLength": 1 }
  }
}`

// Category is an ordered list of skill terms under one category name
type Category struct {
	Name   string
	Skills []string
}

// Taxonomy is an immutable, ordered set of skill categories. A skill
// belongs to exactly one category.
type Taxonomy struct {
	categories []Category
	categoryOf map[string]string
}

// ValidationError reports why a taxonomy artifact was rejected
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid taxonomy: %s", strings.Join(e.Problems, "; "))
}

// Load reads and validates a taxonomy artifact from disk
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the taxonomy schema and builds a
// Taxonomy, preserving the order categories appear in the document.
// Skill terms are lowercased; duplicates within a category and skills
// appearing in more than one category are rejected.
func Parse(data []byte) (*Taxonomy, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Problems = append(verr.Problems, desc.String())
		}
		return nil, verr
	}

	// encoding/json maps do not preserve key order, so walk the token
	// stream to keep categories in document order
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	var categories []Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
		}
		name := tok.(string)

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return nil, fmt.Errorf("failed to parse taxonomy category %q: %w", name, err)
		}
		categories = append(categories, Category{Name: name, Skills: skills})
	}

	return New(categories)
}

// New builds a Taxonomy from ordered categories, enforcing lowercase
// terms and the one-category-per-skill invariant
func New(categories []Category) (*Taxonomy, error) {
	t := &Taxonomy{categoryOf: make(map[string]string)}
	verr := &ValidationError{}

	for _, cat := range categories {
		normalized := Category{Name: cat.Name, Skills: make([]string, 0, len(cat.Skills))}
		for _, skill := range cat.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				verr.Problems = append(verr.Problems, fmt.Sprintf("category %q contains an empty skill", cat.Name))
				continue
			}
			if owner, exists := t.categoryOf[skill]; exists {
				if owner == cat.Name {
					verr.Problems = append(verr.Problems, fmt.Sprintf("skill %q repeated in category %q", skill, cat.Name))
				} else {
					verr.Problems = append(verr.Problems, fmt.Sprintf("skill %q appears in categories %q and %q", skill, owner, cat.Name))
				}
				continue
			}
			t.categoryOf[skill] = cat.Name
			normalized.Skills = append(normalized.Skills, skill)
		}
		t.categories = append(t.categories, normalized)
	}

	if len(verr.Problems) > 0 {
		return nil, verr
	}
	return t, nil
}

// Categories returns the ordered categories
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// CategoryOf returns the category a skill term belongs to
func (t *Taxonomy) CategoryOf(skill string) (string, bool) {
	cat, ok := t.categoryOf[strings.ToLower(skill)]
	return cat, ok
}

// NumSkills returns the total number of skill terms across all categories
func (t *Taxonomy) NumSkills() int {
	return len(t.categoryOf)
}
