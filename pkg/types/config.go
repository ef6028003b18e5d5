// Comparator configuration: fixed category list, metadata ignore set, and
// side labels. Loaded once at startup and passed into the comparator at
// construction; never mutated afterwards.
// See docs/ARCHITECTURE.md § Configuration.
package types

import "errors"

// Default side labels used in report headings and mismatch entries.
const (
	DefaultLabelA = "A"
	DefaultLabelB = "B"
)

// Config validation errors.
var (
	ErrNoCategories      = errors.New("categories must not be empty")
	ErrCategoryEmpty     = errors.New("category name must not be empty")
	ErrCategoryDuplicate = errors.New("duplicate category name")
	ErrLabelEmpty        = errors.New("side label must not be empty")
)

// Config holds the comparator's fixed configuration.
type Config struct {
	// Categories is the list of snapshot categories to compare, in the order
	// they appear in the report. The list is fixed configuration, not
	// discovered from the snapshots.
	Categories []string `json:"categories" yaml:"categories"`

	// IgnoreFields names per-implementation metadata fields excluded from all
	// field-presence and type-mismatch comparisons, uniformly across every
	// type in every category.
	IgnoreFields []string `json:"ignore_fields" yaml:"ignore_fields"`

	// LabelA and LabelB name the two sides in rendered output.
	LabelA string `json:"label_a" yaml:"label_a"`
	LabelB string `json:"label_b" yaml:"label_b"`
}

// DefaultConfig returns the stock configuration: the business-object and
// component categories of the shared standard, and the metadata fields every
// implementation stamps onto serialized objects.
func DefaultConfig() Config {
	return Config{
		Categories:   []string{"bo", "com"},
		IgnoreFields: []string{"_typ", "_version", "_id", "zusatzAttribute"},
		LabelA:       DefaultLabelA,
		LabelB:       DefaultLabelB,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}
	seen := map[string]bool{}
	for _, category := range c.Categories {
		if category == "" {
			return ErrCategoryEmpty
		}
		if seen[category] {
			return ErrCategoryDuplicate
		}
		seen[category] = true
	}
	if c.LabelA == "" || c.LabelB == "" {
		return ErrLabelEmpty
	}
	return nil
}
