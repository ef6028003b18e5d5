// Package drift implements the snapshot comparator and the report renderer.
// The comparator is a pure function over two in-memory snapshots: no I/O, no
// retained state, every traversal sorted by name so that repeated runs produce
// identical reports.
// See docs/ARCHITECTURE.md § Comparator.
package drift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

// Comparator computes structural differences between two schema snapshots.
// Construct with NewComparator; the configuration is fixed for the lifetime
// of the comparator.
type Comparator struct {
	cfg    types.Config
	ignore map[string]bool
}

// NewComparator returns a comparator using the given configuration.
func NewComparator(cfg types.Config) (*Comparator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	ignore := make(map[string]bool, len(cfg.IgnoreFields))
	for _, name := range cfg.IgnoreFields {
		ignore[name] = true
	}
	return &Comparator{cfg: cfg, ignore: ignore}, nil
}

// Compare runs the full comparison: every configured category, then the
// enums. The returned report is freshly allocated; the snapshots are not
// mutated.
func (c *Comparator) Compare(a, b types.SchemaSnapshot) *types.DriftReport {
	report := types.NewDriftReport()
	for _, category := range c.cfg.Categories {
		c.CompareModels(category, a.Category(category), b.Category(category), report)
	}
	c.CompareEnums(a.Enums, b.Enums, report)
	return report
}

// CompareEnums records enum drift into report. An enum present on only one
// side is an "entire type" finding; for enums present on both sides the
// variant sets are compared and each direction's surplus is recorded as a
// sorted "variants: [...]" finding.
func (c *Comparator) CompareEnums(enumsA, enumsB map[string][]string, report *types.DriftReport) {
	for _, name := range sortedUnion(keysOfSlices(enumsA), keysOfSlices(enumsB)) {
		variantsA, inA := enumsA[name]
		variantsB, inB := enumsB[name]
		qualified := "enum/" + name

		switch {
		case !inB:
			report.MissingInB[qualified] = "entire type"
		case !inA:
			report.MissingInA[qualified] = "entire type"
		default:
			setA := stringSet(variantsA)
			setB := stringSet(variantsB)
			if onlyA := subtract(setA, setB); len(onlyA) > 0 {
				report.MissingInB[qualified] = "variants: " + formatList(onlyA)
			}
			if onlyB := subtract(setB, setA); len(onlyB) > 0 {
				report.MissingInA[qualified] = "variants: " + formatList(onlyB)
			}
		}
	}
}

// CompareModels records type and field drift for one category into report.
// Types present on only one side are "entire type" findings and their fields
// are not descended into. For types present on both sides the field sets
// (ignore set subtracted) are compared, and fields present on both sides with
// two declared type tags that disagree become type-mismatch entries. A field
// without a type tag on either side has no opinion and never mismatches.
func (c *Comparator) CompareModels(category string, typesA, typesB types.TypeTable, report *types.DriftReport) {
	for _, name := range sortedUnion(keysOfTables(typesA), keysOfTables(typesB)) {
		defA, inA := typesA[name]
		defB, inB := typesB[name]
		qualified := category + "/" + name

		if !inB {
			report.MissingInB[qualified] = "entire type"
			continue
		}
		if !inA {
			report.MissingInA[qualified] = "entire type"
			continue
		}

		fieldsA := c.fieldSet(defA)
		fieldsB := c.fieldSet(defB)

		if onlyA := subtract(fieldsA, fieldsB); len(onlyA) > 0 {
			report.MissingInB[qualified] = "fields: " + formatList(onlyA)
		}
		if onlyB := subtract(fieldsB, fieldsA); len(onlyB) > 0 {
			report.MissingInA[qualified] = "fields: " + formatList(onlyB)
		}

		for _, field := range intersect(fieldsA, fieldsB) {
			tagA := defA[field]
			tagB := defB[field]
			if tagA.HasType() && tagB.HasType() && tagA.Type != tagB.Type {
				report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf(
					"%s.%s: %s=%s, %s=%s",
					qualified, field, c.cfg.LabelA, tagA.Type, c.cfg.LabelB, tagB.Type,
				))
			}
		}
	}
}

// fieldSet returns the field names of a definition with the ignore set
// subtracted.
func (c *Comparator) fieldSet(def types.TypeDefinition) map[string]bool {
	set := make(map[string]bool, len(def))
	for name := range def {
		if !c.ignore[name] {
			set[name] = true
		}
	}
	return set
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func keysOfSlices(m map[string][]string) map[string]bool {
	set := make(map[string]bool, len(m))
	for k := range m {
		set[k] = true
	}
	return set
}

func keysOfTables(m types.TypeTable) map[string]bool {
	set := make(map[string]bool, len(m))
	for k := range m {
		set[k] = true
	}
	return set
}

// sortedUnion returns the union of two key sets in lexicographic order.
func sortedUnion(a, b map[string]bool) []string {
	union := make([]string, 0, len(a)+len(b))
	for k := range a {
		union = append(union, k)
	}
	for k := range b {
		if !a[k] {
			union = append(union, k)
		}
	}
	sort.Strings(union)
	return union
}

// subtract returns the sorted elements of a that are not in b.
func subtract(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// intersect returns the sorted elements present in both a and b.
func intersect(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// formatList renders a sorted name list as "[a, b, c]".
func formatList(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
