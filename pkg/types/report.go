// Drift report structure produced by the comparator.
// See docs/ARCHITECTURE.md § Data Model.
package types

// DriftReport collects every structural disagreement between two snapshots,
// conventionally called side A and side B. Keys are qualified names:
// "<category>/<TypeName>" for types and "enum/<EnumName>" for enums. Values
// describe what is absent ("entire type", "fields: [...]" or "variants: [...]").
//
// A report is built once by the comparator and immutable afterwards. Map keys
// marshal in sorted order, so the JSON form is as reproducible as the text
// rendering.
type DriftReport struct {
	// MissingInB records what exists in A but not in B.
	MissingInB map[string]string `json:"missing_in_b"`
	// MissingInA records what exists in B but not in A.
	MissingInA map[string]string `json:"missing_in_a"`
	// TypeMismatches lists fields present on both sides whose declared type
	// tags disagree, as "<category>/<Type>.<field>: <labelA>=<ta>, <labelB>=<tb>".
	TypeMismatches []string `json:"type_mismatches"`
}

// NewDriftReport returns an empty report with allocated collections.
func NewDriftReport() *DriftReport {
	return &DriftReport{
		MissingInB:     map[string]string{},
		MissingInA:     map[string]string{},
		TypeMismatches: []string{},
	}
}

// HasDrift reports whether any findings collection is non-empty.
func (r *DriftReport) HasDrift() bool {
	return len(r.MissingInB) > 0 || len(r.MissingInA) > 0 || len(r.TypeMismatches) > 0
}
