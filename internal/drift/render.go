// Report rendering. The output is plain text with a fixed section order and
// sorted bullet lists; it is diffed byte-for-byte in CI, so nothing here may
// depend on map iteration order, terminal width, or the environment.
// See docs/ARCHITECTURE.md § Renderer.
package drift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

const reportTitle = "# Schema Drift Report"

// noDriftLine is the fixed message printed when the two snapshots agree.
const noDriftLine = "No drift detected - schemas are in sync!"

// Renderer converts a DriftReport into its textual form. Rendering never
// fails and has no side effects.
type Renderer struct {
	labelA string
	labelB string
}

// NewRenderer returns a renderer using the configuration's side labels.
func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{labelA: cfg.LabelA, labelB: cfg.LabelB}
}

// Render returns the report text, terminated by a newline. Section order is
// fixed: missing in B, missing in A, type mismatches, summary. Empty sections
// are omitted entirely.
func (r *Renderer) Render(report *types.DriftReport) string {
	lines := []string{reportTitle, ""}

	if !report.HasDrift() {
		lines = append(lines, noDriftLine)
		return strings.Join(lines, "\n") + "\n"
	}

	lines = append(lines, fmt.Sprintf("Drift detected between %s and %s schemas", r.labelA, r.labelB), "")

	if len(report.MissingInB) > 0 {
		lines = append(lines, fmt.Sprintf("## Missing in %s (exists in %s)", r.labelB, r.labelA), "")
		lines = append(lines, findingLines(report.MissingInB)...)
		lines = append(lines, "")
	}

	if len(report.MissingInA) > 0 {
		lines = append(lines, fmt.Sprintf("## Missing in %s (exists in %s)", r.labelA, r.labelB), "")
		lines = append(lines, findingLines(report.MissingInA)...)
		lines = append(lines, "")
	}

	if len(report.TypeMismatches) > 0 {
		lines = append(lines, "## Type Mismatches", "")
		mismatches := append([]string(nil), report.TypeMismatches...)
		sort.Strings(mismatches)
		for _, entry := range mismatches {
			lines = append(lines, "- "+entry)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Summary", "")
	lines = append(lines, fmt.Sprintf("- Missing in %s: %d", r.labelB, len(report.MissingInB)))
	lines = append(lines, fmt.Sprintf("- Missing in %s: %d", r.labelA, len(report.MissingInA)))
	lines = append(lines, fmt.Sprintf("- Type mismatches: %d", len(report.TypeMismatches)))

	return strings.Join(lines, "\n") + "\n"
}

// findingLines renders a findings map as sorted "- **key**: description"
// bullets.
func findingLines(findings map[string]string) []string {
	keys := make([]string, 0, len(findings))
	for k := range findings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", k, findings[k]))
	}
	return lines
}
