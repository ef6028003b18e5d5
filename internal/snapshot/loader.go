// Package snapshot loads schema snapshot documents from disk into the
// in-memory containers the comparator consumes.
//
// The document format is produced by each implementation's schema exporter:
// a JSON object with one key per category mapping type name to a JSON-schema
// style object (only the "properties" key is read), plus an "enum" key
// mapping enum name to its variant list. Absent categories and an absent
// "enum" key are valid and mean "no types of that kind". Unknown keys inside
// a document are ignored for forward compatibility.
// See docs/ARCHITECTURE.md § Snapshot Loader.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

// enumKey is the reserved top-level key holding enum variant lists. Every
// other top-level key is treated as a category.
const enumKey = "enum"

// typeJSON mirrors one exported type definition. Exporters emit full JSON
// schemas; only the properties map matters for drift detection.
type typeJSON struct {
	Properties map[string]propertyJSON `json:"properties"`
}

// propertyJSON mirrors one field entry. The type tag is held as a raw value
// because exporters disagree on its shape: a plain string for simple types,
// an array or object for unions and references. Anything that is not a plain
// string is treated as an absent tag ("no opinion").
type propertyJSON struct {
	Type any `json:"type"`
}

// typeTag returns the field's type tag, or "" when the exporter did not emit
// a plain string tag.
func (p propertyJSON) typeTag() string {
	tag, _ := p.Type.(string)
	return tag
}

// Load reads and parses the snapshot document at path. A missing file is
// returned as-is (it satisfies errors.Is(err, fs.ErrNotExist)) so the caller
// can attach its remediation hint; a present but malformed document is a
// parse error naming the path. Load never partially succeeds.
func Load(path string) (types.SchemaSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SchemaSnapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a snapshot document. name is used in error messages only.
func Parse(data []byte, name string) (types.SchemaSnapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return types.SchemaSnapshot{}, fmt.Errorf("parsing snapshot %s: %w", name, err)
	}

	snap := types.SchemaSnapshot{
		Categories: map[string]types.TypeTable{},
		Enums:      map[string][]string{},
	}

	for key, raw := range top {
		if key == enumKey {
			if err := json.Unmarshal(raw, &snap.Enums); err != nil {
				return types.SchemaSnapshot{}, fmt.Errorf("parsing snapshot %s: enum section: %w", name, err)
			}
			continue
		}

		var table map[string]typeJSON
		if err := json.Unmarshal(raw, &table); err != nil {
			return types.SchemaSnapshot{}, fmt.Errorf("parsing snapshot %s: category %s: %w", name, key, err)
		}
		snap.Categories[key] = toTypeTable(table)
	}

	return snap, nil
}

// toTypeTable converts decoded type definitions into comparator containers.
func toTypeTable(table map[string]typeJSON) types.TypeTable {
	out := make(types.TypeTable, len(table))
	for typeName, def := range table {
		fields := make(types.TypeDefinition, len(def.Properties))
		for fieldName, prop := range def.Properties {
			fields[fieldName] = types.Field{Type: prop.typeTag()}
		}
		out[typeName] = fields
	}
	return out
}
