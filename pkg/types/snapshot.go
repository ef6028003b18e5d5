// Snapshot containers for one implementation's exported type definitions.
// See docs/ARCHITECTURE.md § Data Model.
package types

// Field is a single field entry inside a type definition. The type tag is
// optional: an exporter that cannot express a field's type (unions, $refs
// without a plain tag) leaves it empty, and an empty tag means "no opinion"
// during comparison, never a mismatch.
type Field struct {
	Type string `json:"type,omitempty"`
}

// HasType reports whether the field carries a type tag.
func (f Field) HasType() bool {
	return f.Type != ""
}

// TypeDefinition maps field name to field entry for one exported type.
// Field names are unique within a definition.
type TypeDefinition map[string]Field

// TypeTable maps type name to definition within one category.
// Type names are unique per category.
type TypeTable map[string]TypeDefinition

// SchemaSnapshot is one side's structural description of its data model:
// per-category type tables plus enum variant lists. Snapshots are read-only
// inputs; the comparator never mutates them.
type SchemaSnapshot struct {
	Categories map[string]TypeTable `json:"categories"`
	Enums      map[string][]string  `json:"enums"`
}

// Category returns the type table for the named category. A category that is
// not present in the snapshot is an empty table, not an error: exporters omit
// categories they have no types for.
func (s SchemaSnapshot) Category(name string) TypeTable {
	if s.Categories == nil {
		return TypeTable{}
	}
	table, ok := s.Categories[name]
	if !ok {
		return TypeTable{}
	}
	return table
}
