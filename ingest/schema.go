package ingest

import (
	"fmt"
	"sort"
)

// SemanticType is the destination-side type of a canonical field.
type SemanticType string

const (
	TypeDate    SemanticType = "date"
	TypeInteger SemanticType = "integer"
	TypeFloat   SemanticType = "float"
	TypeBoolean SemanticType = "boolean"
	TypeString  SemanticType = "string"
	TypeText    SemanticType = "text"
)

// KeyRole marks how a field participates in the table's key.
type KeyRole int

const (
	KeyNone KeyRole = iota
	// KeyNaturalPart fields identify the row; a row whose natural-key field
	// fails coercion is dropped, not loaded with a null key.
	KeyNaturalPart
	// KeyAuto marks a store-assigned surrogate key. Never populated from source
	// cells; always stripped from incoming rows.
	KeyAuto
)

// LoadMode selects how the Load Executor writes a table.
type LoadMode int

const (
	LoadAppend LoadMode = iota
	LoadUpsert
)

func (m LoadMode) String() string {
	if m == LoadUpsert {
		return "upsert"
	}
	return "append"
}

// Field is one column of a canonical schema.
type Field struct {
	Name     string
	Type     SemanticType
	Required bool
	Key      KeyRole
	// MaxLen truncates string values when > 0. Text fields are never truncated.
	MaxLen int
}

// Schema describes one destination table for one form family.
type Schema struct {
	Family string
	Table  string
	Mode   LoadMode
	Fields []Field

	byName map[string]int
}

func (s *Schema) index() map[string]int {
	if s.byName == nil {
		s.byName = make(map[string]int, len(s.Fields))
		for i, f := range s.Fields {
			s.byName[f.Name] = i
		}
	}
	return s.byName
}

// FieldNamed returns the field definition for a canonical name.
func (s *Schema) FieldNamed(name string) (Field, bool) {
	i, ok := s.index()[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// NaturalKey returns the canonical names of the natural-key fields in
// declaration order.
func (s *Schema) NaturalKey() []string {
	var keys []string
	for _, f := range s.Fields {
		if f.Key == KeyNaturalPart {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// Registry holds every canonical schema, scoped per (form family, table).
// Read-only after process start; safe for unsynchronized concurrent reads.
type Registry struct {
	schemas map[string]map[string]*Schema
}

func NewRegistry(schemas []*Schema) *Registry {
	r := &Registry{schemas: make(map[string]map[string]*Schema)}
	for _, s := range schemas {
		s.index() // build the name index up front; schemas are shared across workers
		fam := r.schemas[s.Family]
		if fam == nil {
			fam = make(map[string]*Schema)
			r.schemas[s.Family] = fam
		}
		fam[s.Table] = s
	}
	return r
}

// Schema looks up the schema for a (family, table) pair.
func (r *Registry) Schema(family, table string) (*Schema, bool) {
	fam, ok := r.schemas[family]
	if !ok {
		return nil, false
	}
	s, ok := fam[table]
	return s, ok
}

// Families returns the registered form family names, sorted.
func (r *Registry) Families() []string {
	out := make([]string, 0, len(r.schemas))
	for fam := range r.schemas {
		out = append(out, fam)
	}
	sort.Strings(out)
	return out
}

// Tables returns the table names registered for a family, sorted.
func (r *Registry) Tables(family string) []string {
	fam := r.schemas[family]
	out := make([]string, 0, len(fam))
	for t := range fam {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Validate checks the registry plus alias maps for one family. This is the only
// fatal error category: a family with a broken configuration must not run at
// all, and the check happens before any archive is touched.
func (r *Registry) Validate(family string, aliases *AliasSet) error {
	fam, ok := r.schemas[family]
	if !ok {
		return fmt.Errorf("no canonical schemas registered for family %q", family)
	}
	for table, s := range fam {
		if len(s.Fields) == 0 {
			return fmt.Errorf("schema %s/%s has no fields", family, table)
		}
		seen := make(map[string]struct{}, len(s.Fields))
		for _, f := range s.Fields {
			if f.Name == "" {
				return fmt.Errorf("schema %s/%s has an unnamed field", family, table)
			}
			if _, dup := seen[f.Name]; dup {
				return fmt.Errorf("schema %s/%s declares field %q twice", family, table, f.Name)
			}
			seen[f.Name] = struct{}{}
			switch f.Type {
			case TypeDate, TypeInteger, TypeFloat, TypeBoolean, TypeString, TypeText:
			default:
				return fmt.Errorf("schema %s/%s field %q has unknown type %q", family, table, f.Name, f.Type)
			}
			if f.Key == KeyAuto && f.Required {
				return fmt.Errorf("schema %s/%s field %q is autokey and cannot be required", family, table, f.Name)
			}
		}
		if s.Mode == LoadUpsert && len(s.NaturalKey()) == 0 {
			return fmt.Errorf("schema %s/%s is upsert mode but declares no natural key", family, table)
		}
	}
	if aliases == nil {
		return nil
	}
	for table, m := range aliases.tablesFor(family) {
		s, ok := fam[table]
		if !ok {
			return fmt.Errorf("alias map %s/%s names a table with no schema", family, table)
		}
		for raw, canonical := range m {
			if _, ok := s.FieldNamed(canonical); !ok {
				return fmt.Errorf("alias %s/%s: %q -> %q names a field absent from the schema", family, table, raw, canonical)
			}
		}
	}
	return nil
}
