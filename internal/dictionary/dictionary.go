// Package dictionary holds the indexed field and enum definitions decoding
// runs against, one Dictionary per protocol version.
package dictionary

import (
	"sort"

	"go.uber.org/zap"

	"github.com/beccau/fix-mode/internal/schema"
	"github.com/beccau/fix-mode/pkg/log"
)

// Enum is one coded value and its human-readable description, scoped to a
// single field.
type Enum struct {
	Value       string
	Description string
}

// Field is one schema field definition. An empty Enums list means the field
// is free-form and never resolves a value name.
type Field struct {
	Number string
	Name   string
	Enums  []Enum

	byValue map[string]string
}

// EnumDescription looks up the description for a coded value. The lookup is
// scoped to this field only.
func (f *Field) EnumDescription(value string) (string, bool) {
	if f == nil || len(f.byValue) == 0 {
		return "", false
	}
	desc, ok := f.byValue[value]
	return desc, ok
}

// Dictionary indexes the field definitions of one protocol version by field
// number. Build it once via FromSchema or Builtin; it is never mutated
// afterward.
type Dictionary struct {
	fields map[string]*Field
}

// FromSchema indexes a parsed data dictionary document: field number to
// Field, and within each field, enum value to description.
func FromSchema(doc *schema.Document) *Dictionary {
	fields := make([]Field, 0, len(doc.Fields))
	for _, def := range doc.Fields {
		f := Field{Number: def.Number, Name: def.Name}
		for _, v := range def.Values {
			f.Enums = append(f.Enums, Enum{Value: v.Enum, Description: v.Description})
		}
		fields = append(fields, f)
	}
	return build(fields)
}

// build indexes the given fields. Duplicate field numbers keep the first
// definition.
func build(fields []Field) *Dictionary {
	d := &Dictionary{fields: make(map[string]*Field, len(fields))}
	for i := range fields {
		f := fields[i]
		if _, ok := d.fields[f.Number]; ok {
			continue
		}
		f.byValue = make(map[string]string, len(f.Enums))
		for _, e := range f.Enums {
			f.byValue[e.Value] = e.Description
		}
		d.fields[f.Number] = &f
	}
	return d
}

// Field returns the definition for a tag number, or false when the number is
// not part of this dictionary.
func (d *Dictionary) Field(number string) (*Field, bool) {
	if d == nil {
		return nil, false
	}
	f, ok := d.fields[number]
	return f, ok
}

// Size returns the number of field definitions.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

// Store maps protocol version identifiers to dictionaries. It is assembled
// once at startup and read-only afterward, so concurrent decode calls share
// it without locking.
type Store struct {
	dicts map[string]*Dictionary
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{dicts: make(map[string]*Dictionary)}
}

// Load builds a store from version-to-file mappings. A file that cannot be
// read or parsed leaves its version absent and the rest of the store intact;
// callers must tolerate partial stores.
func Load(sources map[string]string) *Store {
	s := NewStore()
	for version, path := range sources {
		doc, err := schema.ParseFile(path)
		if err != nil {
			log.Warn("skipping dictionary",
				zap.String("version", version),
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		d := FromSchema(doc)
		s.Add(version, d)
		log.Info("loaded dictionary",
			zap.String("version", version),
			zap.Int("fields", d.Size()))
	}
	return s
}

// Add registers a dictionary under a version identifier. Only valid during
// store assembly, before decoding starts.
func (s *Store) Add(version string, d *Dictionary) {
	s.dicts[version] = d
}

// Lookup returns the dictionary for a version identifier. Exact match only;
// a missing version is an expected state, not an error.
func (s *Store) Lookup(version string) (*Dictionary, bool) {
	if s == nil {
		return nil, false
	}
	d, ok := s.dicts[version]
	return d, ok
}

// Versions lists the loaded version identifiers, sorted.
func (s *Store) Versions() []string {
	if s == nil {
		return nil
	}
	versions := make([]string, 0, len(s.dicts))
	for v := range s.dicts {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
