// Package schema parses FIX data dictionary files (QuickFIX XML layout) into
// the structured form the dictionary package indexes. Only the <fields>
// section is consumed; message layouts and components are not relevant to
// per-tag annotation.
package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Value is one coded value of a field.
type Value struct {
	Enum        string `xml:"enum,attr"`
	Description string `xml:"description,attr"`
}

// FieldDef is one field definition from the <fields> section. An empty
// Values list means the field is free-form.
type FieldDef struct {
	Number string  `xml:"number,attr"`
	Name   string  `xml:"name,attr"`
	Values []Value `xml:"value"`
}

// Document is a parsed data dictionary.
type Document struct {
	XMLName xml.Name   `xml:"fix"`
	Major   string     `xml:"major,attr"`
	Minor   string     `xml:"minor,attr"`
	Fields  []FieldDef `xml:"fields>field"`
}

// Parse reads a data dictionary document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse data dictionary: %w", err)
	}
	return &doc, nil
}

// ParseFile reads a data dictionary document from a file on disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data dictionary: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
