package samplesheet

import "fmt"

// PathValue pairs a path column with the value one row carries for it.
type PathValue struct {
	Field string
	Path  string
}

// Row is one samplesheet line after header mapping. Paths preserves the
// layout's field order. Line is 1-based and refers to the source file.
type Row struct {
	Line   int
	Sample string
	Paths  []PathValue
}

// Meta carries a sample's identity downstream.
type Meta struct {
	ID string
}

// SampleRecord is the validated unit emitted per sample. Every path it names
// existed when the record was constructed; no guarantee is made beyond that
// moment. Aux holds the auxiliary paths in layout order: the combined
// annotation file for the 2-file layout, or the ancestry and traits files for
// the 3-file layout.
type SampleRecord struct {
	Meta Meta
	VCF  string
	Aux  []string
}

// Paths returns the record's file paths in field order, VCF first.
func (r SampleRecord) Paths() []string {
	out := make([]string, 0, 1+len(r.Aux))
	out = append(out, r.VCF)
	out = append(out, r.Aux...)

	return out
}

// NewRow builds the typed row for one samplesheet line from its header-keyed
// cell values, confirming that every required cell is populated.
func NewRow(layout Layout, line int, values map[string]string) (Row, error) {
	sample := values[layout.SampleColumn]
	if sample == "" {
		return Row{}, fmt.Errorf("line %d: the %s column must not be empty", line, layout.SampleColumn)
	}

	row := Row{Line: line, Sample: sample}
	for _, field := range layout.PathFields {
		path := values[field.Column]
		if path == "" {
			return Row{}, fmt.Errorf("line %d: the %s column must not be empty", line, field.Column)
		}
		row.Paths = append(row.Paths, PathValue{Field: field.Column, Path: path})
	}

	return row, nil
}
