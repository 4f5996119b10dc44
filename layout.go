package samplesheet

import (
	"fmt"
	"strings"
)

// PathField names one required file column of a samplesheet layout and the
// filename suffix its values must carry.
type PathField struct {
	Column string
	Suffix string
}

// Layout describes one samplesheet variant: the sample id column plus the
// required path columns in their fixed order. The first path field is always
// the variant (VCF) file; any remaining fields are its auxiliary files.
type Layout struct {
	Name         string
	SampleColumn string
	PathFields   []PathField
}

var Layouts = map[string]Layout{
	"VCFJSON": {
		Name:         "VCFJSON",
		SampleColumn: "sample",
		PathFields: []PathField{
			{Column: "vcf", Suffix: ".vcf.gz"},
			{Column: "json", Suffix: ".json"},
		},
	},
	"VCFANCESTRYTRAITS": {
		Name:         "VCFANCESTRYTRAITS",
		SampleColumn: "sample",
		PathFields: []PathField{
			{Column: "vcf", Suffix: ".vcf.gz"},
			{Column: "ancestry", Suffix: "_ancestry-json.json"},
			{Column: "traits", Suffix: "_traits-json.json"},
		},
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}

// Columns returns the layout's full required header set, sample column first,
// then the path columns in field order.
func (l Layout) Columns() []string {
	cols := make([]string, 0, 1+len(l.PathFields))
	cols = append(cols, l.SampleColumn)
	for _, field := range l.PathFields {
		cols = append(cols, field.Column)
	}

	return cols
}

// DetectLayout resolves which samplesheet variant a header row belongs to.
// The known variants carry disjoint path columns, so a well-formed header
// matches exactly one layout.
func DetectLayout(header []string) (Layout, error) {
	present := make(map[string]struct{})
	for _, name := range header {
		present[strings.TrimSpace(name)] = struct{}{}
	}

	var matches []Layout
	for _, layout := range Layouts {
		complete := true
		for _, col := range layout.Columns() {
			if _, found := present[col]; !found {
				complete = false
				break
			}
		}
		if complete {
			matches = append(matches, layout)
		}
	}

	switch len(matches) {
	case 0:
		return Layout{}, fmt.Errorf("the samplesheet header %v does not match any known layout (%s)", header, LayoutNames())
	case 1:
		return matches[0], nil
	}

	return Layout{}, fmt.Errorf("the samplesheet header %v matches more than one layout (%s); pass the layout explicitly", header, LayoutNames())
}
