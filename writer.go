package samplesheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type twoFileSheetRow struct {
	Sample string `csv:"sample"`
	VCF    string `csv:"vcf"`
	JSON   string `csv:"json"`
}

type threeFileSheetRow struct {
	Sample   string `csv:"sample"`
	VCF      string `csv:"vcf"`
	Ancestry string `csv:"ancestry"`
	Traits   string `csv:"traits"`
}

// Write rewrites the validated (and possibly renamed) samplesheet. The output
// is always comma-delimited, regardless of the delimiter the input used.
func Write(w io.Writer, layout Layout, rows []Row) error {
	// Tell gocsv to emit plain comma-separated output
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		cw := csv.NewWriter(out)
		cw.Comma = ','
		return gocsv.NewSafeCSVWriter(cw)
	})

	switch layout.Name {
	case "VCFJSON":
		out := make([]*twoFileSheetRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, &twoFileSheetRow{
				Sample: row.Sample,
				VCF:    row.Paths[0].Path,
				JSON:   row.Paths[1].Path,
			})
		}
		return pfx.Err(gocsv.Marshal(out, w))
	case "VCFANCESTRYTRAITS":
		out := make([]*threeFileSheetRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, &threeFileSheetRow{
				Sample:   row.Sample,
				VCF:      row.Paths[0].Path,
				Ancestry: row.Paths[1].Path,
				Traits:   row.Paths[2].Path,
			})
		}
		return pfx.Err(gocsv.Marshal(out, w))
	}

	return fmt.Errorf("no samplesheet writer is defined for layout %s", layout.Name)
}
