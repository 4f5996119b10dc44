package samplesheet

import (
	"fmt"

	"cloud.google.com/go/storage"
)

// MissingFileError reports a samplesheet path that did not resolve to an
// existing file. Field is the samplesheet column and Path the literal value
// that failed the check.
type MissingFileError struct {
	Field string
	Path  string
	Line  int
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("line %d: the %s file does not exist: %s", e.Line, e.Field, e.Path)
}

// RecordBuilder turns validated rows into SampleRecords, confirming that
// every referenced file exists at construction time. StorageClient is only
// consulted for gs:// paths and may be left nil for purely local sheets.
type RecordBuilder struct {
	StorageClient *storage.Client
}

// Build transforms one row into a SampleRecord. Path fields are checked in
// the layout's fixed order and the first missing file aborts with a
// *MissingFileError; later fields are not consulted.
func (b *RecordBuilder) Build(row Row) (SampleRecord, error) {
	rec := SampleRecord{Meta: Meta{ID: row.Sample}}

	for i, pv := range row.Paths {
		exists, err := b.exists(pv.Path)
		if err != nil {
			return SampleRecord{}, err
		}
		if !exists {
			return SampleRecord{}, &MissingFileError{Field: pv.Field, Path: pv.Path, Line: row.Line}
		}

		if i == 0 {
			rec.VCF = pv.Path
		} else {
			rec.Aux = append(rec.Aux, pv.Path)
		}
	}

	return rec, nil
}

// BuildAll maps rows to records in input order. Validation is all-or-nothing:
// the first failing row discards every record built before it.
func (b *RecordBuilder) BuildAll(rows []Row) ([]SampleRecord, error) {
	records := make([]SampleRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := b.Build(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
