package samplesheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// Read parses one samplesheet: it sniffs the delimiter, validates the header
// against the layout, and maps every data line onto a typed Row, preserving
// file order. When layoutName is empty the layout is detected from the
// header. The reader is consumed twice (sniff, then parse), hence the Seeker
// requirement.
func Read(r io.ReadSeeker, layoutName string) (Layout, []Row, error) {
	delim := DetermineDelimiter(r)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Layout{}, nil, pfx.Err(err)
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Layout{}, nil, fmt.Errorf("the samplesheet is empty")
	} else if err != nil {
		return Layout{}, nil, pfx.Err(err)
	}

	var layout Layout
	if layoutName == "" {
		if layout, err = DetectLayout(header); err != nil {
			return Layout{}, nil, err
		}
	} else {
		var exists bool
		if layout, exists = Layouts[layoutName]; !exists {
			return Layout{}, nil, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", layoutName, LayoutNames())
		}
	}

	colIndex := make(map[string]int)
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	for _, col := range layout.Columns() {
		if _, found := colIndex[col]; !found {
			return Layout{}, nil, fmt.Errorf("the samplesheet must contain these column headers: %s. It currently contains: %s", strings.Join(layout.Columns(), ", "), strings.Join(header, ", "))
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return Layout{}, nil, pfx.Err(err)
		}

		if isEmptyRecord(record) {
			continue
		}

		values := make(map[string]string)
		for _, col := range layout.Columns() {
			if i := colIndex[col]; i < len(record) {
				values[col] = strings.TrimSpace(record[i])
			}
		}

		row, err := NewRow(layout, line, values)
		if err != nil {
			return Layout{}, nil, err
		}
		rows = append(rows, row)
	}

	return layout, rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
