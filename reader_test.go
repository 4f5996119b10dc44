package samplesheet

import (
	"strings"
	"testing"
)

func TestReadCommaSheet(t *testing.T) {
	sheet := strings.NewReader("sample,vcf,json\n" +
		"S1,/a/s1.vcf.gz,/a/s1.json\n" +
		"S2,/a/s2.vcf.gz,/a/s2.json\n")

	layout, rows, err := Read(sheet, "")
	if err != nil {
		t.Fatal(err)
	}
	if layout.Name != "VCFJSON" {
		t.Errorf("layout %s, expected VCFJSON", layout.Name)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}

	first := rows[0]
	if first.Line != 2 ||
		first.Sample != "S1" ||
		first.Paths[0].Field != "vcf" ||
		first.Paths[0].Path != "/a/s1.vcf.gz" ||
		first.Paths[1].Field != "json" ||
		first.Paths[1].Path != "/a/s1.json" {
		t.Errorf("Mismatch: %+v", first)
	}
	if rows[1].Line != 3 || rows[1].Sample != "S2" {
		t.Errorf("Mismatch: %+v", rows[1])
	}
}

func TestReadTabSheet(t *testing.T) {
	sheet := strings.NewReader("sample\tvcf\tancestry\ttraits\n" +
		"S1\t/a/s1.vcf.gz\t/a/s1_ancestry-json.json\t/a/s1_traits-json.json\n")

	layout, rows, err := Read(sheet, "")
	if err != nil {
		t.Fatal(err)
	}
	if layout.Name != "VCFANCESTRYTRAITS" {
		t.Errorf("layout %s, expected VCFANCESTRYTRAITS", layout.Name)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, expected 1", len(rows))
	}
	if len(rows[0].Paths) != 3 || rows[0].Paths[2].Path != "/a/s1_traits-json.json" {
		t.Errorf("Mismatch: %+v", rows[0])
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	sheet := strings.NewReader("sample,vcf,json\n" +
		"S1,/a/s1.vcf.gz,/a/s1.json\n" +
		",,\n" +
		"S2,/a/s2.vcf.gz,/a/s2.json\n")

	_, rows, err := Read(sheet, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, expected the blank line to be skipped", len(rows))
	}
}

func TestReadMissingHeader(t *testing.T) {
	sheet := strings.NewReader("sample,vcf\nS1,/a/s1.vcf.gz\n")

	if _, _, err := Read(sheet, "VCFJSON"); err == nil {
		t.Error("expected an error for a sheet without the json column")
	} else if !strings.Contains(err.Error(), "sample, vcf, json") {
		t.Errorf("error %q does not list the required columns", err)
	}
}

func TestReadEmptyCell(t *testing.T) {
	sheet := strings.NewReader("sample,vcf,json\nS1,/a/s1.vcf.gz,\n")

	if _, _, err := Read(sheet, "VCFJSON"); err == nil {
		t.Error("expected an error for an empty json cell")
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not carry the line number", err)
	}
}

func TestReadEmptySheet(t *testing.T) {
	if _, _, err := Read(strings.NewReader(""), "VCFJSON"); err == nil {
		t.Error("expected an error for an empty samplesheet")
	}
}

func TestReadUnknownLayout(t *testing.T) {
	sheet := strings.NewReader("sample,vcf,json\nS1,/a/s1.vcf.gz,/a/s1.json\n")

	if _, _, err := Read(sheet, "BOGUS"); err == nil {
		t.Error("expected an error for an unknown layout name")
	}
}
